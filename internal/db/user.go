package db

import "gorm.io/gorm"

// User 定义了用户模型。
// ProfileImage 存储的是对象存储中的 key，而不是 URL；
// 展示用的签名 URL 在每次读取时重新生成。
type User struct {
	gorm.Model
	FirstName    string `gorm:"not null"`
	LastName     string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	Password     string `gorm:"not null"`
	DOB          string
	Role         string
	ProfileImage string
	Interests    []string `gorm:"serializer:json"`
	// IsActive 为 false 的账号无法登录（未完成验证或被管理员封禁）
	IsActive bool `gorm:"not null;default:false"`
}
