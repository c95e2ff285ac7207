package db

import "gorm.io/gorm"

// ArticleStatus 表示文章的生命周期状态。
type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "Draft"
	StatusPublished ArticleStatus = "Published"
	StatusArchived  ArticleStatus = "Archived"
	StatusBlocked   ArticleStatus = "Blocked"
	StatusDeleted   ArticleStatus = "Deleted"
)

// ValidStatus reports whether s is one of the known article statuses.
func ValidStatus(s ArticleStatus) bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived, StatusBlocked, StatusDeleted:
		return true
	}
	return false
}

// Article 定义了文章模型。
// CoverImage 与 User.ProfileImage 一样只存对象 key。
// TotalLikes / TotalDislikes 是反应集合的缓存投影，
// 写入时由集合基数重新计算，永远不会独立递增。
type Article struct {
	gorm.Model
	UserID        uint `gorm:"index;not null"`
	User          User
	Title         string
	Description   string
	Category      string
	Content       string
	CoverImage    string
	Status        ArticleStatus `gorm:"not null;default:Draft"`
	TotalLikes    int           `gorm:"not null;default:0"`
	TotalDislikes int           `gorm:"not null;default:0"`
}
