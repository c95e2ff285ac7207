package otp

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"
)

const (
	// Expiry 是验证码及待验证注册数据的有效期。
	Expiry = 10 * time.Minute
	// ResendCooldown 是允许重新发送验证码的最小间隔。
	ResendCooldown = time.Minute

	codeLength = 4
)

// ErrPendingNotFound 表示待验证的注册记录不存在或已过期。
var ErrPendingNotFound = errors.New("pending signup not found")

// PendingSignup 暂存尚未通过验证码确认的注册数据。
// 密码在进入暂存区之前已经完成 bcrypt 哈希。
type PendingSignup struct {
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	DOB          string    `json:"dob"`
	PasswordHash string    `json:"passwordHash"`
	Role         string    `json:"role"`
	Interests    []string  `json:"interests"`
	ProfileImage string    `json:"profileImage"`
	Code         string    `json:"code"`
	ExpiresAt    time.Time `json:"expiresAt"`
	ResendAt     time.Time `json:"resendAt"`
}

// Store 是按邮箱索引的待验证注册暂存区。
// 实现负责在 Expiry 之后让记录自动失效。
type Store interface {
	Put(email string, pending PendingSignup) error
	Get(email string) (PendingSignup, error)
	Delete(email string) error
}

// GenerateCode 生成一个 4 位数字验证码。
func GenerateCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < codeLength; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", codeLength, n), nil
}

// ValidCodeFormat reports whether raw looks like a generated code.
func ValidCodeFormat(raw string) bool {
	if len(raw) != codeLength {
		return false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
