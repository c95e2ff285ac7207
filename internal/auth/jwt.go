package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalid = errors.New("token is invalid")
	ErrTokenExpired = errors.New("token is expired")
)

// Manager issues and verifies the access/refresh token pair. The two token
// kinds are signed with separate secrets so a leaked refresh token cannot be
// replayed as an access token.
type Manager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewManager creates a token manager.
func NewManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// CreateAccessToken 签发访问令牌，subject 为用户 ID。
func (m *Manager) CreateAccessToken(userID uint) (string, error) {
	return m.create(userID, m.accessSecret, m.accessTTL)
}

// CreateRefreshToken 签发刷新令牌。
func (m *Manager) CreateRefreshToken(userID uint) (string, error) {
	return m.create(userID, m.refreshSecret, m.refreshTTL)
}

func (m *Manager) create(userID uint, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseAccessToken 校验访问令牌并返回用户 ID。
func (m *Manager) ParseAccessToken(raw string) (uint, error) {
	return m.parse(raw, m.accessSecret)
}

// ParseRefreshToken 校验刷新令牌并返回用户 ID。
func (m *Manager) ParseRefreshToken(raw string) (uint, error) {
	return m.parse(raw, m.refreshSecret)
}

func (m *Manager) parse(raw string, secret []byte) (uint, error) {
	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return 0, ErrTokenInvalid
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 32)
	if err != nil {
		return 0, ErrTokenInvalid
	}
	return uint(id), nil
}
