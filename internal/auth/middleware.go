package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextUserKey 是存放在 gin.Context 中的已验证用户 ID 的键。
const ContextUserKey = "userID"

// RefreshCookieName is the httpOnly cookie carrying the refresh token.
const RefreshCookieName = "refreshToken"

// Middleware 校验 Bearer 访问令牌并要求刷新令牌 cookie 存在，
// 验证通过后把用户 ID 写入请求上下文。
func Middleware(m *Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"expired": true, "message": "Authentication required"})
			return
		}

		if _, err := c.Cookie(RefreshCookieName); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Authentication required"})
			return
		}

		userID, err := m.ParseAccessToken(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid"})
			return
		}

		c.Set(ContextUserKey, userID)
		c.Next()
	}
}

// UserID 从上下文取出已验证的用户 ID。
func UserID(c *gin.Context) (uint, bool) {
	value, ok := c.Get(ContextUserKey)
	if !ok {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
