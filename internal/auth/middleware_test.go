package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func setupMiddlewareRouter(t *testing.T) (*gin.Engine, *Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := NewManager("access-secret", "refresh-secret", time.Hour, 7*24*time.Hour)
	r := gin.New()
	r.GET("/protected", Middleware(m), func(c *gin.Context) {
		userID, ok := UserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "no user in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userID": userID})
	})
	return r, m
}

func TestMiddleware_MissingBearerToken(t *testing.T) {
	r, _ := setupMiddlewareRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestMiddleware_MissingRefreshCookie(t *testing.T) {
	r, m := setupMiddlewareRouter(t)

	access, err := m.CreateAccessToken(5)
	if err != nil {
		t.Fatalf("create access token: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestMiddleware_InvalidAccessToken(t *testing.T) {
	r, _ := setupMiddlewareRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	req.AddCookie(&http.Cookie{Name: RefreshCookieName, Value: "whatever"})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestMiddleware_ValidRequestSetsUserID(t *testing.T) {
	r, m := setupMiddlewareRouter(t)

	access, err := m.CreateAccessToken(5)
	if err != nil {
		t.Fatalf("create access token: %v", err)
	}
	refresh, err := m.CreateRefreshToken(5)
	if err != nil {
		t.Fatalf("create refresh token: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	req.AddCookie(&http.Cookie{Name: RefreshCookieName, Value: refresh})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if body := w.Body.String(); body != `{"userID":5}` {
		t.Fatalf("unexpected body: %s", body)
	}
}
