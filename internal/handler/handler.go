package handler

import (
	"time"

	"github.com/anand-nandz/Inkspire/internal/auth"
	"github.com/anand-nandz/Inkspire/internal/service"
)

// Handler 聚合各业务 handler 依赖的服务。
type Handler struct {
	users      *service.UserService
	articles   *service.ArticleService
	tokens     *auth.Manager
	refreshTTL time.Duration
}

// New creates a Handler instance.
func New(users *service.UserService, articles *service.ArticleService, tokens *auth.Manager, refreshTTL time.Duration) *Handler {
	return &Handler{users: users, articles: articles, tokens: tokens, refreshTTL: refreshTTL}
}
