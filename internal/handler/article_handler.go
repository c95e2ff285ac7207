package handler

import (
	"net/http"

	"github.com/anand-nandz/Inkspire/internal/auth"
	"github.com/anand-nandz/Inkspire/internal/db"
	"github.com/anand-nandz/Inkspire/internal/service"
	"github.com/gin-gonic/gin"
)

// CreateArticle 从 multipart 表单创建文章，封面可选。
func (h *Handler) CreateArticle(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "User ID missing")
		return
	}

	input := service.ArticleInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		Content:     c.PostForm("content"),
		Status:      db.ArticleStatus(c.PostForm("status")),
	}
	if input.Title == "" || input.Description == "" || input.Category == "" || input.Content == "" {
		respondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	cover, closeCover, err := formUpload(c, "coverImage")
	if err != nil {
		respondServiceError(c, err)
		return
	}
	defer closeCover()

	article, err := h.articles.Create(userID, input, cover)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Article created successfully",
		"article": article,
	})
}

// UpdateArticle 只覆盖表单中出现的字段；新封面替换原有 key。
func (h *Handler) UpdateArticle(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "User ID missing")
		return
	}
	articleID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid article id")
		return
	}

	update := service.ArticleUpdate{
		Title:       optionalForm(c, "title"),
		Description: optionalForm(c, "description"),
		Category:    optionalForm(c, "category"),
		Content:     optionalForm(c, "content"),
	}
	if raw := optionalForm(c, "status"); raw != nil {
		status := db.ArticleStatus(*raw)
		update.Status = &status
	}

	cover, closeCover, err := formUpload(c, "coverImage")
	if err != nil {
		respondServiceError(c, err)
		return
	}
	defer closeCover()

	article, err := h.articles.Update(userID, articleID, update, cover)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Article updated successfully",
		"article": article,
	})
}

// GetArticle 返回单篇文章（含净化后的渲染正文）。
func (h *Handler) GetArticle(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "User ID missing")
		return
	}
	articleID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid article id")
		return
	}

	article, err := h.articles.Get(userID, articleID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "article": article})
}

// ListOwnedArticles 返回当前用户的文章列表。
func (h *Handler) ListOwnedArticles(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "User ID missing")
		return
	}

	articles, err := h.articles.ListOwned(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": articles})
}

// ListAllArticles 返回首页信息流（全部未删除文章）。
func (h *Handler) ListAllArticles(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "User ID missing")
		return
	}

	articles, err := h.articles.ListAll(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": articles})
}

// DeleteArticle 软删除文章并返回剩余文章列表。
func (h *Handler) DeleteArticle(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "User ID missing")
		return
	}
	articleID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid article id")
		return
	}

	articles, err := h.articles.SoftDelete(userID, articleID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Article deleted successfully",
		"data":    articles,
	})
}
