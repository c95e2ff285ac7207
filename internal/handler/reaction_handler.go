package handler

import (
	"net/http"

	"github.com/anand-nandz/Inkspire/internal/auth"
	"github.com/gin-gonic/gin"
)

// LikeArticle 切换当前用户对文章的点赞。
func (h *Handler) LikeArticle(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	articleID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid article id")
		return
	}

	article, err := h.articles.ToggleLike(articleID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Article like updated successfully",
		"article": article,
	})
}

// DislikeArticle 切换当前用户对文章的点踩。
func (h *Handler) DislikeArticle(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	articleID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid article id")
		return
	}

	article, err := h.articles.ToggleDislike(articleID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Article dislike updated successfully",
		"article": article,
	})
}
