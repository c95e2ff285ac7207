package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/anand-nandz/Inkspire/internal/logger"
	"github.com/anand-nandz/Inkspire/internal/service"
	"github.com/anand-nandz/Inkspire/internal/storage"
	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

// respondServiceError 把服务层错误映射到稳定的状态码分类。
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrArticleNotFound):
		respondError(c, http.StatusNotFound, "Article not found or unauthorized")
	case errors.Is(err, service.ErrUserNotFound):
		respondError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrEmailTaken):
		respondError(c, http.StatusBadRequest, "Email already exists")
	case errors.Is(err, service.ErrIncorrectPassword):
		respondError(c, http.StatusUnauthorized, "Incorrect password")
	case errors.Is(err, service.ErrAccountBlocked):
		respondError(c, http.StatusForbidden, "Blocked by admin")
	case errors.Is(err, service.ErrInvalidOTP):
		respondError(c, http.StatusBadRequest, "Invalid OTP")
	case errors.Is(err, service.ErrOTPExpired):
		respondError(c, http.StatusBadRequest, "OTP expired")
	case errors.Is(err, service.ErrSignupExpired):
		respondError(c, http.StatusBadRequest, "Signup session expired")
	case errors.Is(err, service.ErrNoChanges):
		respondError(c, http.StatusBadRequest, "No changes to update")
	case errors.Is(err, service.ErrInvalidStatus):
		respondError(c, http.StatusBadRequest, "Invalid article status")
	case errors.Is(err, storage.ErrNotImage):
		respondError(c, http.StatusBadRequest, "Only image uploads are allowed")
	case errors.Is(err, service.ErrStorageFailure):
		respondError(c, http.StatusInternalServerError, "Failed to upload image")
	default:
		logger.Log.WithError(err).Error("unhandled service error")
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// optionalForm 把空或缺失的表单字段映射为 nil（不修改）。
func optionalForm(c *gin.Context, key string) *string {
	value := strings.TrimSpace(c.PostForm(key))
	if value == "" {
		return nil
	}
	return &value
}

// formUpload extracts an optional image upload from a multipart form.
// Returns (nil, noop, nil) when the field is absent.
func formUpload(c *gin.Context, field string) (*storage.Upload, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, func() {}, nil
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, func() {}, storage.ErrNotImage
	}

	file, err := header.Open()
	if err != nil {
		return nil, func() {}, err
	}
	upload := &storage.Upload{
		Filename:    header.Filename,
		ContentType: contentType,
		Reader:      file,
	}
	return upload, func() { file.Close() }, nil
}
