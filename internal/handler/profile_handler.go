package handler

import (
	"net/http"

	"github.com/anand-nandz/Inkspire/internal/auth"
	"github.com/anand-nandz/Inkspire/internal/service"
	"github.com/gin-gonic/gin"
)

// GetProfile 返回当前用户的资料，头像经过签名 URL 装饰。
func (h *Handler) GetProfile(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "User ID missing")
		return
	}

	user, err := h.users.Profile(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile fetched successfully",
		"user":    user,
	})
}

// UpdateProfile 应用 multipart 表单中出现的字段；空值按“不修改”处理。
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "User ID missing")
		return
	}

	update := service.ProfileUpdate{
		FirstName: optionalForm(c, "firstName"),
		LastName:  optionalForm(c, "lastName"),
		Role:      optionalForm(c, "role"),
	}
	if interests, ok := c.GetPostFormArray("interests"); ok {
		update.Interests = interests
	}

	avatar, closeAvatar, err := formUpload(c, "profileImage")
	if err != nil {
		respondServiceError(c, err)
		return
	}
	defer closeAvatar()

	user, err := h.users.UpdateProfile(userID, update, avatar)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    user,
	})
}
