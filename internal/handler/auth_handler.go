package handler

import (
	"net/http"

	"github.com/anand-nandz/Inkspire/internal/auth"
	"github.com/anand-nandz/Inkspire/internal/service"
	"github.com/gin-gonic/gin"
)

type signupRequest struct {
	FirstName string   `json:"firstName" binding:"required"`
	LastName  string   `json:"lastName" binding:"required"`
	Email     string   `json:"email" binding:"required,email"`
	DOB       string   `json:"dob" binding:"required"`
	Password  string   `json:"password" binding:"required,min=8"`
	Role      string   `json:"role" binding:"required"`
	Interests []string `json:"interests"`
}

type verifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup 暂存注册数据并发送验证码，账号在验证通过前不会创建。
func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if !bindJSON(c, &req, "Invalid signup payload") {
		return
	}

	result, err := h.users.Register(service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		DOB:       req.DOB,
		Password:  req.Password,
		Role:      req.Role,
		Interests: req.Interests,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":           "OTP sent to email",
		"email":             result.Email,
		"otpExpiry":         result.ExpiresAt,
		"resendAvailableAt": result.ResendAt,
	})
}

// VerifyOTP 核对验证码并创建账号。
func (h *Handler) VerifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if !bindJSON(c, &req, "Invalid OTP payload") {
		return
	}

	user, err := h.users.VerifyOTP(req.Email, req.OTP)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":    user,
		"message": "Account created successfully",
	})
}

// Login 签发访问令牌，并把刷新令牌写入 httpOnly cookie。
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req, "Invalid login payload") {
		return
	}

	user, err := h.users.Login(req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	token, err := h.tokens.CreateAccessToken(user.ID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}
	refresh, err := h.tokens.CreateRefreshToken(user.ID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	c.SetCookie(auth.RefreshCookieName, refresh, int(h.refreshTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"user":    user,
		"message": "Successfully logged in",
	})
}

// Logout 清除刷新令牌 cookie。
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(auth.RefreshCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}
