package service

import "errors"

var (
	ErrArticleNotFound = errors.New("article not found or unauthorized")
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailTaken      = errors.New("email already exists")

	ErrIncorrectPassword = errors.New("incorrect password")
	ErrAccountBlocked    = errors.New("account is blocked by admin")

	ErrInvalidOTP    = errors.New("invalid otp")
	ErrOTPExpired    = errors.New("otp expired")
	ErrSignupExpired = errors.New("signup session expired")

	ErrNoChanges     = errors.New("no changes to update")
	ErrInvalidStatus = errors.New("invalid article status")

	// ErrStorageFailure 表示对象存储上传失败。签名失败不会产生该错误，
	// MediaResolver 对签名失败始终就地吸收。
	ErrStorageFailure = errors.New("object storage failure")
)
