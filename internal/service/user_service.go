package service

import (
	"errors"
	"strings"
	"time"

	"github.com/anand-nandz/Inkspire/internal/db"
	"github.com/anand-nandz/Inkspire/internal/notify"
	"github.com/anand-nandz/Inkspire/internal/otp"
	"github.com/anand-nandz/Inkspire/internal/storage"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService covers registration, one-time-code verification, login and
// profile maintenance.
type UserService struct {
	db            *gorm.DB
	blob          storage.BlobStore
	resolver      *MediaResolver
	pending       otp.Store
	publisher     notify.Publisher
	profilePrefix string
}

// RegisterInput represents the signup form.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	DOB       string
	Password  string
	Role      string
	Interests []string
}

// RegisterResult 告知客户端验证码的有效期与可重发时间。
type RegisterResult struct {
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"otpExpiry"`
	ResendAt  time.Time `json:"resendAvailableAt"`
}

// ProfileUpdate 是字段级更新：nil 表示该字段保持不变。
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Role      *string
	Interests []string
}

// NewUserService creates a UserService instance.
func NewUserService(gdb *gorm.DB, blob storage.BlobStore, resolver *MediaResolver, pending otp.Store, publisher notify.Publisher, profilePrefix string) *UserService {
	return &UserService{
		db:            gdb,
		blob:          blob,
		resolver:      resolver,
		pending:       pending,
		publisher:     publisher,
		profilePrefix: profilePrefix,
	}
}

// Register 校验邮箱未被占用后生成验证码，把注册数据连同验证码
// 写入暂存区，并向投递队列发布验证码消息。账号此时尚未创建。
func (s *UserService) Register(input RegisterInput) (*RegisterResult, error) {
	email := normalizeEmail(input.Email)

	if err := s.ensureEmailFree(email); err != nil {
		return nil, err
	}

	code, err := otp.GenerateCode()
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	pending := otp.PendingSignup{
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        email,
		DOB:          input.DOB,
		PasswordHash: string(hash),
		Role:         input.Role,
		Interests:    input.Interests,
		Code:         code,
		ExpiresAt:    now.Add(otp.Expiry),
		ResendAt:     now.Add(otp.ResendCooldown),
	}
	if err := s.pending.Put(email, pending); err != nil {
		return nil, err
	}

	// 验证码送不出去注册就无法完成，发布失败直接上抛
	if err := s.publisher.PublishOTP(notify.OTPMessage{
		Email:     email,
		Code:      code,
		ExpiresAt: pending.ExpiresAt,
	}); err != nil {
		return nil, err
	}

	return &RegisterResult{Email: email, ExpiresAt: pending.ExpiresAt, ResendAt: pending.ResendAt}, nil
}

// VerifyOTP 核对验证码并真正创建账号（isActive 置为 true）。
func (s *UserService) VerifyOTP(email, code string) (*UserView, error) {
	email = normalizeEmail(email)

	if !otp.ValidCodeFormat(code) {
		return nil, ErrInvalidOTP
	}

	pending, err := s.pending.Get(email)
	if err != nil {
		if errors.Is(err, otp.ErrPendingNotFound) {
			return nil, ErrSignupExpired
		}
		return nil, err
	}

	if time.Now().After(pending.ExpiresAt) {
		_ = s.pending.Delete(email)
		return nil, ErrOTPExpired
	}
	if code != pending.Code {
		return nil, ErrInvalidOTP
	}

	// 暂存期间邮箱可能已被其他人注册
	if err := s.ensureEmailFree(email); err != nil {
		return nil, err
	}

	user := db.User{
		FirstName: pending.FirstName,
		LastName:  pending.LastName,
		Email:     email,
		Password:  pending.PasswordHash,
		DOB:       pending.DOB,
		Role:      pending.Role,
		Interests: pending.Interests,
		IsActive:  true,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	_ = s.pending.Delete(email)

	view := newUserView(user)
	s.resolver.ResolveUser(&view)
	return &view, nil
}

// Login 校验凭据并返回装饰后的用户视图。
// isActive 为 false 的账号禁止登录。
func (s *UserService) Login(email, password string) (*UserView, error) {
	var user db.User
	if err := s.db.Where("email = ?", normalizeEmail(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrIncorrectPassword
	}
	if !user.IsActive {
		return nil, ErrAccountBlocked
	}

	view := newUserView(user)
	s.resolver.ResolveUser(&view)
	return &view, nil
}

// Profile fetches the user and decorates the profile image.
func (s *UserService) Profile(userID uint) (*UserView, error) {
	var user db.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	view := newUserView(user)
	s.resolver.ResolveUser(&view)
	return &view, nil
}

// UpdateProfile applies the supplied fields; a new avatar upload replaces
// the stored profile image key. Returns ErrNoChanges when nothing applied.
func (s *UserService) UpdateProfile(userID uint, update ProfileUpdate, avatar *storage.Upload) (*UserView, error) {
	var user db.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	changed := false
	if update.FirstName != nil && *update.FirstName != user.FirstName {
		user.FirstName = *update.FirstName
		changed = true
	}
	if update.LastName != nil && *update.LastName != user.LastName {
		user.LastName = *update.LastName
		changed = true
	}
	if update.Role != nil && *update.Role != user.Role {
		user.Role = *update.Role
		changed = true
	}
	if update.Interests != nil {
		user.Interests = update.Interests
		changed = true
	}

	if avatar != nil {
		key, err := s.blob.Put(s.profilePrefix, *avatar)
		if err != nil {
			return nil, uploadError(err)
		}
		user.ProfileImage = key
		changed = true
	}

	if !changed {
		return nil, ErrNoChanges
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}

	view := newUserView(user)
	s.resolver.ResolveUser(&view)
	return &view, nil
}

func (s *UserService) ensureEmailFree(email string) error {
	var existing db.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return ErrEmailTaken
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
