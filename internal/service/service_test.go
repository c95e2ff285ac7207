package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/anand-nandz/Inkspire/internal/db"
	"github.com/anand-nandz/Inkspire/internal/notify"
	"github.com/anand-nandz/Inkspire/internal/otp"
	"github.com/anand-nandz/Inkspire/internal/storage"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return gdb
}

func newTestArticleService(t *testing.T) (*ArticleService, *gorm.DB, *storage.MemoryBlobStore) {
	t.Helper()
	gdb := setupServiceTestDB(t)
	blob := storage.NewMemoryBlobStore()
	resolver := NewMediaResolver(blob, "ink-spire/article/", "ink-spire/profile/")
	return NewArticleService(gdb, blob, resolver, "ink-spire/article/"), gdb, blob
}

func newTestUserService(t *testing.T) (*UserService, *gorm.DB, *storage.MemoryBlobStore, *otp.MemoryStore, *capturePublisher) {
	t.Helper()
	gdb := setupServiceTestDB(t)
	blob := storage.NewMemoryBlobStore()
	resolver := NewMediaResolver(blob, "ink-spire/article/", "ink-spire/profile/")
	pending := otp.NewMemoryStore()
	publisher := &capturePublisher{}
	svc := NewUserService(gdb, blob, resolver, pending, publisher, "ink-spire/profile/")
	return svc, gdb, blob, pending, publisher
}

// capturePublisher 记录发布的验证码消息，便于测试取回验证码。
type capturePublisher struct {
	messages []notify.OTPMessage
	err      error
}

func (p *capturePublisher) PublishOTP(msg notify.OTPMessage) error {
	if p.err != nil {
		return p.err
	}
	p.messages = append(p.messages, msg)
	return nil
}

func createTestUser(t *testing.T, gdb *gorm.DB, email string) db.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := db.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  string(hash),
		Role:      "writer",
		IsActive:  true,
	}
	if err := gdb.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createTestArticle(t *testing.T, gdb *gorm.DB, ownerID uint) db.Article {
	t.Helper()
	article := db.Article{
		UserID:      ownerID,
		Title:       "测试文章",
		Description: "a short description",
		Category:    "tech",
		Content:     "article body",
		Status:      db.StatusPublished,
	}
	if err := gdb.Create(&article).Error; err != nil {
		t.Fatalf("create article: %v", err)
	}
	return article
}
