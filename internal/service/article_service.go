package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/anand-nandz/Inkspire/internal/db"
	"github.com/anand-nandz/Inkspire/internal/storage"
	"gorm.io/gorm"
)

// ArticleService wraps article related database operations.
type ArticleService struct {
	db            *gorm.DB
	blob          storage.BlobStore
	resolver      *MediaResolver
	articlePrefix string
}

// ArticleInput represents fields accepted when creating an article.
type ArticleInput struct {
	Title       string
	Description string
	Category    string
	Content     string
	Status      db.ArticleStatus
}

// ArticleUpdate 是字段级更新：nil 表示该字段保持不变。
type ArticleUpdate struct {
	Title       *string
	Description *string
	Category    *string
	Content     *string
	Status      *db.ArticleStatus
}

// NewArticleService creates an ArticleService instance.
func NewArticleService(gdb *gorm.DB, blob storage.BlobStore, resolver *MediaResolver, articlePrefix string) *ArticleService {
	return &ArticleService{db: gdb, blob: blob, resolver: resolver, articlePrefix: articlePrefix}
}

// Create persists a new article owned by ownerID. A cover upload failure
// fails the request: the caller explicitly asked for the image.
func (s *ArticleService) Create(ownerID uint, input ArticleInput, cover *storage.Upload) (*ArticleView, error) {
	if err := s.ensureUser(ownerID); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = db.StatusDraft
	}
	if !db.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	coverKey := ""
	if cover != nil {
		key, err := s.blob.Put(s.articlePrefix, *cover)
		if err != nil {
			return nil, uploadError(err)
		}
		coverKey = key
	}

	article := db.Article{
		UserID:      ownerID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Category:    input.Category,
		Content:     input.Content,
		CoverImage:  coverKey,
		Status:      status,
	}
	if err := s.db.Create(&article).Error; err != nil {
		return nil, err
	}

	return s.Get(ownerID, article.ID)
}

// Update applies the supplied fields to an article owned by ownerID.
// 所有权在查询过滤器里检查，不命中时一律返回“不存在或无权限”，
// 以免泄露他人文章的存在性。
func (s *ArticleService) Update(ownerID, articleID uint, update ArticleUpdate, cover *storage.Upload) (*ArticleView, error) {
	var article db.Article
	if err := s.db.Where("id = ? AND user_id = ?", articleID, ownerID).First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	if update.Title != nil {
		article.Title = strings.TrimSpace(*update.Title)
	}
	if update.Description != nil {
		article.Description = *update.Description
	}
	if update.Category != nil {
		article.Category = *update.Category
	}
	if update.Content != nil {
		article.Content = *update.Content
	}
	if update.Status != nil {
		if !db.ValidStatus(*update.Status) {
			return nil, ErrInvalidStatus
		}
		article.Status = *update.Status
	}

	// 没有新文件时保留现有的 cover key
	if cover != nil {
		key, err := s.blob.Put(s.articlePrefix, *cover)
		if err != nil {
			return nil, uploadError(err)
		}
		article.CoverImage = key
	}

	if err := s.db.Save(&article).Error; err != nil {
		return nil, err
	}

	return s.Get(ownerID, articleID)
}

// Get fetches a single article by id, decorated and annotated for the
// requester, with the sanitized rendered content for the reading view.
// Soft-deleted articles stay addressable here.
func (s *ArticleService) Get(requesterID, articleID uint) (*ArticleView, error) {
	var article db.Article
	if err := s.db.Preload("User").First(&article, articleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	views, err := s.views(requesterID, []db.Article{article})
	if err != nil {
		return nil, err
	}
	view := views[0]
	view.RenderedContent = renderContent(article.Content)
	return &view, nil
}

// ListOwned returns the requester's articles, newest first. All statuses are
// included except Deleted.
func (s *ArticleService) ListOwned(ownerID uint) ([]ArticleView, error) {
	var articles []db.Article
	if err := s.db.Preload("User").
		Where("user_id = ? AND status <> ?", ownerID, db.StatusDeleted).
		Order("created_at desc").
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return s.views(ownerID, articles)
}

// ListAll returns every non-deleted article regardless of owner, newest
// first. Status filtering beyond soft deletion is left to the presentation
// layer.
func (s *ArticleService) ListAll(requesterID uint) ([]ArticleView, error) {
	var articles []db.Article
	if err := s.db.Preload("User").
		Where("status <> ?", db.StatusDeleted).
		Order("created_at desc").
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return s.views(requesterID, articles)
}

// SoftDelete 把文章状态置为 Deleted（从不物理删除），
// 并返回所有者剩余的未删除文章列表。
func (s *ArticleService) SoftDelete(ownerID, articleID uint) ([]ArticleView, error) {
	result := s.db.Model(&db.Article{}).
		Where("id = ? AND user_id = ?", articleID, ownerID).
		Update("status", db.StatusDeleted)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrArticleNotFound
	}

	return s.ListOwned(ownerID)
}

// views builds decorated, annotated outbound views for a set of articles.
func (s *ArticleService) views(requesterID uint, articles []db.Article) ([]ArticleView, error) {
	views := make([]ArticleView, 0, len(articles))
	if len(articles) == 0 {
		return views, nil
	}

	ids := make([]uint, 0, len(articles))
	for _, article := range articles {
		ids = append(ids, article.ID)
	}

	var reactions []db.ArticleReaction
	if err := s.db.Where("user_id = ? AND article_id IN ?", requesterID, ids).Find(&reactions).Error; err != nil {
		return nil, err
	}
	kinds := make(map[uint]db.ReactionKind, len(reactions))
	for _, reaction := range reactions {
		kinds[reaction.ArticleID] = reaction.Kind
	}

	for _, article := range articles {
		views = append(views, newArticleView(article, kinds[article.ID]))
	}

	s.resolver.ResolveArticles(views)
	return views, nil
}

func (s *ArticleService) ensureUser(userID uint) error {
	var user db.User
	if err := s.db.Select("id").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// uploadError 区分“不是图片”这类校验错误与存储不可用。
func uploadError(err error) error {
	if errors.Is(err, storage.ErrNotImage) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrStorageFailure, err)
}
