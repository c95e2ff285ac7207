package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/anand-nandz/Inkspire/internal/db"
	"gorm.io/gorm"
)

func reloadArticle(t *testing.T, gdb *gorm.DB, id uint) db.Article {
	t.Helper()
	var article db.Article
	if err := gdb.First(&article, id).Error; err != nil {
		t.Fatalf("reload article: %v", err)
	}
	return article
}

func countReactions(t *testing.T, gdb *gorm.DB, articleID uint, kind db.ReactionKind) int64 {
	t.Helper()
	var count int64
	if err := gdb.Model(&db.ArticleReaction{}).
		Where("article_id = ? AND kind = ?", articleID, kind).
		Count(&count).Error; err != nil {
		t.Fatalf("count reactions: %v", err)
	}
	return count
}

// assertCounterFidelity 检查计数器缓存与反应集合基数一致。
func assertCounterFidelity(t *testing.T, gdb *gorm.DB, articleID uint) {
	t.Helper()
	article := reloadArticle(t, gdb, articleID)
	likes := countReactions(t, gdb, articleID, db.ReactionLike)
	dislikes := countReactions(t, gdb, articleID, db.ReactionDislike)
	if int64(article.TotalLikes) != likes {
		t.Fatalf("totalLikes %d does not match like set size %d", article.TotalLikes, likes)
	}
	if int64(article.TotalDislikes) != dislikes {
		t.Fatalf("totalDislikes %d does not match dislike set size %d", article.TotalDislikes, dislikes)
	}
	if article.TotalLikes < 0 || article.TotalDislikes < 0 {
		t.Fatalf("counters must never go negative: %d/%d", article.TotalLikes, article.TotalDislikes)
	}
}

func TestToggleLike_AddsLike(t *testing.T) {
	svc, gdb, _ := newTestArticleService(t)
	owner := createTestUser(t, gdb, "owner@example.com")
	reader := createTestUser(t, gdb, "reader@example.com")
	article := createTestArticle(t, gdb, owner.ID)

	view, err := svc.ToggleLike(article.ID, reader.ID)
	if err != nil {
		t.Fatalf("toggle like: %v", err)
	}
	if !view.IsLiked || view.IsDisliked {
		t.Fatalf("expected liked view, got isLiked=%v isDisliked=%v", view.IsLiked, view.IsDisliked)
	}
	if view.TotalLikes != 1 || view.TotalDislikes != 0 {
		t.Fatalf("expected counters 1/0, got %d/%d", view.TotalLikes, view.TotalDislikes)
	}
	assertCounterFidelity(t, gdb, article.ID)
}

func TestToggleLike_SecondToggleUndoes(t *testing.T) {
	svc, gdb, _ := newTestArticleService(t)
	owner := createTestUser(t, gdb, "owner@example.com")
	reader := createTestUser(t, gdb, "reader@example.com")
	article := createTestArticle(t, gdb, owner.ID)

	if _, err := svc.ToggleLike(article.ID, reader.ID); err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	view, err := svc.ToggleLike(article.ID, reader.ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}

	if view.IsLiked || view.IsDisliked {
		t.Fatalf("expected neutral state after undo")
	}
	if view.TotalLikes != 0 || view.TotalDislikes != 0 {
		t.Fatalf("expected counters restored to 0/0, got %d/%d", view.TotalLikes, view.TotalDislikes)
	}
	if total := countReactions(t, gdb, article.ID, db.ReactionLike) + countReactions(t, gdb, article.ID, db.ReactionDislike); total != 0 {
		t.Fatalf("expected empty reaction set after undo, got %d rows", total)
	}
	assertCounterFidelity(t, gdb, article.ID)
}

func TestToggleLike_ConvertsExistingDislike(t *testing.T) {
	svc, gdb, _ := newTestArticleService(t)
	owner := createTestUser(t, gdb, "owner@example.com")
	reader := createTestUser(t, gdb, "reader@example.com")
	article := createTestArticle(t, gdb, owner.ID)

	if _, err := svc.ToggleDislike(article.ID, reader.ID); err != nil {
		t.Fatalf("seed dislike: %v", err)
	}

	// 点踩状态下点赞必须一次调用完成转换
	view, err := svc.ToggleLike(article.ID, reader.ID)
	if err != nil {
		t.Fatalf("toggle like: %v", err)
	}
	if !view.IsLiked || view.IsDisliked {
		t.Fatalf("expected converted like, got isLiked=%v isDisliked=%v", view.IsLiked, view.IsDisliked)
	}
	if view.TotalLikes != 1 || view.TotalDislikes != 0 {
		t.Fatalf("expected counters 1/0, got %d/%d", view.TotalLikes, view.TotalDislikes)
	}
	assertCounterFidelity(t, gdb, article.ID)
}

func TestToggleDislike_ConvertsExistingLike(t *testing.T) {
	svc, gdb, _ := newTestArticleService(t)
	owner := createTestUser(t, gdb, "owner@example.com")
	reader := createTestUser(t, gdb, "reader@example.com")
	article := createTestArticle(t, gdb, owner.ID)

	if _, err := svc.ToggleLike(article.ID, reader.ID); err != nil {
		t.Fatalf("seed like: %v", err)
	}
	view, err := svc.ToggleDislike(article.ID, reader.ID)
	if err != nil {
		t.Fatalf("toggle dislike: %v", err)
	}
	if view.IsLiked || !view.IsDisliked {
		t.Fatalf("expected converted dislike, got isLiked=%v isDisliked=%v", view.IsLiked, view.IsDisliked)
	}
	if view.TotalLikes != 0 || view.TotalDislikes != 1 {
		t.Fatalf("expected counters 0/1, got %d/%d", view.TotalLikes, view.TotalDislikes)
	}
	assertCounterFidelity(t, gdb, article.ID)
}

// 任意切换序列之后，同一用户绝不会同时出现在两个集合里，
// 且计数器始终等于集合基数。
func TestToggle_ExclusivityUnderMixedSequence(t *testing.T) {
	svc, gdb, _ := newTestArticleService(t)
	owner := createTestUser(t, gdb, "owner@example.com")
	alice := createTestUser(t, gdb, "alice@example.com")
	bob := createTestUser(t, gdb, "bob@example.com")
	article := createTestArticle(t, gdb, owner.ID)

	steps := []struct {
		userID uint
		kind   db.ReactionKind
	}{
		{alice.ID, db.ReactionLike},
		{bob.ID, db.ReactionDislike},
		{alice.ID, db.ReactionDislike},
		{bob.ID, db.ReactionDislike},
		{alice.ID, db.ReactionLike},
		{bob.ID, db.ReactionLike},
		{alice.ID, db.ReactionLike},
	}

	for i, step := range steps {
		var err error
		if step.kind == db.ReactionLike {
			_, err = svc.ToggleLike(article.ID, step.userID)
		} else {
			_, err = svc.ToggleDislike(article.ID, step.userID)
		}
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}

		for _, userID := range []uint{alice.ID, bob.ID} {
			var rows int64
			if err := gdb.Model(&db.ArticleReaction{}).
				Where("article_id = ? AND user_id = ?", article.ID, userID).
				Count(&rows).Error; err != nil {
				t.Fatalf("step %d: count user rows: %v", i, err)
			}
			if rows > 1 {
				t.Fatalf("step %d: user %d appears in both reaction sets", i, userID)
			}
		}
		assertCounterFidelity(t, gdb, article.ID)
	}
}

// 历史数据中的计数器漂移（包括负值）在首次切换时被修复。
func TestToggle_RepairsCorruptCounters(t *testing.T) {
	svc, gdb, _ := newTestArticleService(t)
	owner := createTestUser(t, gdb, "owner@example.com")
	reader := createTestUser(t, gdb, "reader@example.com")
	article := createTestArticle(t, gdb, owner.ID)

	if err := gdb.Model(&db.Article{}).Where("id = ?", article.ID).
		Updates(map[string]interface{}{"total_likes": -5, "total_dislikes": 42}).Error; err != nil {
		t.Fatalf("corrupt counters: %v", err)
	}

	view, err := svc.ToggleLike(article.ID, reader.ID)
	if err != nil {
		t.Fatalf("toggle like: %v", err)
	}
	if view.TotalLikes != 1 || view.TotalDislikes != 0 {
		t.Fatalf("expected repaired counters 1/0, got %d/%d", view.TotalLikes, view.TotalDislikes)
	}
	assertCounterFidelity(t, gdb, article.ID)
}

func TestToggleLike_ArticleNotFound(t *testing.T) {
	svc, gdb, _ := newTestArticleService(t)
	reader := createTestUser(t, gdb, "reader@example.com")

	if _, err := svc.ToggleLike(12345, reader.ID); !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
}

// 切换后的返回值经过装饰管线：封面字段是签名 URL，而持久化记录保留原始 key。
func TestToggle_ReturnsDecoratedArticle(t *testing.T) {
	svc, gdb, _ := newTestArticleService(t)
	owner := createTestUser(t, gdb, "owner@example.com")
	reader := createTestUser(t, gdb, "reader@example.com")
	article := createTestArticle(t, gdb, owner.ID)

	if err := gdb.Model(&db.Article{}).Where("id = ?", article.ID).
		Update("cover_image", "cover-key.png").Error; err != nil {
		t.Fatalf("set cover key: %v", err)
	}

	view, err := svc.ToggleLike(article.ID, reader.ID)
	if err != nil {
		t.Fatalf("toggle like: %v", err)
	}
	if !strings.HasPrefix(view.CoverImage, "https://") {
		t.Fatalf("expected signed cover url, got %q", view.CoverImage)
	}
	if stored := reloadArticle(t, gdb, article.ID).CoverImage; stored != "cover-key.png" {
		t.Fatalf("persisted record must keep the raw key, got %q", stored)
	}
}
