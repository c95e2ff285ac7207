package service

import (
	"errors"
	"strings"

	"github.com/anand-nandz/Inkspire/internal/db"
	"gorm.io/gorm"
)

// ToggleLike flips the user's like on an article: an existing dislike is
// converted to a like in the same call, an existing like is removed (undo),
// otherwise a like is added.
func (s *ArticleService) ToggleLike(articleID, userID uint) (*ArticleView, error) {
	return s.toggle(articleID, userID, db.ReactionLike)
}

// ToggleDislike is the mirror of ToggleLike.
func (s *ArticleService) ToggleDislike(articleID, userID uint) (*ArticleView, error) {
	return s.toggle(articleID, userID, db.ReactionDislike)
}

// toggle applies one reaction transition as a read-modify-write against the
// current persisted state, inside a transaction. The (article, user) unique
// index keeps like/dislike mutually exclusive; counters are recomputed from
// the reaction rows on every transition, never incremented independently,
// so they always equal the set cardinality and cannot go negative.
func (s *ArticleService) toggle(articleID, userID uint, kind db.ReactionKind) (*ArticleView, error) {
	// 并发的两次首次点赞会在唯一索引上冲突；重试一次即可在
	// 最新状态上重新判定（第二次会走 undo 或转换分支）。
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		err = s.db.Transaction(func(tx *gorm.DB) error {
			return applyToggle(tx, articleID, userID, kind)
		})
		if err == nil || !isUniqueViolation(err) {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	// 变更后的重新读取也要经过装饰管线
	return s.Get(userID, articleID)
}

func applyToggle(tx *gorm.DB, articleID, userID uint, kind db.ReactionKind) error {
	var article db.Article
	if err := tx.First(&article, articleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrArticleNotFound
		}
		return err
	}

	var existing db.ArticleReaction
	err := tx.Where("article_id = ? AND user_id = ?", articleID, userID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// 尚无反应，新增
		if err := tx.Create(&db.ArticleReaction{ArticleID: articleID, UserID: userID, Kind: kind}).Error; err != nil {
			return err
		}
	case err != nil:
		return err
	case existing.Kind == kind:
		// 重复同向切换即撤销
		if err := tx.Delete(&existing).Error; err != nil {
			return err
		}
	default:
		// 反向反应一次调用内直接转换，无需两次往返
		if err := tx.Model(&existing).Update("kind", kind).Error; err != nil {
			return err
		}
	}

	return recountReactions(tx, articleID)
}

// recountReactions 由集合基数重建计数器缓存，顺带修复任何历史漂移。
func recountReactions(tx *gorm.DB, articleID uint) error {
	var likes, dislikes int64
	if err := tx.Model(&db.ArticleReaction{}).
		Where("article_id = ? AND kind = ?", articleID, db.ReactionLike).
		Count(&likes).Error; err != nil {
		return err
	}
	if err := tx.Model(&db.ArticleReaction{}).
		Where("article_id = ? AND kind = ?", articleID, db.ReactionDislike).
		Count(&dislikes).Error; err != nil {
		return err
	}

	return tx.Model(&db.Article{}).
		Where("id = ?", articleID).
		Updates(map[string]interface{}{
			"total_likes":    likes,
			"total_dislikes": dislikes,
		}).Error
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
