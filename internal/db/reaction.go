package db

import "time"

// ReactionKind 表示用户对文章的反应类型。
type ReactionKind string

const (
	ReactionLike    ReactionKind = "like"
	ReactionDislike ReactionKind = "dislike"
)

// ArticleReaction 是按 (article, user) 存储的反应记录。
// 复合唯一索引保证同一用户对同一文章最多只有一条记录，
// 点赞与点踩的互斥因此由表结构本身保证。
// 不使用 gorm.Model：软删除会留下与唯一索引冲突的残留行。
type ArticleReaction struct {
	ID        uint         `gorm:"primarykey"`
	ArticleID uint         `gorm:"uniqueIndex:idx_reactions_article_user;not null"`
	UserID    uint         `gorm:"uniqueIndex:idx_reactions_article_user;not null"`
	Kind      ReactionKind `gorm:"not null"`
	CreatedAt time.Time
}
