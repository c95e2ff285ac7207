package service

import (
	"time"

	"github.com/anand-nandz/Inkspire/internal/db"
)

// AuthorView 是嵌在文章里的作者摘要。
type AuthorView struct {
	ID           uint   `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// ArticleView is the outbound article representation. CoverImage and the
// author's ProfileImage hold signed URLs after media resolution; the
// persisted records keep the raw object keys.
type ArticleView struct {
	ID              uint             `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Category        string           `json:"category"`
	Content         string           `json:"content"`
	RenderedContent string           `json:"renderedContent,omitempty"`
	CoverImage      string           `json:"coverImage,omitempty"`
	Status          db.ArticleStatus `json:"articleStatus"`
	TotalLikes      int              `json:"totalLikes"`
	TotalDislikes   int              `json:"totalDislikes"`
	IsLiked         bool             `json:"isLiked"`
	IsDisliked      bool             `json:"isDisliked"`
	Author          AuthorView       `json:"user"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// UserView is the outbound user representation.
type UserView struct {
	ID           uint     `json:"id"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Email        string   `json:"email"`
	DOB          string   `json:"dob,omitempty"`
	Role         string   `json:"role,omitempty"`
	Interests    []string `json:"interests"`
	ProfileImage string   `json:"profileImage,omitempty"`
	IsActive     bool     `json:"isActive"`
}

func newArticleView(article db.Article, requesterReaction db.ReactionKind) ArticleView {
	return ArticleView{
		ID:            article.ID,
		Title:         article.Title,
		Description:   article.Description,
		Category:      article.Category,
		Content:       article.Content,
		CoverImage:    article.CoverImage,
		Status:        article.Status,
		TotalLikes:    article.TotalLikes,
		TotalDislikes: article.TotalDislikes,
		IsLiked:       requesterReaction == db.ReactionLike,
		IsDisliked:    requesterReaction == db.ReactionDislike,
		Author: AuthorView{
			ID:           article.User.ID,
			FirstName:    article.User.FirstName,
			LastName:     article.User.LastName,
			ProfileImage: article.User.ProfileImage,
		},
		CreatedAt: article.CreatedAt,
		UpdatedAt: article.UpdatedAt,
	}
}

func newUserView(user db.User) UserView {
	interests := user.Interests
	if interests == nil {
		interests = []string{}
	}
	return UserView{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		DOB:          user.DOB,
		Role:         user.Role,
		Interests:    interests,
		ProfileImage: user.ProfileImage,
		IsActive:     user.IsActive,
	}
}
