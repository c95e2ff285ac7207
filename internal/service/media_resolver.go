package service

import (
	"github.com/anand-nandz/Inkspire/internal/logger"
	"github.com/anand-nandz/Inkspire/internal/storage"
	"golang.org/x/sync/errgroup"
)

// 列表装饰时的并发上限；签名调用是独立的只读 I/O
const resolveConcurrency = 8

// MediaResolver replaces stored object keys with signed display URLs on
// outbound views. Resolution is fail-open: a signing failure is logged and
// the field keeps the raw key, so one broken field never fails the request.
type MediaResolver struct {
	store         storage.BlobStore
	articlePrefix string
	profilePrefix string
}

// NewMediaResolver creates a resolver for the given storage prefixes.
func NewMediaResolver(store storage.BlobStore, articlePrefix, profilePrefix string) *MediaResolver {
	return &MediaResolver{
		store:         store,
		articlePrefix: articlePrefix,
		profilePrefix: profilePrefix,
	}
}

// ResolveArticle decorates one article view and its embedded author.
func (r *MediaResolver) ResolveArticle(view *ArticleView) {
	if view.CoverImage != "" {
		if url, err := r.store.SignedURL(r.articlePrefix, view.CoverImage); err != nil {
			logger.Log.WithError(err).WithField("articleID", view.ID).Warn("failed to sign cover image url")
		} else {
			view.CoverImage = url
		}
	}
	r.resolveAuthor(&view.Author)
}

// ResolveArticles decorates a list of article views. Each article resolves
// independently; a failure in one never aborts the others.
func (r *MediaResolver) ResolveArticles(views []ArticleView) {
	g := new(errgroup.Group)
	g.SetLimit(resolveConcurrency)
	for i := range views {
		view := &views[i]
		g.Go(func() error {
			r.ResolveArticle(view)
			return nil
		})
	}
	// 装饰是 fail-open 的，上面的 goroutine 不返回错误
	_ = g.Wait()
}

// ResolveUser decorates a standalone user view.
func (r *MediaResolver) ResolveUser(view *UserView) {
	if view.ProfileImage == "" {
		return
	}
	if url, err := r.store.SignedURL(r.profilePrefix, view.ProfileImage); err != nil {
		logger.Log.WithError(err).WithField("userID", view.ID).Warn("failed to sign profile image url")
	} else {
		view.ProfileImage = url
	}
}

func (r *MediaResolver) resolveAuthor(author *AuthorView) {
	if author.ProfileImage == "" {
		return
	}
	if url, err := r.store.SignedURL(r.profilePrefix, author.ProfileImage); err != nil {
		logger.Log.WithError(err).WithField("userID", author.ID).Warn("failed to sign profile image url")
	} else {
		author.ProfileImage = url
	}
}
