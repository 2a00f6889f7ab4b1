package datasources

import (
	"context"

	"github.com/jbeshir/devfeed/internal/domain"
)

// ArticlePageFetcher fetches one page of the remote feed. Implementations must be safe for
// concurrent use and must not retry or cache.
type ArticlePageFetcher interface {
	FetchArticles(ctx context.Context, page, perPage int) ([]domain.Article, error)
}

type CommentFetcher interface {
	FetchComments(ctx context.Context, articleID int64) ([]domain.Comment, error)
}

// ArticleRepository combines everything the remote API provides.
type ArticleRepository interface {
	ArticlePageFetcher
	CommentFetcher
}
