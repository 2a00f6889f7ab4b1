package datasources

import (
	"context"

	"github.com/jbeshir/devfeed/internal/domain"
)

// BookmarkStore combines all bookmark persistence interfaces.
type BookmarkStore interface {
	BookmarkChecker
	BookmarkAdder
	BookmarkRemover
	BookmarkRetriever
}

// BookmarkChecker reports whether an article is bookmarked. Read errors are logged and
// reported as false.
type BookmarkChecker interface {
	IsBookmarked(ctx context.Context, articleID int64) bool
}

type BookmarkAdder interface {
	AddBookmark(ctx context.Context, record domain.BookmarkRecord) error
}

// BookmarkRemover deletes every record stored for the article.
type BookmarkRemover interface {
	RemoveBookmark(ctx context.Context, articleID int64) error
}

// BookmarkRetriever returns all records, oldest bookmark first.
type BookmarkRetriever interface {
	RetrieveBookmarks(ctx context.Context) ([]domain.BookmarkRecord, error)
}
