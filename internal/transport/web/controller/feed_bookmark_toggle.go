package controller

import (
	"context"
	"net/http"
	"slices"

	"github.com/jbeshir/devfeed/internal/domain"
)

type BookmarkToggler interface {
	Items() []domain.Article
	ToggleBookmark(ctx context.Context, articleID int64) error
}

type FeedBookmarkToggle struct {
	Feed BookmarkToggler
}

func (c FeedBookmarkToggle) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	articleID, err := articleIDFromVars(r)
	if err != nil {
		logger.ErrorContext(ctx, "invalid article ID", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	ctx = domain.ContextWithLogger(ctx, logger.With("article_id", articleID))

	if !slices.ContainsFunc(c.Feed.Items(), func(a domain.Article) bool { return a.HasID(articleID) }) {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if err := c.Feed.ToggleBookmark(ctx, articleID); err != nil {
		w.WriteHeader(statusForError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
