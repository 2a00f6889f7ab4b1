package controller

import (
	"context"
	"net/http"

	"github.com/jbeshir/devfeed/internal/domain"
)

type BookmarkRemover interface {
	Remove(ctx context.Context, articleID int64) ([]domain.Article, error)
}

// BookmarkRemove deletes a bookmark and responds with the remaining bookmarks.
type BookmarkRemove struct {
	Bookmarks BookmarkRemover
}

func (c BookmarkRemove) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	articleID, err := articleIDFromVars(r)
	if err != nil {
		logger.ErrorContext(ctx, "invalid article ID", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	ctx = domain.ContextWithLogger(ctx, logger.With("article_id", articleID))

	articles, err := c.Bookmarks.Remove(ctx, articleID)
	if err != nil {
		w.WriteHeader(statusForError(err))
		return
	}

	writeBookmarks(w, r, articles)
}
