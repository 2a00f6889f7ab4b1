package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jbeshir/devfeed/internal/domain"
)

type BookmarksLister interface {
	ListAll(ctx context.Context) ([]domain.Article, error)
}

type BookmarksResponse struct {
	Data     []domain.Article  `json:"data"`
	Metadata BookmarksMetadata `json:"metadata"`
}

type BookmarksMetadata struct {
	Count int `json:"count"`
}

type BookmarksList struct {
	Bookmarks BookmarksLister
}

func (c BookmarksList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articles, err := c.Bookmarks.ListAll(r.Context())
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to list bookmarks", "error", err)

		w.WriteHeader(statusForError(err))
		return
	}

	writeBookmarks(w, r, articles)
}

func writeBookmarks(w http.ResponseWriter, r *http.Request, articles []domain.Article) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(BookmarksResponse{
		Data:     articles,
		Metadata: BookmarksMetadata{Count: len(articles)},
	}); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write bookmarks to response", "error", err)
	}
}
