package controller

import (
	"encoding/json"
	"net/http"

	"github.com/jbeshir/devfeed/internal/domain"
)

type FeedReader interface {
	Snapshot() ([]domain.Article, domain.PageState)
}

type FeedResponse struct {
	Data     []domain.Article `json:"data"`
	Metadata domain.PageState `json:"metadata"`
}

type FeedGet struct {
	Feed FeedReader
}

func (c FeedGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeFeed(w, r, c.Feed, http.StatusOK)
}

func writeFeed(w http.ResponseWriter, r *http.Request, feed FeedReader, status int) {
	items, state := feed.Snapshot()
	resp := FeedResponse{
		Data:     items,
		Metadata: state,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
