package controller

import (
	"context"
	"net/http"
)

type FeedAction int

const (
	FeedActionNextPage FeedAction = iota
	FeedActionRefresh
)

type FeedLoader interface {
	FeedReader
	LoadNextPage(ctx context.Context) error
	Refresh(ctx context.Context) error
}

// FeedLoad advances or refreshes the feed and responds with the resulting feed state.
type FeedLoad struct {
	Feed   FeedLoader
	Action FeedAction
}

func (c FeedLoad) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var err error
	if c.Action == FeedActionRefresh {
		err = c.Feed.Refresh(ctx)
	} else {
		err = c.Feed.LoadNextPage(ctx)
	}
	if err != nil {
		// The session already logged the failure.
		w.WriteHeader(statusForError(err))
		return
	}

	writeFeed(w, r, c.Feed, http.StatusOK)
}
