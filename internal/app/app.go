package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/jbeshir/devfeed/internal/command"
	"github.com/jbeshir/devfeed/internal/datasources/devto"
	"github.com/jbeshir/devfeed/internal/domain"
	"github.com/jbeshir/devfeed/internal/session"
	"github.com/jbeshir/devfeed/internal/transport/web/router"
	"github.com/jbeshir/devfeed/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	store, err := SetupBookmarkStore(
		ctx,
		MustGetEnvAsString(ctx, "BOOKMARK_STORE_DRIVER"),
		GetEnvAsStringOrDefault("BOOKMARK_STORE_URI", ""),
	)
	if err != nil {
		return nil, fmt.Errorf("setting up bookmark store: %w", err)
	}

	articles := devto.NewClient(GetEnvAsStringOrDefault("FEED_API_BASE_URL", devto.DefaultBaseURL), nil)

	feed := session.NewFeed(articles, store, session.FeedConfig{
		PageSize:     MustGetEnvAsInt(ctx, "FEED_PAGE_SIZE"),
		FetchTimeout: MustGetEnvAsDuration(ctx, "FEED_FETCH_TIMEOUT"),
	})
	bookmarks := session.NewBookmarkList(store, feed)

	exportBookmarksCmd := &command.ExportBookmarks{
		Retriever:  store,
		BaseURL:    MustGetEnvAsString(ctx, "BOOKMARK_FEED_BASE_URL"),
		AuthorName: MustGetEnvAsString(ctx, "BOOKMARK_FEED_AUTHOR_NAME"),
	}
	getCommentsCmd := command.NewGetArticleComments(articles)

	httpRouter, err := router.MakeRouter(feed, bookmarks, exportBookmarksCmd, getCommentsCmd)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	// The server's handlers use the store until it has drained, so the store is closed
	// once the server returns.
	return []Component{
		closeAfter{
			Component: &server.Server{
				TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
				TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
				AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
				Router:            httpRouter,
			},
			close: store.Close,
		},
		feedPreloader{feed: feed},
	}, nil
}

// feedPreloader loads the first page at startup. A failure is logged and left for the
// next refresh to retry.
type feedPreloader struct {
	feed *session.Feed
}

func (p feedPreloader) Run(ctx context.Context) error {
	if err := p.feed.LoadNextPage(ctx); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "unable to preload feed", "error", err)
	}
	return nil
}

// closeAfter runs a component, then closes the bookmark store it was using.
type closeAfter struct {
	Component
	close func() error
}

func (c closeAfter) Run(ctx context.Context) error {
	err := c.Component.Run(ctx)
	if closeErr := c.close(); closeErr != nil {
		return errors.Join(err, fmt.Errorf("closing bookmark store: %w", closeErr))
	}
	return err
}
