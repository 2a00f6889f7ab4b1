package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/jbeshir/devfeed/internal/app"
	"github.com/jbeshir/devfeed/internal/command"
	"github.com/jbeshir/devfeed/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx := context.Background()

	format := flag.String("format", "rss", "feed format: rss, atom or json")
	flag.Parse()

	// Logs go to stderr; stdout carries the feed.
	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	if err := run(ctx, *format); err != nil {
		logger.ErrorContext(ctx, "bookmark export failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, formatStr string) error {
	format, err := command.ParseFeedFormat(formatStr)
	if err != nil {
		return err
	}

	store, err := app.SetupBookmarkStore(
		ctx,
		app.MustGetEnvAsString(ctx, "BOOKMARK_STORE_DRIVER"),
		app.GetEnvAsStringOrDefault("BOOKMARK_STORE_URI", ""),
	)
	if err != nil {
		return fmt.Errorf("setting up bookmark store: %w", err)
	}
	defer func() { _ = store.Close() }()

	exportCmd := &command.ExportBookmarks{
		Retriever:  store,
		BaseURL:    app.GetEnvAsStringOrDefault("BOOKMARK_FEED_BASE_URL", "http://localhost"),
		AuthorName: app.GetEnvAsStringOrDefault("BOOKMARK_FEED_AUTHOR_NAME", ""),
	}

	feed, err := exportCmd.Execute(ctx, command.ExportBookmarksRequest{Format: format})
	if err != nil {
		return err
	}

	if _, err := fmt.Fprint(os.Stdout, feed.Body); err != nil {
		return fmt.Errorf("writing feed: %w", err)
	}
	return nil
}
