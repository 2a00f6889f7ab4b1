package controller

import (
	"net/http"

	"github.com/jbeshir/devfeed/internal/command"
	"github.com/jbeshir/devfeed/internal/domain"
)

type BookmarksFeed struct {
	ExportCmd command.Command[command.ExportBookmarksRequest, command.ExportedFeed]
}

func (c BookmarksFeed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	format, err := command.ParseFeedFormat(r.URL.Query().Get("format"))
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse feed format in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	feed, err := c.ExportCmd.Execute(ctx, command.ExportBookmarksRequest{Format: format})
	if err != nil {
		logger.ErrorContext(ctx, "unable to export bookmarks", "error", err, "format", format)
		w.WriteHeader(statusForError(err))
		return
	}

	w.Header().Set("Content-Type", feed.ContentType)
	w.Header().Set("Cache-Control", "no-cache")

	if _, err := w.Write([]byte(feed.Body)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
