package session

import (
	"context"
	"fmt"

	"github.com/jbeshir/devfeed/internal/datasources"
	"github.com/jbeshir/devfeed/internal/domain"
)

type BookmarkListStore interface {
	datasources.BookmarkRetriever
	datasources.BookmarkRemover
}

// BookmarkChangeListener is told when bookmarks change outside its own session.
type BookmarkChangeListener interface {
	OnExternalBookmarkChange(ctx context.Context)
}

var _ BookmarkChangeListener = (*Feed)(nil)

// BookmarkList presents the stored bookmarks as articles and supports removing them.
type BookmarkList struct {
	store     BookmarkListStore
	listeners []BookmarkChangeListener
}

func NewBookmarkList(store BookmarkListStore, listeners ...BookmarkChangeListener) *BookmarkList {
	return &BookmarkList{
		store:     store,
		listeners: listeners,
	}
}

// ListAll returns every bookmark, oldest first, as articles flagged as bookmarked.
func (l *BookmarkList) ListAll(ctx context.Context) ([]domain.Article, error) {
	records, err := l.store.RetrieveBookmarks(ctx)
	if err != nil {
		return nil, fmt.Errorf("retrieving bookmarks: %w", asStorageFailure(domain.StorageFailureRetrieve, err))
	}

	articles := make([]domain.Article, 0, len(records))
	for _, r := range records {
		articles = append(articles, r.Article())
	}
	return articles, nil
}

// Remove deletes the article's bookmark and returns the remaining list. Listeners are
// notified once the deletion succeeds, even if listing afterwards fails.
func (l *BookmarkList) Remove(ctx context.Context, articleID int64) ([]domain.Article, error) {
	logger := domain.LoggerFromContext(ctx)

	if err := l.store.RemoveBookmark(ctx, articleID); err != nil {
		logger.ErrorContext(ctx, "unable to remove bookmark", "error", err, "article_id", articleID)
		return nil, fmt.Errorf("removing bookmark: %w", asStorageFailure(domain.StorageFailureDelete, err))
	}

	articles, listErr := l.ListAll(ctx)

	for _, listener := range l.listeners {
		listener.OnExternalBookmarkChange(ctx)
	}

	if listErr != nil {
		return nil, listErr
	}
	return articles, nil
}
