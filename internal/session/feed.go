package session

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/jbeshir/devfeed/internal/datasources"
	"github.com/jbeshir/devfeed/internal/domain"
)

const (
	DefaultPageSize     = 30
	DefaultFetchTimeout = 30 * time.Second
)

// FeedBookmarkStore is the part of a bookmark store the feed session needs.
type FeedBookmarkStore interface {
	datasources.BookmarkChecker
	datasources.BookmarkAdder
	datasources.BookmarkRemover
}

type FeedConfig struct {
	PageSize     int
	FetchTimeout time.Duration
	Now          func() time.Time
}

// Feed drives paginated loading of the article feed and keeps every loaded article's
// IsBookmarked flag in step with the bookmark store.
//
// A new session has loaded nothing: CurrentPage is 0 and the first LoadNextPage fetches
// page 1. At most one page load runs at a time; overlapping calls are dropped, except
// Refresh, which abandons the running load and starts again from page 1.
type Feed struct {
	fetcher datasources.ArticlePageFetcher
	store   FeedBookmarkStore
	cfg     FeedConfig

	// reconcileMu orders bookmark toggles against page commits, so a page never commits
	// flags read from the store before a toggle that finished ahead of it.
	reconcileMu sync.Mutex

	mu          sync.Mutex
	currentPage int
	hasMore     bool
	isLoading   bool
	items       []domain.Article
	generation  uint64
	cancelLoad  context.CancelFunc
	dispatcher  dispatcher
}

func NewFeed(fetcher datasources.ArticlePageFetcher, store FeedBookmarkStore, cfg FeedConfig) *Feed {
	if cfg.PageSize == 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = DefaultFetchTimeout
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Feed{
		fetcher: fetcher,
		store:   store,
		cfg:     cfg,
		hasMore: true,
		items:   []domain.Article{},
	}
}

// Subscribe registers an observer and returns a function that removes it.
func (f *Feed) Subscribe(o FeedObserver) (unsubscribe func()) {
	f.mu.Lock()
	id := f.dispatcher.subscribe(o)
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		f.dispatcher.unsubscribe(id)
		f.mu.Unlock()
	}
}

// Items returns a copy of the loaded articles.
func (f *Feed) Items() []domain.Article {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.items)
}

func (f *Feed) State() domain.PageState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stateLocked()
}

// Snapshot returns a copy of the loaded articles together with the paging state they
// belong to, read under one lock.
func (f *Feed) Snapshot() ([]domain.Article, domain.PageState) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.items), f.stateLocked()
}

func (f *Feed) stateLocked() domain.PageState {
	return domain.PageState{
		CurrentPage: f.currentPage,
		HasMore:     f.hasMore,
		IsLoading:   f.isLoading,
		ItemCount:   len(f.items),
	}
}

// LoadPage fetches one page. It does nothing and returns nil if a load is running, the
// feed is exhausted, or page is below 1. Page 1 replaces the loaded items, any other page
// is appended. A fetch failure is returned, reported to observers, and changes nothing.
func (f *Feed) LoadPage(ctx context.Context, page int) error {
	f.mu.Lock()
	load, ok := f.beginLoadLocked(ctx, page)
	f.mu.Unlock()
	if !ok {
		return nil
	}
	f.dispatcher.flush(&f.mu)

	return f.runLoad(ctx, load)
}

// LoadNextPage loads the page after the current one, if none is loading and more remain.
func (f *Feed) LoadNextPage(ctx context.Context) error {
	f.mu.Lock()
	load, ok := f.beginLoadLocked(ctx, f.currentPage+1)
	f.mu.Unlock()
	if !ok {
		return nil
	}
	f.dispatcher.flush(&f.mu)

	return f.runLoad(ctx, load)
}

// Refresh discards the loaded items and paging state and loads page 1. A load already
// running is cancelled and its result ignored.
func (f *Feed) Refresh(ctx context.Context) error {
	f.mu.Lock()
	f.generation++
	if f.cancelLoad != nil {
		f.cancelLoad()
		f.cancelLoad = nil
	}
	if f.isLoading {
		f.isLoading = false
		f.dispatcher.enqueue(loadingChanged(false))
	}
	f.items = []domain.Article{}
	f.currentPage = 0
	f.hasMore = true
	f.dispatcher.enqueue(itemsChanged([]domain.Article{}))

	load, ok := f.beginLoadLocked(ctx, 1)
	f.mu.Unlock()
	f.dispatcher.flush(&f.mu)
	if !ok {
		return nil
	}

	return f.runLoad(ctx, load)
}

// OnExternalBookmarkChange reloads from page 1 after bookmarks were changed elsewhere.
// Failures reach observers through LoadFailed.
func (f *Feed) OnExternalBookmarkChange(ctx context.Context) {
	if err := f.Refresh(ctx); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.DebugContext(ctx, "feed reload after external bookmark change failed", "error", err)
	}
}

// ToggleBookmark removes the article's bookmark if it has one and adds one otherwise, then
// updates the loaded copies of the article. If the store call fails nothing in the feed
// changes and the StorageFailure is returned. Unknown article IDs are ignored.
func (f *Feed) ToggleBookmark(ctx context.Context, articleID int64) error {
	err := f.toggleBookmark(ctx, articleID)
	f.dispatcher.flush(&f.mu)
	return err
}

func (f *Feed) toggleBookmark(ctx context.Context, articleID int64) error {
	logger := domain.LoggerFromContext(ctx)

	f.reconcileMu.Lock()
	defer f.reconcileMu.Unlock()

	f.mu.Lock()
	idx := slices.IndexFunc(f.items, func(a domain.Article) bool { return a.HasID(articleID) })
	var article domain.Article
	if idx >= 0 {
		article = f.items[idx]
	}
	f.mu.Unlock()

	if idx < 0 {
		logger.WarnContext(ctx, "bookmark toggle for article not in feed", "article_id", articleID)
		return nil
	}

	var bookmarked bool
	if f.store.IsBookmarked(ctx, articleID) {
		if err := f.store.RemoveBookmark(ctx, articleID); err != nil {
			logger.ErrorContext(ctx, "unable to remove bookmark", "error", err, "article_id", articleID)
			return fmt.Errorf("removing bookmark: %w", asStorageFailure(domain.StorageFailureDelete, err))
		}
		bookmarked = false
	} else {
		record := domain.NewBookmarkRecord(article, f.cfg.Now())
		if err := f.store.AddBookmark(ctx, record); err != nil {
			logger.ErrorContext(ctx, "unable to add bookmark", "error", err, "article_id", articleID)
			return fmt.Errorf("adding bookmark: %w", asStorageFailure(domain.StorageFailureSave, err))
		}
		bookmarked = true
	}

	f.mu.Lock()
	for i := range f.items {
		if f.items[i].HasID(articleID) {
			f.items[i].IsBookmarked = bookmarked
		}
	}
	f.dispatcher.enqueue(itemsChanged(slices.Clone(f.items)))
	f.mu.Unlock()

	logger.DebugContext(ctx, "toggled bookmark", "article_id", articleID, "bookmarked", bookmarked)
	return nil
}

type pageLoad struct {
	page       int
	generation uint64
	fetchCtx   context.Context
	cancel     context.CancelFunc
}

// beginLoadLocked applies the loading guard and marks the session as loading.
func (f *Feed) beginLoadLocked(ctx context.Context, page int) (pageLoad, bool) {
	if f.isLoading || !f.hasMore || page < 1 || f.cfg.PageSize < 1 {
		return pageLoad{}, false
	}

	fetchCtx, cancel := context.WithTimeout(ctx, f.cfg.FetchTimeout)
	f.isLoading = true
	f.cancelLoad = cancel
	f.dispatcher.enqueue(loadingChanged(true))

	return pageLoad{
		page:       page,
		generation: f.generation,
		fetchCtx:   fetchCtx,
		cancel:     cancel,
	}, true
}

func (f *Feed) runLoad(ctx context.Context, load pageLoad) error {
	defer load.cancel()
	logger := domain.LoggerFromContext(ctx)

	articles, err := f.fetcher.FetchArticles(load.fetchCtx, load.page, f.cfg.PageSize)
	if err != nil {
		return f.failLoad(ctx, load, err)
	}

	if !f.commitPage(ctx, load, articles) {
		logger.DebugContext(ctx, "discarding superseded page", "page", load.page)
		return nil
	}
	f.dispatcher.flush(&f.mu)

	logger.DebugContext(ctx, "loaded feed page", "page", load.page, "count", len(articles))
	return nil
}

// commitPage reconciles bookmark flags and applies the page, reporting false if a refresh
// superseded the load. Events are queued, not delivered.
func (f *Feed) commitPage(ctx context.Context, load pageLoad, articles []domain.Article) bool {
	f.reconcileMu.Lock()
	defer f.reconcileMu.Unlock()

	if f.superseded(load) {
		return false
	}

	for i := range articles {
		articles[i].IsBookmarked = articles[i].ID != nil && f.store.IsBookmarked(ctx, *articles[i].ID)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if load.generation != f.generation {
		return false
	}

	if load.page == 1 {
		f.items = append([]domain.Article{}, articles...)
	} else {
		f.items = append(f.items, articles...)
	}
	if len(articles) == 0 {
		f.hasMore = false
	} else {
		f.currentPage = load.page
	}
	f.isLoading = false
	f.cancelLoad = nil
	f.dispatcher.enqueue(loadingChanged(false), itemsChanged(slices.Clone(f.items)))
	return true
}

func (f *Feed) failLoad(ctx context.Context, load pageLoad, err error) error {
	logger := domain.LoggerFromContext(ctx)

	var transportErr *domain.TransportError
	if !errors.As(err, &transportErr) {
		err = &domain.TransportError{Err: err}
	}

	f.mu.Lock()
	if load.generation != f.generation {
		f.mu.Unlock()
		logger.DebugContext(ctx, "ignoring failure of superseded page load", "page", load.page, "error", err)
		return nil
	}
	f.isLoading = false
	f.cancelLoad = nil
	f.dispatcher.enqueue(loadingChanged(false), loadFailed(err))
	f.mu.Unlock()
	f.dispatcher.flush(&f.mu)

	logger.WarnContext(ctx, "unable to load feed page", "page", load.page, "error", err)
	return fmt.Errorf("loading page %d: %w", load.page, err)
}

func (f *Feed) superseded(load pageLoad) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return load.generation != f.generation
}

func asStorageFailure(kind domain.StorageFailureKind, err error) error {
	var storageErr *domain.StorageFailure
	if errors.As(err, &storageErr) {
		return err
	}
	return &domain.StorageFailure{Kind: kind, Err: err}
}
