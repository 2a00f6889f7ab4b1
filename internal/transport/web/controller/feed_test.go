package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/jbeshir/devfeed/internal/datasources"
	"github.com/jbeshir/devfeed/internal/datasources/mocks"
	"github.com/jbeshir/devfeed/internal/domain"
	"github.com/jbeshir/devfeed/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func testRequest(method, target string, vars map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, nil).WithContext(testContext())
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	return req
}

func testArticles(firstID, n int) []domain.Article {
	articles := make([]domain.Article, 0, n)
	for i := range n {
		id := int64(firstID + i)
		articles = append(articles, domain.Article{
			ID:    domain.Ptr(id),
			Title: domain.Ptr(fmt.Sprintf("Article %d", id)),
		})
	}
	return articles
}

func TestFeedGet_ServeHTTP(t *testing.T) {
	fetcher := mocks.NewMockArticlePageFetcher(t)
	fetcher.EXPECT().FetchArticles(mock.Anything, 1, 30).Return(testArticles(1, 2), nil).Once()

	feed := session.NewFeed(fetcher, datasources.NewMemoryBookmarkStore(), session.FeedConfig{})
	require.NoError(t, feed.LoadNextPage(testContext()))

	rec := httptest.NewRecorder()
	FeedGet{Feed: feed}.ServeHTTP(rec, testRequest(http.MethodGet, "/v1/feed", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp FeedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Article 2", domain.Deref(resp.Data[1].Title))
	assert.Equal(t, domain.PageState{CurrentPage: 1, HasMore: true, ItemCount: 2}, resp.Metadata)
}

func TestFeedLoad_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		action     FeedAction
		setup      func(fetcher *mocks.MockArticlePageFetcher)
		wantStatus int
		wantCount  int
	}{
		{
			name:   "next_page",
			action: FeedActionNextPage,
			setup: func(fetcher *mocks.MockArticlePageFetcher) {
				fetcher.EXPECT().FetchArticles(mock.Anything, 1, 30).Return(testArticles(1, 3), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCount:  3,
		},
		{
			name:   "refresh",
			action: FeedActionRefresh,
			setup: func(fetcher *mocks.MockArticlePageFetcher) {
				fetcher.EXPECT().FetchArticles(mock.Anything, 1, 30).Return(testArticles(10, 4), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCount:  4,
		},
		{
			name:   "upstream_error",
			action: FeedActionNextPage,
			setup: func(fetcher *mocks.MockArticlePageFetcher) {
				fetcher.EXPECT().FetchArticles(mock.Anything, 1, 30).
					Return(nil, &domain.TransportError{StatusCode: 500, Err: errors.New("server error")}).Once()
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:   "network_error",
			action: FeedActionRefresh,
			setup: func(fetcher *mocks.MockArticlePageFetcher) {
				fetcher.EXPECT().FetchArticles(mock.Anything, 1, 30).
					Return(nil, errors.New("connection refused")).Once()
			},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockArticlePageFetcher(t)
			tc.setup(fetcher)
			feed := session.NewFeed(fetcher, datasources.NewMemoryBookmarkStore(), session.FeedConfig{})

			rec := httptest.NewRecorder()
			FeedLoad{Feed: feed, Action: tc.action}.ServeHTTP(rec, testRequest(http.MethodPost, "/v1/feed/next", nil))

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus != http.StatusOK {
				return
			}

			var resp FeedResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Len(t, resp.Data, tc.wantCount)
			assert.Equal(t, 1, resp.Metadata.CurrentPage)
		})
	}
}

func TestFeedBookmarkToggle_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		articleID  string
		setupStore func(store *mocks.MockBookmarkStore)
		wantStatus int
	}{
		{
			name:      "adds_bookmark",
			articleID: "2",
			setupStore: func(store *mocks.MockBookmarkStore) {
				store.EXPECT().AddBookmark(mock.Anything, mock.MatchedBy(func(r domain.BookmarkRecord) bool {
					return r.ArticleID == 2
				})).Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "invalid_id",
			articleID:  "abc",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not_in_feed",
			articleID:  "99",
			wantStatus: http.StatusNotFound,
		},
		{
			name:      "storage_failure",
			articleID: "1",
			setupStore: func(store *mocks.MockBookmarkStore) {
				store.EXPECT().AddBookmark(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockArticlePageFetcher(t)
			fetcher.EXPECT().FetchArticles(mock.Anything, 1, 30).Return(testArticles(1, 2), nil).Once()

			store := mocks.NewMockBookmarkStore(t)
			store.EXPECT().IsBookmarked(mock.Anything, mock.Anything).Return(false).Maybe()
			if tc.setupStore != nil {
				tc.setupStore(store)
			}

			feed := session.NewFeed(fetcher, store, session.FeedConfig{})
			require.NoError(t, feed.LoadNextPage(testContext()))

			rec := httptest.NewRecorder()
			req := testRequest(http.MethodPost, "/v1/feed/articles/"+tc.articleID+"/bookmark",
				map[string]string{"article_id": tc.articleID})
			FeedBookmarkToggle{Feed: feed}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestStatusForError(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "transport",
			err:      fmt.Errorf("loading: %w", &domain.TransportError{StatusCode: 503}),
			expected: http.StatusBadGateway,
		},
		{
			name:     "transport_not_found",
			err:      &domain.TransportError{StatusCode: 404},
			expected: http.StatusNotFound,
		},
		{
			name:     "storage",
			err:      &domain.StorageFailure{Kind: domain.StorageFailureSave, Err: errors.New("x")},
			expected: http.StatusInternalServerError,
		},
		{
			name:     "other",
			err:      errors.New("x"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, statusForError(tc.err))
		})
	}
}
