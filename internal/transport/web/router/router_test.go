package router

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/jbeshir/devfeed/internal/command"
	"github.com/jbeshir/devfeed/internal/datasources"
	"github.com/jbeshir/devfeed/internal/datasources/mocks"
	"github.com/jbeshir/devfeed/internal/domain"
	"github.com/jbeshir/devfeed/internal/session"
	"github.com/jbeshir/devfeed/internal/transport/web/controller"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func setupRouter(t *testing.T) http.Handler {
	t.Helper()

	fetcher := mocks.NewMockArticlePageFetcher(t)
	fetcher.EXPECT().FetchArticles(mock.Anything, 1, 30).Return([]domain.Article{
		{ID: domain.Ptr(int64(5)), Title: domain.Ptr("Five")},
	}, nil).Maybe()

	store := datasources.NewMemoryBookmarkStore()
	feed := session.NewFeed(fetcher, store, session.FeedConfig{})
	bookmarks := session.NewBookmarkList(store, feed)

	comments := mocks.NewMockCommentFetcher(t)
	comments.EXPECT().FetchComments(mock.Anything, int64(5)).Return([]domain.Comment{}, nil).Maybe()

	h, err := MakeRouter(
		feed,
		bookmarks,
		&command.ExportBookmarks{Retriever: store, BaseURL: "http://localhost"},
		command.NewGetArticleComments(comments),
	)
	require.NoError(t, err)
	return h
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil).WithContext(testContext())
	h.ServeHTTP(rec, req)
	return rec
}

func TestMakeRouter_Routes(t *testing.T) {
	h := setupRouter(t)

	rec := serve(h, http.MethodGet, "/v1/feed")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, http.MethodPost, "/v1/feed/next")
	require.Equal(t, http.StatusOK, rec.Code)
	var feed controller.FeedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &feed))
	require.Len(t, feed.Data, 1)

	rec = serve(h, http.MethodPost, "/v1/feed/articles/5/bookmark")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(h, http.MethodGet, "/v1/bookmarks")
	require.Equal(t, http.StatusOK, rec.Code)
	var bookmarks controller.BookmarksResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bookmarks))
	assert.Equal(t, 1, bookmarks.Metadata.Count)

	rec = serve(h, http.MethodGet, "/v1/bookmarks/feed?format=atom")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Five")

	rec = serve(h, http.MethodGet, "/v1/articles/5/comments")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, http.MethodDelete, "/v1/bookmarks/5")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, http.MethodGet, "/v1/feed")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &feed))
	require.Len(t, feed.Data, 1)
	assert.False(t, feed.Data[0].IsBookmarked)
}

func TestMakeRouter_RejectsNonNumericArticleID(t *testing.T) {
	h := setupRouter(t)

	rec := serve(h, http.MethodPost, "/v1/feed/articles/abc/bookmark")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMakeRouter_CORSPreflight(t *testing.T) {
	h := setupRouter(t)

	rec := serve(h, http.MethodOptions, "/v1/bookmarks/5")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodDelete)
	assert.Empty(t, rec.Body.String())
}

func TestRequestLoggerMiddleware(t *testing.T) {
	var seen string
	h := requestLoggerMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = domain.RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("generates_id", func(t *testing.T) {
		rec := serve(h, http.MethodGet, "/")
		assert.Equal(t, http.StatusTeapot, rec.Code)

		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, rec.Header().Get(requestIDHeader))
	})

	t.Run("reuses_valid_incoming_id", func(t *testing.T) {
		incoming := uuid.NewString()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(testContext())
		req.Header.Set(requestIDHeader, incoming)
		h.ServeHTTP(rec, req)

		assert.Equal(t, incoming, seen)
		assert.Equal(t, incoming, rec.Header().Get(requestIDHeader))
	})

	t.Run("replaces_invalid_incoming_id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(testContext())
		req.Header.Set(requestIDHeader, "not-a-uuid")
		h.ServeHTTP(rec, req)

		assert.NotEqual(t, "not-a-uuid", seen)
		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
	})
}
