package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jbeshir/devfeed/internal/datasources"
	"github.com/jbeshir/devfeed/internal/datasources/mocks"
	"github.com/jbeshir/devfeed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type countingListener struct {
	calls int
}

func (l *countingListener) OnExternalBookmarkChange(context.Context) {
	l.calls++
}

func TestBookmarkList_ListAll(t *testing.T) {
	ctx := testContext()
	store := datasources.NewMemoryBookmarkStore()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for _, a := range testArticles(7, 2) {
		require.NoError(t, store.AddBookmark(ctx, domain.NewBookmarkRecord(a, now)))
	}

	articles, err := NewBookmarkList(store).ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 2)

	assert.Equal(t, []int64{7, 8}, articleIDs(articles))
	for _, a := range articles {
		assert.True(t, a.IsBookmarked)
		require.NotNil(t, a.User)
		assert.Equal(t, domain.Ptr("Ada"), a.User.Name)
	}
	assert.Equal(t, domain.Ptr("Article 8"), articles[1].Title)
	assert.Equal(t, domain.Ptr(8%7), articles[1].CommentsCount)
}

func TestBookmarkList_ListAllEmpty(t *testing.T) {
	articles, err := NewBookmarkList(datasources.NewMemoryBookmarkStore()).ListAll(testContext())
	require.NoError(t, err)
	assert.NotNil(t, articles)
	assert.Empty(t, articles)
}

func TestBookmarkList_ListAllFailure(t *testing.T) {
	ctx := testContext()
	readErr := errors.New("database is locked")

	store := mocks.NewMockBookmarkStore(t)
	store.EXPECT().RetrieveBookmarks(mock.Anything).Return(nil, readErr).Once()

	_, err := NewBookmarkList(store).ListAll(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)

	var failure *domain.StorageFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, domain.StorageFailureRetrieve, failure.Kind)
}

func TestBookmarkList_Remove(t *testing.T) {
	ctx := testContext()
	removeErr := errors.New("read-only database")
	retrieveErr := errors.New("database is locked")
	remaining := []domain.BookmarkRecord{{ArticleID: 2, Title: domain.Ptr("Kept")}}

	cases := []struct {
		name         string
		setup        func(store *mocks.MockBookmarkStore)
		wantIDs      []int64
		wantErr      error
		wantKind     domain.StorageFailureKind
		wantNotified int
	}{
		{
			name: "success",
			setup: func(store *mocks.MockBookmarkStore) {
				store.EXPECT().RemoveBookmark(mock.Anything, int64(1)).Return(nil).Once()
				store.EXPECT().RetrieveBookmarks(mock.Anything).Return(remaining, nil).Once()
			},
			wantIDs:      []int64{2},
			wantNotified: 1,
		},
		{
			name: "remove_fails",
			setup: func(store *mocks.MockBookmarkStore) {
				store.EXPECT().RemoveBookmark(mock.Anything, int64(1)).Return(removeErr).Once()
			},
			wantErr:      removeErr,
			wantKind:     domain.StorageFailureDelete,
			wantNotified: 0,
		},
		{
			name: "relist_fails",
			setup: func(store *mocks.MockBookmarkStore) {
				store.EXPECT().RemoveBookmark(mock.Anything, int64(1)).Return(nil).Once()
				store.EXPECT().RetrieveBookmarks(mock.Anything).Return(nil, retrieveErr).Once()
			},
			wantErr:      retrieveErr,
			wantKind:     domain.StorageFailureRetrieve,
			wantNotified: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := mocks.NewMockBookmarkStore(t)
			tc.setup(store)
			listener := &countingListener{}

			articles, err := NewBookmarkList(store, listener).Remove(ctx, 1)

			assert.Equal(t, tc.wantNotified, listener.calls)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)

				var failure *domain.StorageFailure
				require.ErrorAs(t, err, &failure)
				assert.Equal(t, tc.wantKind, failure.Kind)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantIDs, articleIDs(articles))
		})
	}
}

func TestBookmarkList_RemoveRefreshesFeed(t *testing.T) {
	ctx := testContext()
	store := datasources.NewMemoryBookmarkStore()
	fetcher := mocks.NewMockArticlePageFetcher(t)
	fetcher.EXPECT().FetchArticles(mock.Anything, 1, 30).Return(testArticles(1, 3), nil).Times(2)

	feed := NewFeed(fetcher, store, FeedConfig{})
	require.NoError(t, feed.LoadNextPage(ctx))
	require.NoError(t, feed.ToggleBookmark(ctx, 1))
	require.True(t, feed.Items()[0].IsBookmarked)

	list := NewBookmarkList(store, feed)
	articles, err := list.Remove(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, articles)

	assert.False(t, feed.Items()[0].IsBookmarked)
	fetcher.AssertNumberOfCalls(t, "FetchArticles", 2)
}
