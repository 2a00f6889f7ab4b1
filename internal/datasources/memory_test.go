package datasources

import (
	"context"
	"testing"

	"github.com/jbeshir/devfeed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBookmarkStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryBookmarkStore()

	assert.False(t, store.IsBookmarked(ctx, 1))

	require.NoError(t, store.AddBookmark(ctx, domain.BookmarkRecord{ArticleID: 3, Title: domain.Ptr("three")}))
	require.NoError(t, store.AddBookmark(ctx, domain.BookmarkRecord{ArticleID: 1, Title: domain.Ptr("one")}))
	require.NoError(t, store.AddBookmark(ctx, domain.BookmarkRecord{ArticleID: 2, Title: domain.Ptr("two")}))

	assert.True(t, store.IsBookmarked(ctx, 1))

	// Re-adding replaces in place rather than duplicating.
	require.NoError(t, store.AddBookmark(ctx, domain.BookmarkRecord{ArticleID: 3, Title: domain.Ptr("three again")}))

	records, err := store.RetrieveBookmarks(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []int64{3, 1, 2}, []int64{records[0].ArticleID, records[1].ArticleID, records[2].ArticleID})
	assert.Equal(t, "three again", *records[0].Title)

	require.NoError(t, store.RemoveBookmark(ctx, 1))
	require.NoError(t, store.RemoveBookmark(ctx, 42))
	assert.False(t, store.IsBookmarked(ctx, 1))

	records, err = store.RetrieveBookmarks(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
