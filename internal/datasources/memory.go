package datasources

import (
	"context"
	"sort"
	"sync"

	"github.com/jbeshir/devfeed/internal/domain"
)

// MemoryBookmarkStore keeps bookmarks in a map keyed by article ID. Nothing survives the
// process; it backs tests and the "memory" store driver.
type MemoryBookmarkStore struct {
	mu      sync.RWMutex
	records map[int64]memoryEntry
	seq     uint64
}

type memoryEntry struct {
	seq    uint64
	record domain.BookmarkRecord
}

var _ BookmarkStore = (*MemoryBookmarkStore)(nil)

func NewMemoryBookmarkStore() *MemoryBookmarkStore {
	return &MemoryBookmarkStore{records: map[int64]memoryEntry{}}
}

func (s *MemoryBookmarkStore) IsBookmarked(_ context.Context, articleID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.records[articleID]
	return ok
}

// AddBookmark overwrites any record already stored for the article, keeping its position.
func (s *MemoryBookmarkStore) AddBookmark(_ context.Context, record domain.BookmarkRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.records[record.ArticleID]
	if !ok {
		s.seq++
		entry.seq = s.seq
	}
	entry.record = record
	s.records[record.ArticleID] = entry
	return nil
}

func (s *MemoryBookmarkStore) RemoveBookmark(_ context.Context, articleID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, articleID)
	return nil
}

func (s *MemoryBookmarkStore) RetrieveBookmarks(_ context.Context) ([]domain.BookmarkRecord, error) {
	s.mu.RLock()
	entries := make([]memoryEntry, 0, len(s.records))
	for _, e := range s.records {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	records := make([]domain.BookmarkRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, e.record)
	}
	return records, nil
}
