// Package boltstore keeps bookmarks in an embedded bolt file, one bucket keyed by article ID.
package boltstore

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/jbeshir/devfeed/internal/datasources"
	"github.com/jbeshir/devfeed/internal/domain"
	bolt "go.etcd.io/bbolt"
)

var bookmarksBucket = []byte("bookmarked-articles")

var _ datasources.BookmarkStore = Store{}

// Store is a flat keyed table: the key is the big-endian article ID, the value the JSON
// encoded record. Adding an already bookmarked article overwrites its record.
type Store struct {
	db *bolt.DB
}

func Open(path string) (Store, error) {
	db, err := bolt.Open(path, 0660, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return Store{}, fmt.Errorf("opening bookmark bolt storage %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bookmarksBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return Store{}, fmt.Errorf("creating bookmark bolt bucket: %w", err)
	}

	return Store{db: db}, nil
}

func (s Store) Close() error {
	return s.db.Close()
}

func articleKey(articleID int64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(articleID))
	return key
}

func (s Store) IsBookmarked(ctx context.Context, articleID int64) bool {
	exists := false

	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bookmarksBucket).Get(articleKey(articleID)); v != nil {
			exists = true
		}
		return nil
	})
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "error checking bookmark, treating as not bookmarked",
			"error", err, "article_id", articleID)
		return false
	}

	return exists
}

func (s Store) AddBookmark(_ context.Context, record domain.BookmarkRecord) error {
	value, err := json.Marshal(record)
	if err != nil {
		return &domain.StorageFailure{Kind: domain.StorageFailureSave, Err: fmt.Errorf("encoding bookmark: %w", err)}
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bookmarksBucket).Put(articleKey(record.ArticleID), value)
	})
	if err != nil {
		return &domain.StorageFailure{Kind: domain.StorageFailureSave, Err: fmt.Errorf("writing bookmark: %w", err)}
	}

	return nil
}

func (s Store) RemoveBookmark(_ context.Context, articleID int64) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bookmarksBucket).Delete(articleKey(articleID))
	})
	if err != nil {
		return &domain.StorageFailure{Kind: domain.StorageFailureDelete, Err: fmt.Errorf("deleting bookmark: %w", err)}
	}

	return nil
}

func (s Store) RetrieveBookmarks(_ context.Context) ([]domain.BookmarkRecord, error) {
	records := []domain.BookmarkRecord{}

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bookmarksBucket).ForEach(func(k, v []byte) error {
			var record domain.BookmarkRecord
			if err := json.Unmarshal(v, &record); err != nil {
				return fmt.Errorf("decoding bookmark %x: %w", k, err)
			}
			records = append(records, record)
			return nil
		})
	})
	if err != nil {
		return nil, &domain.StorageFailure{Kind: domain.StorageFailureRetrieve, Err: err}
	}

	// Keys iterate in article ID order; callers expect oldest bookmark first.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].BookmarkedAt.Before(records[j].BookmarkedAt)
	})

	return records, nil
}
