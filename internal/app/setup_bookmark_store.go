package app

import (
	"context"
	"fmt"

	"github.com/jbeshir/devfeed/internal/datasources"
	"github.com/jbeshir/devfeed/internal/datasources/boltstore"
	"github.com/jbeshir/devfeed/internal/datasources/sqldb"
)

const (
	StoreDriverMemory = "memory"
	StoreDriverSQLite = "sqlite"
	StoreDriverMySQL  = "mysql"
	StoreDriverBolt   = "bolt"
)

// BookmarkStore is a bookmark store together with the function that releases it.
type BookmarkStore struct {
	datasources.BookmarkStore
	Close func() error
}

// SetupBookmarkStore opens the store selected by driver. uri is a file path for sqlite and
// bolt, a DSN for mysql, and ignored for memory.
func SetupBookmarkStore(ctx context.Context, driver, uri string) (BookmarkStore, error) {
	switch driver {
	case StoreDriverMemory:
		return BookmarkStore{
			BookmarkStore: datasources.NewMemoryBookmarkStore(),
			Close:         func() error { return nil },
		}, nil
	case StoreDriverSQLite, StoreDriverMySQL:
		sqlDriver := sqldb.DriverSQLite
		if driver == StoreDriverMySQL {
			sqlDriver = sqldb.DriverMySQL
		}

		db, err := sqldb.Connect(ctx, sqlDriver, uri)
		if err != nil {
			return BookmarkStore{}, fmt.Errorf("connecting to bookmark database: %w", err)
		}
		repo, err := sqldb.New(ctx, db, sqlDriver)
		if err != nil {
			_ = db.Close()
			return BookmarkStore{}, fmt.Errorf("preparing bookmark database: %w", err)
		}
		return BookmarkStore{BookmarkStore: repo, Close: repo.Close}, nil
	case StoreDriverBolt:
		store, err := boltstore.Open(uri)
		if err != nil {
			return BookmarkStore{}, fmt.Errorf("opening bookmark file: %w", err)
		}
		return BookmarkStore{BookmarkStore: store, Close: store.Close}, nil
	default:
		return BookmarkStore{}, fmt.Errorf("unknown bookmark store driver [%s]", driver)
	}
}
