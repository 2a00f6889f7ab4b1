package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/huandu/go-sqlbuilder"
	_ "github.com/mattn/go-sqlite3"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"
)

const mysqlParamStr string = "?parseTime=true"

// Connect opens and pings a bookmark database. uri is a MySQL DSN (without parameters)
// or a SQLite file path, ":memory:" included.
func Connect(ctx context.Context, driver, uri string) (*sql.DB, error) {
	dsn := uri
	if driver == DriverMySQL {
		dsn += mysqlParamStr
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s DB: %w", driver, err)
	}

	switch driver {
	case DriverSQLite:
		// One connection: an in-memory database exists per connection, and SQLite
		// serializes writers anyway.
		db.SetMaxOpenConns(1)
	default:
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
	}

	err = db.PingContext(ctx)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("checking %s DB connection: %w", driver, err)
	}

	return db, nil
}

func flavorForDriver(driver string) (sqlbuilder.Flavor, error) {
	switch driver {
	case DriverMySQL:
		return sqlbuilder.MySQL, nil
	case DriverSQLite:
		return sqlbuilder.SQLite, nil
	default:
		return 0, fmt.Errorf("unsupported SQL driver [%s]", driver)
	}
}
