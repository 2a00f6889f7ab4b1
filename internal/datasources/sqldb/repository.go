package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/devfeed/internal/datasources"
	"github.com/jbeshir/devfeed/internal/domain"
)

const bookmarksTable = "bookmarked_articles"

var bookmarkColumns = []string{
	"article_id",
	"title",
	"body",
	"comments_count",
	"positive_reactions_count",
	"public_reactions_count",
	"cover_image",
	"author_name",
	"author_username",
	"author_github_username",
	"author_user_id",
	"author_profile_image",
	"author_profile_image_90",
	"bookmarked_at",
}

var _ datasources.BookmarkStore = (*Repository)(nil)

// Repository stores bookmarks as flat rows, one per bookmark, with the author columns
// inlined. article_id is indexed but not unique; removal deletes every matching row.
type Repository struct {
	db     *sql.DB
	flavor sqlbuilder.Flavor
}

// New wraps an open database and creates the bookmarks table if it does not exist.
func New(ctx context.Context, db *sql.DB, driver string) (*Repository, error) {
	flavor, err := flavorForDriver(driver)
	if err != nil {
		return nil, err
	}

	r := &Repository{db: db, flavor: flavor}
	if err := r.createSchema(ctx); err != nil {
		return nil, fmt.Errorf("creating bookmarks schema: %w", err)
	}
	return r, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) createSchema(ctx context.Context) error {
	ctb := r.flavor.NewCreateTableBuilder()
	ctb.CreateTable(bookmarksTable).IfNotExists()

	timeType := "DATETIME"
	if r.flavor == sqlbuilder.MySQL {
		ctb.Define("seq", "BIGINT", "NOT NULL", "AUTO_INCREMENT", "PRIMARY KEY")
		timeType = "DATETIME(6)"
	} else {
		ctb.Define("seq", "INTEGER", "PRIMARY KEY", "AUTOINCREMENT")
	}

	ctb.Define("article_id", "BIGINT", "NOT NULL")
	ctb.Define("title", "TEXT", "NULL")
	ctb.Define("body", "TEXT", "NULL")
	ctb.Define("comments_count", "INT", "NOT NULL", "DEFAULT 0")
	ctb.Define("positive_reactions_count", "INT", "NOT NULL", "DEFAULT 0")
	ctb.Define("public_reactions_count", "INT", "NOT NULL", "DEFAULT 0")
	ctb.Define("cover_image", "TEXT", "NULL")
	ctb.Define("author_name", "TEXT", "NULL")
	ctb.Define("author_username", "TEXT", "NULL")
	ctb.Define("author_github_username", "TEXT", "NULL")
	ctb.Define("author_user_id", "BIGINT", "NULL")
	ctb.Define("author_profile_image", "TEXT", "NULL")
	ctb.Define("author_profile_image_90", "TEXT", "NULL")
	ctb.Define("bookmarked_at", timeType, "NOT NULL")

	if r.flavor == sqlbuilder.MySQL {
		ctb.Define("INDEX", "idx_bookmarked_articles_article_id", "(article_id)")
	}

	query, args := ctb.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("creating table: %w", err)
	}

	if r.flavor == sqlbuilder.SQLite {
		if _, err := r.db.ExecContext(ctx,
			"CREATE INDEX IF NOT EXISTS idx_bookmarked_articles_article_id ON "+bookmarksTable+" (article_id)",
		); err != nil {
			return fmt.Errorf("creating index: %w", err)
		}
	}

	return nil
}

func (r *Repository) IsBookmarked(ctx context.Context, articleID int64) bool {
	sb := r.flavor.NewSelectBuilder()
	sb.Select("1").From(bookmarksTable).Where(sb.Equal("article_id", articleID)).Limit(1)

	query, args := sb.Build()
	var one int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "error checking bookmark, treating as not bookmarked",
			"error", err, "article_id", articleID)
		return false
	}

	return true
}

func (r *Repository) AddBookmark(ctx context.Context, record domain.BookmarkRecord) error {
	ib := r.flavor.NewInsertBuilder()
	ib.InsertInto(bookmarksTable)
	ib.Cols(bookmarkColumns...)
	ib.Values(
		record.ArticleID,
		nullString(record.Title),
		nullString(record.Body),
		record.CommentsCount,
		record.PositiveReactionsCount,
		record.PublicReactionsCount,
		nullString(record.CoverImage),
		nullString(record.Author.Name),
		nullString(record.Author.Username),
		nullString(record.Author.GithubUsername),
		nullInt64(record.Author.UserID),
		nullString(record.Author.ProfileImage),
		nullString(record.Author.ProfileImage90),
		record.BookmarkedAt.UTC(),
	)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return &domain.StorageFailure{Kind: domain.StorageFailureSave, Err: fmt.Errorf("inserting bookmark: %w", err)}
	}

	return nil
}

func (r *Repository) RemoveBookmark(ctx context.Context, articleID int64) error {
	del := r.flavor.NewDeleteBuilder()
	del.DeleteFrom(bookmarksTable).Where(del.Equal("article_id", articleID))

	query, args := del.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return &domain.StorageFailure{Kind: domain.StorageFailureDelete, Err: fmt.Errorf("deleting bookmark: %w", err)}
	}

	return nil
}

func (r *Repository) RetrieveBookmarks(ctx context.Context) ([]domain.BookmarkRecord, error) {
	records, err := r.retrieveBookmarks(ctx)
	if err != nil {
		return nil, &domain.StorageFailure{Kind: domain.StorageFailureRetrieve, Err: err}
	}
	return records, nil
}

func (r *Repository) retrieveBookmarks(ctx context.Context) ([]domain.BookmarkRecord, error) {
	sb := r.flavor.NewSelectBuilder()
	sb.Select(bookmarkColumns...).From(bookmarksTable).OrderBy("seq").Asc()

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running bookmarks query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := []domain.BookmarkRecord{}
	for rows.Next() {
		var (
			record                     domain.BookmarkRecord
			title, body, coverImage    sql.NullString
			authorName, authorUsername sql.NullString
			authorGithub, authorImage  sql.NullString
			authorImage90              sql.NullString
			authorUserID               sql.NullInt64
		)
		if err := rows.Scan(
			&record.ArticleID,
			&title,
			&body,
			&record.CommentsCount,
			&record.PositiveReactionsCount,
			&record.PublicReactionsCount,
			&coverImage,
			&authorName,
			&authorUsername,
			&authorGithub,
			&authorUserID,
			&authorImage,
			&authorImage90,
			&record.BookmarkedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning bookmarks: %w", err)
		}

		record.Title = stringPtr(title)
		record.Body = stringPtr(body)
		record.CoverImage = stringPtr(coverImage)
		record.Author = domain.Author{
			Name:           stringPtr(authorName),
			Username:       stringPtr(authorUsername),
			GithubUsername: stringPtr(authorGithub),
			UserID:         int64Ptr(authorUserID),
			ProfileImage:   stringPtr(authorImage),
			ProfileImage90: stringPtr(authorImage90),
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return records, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt64(i *int64) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *i, Valid: true}
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}

func int64Ptr(i sql.NullInt64) *int64 {
	if !i.Valid {
		return nil
	}
	return &i.Int64
}
