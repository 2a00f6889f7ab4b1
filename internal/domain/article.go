package domain

import (
	"time"
)

// Article is a single feed entry as returned by the articles API. Every field the API
// may omit is a pointer so an absent field decodes to nil rather than failing.
type Article struct {
	ID                     *int64   `json:"id"`
	Title                  *string  `json:"title"`
	Description            *string  `json:"description"`
	Path                   *string  `json:"path"`
	URL                    *string  `json:"url"`
	CommentsCount          *int     `json:"comments_count"`
	PublicReactionsCount   *int     `json:"public_reactions_count"`
	PublishedTimestamp     *string  `json:"published_timestamp"`
	Language               *string  `json:"language"`
	PositiveReactionsCount *int     `json:"positive_reactions_count"`
	CoverImage             *string  `json:"cover_image"`
	SocialImage            *string  `json:"social_image"`
	CreatedAt              *string  `json:"created_at"`
	TagList                []string `json:"tag_list"`
	Tags                   *string  `json:"tags"`
	User                   *Author  `json:"user"`

	// IsBookmarked is a local projection of the bookmark store, never sent by the API.
	IsBookmarked bool `json:"is_bookmarked"`
}

type Author struct {
	Name            *string `json:"name"`
	Username        *string `json:"username"`
	TwitterUsername *string `json:"twitter_username"`
	GithubUsername  *string `json:"github_username"`
	UserID          *int64  `json:"user_id"`
	ProfileImage    *string `json:"profile_image"`
	ProfileImage90  *string `json:"profile_image_90"`
}

// HasID reports whether the article carries the given identifier.
func (a Article) HasID(id int64) bool {
	return a.ID != nil && *a.ID == id
}

// CreatedTime parses created_at. ok is false when it is absent or not RFC 3339.
func (a Article) CreatedTime() (t time.Time, ok bool) {
	return parseTimestamp(a.CreatedAt)
}

// PublishedTime parses published_timestamp. ok is false when it is absent or not RFC 3339.
func (a Article) PublishedTime() (t time.Time, ok bool) {
	return parseTimestamp(a.PublishedTimestamp)
}

func parseTimestamp(s *string) (time.Time, bool) {
	if s == nil || *s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// PageState is a snapshot of a feed session's paging cursor.
type PageState struct {
	CurrentPage int  `json:"current_page"`
	HasMore     bool `json:"has_more"`
	IsLoading   bool `json:"is_loading"`
	ItemCount   int  `json:"item_count"`
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// Deref returns the value behind p, or the zero value when p is nil.
func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// Pluralize picks singular when n is 1. An empty plural means singular + "s".
func Pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	if plural == "" {
		return singular + "s"
	}
	return plural
}
