package domain

import "time"

// BookmarkRecord is the durable copy of an article kept by a bookmark store. It holds only
// what is needed to show the article offline, with the author copied in by value.
type BookmarkRecord struct {
	ArticleID              int64     `json:"article_id"`
	Title                  *string   `json:"title,omitempty"`
	Body                   *string   `json:"body,omitempty"`
	CommentsCount          int       `json:"comments_count"`
	PositiveReactionsCount int       `json:"positive_reactions_count"`
	PublicReactionsCount   int       `json:"public_reactions_count"`
	CoverImage             *string   `json:"cover_image,omitempty"`
	Author                 Author    `json:"author"`
	BookmarkedAt           time.Time `json:"bookmarked_at"`
}

// NewBookmarkRecord copies the offline-display subset of an article. An article without an
// ID gets ArticleID 0; the feed never bookmarks such articles, since HasID matches no ID
// against a nil one.
func NewBookmarkRecord(a Article, bookmarkedAt time.Time) BookmarkRecord {
	record := BookmarkRecord{
		ArticleID:              Deref(a.ID),
		Title:                  a.Title,
		Body:                   a.Description,
		CommentsCount:          Deref(a.CommentsCount),
		PositiveReactionsCount: Deref(a.PositiveReactionsCount),
		PublicReactionsCount:   Deref(a.PublicReactionsCount),
		CoverImage:             a.CoverImage,
		BookmarkedAt:           bookmarkedAt,
	}
	if a.User != nil {
		record.Author = Author{
			Name:           a.User.Name,
			Username:       a.User.Username,
			GithubUsername: a.User.GithubUsername,
			UserID:         a.User.UserID,
			ProfileImage:   a.User.ProfileImage,
			ProfileImage90: a.User.ProfileImage90,
		}
	}
	return record
}

// Article maps the record back into the feed's view model so the same detail view can
// render either source. Fields the record does not keep are left nil.
func (r BookmarkRecord) Article() Article {
	author := r.Author
	return Article{
		ID:                     Ptr(r.ArticleID),
		Title:                  r.Title,
		Description:            r.Body,
		CommentsCount:          Ptr(r.CommentsCount),
		PublicReactionsCount:   Ptr(r.PublicReactionsCount),
		PositiveReactionsCount: Ptr(r.PositiveReactionsCount),
		CoverImage:             r.CoverImage,
		User:                   &author,
		IsBookmarked:           true,
	}
}
