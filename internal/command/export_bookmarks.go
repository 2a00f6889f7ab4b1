package command

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"github.com/jbeshir/devfeed/internal/datasources"
	"github.com/jbeshir/devfeed/internal/domain"
)

type FeedFormat string

const (
	FeedFormatRSS  FeedFormat = "rss"
	FeedFormatAtom FeedFormat = "atom"
	FeedFormatJSON FeedFormat = "json"
)

// ParseFeedFormat accepts rss, atom or json, case-insensitively. Empty means rss.
func ParseFeedFormat(s string) (FeedFormat, error) {
	switch f := FeedFormat(strings.ToLower(s)); f {
	case "":
		return FeedFormatRSS, nil
	case FeedFormatRSS, FeedFormatAtom, FeedFormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unrecognised feed format [%s]", s)
	}
}

func (f FeedFormat) ContentType() string {
	switch f {
	case FeedFormatAtom:
		return "application/atom+xml"
	case FeedFormatJSON:
		return "application/feed+json"
	default:
		return "text/xml"
	}
}

type ExportBookmarksRequest struct {
	Format FeedFormat
}

type ExportedFeed struct {
	ContentType string
	Body        string
}

// ExportBookmarks renders the bookmark store as a syndication feed, newest bookmark first.
type ExportBookmarks struct {
	Retriever  datasources.BookmarkRetriever
	BaseURL    string
	AuthorName string
	Now        func() time.Time
}

var _ Command[ExportBookmarksRequest, ExportedFeed] = (*ExportBookmarks)(nil)

func (c *ExportBookmarks) Execute(ctx context.Context, req ExportBookmarksRequest) (ExportedFeed, error) {
	records, err := c.Retriever.RetrieveBookmarks(ctx)
	if err != nil {
		return ExportedFeed{}, fmt.Errorf("retrieving bookmarks: %w", err)
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	feed := &feeds.Feed{
		Title:       "Bookmarked articles",
		Link:        &feeds.Link{Href: c.BaseURL},
		Description: "Articles bookmarked from the developer feed",
		Author:      &feeds.Author{Name: c.AuthorName},
		Created:     now(),
	}

	for i := len(records) - 1; i >= 0; i-- {
		feed.Items = append(feed.Items, c.feedItem(records[i]))
	}
	if len(records) > 0 {
		feed.Updated = records[len(records)-1].BookmarkedAt
	}

	var body string
	switch req.Format {
	case FeedFormatAtom:
		body, err = feed.ToAtom()
	case FeedFormatJSON:
		body, err = feed.ToJSON()
	default:
		body, err = feed.ToRss()
	}
	if err != nil {
		return ExportedFeed{}, fmt.Errorf("formatting bookmarks as %s: %w", req.Format, err)
	}

	return ExportedFeed{ContentType: req.Format.ContentType(), Body: body}, nil
}

func (c *ExportBookmarks) feedItem(r domain.BookmarkRecord) *feeds.Item {
	id := strconv.FormatInt(r.ArticleID, 10)

	description := fmt.Sprintf("%d %s, %d %s",
		r.CommentsCount, domain.Pluralize(r.CommentsCount, "comment", ""),
		r.PositiveReactionsCount, domain.Pluralize(r.PositiveReactionsCount, "reaction", ""))
	if body := domain.Deref(r.Body); body != "" {
		description = body + "\n\n" + description
	}

	item := &feeds.Item{
		Id:          id,
		IsPermaLink: "false",
		Title:       domain.Deref(r.Title),
		Link:        &feeds.Link{Href: strings.TrimSuffix(c.BaseURL, "/") + "/v1/articles/" + id + "/comments"},
		Description: description,
		Author:      &feeds.Author{Name: domain.Deref(r.Author.Name)},
		Created:     r.BookmarkedAt,
	}
	if cover := domain.Deref(r.CoverImage); cover != "" {
		item.Enclosure = &feeds.Enclosure{Url: cover, Type: "image/*", Length: "0"}
	}
	return item
}
