package command

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/jbeshir/devfeed/internal/datasources"
	"github.com/jbeshir/devfeed/internal/domain"
	"github.com/microcosm-cc/bluemonday"
)

// GetArticleCommentsRequest is the request for the GetArticleComments command.
type GetArticleCommentsRequest struct {
	ArticleID int64
}

// GetArticleComments fetches an article's comment tree for the detail view and fills in a
// plain-text body for every comment, replies included.
type GetArticleComments struct {
	Fetcher datasources.CommentFetcher
	policy  *bluemonday.Policy
}

var _ Command[GetArticleCommentsRequest, []domain.Comment] = (*GetArticleComments)(nil)

func NewGetArticleComments(fetcher datasources.CommentFetcher) *GetArticleComments {
	return &GetArticleComments{
		Fetcher: fetcher,
		policy:  bluemonday.StrictPolicy(),
	}
}

func (c *GetArticleComments) Execute(ctx context.Context, req GetArticleCommentsRequest) ([]domain.Comment, error) {
	logger := domain.LoggerFromContext(ctx)

	comments, err := c.Fetcher.FetchComments(ctx, req.ArticleID)
	if err != nil {
		return nil, fmt.Errorf("fetching comments for article [%d]: %w", req.ArticleID, err)
	}
	if comments == nil {
		comments = []domain.Comment{}
	}

	c.fillBodyText(comments)

	logger.DebugContext(ctx, "fetched article comments",
		"article_id", req.ArticleID, "count", domain.CountComments(comments))
	return comments, nil
}

func (c *GetArticleComments) fillBodyText(comments []domain.Comment) {
	for i := range comments {
		if comments[i].BodyHTML != nil {
			comments[i].BodyText = domain.Ptr(HTMLToText(c.policy, *comments[i].BodyHTML))
		}
		c.fillBodyText(comments[i].Children)
	}
}

var (
	blockBreak = regexp.MustCompile(`(?i)<br\s*/?>|</(p|div|li|blockquote|pre|h[1-6])>`)
	blankLines = regexp.MustCompile(`\n{3,}`)
)

// HTMLToText strips all markup from s with the given strict policy, keeps paragraph and
// line breaks, and decodes entities.
func HTMLToText(policy *bluemonday.Policy, s string) string {
	s = blockBreak.ReplaceAllString(s, "$0\n")
	s = html.UnescapeString(policy.Sanitize(s))

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	s = strings.Join(lines, "\n")

	return strings.TrimSpace(blankLines.ReplaceAllString(s, "\n\n"))
}
