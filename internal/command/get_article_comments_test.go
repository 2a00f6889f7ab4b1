package command

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/jbeshir/devfeed/internal/datasources/mocks"
	"github.com/jbeshir/devfeed/internal/domain"
	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func TestHTMLToText(t *testing.T) {
	policy := bluemonday.StrictPolicy()

	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "plain_text",
			input:    "just words",
			expected: "just words",
		},
		{
			name:     "inline_markup_and_entities",
			input:    "<p>Use <code>go vet</code> &amp; <a href=\"https://x\">lint</a> &#39;often&#39;</p>",
			expected: "Use go vet & lint 'often'",
		},
		{
			name:     "paragraphs_and_breaks",
			input:    "<p>First   line<br>second</p>\n\n<p>Third</p>",
			expected: "First line\nsecond\n\nThird",
		},
		{
			name:     "script_dropped",
			input:    "<p>ok</p><script>alert(1)</script>",
			expected: "ok",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, HTMLToText(policy, tc.input))
		})
	}
}

func TestGetArticleComments_Execute(t *testing.T) {
	ctx := testContext()

	t.Run("fills_body_text_recursively", func(t *testing.T) {
		fetcher := mocks.NewMockCommentFetcher(t)
		fetcher.EXPECT().FetchComments(mock.Anything, int64(42)).Return([]domain.Comment{
			{
				IDCode:   domain.Ptr("a1"),
				BodyHTML: domain.Ptr("<p>Great &amp; clear</p>"),
				Children: []domain.Comment{
					{
						IDCode:   domain.Ptr("b1"),
						BodyHTML: domain.Ptr("<p>Agreed</p>"),
						Children: []domain.Comment{{IDCode: domain.Ptr("c1"), BodyHTML: domain.Ptr("<em>+1</em>")}},
					},
				},
			},
			{IDCode: domain.Ptr("a2"), BodyHTML: domain.Ptr("<p>Thanks</p>")},
			{IDCode: domain.Ptr("a3"), BodyHTML: domain.Ptr("")},
			{IDCode: domain.Ptr("a4")},
		}, nil).Once()

		comments, err := NewGetArticleComments(fetcher).Execute(ctx, GetArticleCommentsRequest{ArticleID: 42})
		require.NoError(t, err)
		require.Len(t, comments, 4)

		assert.Equal(t, 6, domain.CountComments(comments))
		assert.Equal(t, domain.Ptr("Great & clear"), comments[0].BodyText)
		assert.Equal(t, domain.Ptr("Agreed"), comments[0].Children[0].BodyText)
		assert.Equal(t, domain.Ptr("+1"), comments[0].Children[0].Children[0].BodyText)
		assert.Equal(t, domain.Ptr("Thanks"), comments[1].BodyText)
		// An empty body stays empty; an absent one stays absent.
		assert.Equal(t, domain.Ptr(""), comments[2].BodyText)
		assert.Nil(t, comments[3].BodyText)
	})

	t.Run("no_comments", func(t *testing.T) {
		fetcher := mocks.NewMockCommentFetcher(t)
		fetcher.EXPECT().FetchComments(mock.Anything, int64(7)).Return(nil, nil).Once()

		comments, err := NewGetArticleComments(fetcher).Execute(ctx, GetArticleCommentsRequest{ArticleID: 7})
		require.NoError(t, err)
		assert.NotNil(t, comments)
		assert.Empty(t, comments)
	})

	t.Run("fetch_error", func(t *testing.T) {
		fetchErr := &domain.TransportError{StatusCode: 404, Err: errors.New("not found")}
		fetcher := mocks.NewMockCommentFetcher(t)
		fetcher.EXPECT().FetchComments(mock.Anything, int64(7)).Return(nil, fetchErr).Once()

		_, err := NewGetArticleComments(fetcher).Execute(ctx, GetArticleCommentsRequest{ArticleID: 7})
		require.Error(t, err)

		var transportErr *domain.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, 404, transportErr.StatusCode)
	})
}
