// Package devto provides an HTTP client for the public dev.to (Forem) articles API.
package devto

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jbeshir/devfeed/internal/datasources"
	"github.com/jbeshir/devfeed/internal/domain"
)

const DefaultBaseURL = "https://dev.to"

var _ datasources.ArticleRepository = (*Client)(nil)

// Client fetches articles and comments. It holds no per-call state and is safe for
// concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client. Pass a nil httpClient for one with a 30s timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 30 * time.Second,
		}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) doRequest(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &domain.TransportError{Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Err: fmt.Errorf("executing request: %w", err)}
	}

	return resp, nil
}

func (c *Client) handleResponse(resp *http.Response, result any) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &domain.TransportError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("API error: %s", strings.TrimSpace(string(body))),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return &domain.TransportError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("decoding response: %w", err),
		}
	}

	return nil
}

// FetchArticles retrieves one page of published articles in server order.
func (c *Client) FetchArticles(ctx context.Context, page, perPage int) ([]domain.Article, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(perPage))

	resp, err := c.doRequest(ctx, "/api/articles", params)
	if err != nil {
		return nil, err
	}

	var articles []domain.Article
	if err := c.handleResponse(resp, &articles); err != nil {
		return nil, err
	}

	return articles, nil
}

// FetchComments retrieves the comment tree of an article.
func (c *Client) FetchComments(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	params := url.Values{}
	params.Set("article_id", strconv.FormatInt(articleID, 10))

	resp, err := c.doRequest(ctx, "/api/comments", params)
	if err != nil {
		return nil, err
	}

	var comments []domain.Comment
	if err := c.handleResponse(resp, &comments); err != nil {
		return nil, err
	}

	return comments, nil
}
