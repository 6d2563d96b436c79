// Package fetch issues GET requests against a JSON API and aggregates them,
// either all-or-nothing (All, Collect) or one report per request (Settle).
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	narrow "github.com/reoring/narrow"
	"github.com/reoring/narrow/i18n"
)

// HTTPStatusError reports a response whose status rejects the request.
type HTTPStatusError struct {
	URL    string
	Status int
}

func (e *HTTPStatusError) Error() string {
	return i18n.T(narrow.CodeHTTPStatus, map[string]string{"status": strconv.Itoa(e.Status)}) + " (" + e.URL + ")"
}

// Issue converts the failure into the shared issue model.
func (e *HTTPStatusError) Issue() narrow.Issue {
	return narrow.Issue{
		Path:    "/",
		Code:    narrow.CodeHTTPStatus,
		Message: e.Error(),
		Params:  map[string]any{"status": e.Status, "url": e.URL},
	}
}

// As lets narrow.AsIssues and narrow.FirstCode see the failure as an
// http_status issue.
func (e *HTTPStatusError) As(target any) bool {
	if p, ok := target.(*narrow.Issues); ok {
		*p = narrow.Issues{e.Issue()}
		return true
	}
	return false
}

// Client performs the requests. It is safe for concurrent use.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithHTTPClient replaces the underlying *http.Client. Config.Timeout is not
// applied to a client supplied this way.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// New creates a Client from cfg.
func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// URL resolves path against the configured base URL. Absolute URLs pass through.
func (c *Client) URL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(c.cfg.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// Posts returns the /posts/<id> URLs for ids, in order.
func (c *Client) Posts(ids ...int) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = c.URL("/posts/" + strconv.Itoa(id))
	}
	return out
}

// GetJSON fetches url and parses the body as generic structured data.
func (c *Client) GetJSON(ctx context.Context, url string) (any, error) {
	var v any
	if err := c.GetInto(ctx, url, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// GetInto fetches url and decodes the body into dst.
func (c *Client) GetInto(ctx context.Context, url string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("fetch: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	c.logger.Debug("fetch request", zap.String("url", url))
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("fetch transport failure", zap.String("url", url), zap.Error(err))
		return narrow.Issues{{Path: "/", Code: narrow.CodeDependencyUnavailable, Message: i18n.T(narrow.CodeDependencyUnavailable, nil), Hint: url, Cause: err}}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		c.logger.Warn("fetch rejected", zap.String("url", url), zap.Int("status", resp.StatusCode))
		return &HTTPStatusError{URL: url, Status: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return narrow.Issues{{Path: "/", Code: narrow.CodeParseError, Message: i18n.T(narrow.CodeParseError, nil), Hint: url, Cause: err}}
	}
	c.logger.Debug("fetch ok", zap.String("url", url), zap.Int("status", resp.StatusCode))
	return nil
}
