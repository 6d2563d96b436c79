package fetch

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// All fetches every url concurrently and returns the bodies in request order.
// The first failure cancels the outstanding requests and is returned alone;
// no partial result is returned.
func (c *Client) All(ctx context.Context, urls []string) ([]any, error) {
	return Collect[any](ctx, c, urls)
}

// Collect is All with each body decoded into T.
func Collect[T any](ctx context.Context, c *Client, urls []string) ([]T, error) {
	g, gctx := errgroup.WithContext(ctx)
	if c.cfg.MaxConcurrency > 0 {
		g.SetLimit(c.cfg.MaxConcurrency)
	}
	out := make([]T, len(urls))
	for i, u := range urls {
		g.Go(func() error {
			return c.GetInto(gctx, u, &out[i])
		})
	}
	if err := g.Wait(); err != nil {
		c.logger.Warn("fetch batch failed", zap.Int("requests", len(urls)), zap.Error(err))
		return nil, err
	}
	c.logger.Debug("fetch batch ok", zap.Int("requests", len(urls)))
	return out, nil
}

// Result is the outcome of one request in a Settle batch.
type Result struct {
	URL   string
	Value any
	Err   error
}

// OK reports whether the request succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Settle fetches every url concurrently and reports each outcome on its own,
// in request order. Failures do not cancel the other requests.
func (c *Client) Settle(ctx context.Context, urls []string) []Result {
	var g errgroup.Group
	if c.cfg.MaxConcurrency > 0 {
		g.SetLimit(c.cfg.MaxConcurrency)
	}
	out := make([]Result, len(urls))
	for i, u := range urls {
		g.Go(func() error {
			v, err := c.GetJSON(ctx, u)
			out[i] = Result{URL: u, Value: v, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// Succeeded returns the values of the successful results, in order.
func Succeeded(rs []Result) []any {
	var out []any
	for _, r := range rs {
		if r.OK() {
			out = append(out, r.Value)
		}
	}
	return out
}

// Failed returns the errors of the failed results, in order.
func Failed(rs []Result) []error {
	var out []error
	for _, r := range rs {
		if !r.OK() {
			out = append(out, r.Err)
		}
	}
	return out
}
