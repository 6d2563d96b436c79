package quest

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/reoring/narrow/fetch"
)

// RepoInfo is the subset of the GitHub repository payload the roster shows.
type RepoInfo struct {
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Stars       int    `json:"stargazers_count"`
	Language    string `json:"language"`
}

// Row pairs an item with its repository lore.
type Row struct {
	Item Item
	Repo RepoInfo
}

// Gatherer looks up item repositories through a fetch.Client.
type Gatherer struct {
	client *fetch.Client
	logger *zap.Logger
	debug  bool
}

// GathererOption configures a Gatherer.
type GathererOption func(*Gatherer)

func WithGathererLogger(l *zap.Logger) GathererOption {
	return func(g *Gatherer) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithDebug logs every row as it is assembled.
func WithDebug(on bool) GathererOption { return func(g *Gatherer) { g.debug = on } }

func NewGatherer(c *fetch.Client, opts ...GathererOption) *Gatherer {
	g := &Gatherer{client: c, logger: zap.NewNop()}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Gather fetches every item's repository in parallel. Any failure aborts the
// whole batch; items without a Repo are skipped.
func (g *Gatherer) Gather(ctx context.Context, items []Item) ([]Row, error) {
	var withRepo []Item
	var urls []string
	for _, it := range items {
		if it.Repo == "" {
			continue
		}
		withRepo = append(withRepo, it)
		urls = append(urls, g.client.URL("/repos/"+it.Repo))
	}

	infos, err := fetch.Collect[RepoInfo](ctx, g.client, urls)
	if err != nil {
		return nil, fmt.Errorf("gather %d items: %w", len(withRepo), err)
	}

	rows := make([]Row, len(withRepo))
	for i := range withRepo {
		rows[i] = Row{Item: withRepo[i], Repo: infos[i]}
		if g.debug {
			g.logger.Debug("row", zap.String("item", withRepo[i].Name), zap.String("repo", infos[i].FullName), zap.Int("stars", infos[i].Stars))
		}
	}
	return rows, nil
}
