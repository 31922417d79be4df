package wiki

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/wikipath/bfs"
	"github.com/katalvlaran/wikipath/core"
	"github.com/katalvlaran/wikipath/loader"
)

// Finder resolves page titles and runs breadth-first shortest-path queries.
// It holds only read-only state and is safe for concurrent queries.
type Finder struct {
	graph *core.Graph
	opts  Options
}

// New loads the page table and link list and returns a Finder over them.
// Unreadable or malformed sources fail construction.
// The Finder's logger is also handed to the loader unless WithLoadOptions
// supplies one.
func New(pagesPath, linksPath string, opts ...Option) (*Finder, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	loadOpts := append([]loader.Option{loader.WithLogger(o.Logger)}, o.LoadOptions...)

	g, err := loader.LoadFiles(pagesPath, linksPath, loadOpts...)
	if err != nil {
		return nil, err
	}

	return NewFromGraph(g, opts...)
}

// NewFromGraph wraps an already built graph.
func NewFromGraph(g *core.Graph, opts ...Option) (*Finder, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Finder{graph: g, opts: o}, nil
}

// Graph exposes the underlying read-only graph.
func (f *Finder) Graph() *core.Graph { return f.graph }

// Resolve maps a title to its page ID. Duplicate titles resolve to the
// lowest ID. Unknown titles return ErrTitleNotFound.
func (f *Finder) Resolve(title string) (int64, error) {
	id, ok := f.graph.ResolveTitle(title)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrTitleNotFound, title)
	}

	return id, nil
}

// FindShortestPath returns the fewest-links path from startTitle to goalTitle.
//
// Outcomes:
//   - (path, true, nil) when a path exists; start == goal yields [start].
//   - (nil, false, nil) when the search is exhausted without reaching goal.
//   - (nil, false, err) when a title is unknown (ErrTitleNotFound) or the
//     context is cancelled.
//
// Among several shortest paths, the one discovered first under the stored
// link order is returned.
func (f *Finder) FindShortestPath(ctx context.Context, startTitle, goalTitle string) (Path, bool, error) {
	start, err := f.Resolve(startTitle)
	if err != nil {
		return nil, false, err
	}
	goal, err := f.Resolve(goalTitle)
	if err != nil {
		return nil, false, err
	}

	began := time.Now()
	var visited int
	ids, err := bfs.ShortestPath(f.graph, start, goal,
		bfs.WithContext(ctx),
		bfs.WithMaxDepth(f.opts.MaxDepth),
		bfs.WithOnVisit(func(int64, int) error { visited++; return nil }),
	)
	log := f.opts.Logger.With(
		zap.String("start", startTitle),
		zap.String("goal", goalTitle),
		zap.Int("visited", visited),
		zap.Duration("elapsed", time.Since(began)),
	)
	switch {
	case errors.Is(err, bfs.ErrNoPath):
		log.Debug("no path")
		return nil, false, nil
	case err != nil:
		return nil, false, fmt.Errorf("wiki: searching %q -> %q: %w", startTitle, goalTitle, err)
	}

	path := make(Path, len(ids))
	for i, id := range ids {
		path[i], _ = f.graph.Title(id)
	}
	log.Debug("path found", zap.Int("hops", path.Hops()))

	return path, true, nil
}
