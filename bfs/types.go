// File: types.go
// Role: sentinel errors, functional options and the traversal result.

package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors. Callers match them with errors.Is.
var (
	// ErrStartVertexNotFound: the start page is not in the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGoalVertexNotFound: the ShortestPath goal is not in the graph.
	ErrGoalVertexNotFound = errors.New("bfs: goal vertex not found")

	// ErrGraphNil: a nil *core.Graph was passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation: an Option rejected its argument.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath: the frontier ran dry before the goal was dequeued.
	ErrNoPath = errors.New("bfs: no path")
)

// Option mutates Options. A rejected argument is remembered and reported as
// ErrOptionViolation by BFS or ShortestPath, never by the Option itself.
type Option func(*Options)

// Options carries the traversal limits and hooks.
type Options struct {
	// Ctx is checked before every dequeue and every link expansion.
	Ctx context.Context

	// OnEnqueue sees a page and its depth when it joins the queue.
	OnEnqueue func(id int64, depth int)

	// OnDequeue sees a page right before it is visited.
	OnDequeue func(id int64, depth int)

	// OnVisit runs for each visited page; a non-nil error aborts the search.
	OnVisit func(id int64, depth int) error

	// MaxDepth bounds the number of links from start; 0 means unbounded.
	MaxDepth int

	// FilterNeighbor drops the link curr→neighbor when it returns false.
	FilterNeighbor func(curr, neighbor int64) bool

	err error
}

// DefaultOptions: background context, unbounded depth, every link followed,
// hooks that do nothing.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(int64, int) {},
		OnDequeue:      func(int64, int) {},
		OnVisit:        func(int64, int) error { return nil },
		FilterNeighbor: func(_, _ int64) bool { return true },
	}
}

// WithContext installs ctx for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue installs the enqueue hook.
func WithOnEnqueue(fn func(id int64, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue installs the dequeue hook.
func WithOnDequeue(fn func(id int64, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit installs the visit hook. Its error is wrapped and returned.
func WithOnVisit(fn func(id int64, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth keeps the search within d links of the start.
// d == 0 lifts the bound; d < 0 is rejected with ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor installs a per-link predicate.
func WithFilterNeighbor(fn func(curr, neighbor int64) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult is what a full traversal leaves behind.
//
// Order lists visited pages in visit sequence. Depth and Parent are keyed
// by every enqueued page; Parent has no entry for Start.
type BFSResult struct {
	Start  int64
	Order  []int64
	Depth  map[int64]int
	Parent map[int64]int64
}

// PathTo returns the start → dest page sequence recorded by the traversal,
// or ErrNoPath when dest was never reached.
func (r *BFSResult) PathTo(dest int64) ([]int64, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}

	return walkParents(r.Parent, r.Start, dest), nil
}

// walkParents climbs parent from dest to start and reverses the result.
func walkParents(parent map[int64]int64, start, dest int64) []int64 {
	path := []int64{dest}
	for cur := dest; cur != start; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
