// File: bfs.go
// Role: the walker loop shared by BFS and ShortestPath.
// Determinism:
//   - Links are expanded in core.Graph storage order.
//   - A page is queued once, by the first page that reaches it.

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wikipath/core"
)

type queueItem struct {
	id    int64
	depth int
}

// walker holds the state of one traversal. res.Depth doubles as the seen set.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	head  int
	res   *BFSResult

	// goal, when hasGoal is set, stops the loop as soon as it is dequeued.
	goal    int64
	hasGoal bool
	found   bool
}

// BFS visits every page reachable from startID and returns the traversal.
// On a hook error or cancellation the partial result is returned with it.
func BFS(g *core.Graph, startID int64, opts ...Option) (*BFSResult, error) {
	w, err := newWalker(g, startID, opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.loop()
}

// ShortestPath returns the fewest-links path from start to goal, inclusive of
// both endpoints. Neighbors are expanded in stored adjacency order, so among
// several shortest paths the one discovered first under that order wins.
//
// Returns:
//   - [start] when start == goal.
//   - ErrNoPath when the frontier is exhausted (or pruned by MaxDepth /
//     FilterNeighbor) before goal is dequeued.
//   - ErrGraphNil, ErrStartVertexNotFound, ErrGoalVertexNotFound,
//     ErrOptionViolation, context errors, or wrapped hook errors.
//
// Complexity: O(V + E) time, O(V) memory.
func ShortestPath(g *core.Graph, start, goal int64, opts ...Option) ([]int64, error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasPage(goal) {
		return nil, ErrGoalVertexNotFound
	}
	w.goal, w.hasGoal = goal, true

	if err = w.loop(); err != nil {
		return nil, err
	}
	if !w.found {
		return nil, fmt.Errorf("%w from %d to %d", ErrNoPath, start, goal)
	}

	return walkParents(w.res.Parent, start, goal), nil
}

// newWalker validates inputs and options and seeds the queue with startID.
func newWalker(g *core.Graph, startID int64, opts []Option) (*walker, error) {
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

	if !g.HasPage(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.Order()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, 64),
		res: &BFSResult{
			Start:  startID,
			Order:  make([]int64, 0, 64),
			Depth:  make(map[int64]int, n/16+1),
			Parent: make(map[int64]int64, n/16+1),
		},
	}
	w.enqueue(startID, 0, startID, true)

	return w, nil
}

// enqueue marks id seen at depth d and records who reached it. The root has
// no parent entry.
func (w *walker) enqueue(id int64, d int, parent int64, root bool) {
	w.res.Depth[id] = d
	if !root {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

func (w *walker) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if w.hasGoal && item.id == w.goal {
			w.found = true
			return nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) dequeue() queueItem {
	item := w.queue[w.head]
	w.head++
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors queues every unseen, unfiltered link target of item,
// unless that would exceed MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}

	var err error
	w.graph.EachLink(item.id, func(nbr int64) bool {
		select {
		case <-w.ctx.Done():
			err = w.ctx.Err()
			return false
		default:
		}

		if _, seen := w.res.Depth[nbr]; seen || !w.opts.FilterNeighbor(item.id, nbr) {
			return true
		}
		w.enqueue(nbr, nextDepth, item.id, false)

		return true
	})

	return err
}
