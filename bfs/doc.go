// Package bfs walks a core.Graph breadth-first. It is the engine behind
// "fewest clicks from page A to page B".
//
// Two entry points
//
//   - BFS(g, start, opts...) explores everything reachable from start and
//     returns a BFSResult: visit Order, Depth (links from start) and Parent
//     (the page that first queued each page). PathTo rebuilds a route.
//   - ShortestPath(g, start, goal, opts...) runs the same loop but returns as
//     soon as goal comes off the queue. An exhausted frontier yields ErrNoPath;
//     start == goal yields [start].
//
// Ordering
//
//	Links are expanded in the order core.Graph stored them, which is the
//	order of the link list. A page is queued by the first page that reaches
//	it and never again. When several routes share the minimum length, the
//	route returned is the one whose pages were queued first.
//
//	Parent links give the same answer as a queue holding whole partial
//	paths, while keeping memory proportional to the number of pages.
//
// Hooks and limits
//
//	OnEnqueue, OnDequeue and OnVisit observe the walk; OnVisit may stop it
//	by returning an error. FilterNeighbor hides individual links. MaxDepth
//	keeps the walk within d links of start. The context is polled before
//	every dequeue and link expansion, so a cancelled query returns promptly
//	with ctx.Err().
//
// Cost
//
//	O(V + E) time and O(V) memory for a full walk; ShortestPath stops early.
//
// Example
//
//	path, err := bfs.ShortestPath(g, startID, goalID,
//		bfs.WithContext(ctx),
//		bfs.WithMaxDepth(6),
//	)
//	switch {
//	case errors.Is(err, bfs.ErrNoPath):
//		// unreachable within the limit
//	case err != nil:
//		// ErrGraphNil, ErrStartVertexNotFound, ErrGoalVertexNotFound,
//		// ErrOptionViolation, a hook error or ctx.Err()
//	}
package bfs
