// Package pagerank ranks the pages of a core.Graph by iterative link-mass
// propagation.
//
// What
//
//   - Every page starts with rank 1.0, so the total mass equals Order().
//   - Each iteration a page splits its rank evenly over its outgoing links
//     (parallel links count once each).
//   - Pages without outgoing links spread their rank evenly over all pages,
//     keeping the total mass constant.
//   - With damping d: new = (1-d) + d·received. d == 1 is the plain
//     undamped propagation.
//
// Termination
//
//	Iteration stops when every page moved by less than Tolerance, or after
//	MaxIterations. Ranks.Converged tells the two apart.
//
// Options
//
//   - WithDamping(d)         d in [0,1], default 0.85.
//   - WithTolerance(eps)     eps > 0, default 1e-8.
//   - WithMaxIterations(n)   n > 0, default 1000.
//   - WithContext(ctx)       cancellation checked once per iteration.
//
// Complexity
//
//   - Time:   O(I·(V + E)) for I iterations.
//   - Memory: O(V).
package pagerank
