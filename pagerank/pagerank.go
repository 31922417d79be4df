package pagerank

import (
	"math"

	"github.com/katalvlaran/wikipath/core"
)

// Compute runs PageRank over g.
//
// Implementation:
//   - Stage 1: Validate graph and options.
//   - Stage 2: Map page IDs to dense indexes so the inner loop works on slices.
//   - Stage 3: Propagate rank until every page moves by less than Tolerance
//     or MaxIterations is reached.
//
// An empty graph yields empty, converged Ranks.
func Compute(g *core.Graph, opts ...Option) (Ranks, error) {
	if g == nil {
		return Ranks{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Ranks{}, o.err
	}

	ids := g.PageIDs()
	n := len(ids)
	if n == 0 {
		return Ranks{Score: map[int64]float64{}, Converged: true}, nil
	}

	index := make(map[int64]int, n)
	for i, id := range ids {
		index[id] = i
	}
	succ := make([][]int, n)
	for i, id := range ids {
		g.EachLink(id, func(to int64) bool {
			succ[i] = append(succ[i], index[to])
			return true
		})
	}

	rank := make([]float64, n)
	next := make([]float64, n)
	for i := range rank {
		rank[i] = 1.0
	}

	d := o.Damping
	res := Ranks{}
	for res.Iterations < o.MaxIterations {
		if err := o.Ctx.Err(); err != nil {
			return Ranks{}, err
		}
		res.Iterations++

		var dangling float64
		for i := range next {
			next[i] = 0
		}
		for i, out := range succ {
			if len(out) == 0 {
				dangling += rank[i]
				continue
			}
			share := rank[i] / float64(len(out))
			for _, j := range out {
				next[j] += share
			}
		}

		spread := dangling / float64(n)
		converged := true
		for i := range next {
			next[i] = (1 - d) + d*(next[i]+spread)
			if math.Abs(next[i]-rank[i]) >= o.Tolerance {
				converged = false
			}
		}
		rank, next = next, rank

		if converged {
			res.Converged = true
			break
		}
	}

	res.Score = make(map[int64]float64, n)
	for i, id := range ids {
		res.Score[id] = rank[i]
	}

	return res, nil
}
