package pagerank

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for PageRank configuration.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("pagerank: graph is nil")

	// ErrBadDamping is returned when the damping factor lies outside [0, 1].
	ErrBadDamping = errors.New("pagerank: damping must be in [0, 1]")

	// ErrBadTolerance is returned when the convergence tolerance is not positive.
	ErrBadTolerance = errors.New("pagerank: tolerance must be positive")

	// ErrBadIterations is returned when the iteration cap is not positive.
	ErrBadIterations = errors.New("pagerank: max iterations must be positive")
)

// Defaults used by DefaultOptions.
const (
	DefaultDamping       = 0.85
	DefaultTolerance     = 1e-8
	DefaultMaxIterations = 1000
)

// Options configures Compute.
type Options struct {
	Ctx           context.Context
	Damping       float64
	Tolerance     float64
	MaxIterations int

	err error
}

// Option is a functional option for Compute.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Damping:       DefaultDamping,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// WithContext sets a context checked once per iteration.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDamping sets the damping factor d.
func WithDamping(d float64) Option {
	return func(o *Options) {
		if d < 0 || d > 1 {
			o.err = fmt.Errorf("%w: got %g", ErrBadDamping, d)
			return
		}
		o.Damping = d
	}
}

// WithTolerance sets the per-page convergence threshold.
func WithTolerance(eps float64) Option {
	return func(o *Options) {
		if eps <= 0 {
			o.err = fmt.Errorf("%w: got %g", ErrBadTolerance, eps)
			return
		}
		o.Tolerance = eps
	}
}

// WithMaxIterations caps the number of propagation rounds.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadIterations, n)
			return
		}
		o.MaxIterations = n
	}
}

// Rank pairs a page ID with its score.
type Rank struct {
	ID    int64
	Score float64
}

// Ranks is the result of Compute.
type Ranks struct {
	// Score maps every page ID to its rank.
	Score map[int64]float64

	// Iterations is the number of propagation rounds performed.
	Iterations int

	// Converged reports whether Tolerance was met before MaxIterations.
	Converged bool
}

// Top returns the n highest-ranked pages, ties broken by ascending ID.
// n <= 0 or n > len(Score) returns every page.
func (r Ranks) Top(n int) []Rank {
	out := make([]Rank, 0, len(r.Score))
	for id, s := range r.Score {
		out = append(out, Rank{ID: id, Score: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ID < out[j].ID
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}

	return out
}
