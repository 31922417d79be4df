package wiki

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/wikipath/loader"
)

// Sentinel errors for Finder queries.
var (
	// ErrTitleNotFound is returned when a query title matches no page.
	ErrTitleNotFound = errors.New("wiki: title not found")

	// ErrGraphNil is returned by NewFromGraph for a nil graph.
	ErrGraphNil = errors.New("wiki: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("wiki: invalid option supplied")
)

// PathSeparator joins titles in Path.String.
const PathSeparator = " -> "

// Path is an ordered sequence of page titles from start to goal, inclusive.
type Path []string

// String renders the path as "A -> B -> C".
func (p Path) String() string {
	return strings.Join(p, PathSeparator)
}

// Hops returns the number of links traversed.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// PageCount pairs a page with an integer statistic such as its in-degree.
type PageCount struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Count int    `json:"count"`
}

// PageScore pairs a page with its PageRank score.
type PageScore struct {
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

// Option configures a Finder.
type Option func(*Options)

// Options holds Finder settings.
type Options struct {
	// Logger receives query diagnostics. Defaults to a no-op logger.
	Logger *zap.Logger

	// MaxDepth caps the number of links a path may contain; 0 means unlimited.
	MaxDepth int

	// LoadOptions are passed to the loader by New.
	LoadOptions []loader.Option

	err error
}

// DefaultOptions returns a silent Finder with no depth limit.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger routes query diagnostics to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxDepth limits paths to at most d links. d == 0 disables the limit.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithLoadOptions forwards opts to loader.LoadFiles when New reads the sources.
func WithLoadOptions(opts ...loader.Option) Option {
	return func(o *Options) {
		o.LoadOptions = append(o.LoadOptions, opts...)
	}
}
