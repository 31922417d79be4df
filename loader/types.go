// File: types.go
// Role: ParseError, sentinel errors and functional options.

package loader

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Sentinel errors for malformed input.
var (
	// ErrMalformedLine indicates a line without exactly two whitespace-separated fields.
	ErrMalformedLine = errors.New("loader: malformed line")

	// ErrBadID indicates an id field that is not a base-10 integer.
	ErrBadID = errors.New("loader: id is not an integer")
)

// DefaultMaxLineSize bounds a single input line. Wikipedia titles are short,
// so this only guards against binary or corrupted input.
const DefaultMaxLineSize = 1 << 20

// ParseError reports where in which source a line failed to parse.
// It unwraps to ErrMalformedLine, ErrBadID, or a core construction sentinel.
type ParseError struct {
	Source string // file path or logical name of the input
	Line   int    // 1-based line number
	Err    error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("loader: %s:%d: %v", e.Source, e.Line, e.Err)
}

// Unwrap exposes the underlying sentinel to errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }

// Option configures loading.
type Option func(*Options)

// Options holds loader settings.
type Options struct {
	// Logger receives progress messages. Defaults to a no-op logger.
	Logger *zap.Logger

	// SkipDanglingLinks drops links to pages absent from the page table
	// instead of failing the load.
	SkipDanglingLinks bool

	// MaxLineSize is the longest accepted input line in bytes.
	MaxLineSize int
}

// DefaultOptions returns silent, strict options.
func DefaultOptions() Options {
	return Options{
		Logger:      zap.NewNop(),
		MaxLineSize: DefaultMaxLineSize,
	}
}

// WithLogger routes progress messages to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSkipDanglingLinks tolerates links whose endpoints are not in the page table.
func WithSkipDanglingLinks() Option {
	return func(o *Options) { o.SkipDanglingLinks = true }
}

// WithMaxLineSize overrides DefaultMaxLineSize. Non-positive values are ignored.
func WithMaxLineSize(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxLineSize = n
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
