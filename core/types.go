// Package core declares Page, Graph, Builder, BuilderOption and the
// sentinel errors shared by the graph construction API.
package core

import (
	"errors"
)

// Sentinel errors for core graph construction.
var (
	// ErrEmptyTitle indicates that a page was added without a title.
	ErrEmptyTitle = errors.New("core: page title is empty")

	// ErrDuplicatePage indicates that the same page ID was added twice.
	ErrDuplicatePage = errors.New("core: duplicate page id")

	// ErrDanglingLink indicates that a link references a page ID absent from the page table.
	ErrDanglingLink = errors.New("core: link references unknown page")

	// ErrBuilderSealed indicates that a Builder was mutated after Build returned.
	ErrBuilderSealed = errors.New("core: builder already built")
)

// Page is a single vertex of the link graph.
type Page struct {
	// ID is the numeric page identifier from the page table.
	ID int64

	// Title is the page label used for lookups. Titles need not be unique.
	Title string
}

// link is a pending src→dst edge recorded by the Builder.
type link struct {
	from, to int64
}

// BuilderOption configures a Builder before any page or link is added.
type BuilderOption func(b *Builder)

// WithSkipDanglingLinks makes Build drop links whose endpoints are missing
// from the page table instead of failing with ErrDanglingLink.
func WithSkipDanglingLinks() BuilderOption {
	return func(b *Builder) { b.skipDangling = true }
}

// WithSkippedLinks seeds Graph.SkippedLinks with n links dropped by an
// earlier load, as recorded in a snapshot. Build adds its own drops on top.
// Negative values are ignored.
func WithSkippedLinks(n int) BuilderOption {
	return func(b *Builder) {
		if n > 0 {
			b.priorSkipped = n
		}
	}
}

// WithExpectedPages pre-sizes the page maps. Non-positive values are ignored.
func WithExpectedPages(n int) BuilderOption {
	return func(b *Builder) {
		if n > 0 {
			b.expectedPages = n
		}
	}
}

// WithExpectedLinks pre-sizes the pending link buffer. Non-positive values are ignored.
func WithExpectedLinks(n int) BuilderOption {
	return func(b *Builder) {
		if n > 0 {
			b.expectedLinks = n
		}
	}
}

// Graph is the frozen, read-only page graph.
//
// titles maps page ID → title; links maps page ID → successors in insertion
// order; byTitle is the reverse index title → IDs sorted ascending.
// A Graph is never mutated after Build, so it needs no locking.
type Graph struct {
	titles  map[int64]string
	links   map[int64][]int64
	byTitle map[string][]int64

	ids     []int64 // ascending page IDs
	size    int     // number of stored links
	skipped int     // dangling links dropped, including any WithSkippedLinks carry-over
}
