// File: builder.go
// Role: Builder lifecycle (NewBuilder, AddPage, AddLink, Build).
// Determinism:
//   - Links keep the order in which AddLink was called for each source.
//   - byTitle buckets and the ID index are sorted ascending at Build time.

package core

import (
	"fmt"
	"sort"
)

// Builder accumulates pages and links and produces an immutable Graph.
//
// Links may be added before or after their endpoint pages; endpoint
// validation is deferred to Build. A Builder is single-use and not safe for
// concurrent mutation.
type Builder struct {
	titles map[int64]string
	links  []link

	skipDangling  bool
	priorSkipped  int
	expectedPages int
	expectedLinks int

	sealed bool
}

// NewBuilder returns an empty Builder configured by opts.
// Complexity: O(1) plus any pre-sizing requested via options.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	b.titles = make(map[int64]string, b.expectedPages)
	b.links = make([]link, 0, b.expectedLinks)

	return b
}

// AddPage registers page id with the given title.
//
// Errors:
//   - ErrBuilderSealed if Build was already called.
//   - ErrEmptyTitle if title == "".
//   - ErrDuplicatePage if id was already registered.
func (b *Builder) AddPage(id int64, title string) error {
	if b.sealed {
		return ErrBuilderSealed
	}
	if title == "" {
		return fmt.Errorf("%w: id %d", ErrEmptyTitle, id)
	}
	if _, ok := b.titles[id]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicatePage, id)
	}
	b.titles[id] = title

	return nil
}

// AddLink records a directed link from → to. Parallel links and self-links
// are kept verbatim; traversals deduplicate through their visited sets.
func (b *Builder) AddLink(from, to int64) error {
	if b.sealed {
		return ErrBuilderSealed
	}
	b.links = append(b.links, link{from: from, to: to})

	return nil
}

// Build validates pending links, freezes the Builder and returns the Graph.
//
// Implementation:
//   - Stage 1: Reject reuse of a sealed Builder.
//   - Stage 2: Build the sorted ID index and the title → IDs reverse index.
//   - Stage 3: Append each link to its source adjacency list, failing on or
//     counting dangling endpoints.
//
// Complexity: O(V log V + E).
func (b *Builder) Build() (*Graph, error) {
	if b.sealed {
		return nil, ErrBuilderSealed
	}

	g := &Graph{
		titles:  b.titles,
		links:   make(map[int64][]int64, len(b.titles)),
		byTitle: make(map[string][]int64, len(b.titles)),
		ids:     make([]int64, 0, len(b.titles)),
		skipped: b.priorSkipped,
	}

	for id, title := range b.titles {
		g.ids = append(g.ids, id)
		g.byTitle[title] = append(g.byTitle[title], id)
	}
	sort.Slice(g.ids, func(i, j int) bool { return g.ids[i] < g.ids[j] })
	for _, bucket := range g.byTitle {
		if len(bucket) > 1 {
			sort.Slice(bucket, func(i, j int) bool { return bucket[i] < bucket[j] })
		}
	}

	for i, l := range b.links {
		_, okFrom := b.titles[l.from]
		_, okTo := b.titles[l.to]
		if !okFrom || !okTo {
			if b.skipDangling {
				g.skipped++
				continue
			}
			return nil, fmt.Errorf("%w: link #%d %d -> %d", ErrDanglingLink, i+1, l.from, l.to)
		}
		g.links[l.from] = append(g.links[l.from], l.to)
		g.size++
	}

	b.sealed = true
	b.links = nil

	return g, nil
}
