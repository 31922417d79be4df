// File: methods.go
// Role: Read-only query API over a frozen Graph.
// Concurrency:
//   - The Graph is immutable; every method is safe for concurrent use.
//   - Slices handed out are copies, so callers cannot corrupt shared state.

package core

// Title returns the title of page id and whether the page exists.
func (g *Graph) Title(id int64) (string, bool) {
	t, ok := g.titles[id]
	return t, ok
}

// HasPage reports whether id is present in the page table.
func (g *Graph) HasPage(id int64) bool {
	_, ok := g.titles[id]
	return ok
}

// Links returns the successors of id in stored order.
// A page with no outgoing links, or an unknown id, yields an empty slice.
func (g *Graph) Links(id int64) []int64 {
	src := g.links[id]
	out := make([]int64, len(src))
	copy(out, src)

	return out
}

// EachLink calls fn for every successor of id in stored order without
// copying the adjacency list. Iteration stops when fn returns false.
func (g *Graph) EachLink(id int64, fn func(to int64) bool) {
	for _, to := range g.links[id] {
		if !fn(to) {
			return
		}
	}
}

// OutDegree returns the number of stored links leaving id.
func (g *Graph) OutDegree(id int64) int {
	return len(g.links[id])
}

// PageIDs returns all page IDs in ascending order.
func (g *Graph) PageIDs() []int64 {
	out := make([]int64, len(g.ids))
	copy(out, g.ids)

	return out
}

// Pages returns every page in ascending ID order.
func (g *Graph) Pages() []Page {
	out := make([]Page, 0, len(g.ids))
	for _, id := range g.ids {
		out = append(out, Page{ID: id, Title: g.titles[id]})
	}

	return out
}

// ResolveTitle returns the lowest page ID carrying title.
func (g *Graph) ResolveTitle(title string) (int64, bool) {
	bucket := g.byTitle[title]
	if len(bucket) == 0 {
		return 0, false
	}

	return bucket[0], true
}

// IDsForTitle returns every page ID carrying title, ascending.
func (g *Graph) IDsForTitle(title string) []int64 {
	bucket := g.byTitle[title]
	out := make([]int64, len(bucket))
	copy(out, bucket)

	return out
}

// Order returns the number of pages.
func (g *Graph) Order() int { return len(g.ids) }

// Size returns the number of stored links.
func (g *Graph) Size() int { return g.size }

// SkippedLinks returns how many dangling links were dropped during Build.
func (g *Graph) SkippedLinks() int { return g.skipped }

// InDegrees returns the number of incoming links for every page.
// Pages without incoming links are present with a zero count.
// Complexity: O(V + E).
func (g *Graph) InDegrees() map[int64]int {
	deg := make(map[int64]int, len(g.ids))
	for _, id := range g.ids {
		deg[id] = 0
	}
	for _, succ := range g.links {
		for _, to := range succ {
			deg[to]++
		}
	}

	return deg
}
