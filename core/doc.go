// Package core defines the immutable page graph that every other wikipath
// package operates on.
//
// A Graph G = (V, E) is a directed, unweighted link graph:
//
//   - V: pages, each identified by an int64 ID and labeled with a Title.
//   - E: links src→dst, stored per page as an ordered adjacency list.
//
// Graphs are assembled with a Builder and frozen by Builder.Build. After that
// point nothing mutates the Graph, so it can be shared across goroutines
// without locks (load once, query many).
//
// Determinism:
//
//	– Links(id) returns successors in the order the links were added.
//	  Traversals that enqueue neighbors in that order break ties between
//	  equal-length paths reproducibly.
//	– PageIDs() returns IDs in ascending order.
//	– ResolveTitle(title) returns the lowest ID carrying that title, so
//	  duplicate titles never resolve by map iteration order.
//
// Builder options (BuilderOption):
//
//	– WithSkipDanglingLinks()
//	    Drop links whose endpoints are missing from the page table instead
//	    of failing Build with ErrDanglingLink. Dropped links are counted in
//	    Graph.SkippedLinks().
//
//	– WithExpectedPages(n), WithExpectedLinks(n)
//	    Pre-size internal maps for large dumps.
//
// Core methods:
//
//	// Construction
//	NewBuilder(opts ...BuilderOption) *Builder
//	(*Builder).AddPage(id int64, title string) error   // O(1)
//	(*Builder).AddLink(from, to int64) error           // O(1) amortized
//	(*Builder).Build() (*Graph, error)                 // O(V + E)
//
//	// Queries (read-only)
//	Title(id) (string, bool)      HasPage(id) bool
//	Links(id) []int64             PageIDs() []int64
//	ResolveTitle(t) (int64, bool) IDsForTitle(t) []int64
//	Order() int                   Size() int
//	InDegrees() map[int64]int     SkippedLinks() int
//
// Errors:
//
//	ErrEmptyTitle     - AddPage called with an empty title.
//	ErrDuplicatePage  - AddPage called twice for the same ID.
//	ErrDanglingLink   - a link references an ID absent from the page table.
//	ErrBuilderSealed  - the Builder was used after Build.
package core
