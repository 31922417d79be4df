// Package wikipath finds the fewest-click route between two Wikipedia
// articles over a link graph loaded once into memory.
//
// What is wikipath?
//
//	An immutable, read-only link graph plus the queries you run against it:
//		• Loading: page table and link list from plain text, or a SQLite snapshot
//		• Traversal: breadth-first search with hooks, depth limits and cancellation
//		• Shortest paths: title to title, ties settled by link-list order
//		• Rankings: longest titles, most-linked pages, PageRank
//
// Everything is organized under these subpackages:
//
//	core/         immutable Graph of pages and ordered links, built with Builder
//	loader/       text parsers for "<id> <title>" and "<src> <dst>" sources
//	bfs/          breadth-first traversal and ShortestPath over core.Graph
//	pagerank/     iterative PageRank with damping and dangling-mass spread
//	wiki/         title-level Finder: FindShortestPath and page rankings
//	store/        SQLite snapshot that preserves adjacency order
//	cmd/wikipath  command-line interface
//
// Quick start:
//
//	f, err := wiki.New("pages.txt", "links.txt")
//	if err != nil {
//		log.Fatal(err)
//	}
//	path, ok, err := f.FindShortestPath(ctx, "Linguistics", "Compiler")
//	if ok {
//		fmt.Println(path) // Linguistics -> Noam_Chomsky -> Compiler
//	}
//
// Once built, a graph is never mutated, so any number of goroutines may
// query the same Finder.
package wikipath
