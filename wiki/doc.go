// Package wiki answers shortest-path and popularity questions over a
// Wikipedia link graph loaded once from a page table and a link list.
//
// A Finder holds a read-only core.Graph and is safe for concurrent queries.
// FindShortestPath resolves both titles (duplicate titles resolve to the
// lowest page ID) and runs a breadth-first search:
//
//   - (path, true, nil) when a route exists; start == goal gives [start].
//   - (nil, false, nil) when no route exists, or none within WithMaxDepth.
//   - (nil, false, err) for an unknown title (ErrTitleNotFound) or a
//     cancelled context.
//
// Among several shortest routes, the one reached first in link-list order
// is returned. Path.String joins titles with " -> ".
//
// The rankings LongestTitles, MostLinkedPages and MostPopularPages (PageRank)
// report on the same graph.
package wiki
