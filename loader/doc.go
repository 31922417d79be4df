// Package loader reads a page table (`<id> <title>` per line) and a link list
// (`<src> <dst>` per line) into an immutable core.Graph.
//
// Both sources are split on whitespace and must carry exactly two fields per
// line; titles therefore contain no spaces, as in the Wikipedia dumps, where
// underscores stand in for them. Blank lines are ignored. Any other malformed
// line aborts the load with a *ParseError naming the source and the 1-based
// line number and wrapping ErrMalformedLine or ErrBadID.
//
// Links may name pages that are missing from the page table. By default Build
// rejects them with core.ErrDanglingLink; WithSkipDanglingLinks drops and
// counts them instead (see core.Graph.SkippedLinks).
//
// Lines longer than MaxLineSize (DefaultMaxLineSize unless WithMaxLineSize
// says otherwise) fail with bufio.ErrTooLong.
//
// After each source the configured zap logger receives a "finished reading"
// entry with a human-readable count.
//
//	g, err := loader.LoadFiles("pages.txt", "links.txt",
//		loader.WithLogger(log),
//		loader.WithSkipDanglingLinks(),
//	)
package loader
