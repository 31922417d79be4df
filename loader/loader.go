// File: loader.go
// Role: file and reader entry points and the line scanner.

package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/katalvlaran/wikipath/core"
)

// LoadFiles opens pagesPath and linksPath and builds the graph from them.
func LoadFiles(pagesPath, linksPath string, opts ...Option) (*core.Graph, error) {
	pages, err := os.Open(pagesPath)
	if err != nil {
		return nil, fmt.Errorf("loader: opening pages: %w", err)
	}
	defer pages.Close()

	links, err := os.Open(linksPath)
	if err != nil {
		return nil, fmt.Errorf("loader: opening links: %w", err)
	}
	defer links.Close()

	return load(pages, pagesPath, links, linksPath, buildOptions(opts))
}

// Load builds the graph from in-memory sources. Error messages refer to the
// sources as "pages" and "links".
func Load(pages, links io.Reader, opts ...Option) (*core.Graph, error) {
	return load(pages, "pages", links, "links", buildOptions(opts))
}

func load(pages io.Reader, pagesName string, links io.Reader, linksName string, o Options) (*core.Graph, error) {
	var bopts []core.BuilderOption
	if o.SkipDanglingLinks {
		bopts = append(bopts, core.WithSkipDanglingLinks())
	}
	b := core.NewBuilder(bopts...)

	n, err := readPages(pages, pagesName, b, o)
	if err != nil {
		return nil, err
	}
	o.Logger.Info("finished reading", zap.String("source", pagesName), zap.String("pages", humanize.Comma(int64(n))))

	m, err := readLinks(links, linksName, b, o)
	if err != nil {
		return nil, err
	}
	o.Logger.Info("finished reading", zap.String("source", linksName), zap.String("links", humanize.Comma(int64(m))))

	g, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("loader: building graph: %w", err)
	}
	if g.SkippedLinks() > 0 {
		o.Logger.Warn("dropped dangling links", zap.Int("count", g.SkippedLinks()))
	}

	return g, nil
}

// ReadPages parses a page table from r into b and returns the number of pages read.
func ReadPages(r io.Reader, source string, b *core.Builder, opts ...Option) (int, error) {
	return readPages(r, source, b, buildOptions(opts))
}

// ReadLinks parses a link list from r into b and returns the number of links read.
func ReadLinks(r io.Reader, source string, b *core.Builder, opts ...Option) (int, error) {
	return readLinks(r, source, b, buildOptions(opts))
}

func readPages(r io.Reader, source string, b *core.Builder, o Options) (int, error) {
	return scanPairs(r, source, o.MaxLineSize, func(first, second string) error {
		id, err := parseID(first)
		if err != nil {
			return err
		}

		return b.AddPage(id, second)
	})
}

func readLinks(r io.Reader, source string, b *core.Builder, o Options) (int, error) {
	return scanPairs(r, source, o.MaxLineSize, func(first, second string) error {
		from, err := parseID(first)
		if err != nil {
			return err
		}
		to, err := parseID(second)
		if err != nil {
			return err
		}

		return b.AddLink(from, to)
	})
}

// scanPairs splits every non-blank line of r into exactly two fields and
// hands them to fn. Errors from fn are wrapped in a *ParseError.
func scanPairs(r io.Reader, source string, maxLine int, fn func(first, second string) error) (int, error) {
	sc := bufio.NewScanner(r)
	// Scanner accepts tokens up to max(maxLine, cap(buf)), so buf must not
	// start out larger than the limit.
	sc.Buffer(make([]byte, 0, min(64*1024, maxLine)), maxLine)

	var line, count int
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return count, &ParseError{
				Source: source,
				Line:   line,
				Err:    fmt.Errorf("%w: want 2 fields, got %d", ErrMalformedLine, len(fields)),
			}
		}
		if err := fn(fields[0], fields[1]); err != nil {
			return count, &ParseError{Source: source, Line: line, Err: err}
		}
		count++
	}
	if err := sc.Err(); err != nil {
		return count, fmt.Errorf("loader: reading %s: %w", source, err)
	}

	return count, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadID, s)
	}

	return id, nil
}
