package wiki

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/wikipath/pagerank"
)

// DefaultLongestTitles is the number of titles LongestTitles returns for n <= 0.
const DefaultLongestTitles = 15

// LongestTitles returns up to n titles ordered by descending length in
// characters. Titles containing "_" (multi-word titles) are skipped.
// Equal lengths are ordered by ascending page ID.
func (f *Finder) LongestTitles(n int) []string {
	if n <= 0 {
		n = DefaultLongestTitles
	}

	pages := f.graph.Pages()
	sort.SliceStable(pages, func(i, j int) bool {
		return utf8.RuneCountInString(pages[i].Title) > utf8.RuneCountInString(pages[j].Title)
	})

	out := make([]string, 0, n)
	for _, p := range pages {
		if len(out) == n {
			break
		}
		if strings.Contains(p.Title, "_") {
			continue
		}
		out = append(out, p.Title)
	}

	return out
}

// MostLinkedPages returns every page whose in-degree equals the maximum,
// in ascending ID order. An empty graph yields nil.
func (f *Finder) MostLinkedPages() []PageCount {
	deg := f.graph.InDegrees()

	best := -1
	for _, d := range deg {
		if d > best {
			best = d
		}
	}

	var out []PageCount
	for _, id := range f.graph.PageIDs() {
		if deg[id] == best {
			title, _ := f.graph.Title(id)
			out = append(out, PageCount{ID: id, Title: title, Count: best})
		}
	}

	return out
}

// MostPopularPages ranks pages with PageRank and returns the top n
// (all pages for n <= 0), ties broken by ascending ID.
func (f *Finder) MostPopularPages(n int, opts ...pagerank.Option) ([]PageScore, error) {
	ranks, err := pagerank.Compute(f.graph, opts...)
	if err != nil {
		return nil, err
	}
	if !ranks.Converged {
		f.opts.Logger.Sugar().Warnf("pagerank stopped after %d iterations without converging", ranks.Iterations)
	}

	top := ranks.Top(n)
	out := make([]PageScore, len(top))
	for i, r := range top {
		title, _ := f.graph.Title(r.ID)
		out[i] = PageScore{ID: r.ID, Title: title, Score: r.Score}
	}

	return out, nil
}
