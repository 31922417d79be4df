package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wikipath/core"
)

// mustGraph builds a graph from pages (id → title) and an ordered link list.
func mustGraph(t *testing.T, pages map[int64]string, links [][2]int64) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	for id, title := range pages {
		require.NoError(t, b.AddPage(id, title))
	}
	for _, l := range links {
		require.NoError(t, b.AddLink(l[0], l[1]))
	}
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

// TestGraph_LinksKeepInsertionOrder anchors the adjacency-order contract.
func TestGraph_LinksKeepInsertionOrder(t *testing.T) {
	g := mustGraph(t,
		map[int64]string{1: "A", 2: "B", 3: "C", 4: "D"},
		[][2]int64{{1, 4}, {1, 2}, {1, 3}, {1, 2}},
	)
	require.Equal(t, []int64{4, 2, 3, 2}, g.Links(1))
	require.Equal(t, 4, g.OutDegree(1))
	require.Empty(t, g.Links(2))
	require.Empty(t, g.Links(42))
	require.Equal(t, 4, g.Size())
	require.Equal(t, 4, g.Order())
}

// TestGraph_LinksIsCopy ensures callers cannot mutate the stored adjacency.
func TestGraph_LinksIsCopy(t *testing.T) {
	g := mustGraph(t, map[int64]string{1: "A", 2: "B"}, [][2]int64{{1, 2}})
	got := g.Links(1)
	got[0] = 99
	require.Equal(t, []int64{2}, g.Links(1))
}

// TestGraph_EachLinkStops verifies early termination of EachLink.
func TestGraph_EachLinkStops(t *testing.T) {
	g := mustGraph(t,
		map[int64]string{1: "A", 2: "B", 3: "C"},
		[][2]int64{{1, 2}, {1, 3}},
	)
	var seen []int64
	g.EachLink(1, func(to int64) bool {
		seen = append(seen, to)
		return false
	})
	require.Equal(t, []int64{2}, seen)
}

// TestGraph_TitleLookups covers Title, HasPage, Pages and PageIDs.
func TestGraph_TitleLookups(t *testing.T) {
	g := mustGraph(t, map[int64]string{3: "C", 1: "A", 2: "B"}, nil)

	title, ok := g.Title(2)
	require.True(t, ok)
	require.Equal(t, "B", title)
	_, ok = g.Title(9)
	require.False(t, ok)

	require.True(t, g.HasPage(1))
	require.False(t, g.HasPage(0))
	require.Equal(t, []int64{1, 2, 3}, g.PageIDs())
	require.Equal(t, []core.Page{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}, {ID: 3, Title: "C"}}, g.Pages())
}

// TestGraph_DuplicateTitlesResolveToLowestID pins the duplicate-title tie-break.
func TestGraph_DuplicateTitlesResolveToLowestID(t *testing.T) {
	g := mustGraph(t, map[int64]string{7: "Same", 3: "Same", 5: "Same", 1: "Other"}, nil)

	id, ok := g.ResolveTitle("Same")
	require.True(t, ok)
	require.Equal(t, int64(3), id)
	require.Equal(t, []int64{3, 5, 7}, g.IDsForTitle("Same"))

	_, ok = g.ResolveTitle("Missing")
	require.False(t, ok)
	require.Empty(t, g.IDsForTitle("Missing"))
}

// TestGraph_InDegrees counts incoming links, including zero-degree pages.
func TestGraph_InDegrees(t *testing.T) {
	g := mustGraph(t,
		map[int64]string{1: "A", 2: "B", 3: "C"},
		[][2]int64{{1, 2}, {3, 2}, {2, 3}},
	)
	require.Equal(t, map[int64]int{1: 0, 2: 2, 3: 1}, g.InDegrees())
}

// TestGraph_ConcurrentReads exercises lock-free reads from many goroutines.
func TestGraph_ConcurrentReads(t *testing.T) {
	g := mustGraph(t,
		map[int64]string{1: "A", 2: "B", 3: "C"},
		[][2]int64{{1, 2}, {2, 3}},
	)
	const readers = 32
	results := make(chan int, readers)
	var wg sync.WaitGroup
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, _ := g.ResolveTitle("B")
			results <- len(g.Links(id))
		}()
	}
	wg.Wait()
	close(results)
	for n := range results {
		require.Equal(t, 1, n)
	}
}
