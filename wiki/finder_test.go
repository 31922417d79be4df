package wiki_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/wikipath/loader"
	"github.com/katalvlaran/wikipath/wiki"
)

// FinderSuite runs shortest-path queries over the small fixture dataset:
//
//	A→B, B→C, C→{D,A,E,F}, D→C, E→F, F→E
type FinderSuite struct {
	suite.Suite
	finder *wiki.Finder
}

func (s *FinderSuite) SetupSuite() {
	f, err := wiki.New(
		filepath.Join("testdata", "pages_small.txt"),
		filepath.Join("testdata", "links_small.txt"),
	)
	require.NoError(s.T(), err)
	s.finder = f
}

func (s *FinderSuite) find(start, goal string) (wiki.Path, bool) {
	path, ok, err := s.finder.FindShortestPath(context.Background(), start, goal)
	require.NoError(s.T(), err)
	return path, ok
}

// TestKnownPaths pins the expected shortest paths on the fixture.
func (s *FinderSuite) TestKnownPaths() {
	cases := []struct {
		start, goal string
		want        wiki.Path
	}{
		{"A", "B", wiki.Path{"A", "B"}},
		{"A", "C", wiki.Path{"A", "B", "C"}},
		{"C", "A", wiki.Path{"C", "A"}},
		{"A", "E", wiki.Path{"A", "B", "C", "E"}},
		{"A", "F", wiki.Path{"A", "B", "C", "F"}},
	}
	for _, tc := range cases {
		path, ok := s.find(tc.start, tc.goal)
		require.True(s.T(), ok, "%s -> %s", tc.start, tc.goal)
		require.Equal(s.T(), tc.want, path)
	}
}

// TestStartEqualsGoal yields a single-element path.
func (s *FinderSuite) TestStartEqualsGoal() {
	path, ok := s.find("D", "D")
	require.True(s.T(), ok)
	require.Equal(s.T(), wiki.Path{"D"}, path)
	require.Equal(s.T(), 0, path.Hops())
}

// TestNoPath is an absent result, not an error and not a placeholder.
func (s *FinderSuite) TestNoPath() {
	path, ok := s.find("E", "A")
	require.False(s.T(), ok)
	require.Nil(s.T(), path)
}

// TestUnknownTitle is reported as ErrTitleNotFound for either endpoint.
func (s *FinderSuite) TestUnknownTitle() {
	for _, q := range [][2]string{{"Nope", "A"}, {"A", "Nope"}} {
		path, ok, err := s.finder.FindShortestPath(context.Background(), q[0], q[1])
		require.ErrorIs(s.T(), err, wiki.ErrTitleNotFound)
		require.False(s.T(), ok)
		require.Nil(s.T(), path)
	}
}

// TestPathString uses the arrow separator.
func (s *FinderSuite) TestPathString() {
	path, _ := s.find("A", "E")
	require.Equal(s.T(), "A -> B -> C -> E", path.String())
}

// TestCancelled propagates context cancellation as an error.
func (s *FinderSuite) TestCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, ok, err := s.finder.FindShortestPath(ctx, "A", "F")
	require.ErrorIs(s.T(), err, context.Canceled)
	require.False(s.T(), ok)
}

func TestFinderSuite(t *testing.T) {
	suite.Run(t, new(FinderSuite))
}

func TestFinder_TieBreakFollowsLinkOrder(t *testing.T) {
	// Start→{Left,Right}, both →Goal. Left is listed first, so it wins.
	g, err := loader.Load(
		strings.NewReader("1 Start\n2 Right\n3 Left\n4 Goal\n"),
		strings.NewReader("1 3\n1 2\n2 4\n3 4\n"),
	)
	require.NoError(t, err)
	f, err := wiki.NewFromGraph(g)
	require.NoError(t, err)

	path, ok, err := f.FindShortestPath(context.Background(), "Start", "Goal")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, wiki.Path{"Start", "Left", "Goal"}, path)
}

func TestFinder_ShorterRouteWins(t *testing.T) {
	// A→X→Y→C is listed before A→B→C; the two-link route still wins.
	g, err := loader.Load(
		strings.NewReader("1 A\n2 B\n3 C\n4 X\n5 Y\n"),
		strings.NewReader("1 4\n4 5\n5 3\n1 2\n2 3\n"),
	)
	require.NoError(t, err)
	f, err := wiki.NewFromGraph(g)
	require.NoError(t, err)

	path, ok, err := f.FindShortestPath(context.Background(), "A", "C")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, wiki.Path{"A", "B", "C"}, path)
}

func TestFinder_DuplicateTitlesUseLowestID(t *testing.T) {
	// Two pages titled "Hub": id 7 links to Goal, id 3 does not.
	g, err := loader.Load(
		strings.NewReader("7 Hub\n3 Hub\n9 Goal\n"),
		strings.NewReader("7 9\n"),
	)
	require.NoError(t, err)
	f, err := wiki.NewFromGraph(g)
	require.NoError(t, err)

	id, err := f.Resolve("Hub")
	require.NoError(t, err)
	require.Equal(t, int64(3), id)

	_, ok, err := f.FindShortestPath(context.Background(), "Hub", "Goal")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFinder_MaxDepth(t *testing.T) {
	g, err := loader.Load(
		strings.NewReader("1 A\n2 B\n3 C\n"),
		strings.NewReader("1 2\n2 3\n"),
	)
	require.NoError(t, err)

	f, err := wiki.NewFromGraph(g, wiki.WithMaxDepth(1))
	require.NoError(t, err)
	_, ok, err := f.FindShortestPath(context.Background(), "A", "C")
	require.NoError(t, err)
	require.False(t, ok)

	_, err = wiki.NewFromGraph(g, wiki.WithMaxDepth(-1))
	require.ErrorIs(t, err, wiki.ErrOptionViolation)
}

func TestFinder_ConstructionErrors(t *testing.T) {
	_, err := wiki.NewFromGraph(nil)
	require.ErrorIs(t, err, wiki.ErrGraphNil)

	_, err = wiki.New(filepath.Join("testdata", "missing.txt"), filepath.Join("testdata", "links_small.txt"))
	require.Error(t, err)

	dir := t.TempDir()
	pages := filepath.Join(dir, "pages.txt")
	require.NoError(t, os.WriteFile(pages, []byte("1 A\nx B\n"), 0o644))
	_, err = wiki.New(pages, filepath.Join("testdata", "links_small.txt"))
	require.ErrorIs(t, err, loader.ErrBadID)
}

func TestFinder_LogsQueries(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	f, err := wiki.New(
		filepath.Join("testdata", "pages_small.txt"),
		filepath.Join("testdata", "links_small.txt"),
		wiki.WithLogger(zap.New(obsCore)),
	)
	require.NoError(t, err)
	require.Equal(t, 2, logs.FilterMessage("finished reading").Len())

	_, _, err = f.FindShortestPath(context.Background(), "A", "C")
	require.NoError(t, err)
	found := logs.FilterMessage("path found").All()
	require.Len(t, found, 1)
	require.Equal(t, int64(2), found[0].ContextMap()["hops"])
}
