package wiki_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/wikipath/loader"
	"github.com/katalvlaran/wikipath/wiki"
)

// ExampleFinder_FindShortestPath loads a tiny link graph and prints the
// fewest-click route between two pages.
func ExampleFinder_FindShortestPath() {
	pages := strings.NewReader("1 Linguistics\n2 Noam_Chomsky\n3 Compiler\n4 Iraq\n")
	links := strings.NewReader("1 2\n2 3\n1 4\n")

	g, err := loader.Load(pages, links)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	f, _ := wiki.NewFromGraph(g)

	path, ok, err := f.FindShortestPath(context.Background(), "Linguistics", "Compiler")
	fmt.Println(path, ok, err)

	_, ok, err = f.FindShortestPath(context.Background(), "Iraq", "Compiler")
	fmt.Println(ok, err)
	// Output:
	// Linguistics -> Noam_Chomsky -> Compiler true <nil>
	// false <nil>
}
