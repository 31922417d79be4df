package main

import (
	"errors"
	"io"

	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wikipath/wiki"
)

// PathResult is the response for the path command.
type PathResult struct {
	Start string   `json:"start"`
	Goal  string   `json:"goal"`
	Found bool     `json:"found"`
	Hops  int      `json:"hops"`
	Path  []string `json:"path"`
}

func newPathCmd(c *cli) *cobra.Command {
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "path START GOAL",
		Short: "Find the fewest-click path between two pages",
		Long: `Find the fewest-click path between two page titles.

Titles are matched exactly. When several shortest paths exist, the one
reached first in link-list order is reported.

Exit codes:
  4  a title matches no page
  5  no path connects the two pages

Examples:
  wikipath path Linguistics Compiler
  wikipath path --human --max-depth 6 Linguistics Iraq`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("max-depth") {
				maxDepth = c.cfg.Search.MaxDepth
			}
			return c.runPath(cmd, args[0], args[1], maxDepth)
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Maximum number of clicks (0 = unlimited)")

	return cmd
}

func (c *cli) runPath(cmd *cobra.Command, start, goal string, maxDepth int) error {
	if maxDepth < 0 {
		return exitWith(ExitError, "--max-depth cannot be negative (%d)", maxDepth)
	}
	f, err := c.newFinder(cmd.Context(), maxDepth)
	if err != nil {
		return err
	}

	path, ok, err := f.FindShortestPath(cmd.Context(), start, goal)
	switch {
	case errors.Is(err, wiki.ErrTitleNotFound):
		return exitWith(ExitNotFound, "%w", err)
	case err != nil:
		return exitWith(ExitError, "%w", err)
	}

	res := PathResult{Start: start, Goal: goal, Found: ok, Hops: path.Hops(), Path: path}
	if res.Path == nil {
		res.Path = []string{}
	}
	if err := c.print(res, func(w io.Writer) {
		if !ok {
			outputHuman(w, "No path from %q to %q\n", start, goal)
			return
		}
		outputHuman(w, "%s\n", path)
		outputHuman(w, "(%s)\n", english.Plural(path.Hops(), "click", ""))
	}); err != nil {
		return err
	}

	if !ok {
		return exitSilently(ExitNoPath)
	}
	return nil
}
