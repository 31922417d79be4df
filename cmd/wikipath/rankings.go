package main

import (
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wikipath/pagerank"
	"github.com/katalvlaran/wikipath/wiki"
)

// Defaults for the ranking commands.
const (
	DefaultLongestLimit = 15
	DefaultPopularLimit = 10
)

func newLongestCmd(c *cli) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "longest",
		Short: "List the longest page titles",
		Long: `List the longest page titles, longest first.

Titles containing an underscore are skipped. Length is counted in
characters; ties keep ascending page id order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := c.newFinder(cmd.Context(), 0)
			if err != nil {
				return err
			}
			titles := f.LongestTitles(n)
			return c.print(titles, func(w io.Writer) {
				for i, t := range titles {
					outputHuman(w, "%3d. %s (%d)\n", i+1, t, len([]rune(t)))
				}
			})
		},
	}
	cmd.Flags().IntVarP(&n, "limit", "n", DefaultLongestLimit, "Number of titles to list")

	return cmd
}

func newMostLinkedCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "most-linked",
		Short: "List the pages with the most incoming links",
		Long: `List every page whose incoming-link count equals the maximum,
in ascending page id order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := c.newFinder(cmd.Context(), 0)
			if err != nil {
				return err
			}
			pages := f.MostLinkedPages()
			if pages == nil {
				pages = []wiki.PageCount{}
			}
			return c.print(pages, func(w io.Writer) {
				for _, p := range pages {
					outputHuman(w, "%-40s %s incoming links\n", p.Title, humanize.Comma(int64(p.Count)))
				}
			})
		},
	}
}

func newPopularCmd(c *cli) *cobra.Command {
	var (
		n       int
		damping float64
		maxIter int
	)

	cmd := &cobra.Command{
		Use:   "popular",
		Short: "Rank pages by PageRank",
		Long: `Rank pages by PageRank and list the top entries.

Every page starts with a score of 1. Damping 1 gives the undamped
propagation; lower values mix in a uniform teleport term.

Examples:
  wikipath popular
  wikipath popular -n 25 --damping 0.9`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := c.newFinder(cmd.Context(), 0)
			if err != nil {
				return err
			}
			pages, err := f.MostPopularPages(n,
				pagerank.WithContext(cmd.Context()),
				pagerank.WithDamping(damping),
				pagerank.WithMaxIterations(maxIter),
			)
			if err != nil {
				return exitWith(ExitError, "ranking pages: %w", err)
			}
			if pages == nil {
				pages = []wiki.PageScore{}
			}
			return c.print(pages, func(w io.Writer) {
				for i, p := range pages {
					outputHuman(w, "%3d. %-40s %s\n", i+1, p.Title, humanize.FtoaWithDigits(p.Score, 4))
				}
			})
		},
	}
	cmd.Flags().IntVarP(&n, "limit", "n", DefaultPopularLimit, "Number of pages to list (0 = all)")
	cmd.Flags().Float64Var(&damping, "damping", pagerank.DefaultDamping, "Damping factor in [0, 1]")
	cmd.Flags().IntVar(&maxIter, "max-iterations", pagerank.DefaultMaxIterations, "Iteration cap")

	return cmd
}
