package main

import (
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/wikipath/store"
)

// IndexResult is the response for the index command.
type IndexResult struct {
	Status          string  `json:"status"`
	DB              string  `json:"db"`
	Pages           int     `json:"pages"`
	Links           int     `json:"links"`
	SkippedLinks    int     `json:"skipped_links"`
	DurationSeconds float64 `json:"duration_seconds"`
	SizeBytes       int64   `json:"size_bytes"`
}

func newIndexCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "Snapshot the text sources into SQLite",
		Long: `Read the page table and link list and store them in the SQLite
snapshot named by --db (or db in the config file). Later commands load
the snapshot instead of re-parsing the text files. An existing snapshot
is replaced.`,
		Args: cobra.NoArgs,
		RunE: c.runIndex,
	}
}

func (c *cli) runIndex(cmd *cobra.Command, _ []string) error {
	if c.cfg.DB == "" {
		return exitWith(ExitConfigError, "no snapshot path: set --db, db in the config file, or WIKIPATH_DB")
	}

	began := time.Now()
	g, err := c.loadText()
	if err != nil {
		return err
	}

	db, err := store.Open(c.cfg.DB)
	if err != nil {
		return exitWith(ExitError, "%w", err)
	}
	defer db.Close()
	if err := db.Save(cmd.Context(), g); err != nil {
		return exitWith(ExitError, "%w", err)
	}

	res := IndexResult{
		Status:          "complete",
		DB:              c.cfg.DB,
		Pages:           g.Order(),
		Links:           g.Size(),
		SkippedLinks:    g.SkippedLinks(),
		DurationSeconds: time.Since(began).Seconds(),
	}
	if info, err := os.Stat(c.cfg.DB); err == nil {
		res.SizeBytes = info.Size()
	}
	c.logger.Info("snapshot written",
		zap.String("path", res.DB),
		zap.String("pages", humanize.Comma(int64(res.Pages))),
		zap.String("links", humanize.Comma(int64(res.Links))),
	)

	return c.print(res, func(w io.Writer) {
		outputHuman(w, "Snapshot written to %s\n", res.DB)
		outputHuman(w, "  Pages: %s\n", humanize.Comma(int64(res.Pages)))
		outputHuman(w, "  Links: %s\n", humanize.Comma(int64(res.Links)))
		if res.SkippedLinks > 0 {
			outputHuman(w, "  Skipped links: %s\n", humanize.Comma(int64(res.SkippedLinks)))
		}
		outputHuman(w, "  Size: %s\n", humanize.Bytes(uint64(res.SizeBytes)))
		outputHuman(w, "  Time elapsed: %.1fs\n", res.DurationSeconds)
	})
}

// StatsResult is the response for the stats command.
type StatsResult struct {
	Source       string `json:"source"`
	Pages        int    `json:"pages"`
	Links        int    `json:"links"`
	SkippedLinks int    `json:"skipped_links"`
	NoLinks      int    `json:"pages_without_links"`
}

func newStatsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show graph size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, source, err := c.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			res := StatsResult{
				Source:       source,
				Pages:        g.Order(),
				Links:        g.Size(),
				SkippedLinks: g.SkippedLinks(),
			}
			for _, id := range g.PageIDs() {
				if g.OutDegree(id) == 0 {
					res.NoLinks++
				}
			}
			return c.print(res, func(w io.Writer) {
				outputHuman(w, "Source: %s\n", res.Source)
				outputHuman(w, "  Pages: %s\n", humanize.Comma(int64(res.Pages)))
				outputHuman(w, "  Links: %s\n", humanize.Comma(int64(res.Links)))
				outputHuman(w, "  Pages without links: %s\n", humanize.Comma(int64(res.NoLinks)))
				if res.SkippedLinks > 0 {
					outputHuman(w, "  Skipped links: %s\n", humanize.Comma(int64(res.SkippedLinks)))
				}
			})
		},
	}
}
