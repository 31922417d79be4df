package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/wikipath/core"
	"github.com/katalvlaran/wikipath/loader"
	"github.com/katalvlaran/wikipath/store"
	"github.com/katalvlaran/wikipath/wiki"
)

// Graph sources reported by stats.
const (
	sourceText     = "text"
	sourceSnapshot = "snapshot"
)

// snapshotExists reports whether a configured snapshot can be loaded.
func (c *cli) snapshotExists() bool {
	if c.cfg.DB == "" {
		return false
	}
	_, err := os.Stat(c.cfg.DB)
	return err == nil
}

// loadGraph reads the graph from the snapshot if one is configured and
// present, otherwise from the text sources.
func (c *cli) loadGraph(ctx context.Context) (*core.Graph, string, error) {
	if c.snapshotExists() {
		g, err := c.loadSnapshot(ctx)
		return g, sourceSnapshot, err
	}
	g, err := c.loadText()
	return g, sourceText, err
}

func (c *cli) loadText() (*core.Graph, error) {
	opts := []loader.Option{loader.WithLogger(c.logger)}
	if c.skipDangling {
		opts = append(opts, loader.WithSkipDanglingLinks())
	}

	g, err := loader.LoadFiles(c.cfg.Pages, c.cfg.Links, opts...)
	if err != nil {
		return nil, dataError(err)
	}
	return g, nil
}

func (c *cli) loadSnapshot(ctx context.Context) (*core.Graph, error) {
	began := time.Now()
	db, err := store.Open(c.cfg.DB)
	if err != nil {
		return nil, exitWith(ExitDataError, "%v", err)
	}
	defer db.Close()

	var opts []core.BuilderOption
	if c.skipDangling {
		opts = append(opts, core.WithSkipDanglingLinks())
	}
	g, err := db.Load(ctx, opts...)
	if err != nil {
		return nil, dataError(err)
	}
	c.logger.Info("loaded snapshot",
		zap.String("path", c.cfg.DB),
		zap.Int("pages", g.Order()),
		zap.Int("links", g.Size()),
		zap.Duration("elapsed", time.Since(began)),
	)
	return g, nil
}

// newFinder loads the graph and wraps it with the configured search options.
func (c *cli) newFinder(ctx context.Context, maxDepth int) (*wiki.Finder, error) {
	g, _, err := c.loadGraph(ctx)
	if err != nil {
		return nil, err
	}
	f, err := wiki.NewFromGraph(g, wiki.WithLogger(c.logger), wiki.WithMaxDepth(maxDepth))
	if err != nil {
		return nil, exitWith(ExitConfigError, "%v", err)
	}
	return f, nil
}

// dataError classifies graph loading failures.
func dataError(err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return exitWith(ExitError, "%w", err)
	case errors.Is(err, fs.ErrNotExist),
		errors.Is(err, loader.ErrMalformedLine),
		errors.Is(err, loader.ErrBadID),
		errors.Is(err, core.ErrDuplicatePage),
		errors.Is(err, core.ErrEmptyTitle),
		errors.Is(err, core.ErrDanglingLink):
		return exitWith(ExitDataError, "%w", err)
	default:
		return exitWith(ExitError, "%w", err)
	}
}
