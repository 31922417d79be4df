// Package store persists a core.Graph as a SQLite snapshot so large link
// dumps can be reloaded without re-parsing the text sources.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/wikipath/core"
)

// ErrGraphNil is returned by Save for a nil graph.
var ErrGraphNil = errors.New("store: graph is nil")

const metaSkippedLinks = "skipped_links"

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

// Open opens or creates a SQLite database at path and ensures the schema exists.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: opening database: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the page, link and meta tables if they don't exist.
// links.ord is the position of the link in its source page's adjacency list.
// meta holds per-snapshot counters such as skipped_links.
func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS pages (
			id INTEGER PRIMARY KEY,
			title TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS links (
			src INTEGER NOT NULL,
			ord INTEGER NOT NULL,
			dst INTEGER NOT NULL,
			PRIMARY KEY (src, ord)
		);

		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_pages_title ON pages(title);
	`
	_, err := db.Exec(schema)
	return err
}

// Save replaces the stored snapshot with g in a single transaction.
func (d *DB) Save(ctx context.Context, g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM links"); err != nil {
		return fmt.Errorf("store: clearing links table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM pages"); err != nil {
		return fmt.Errorf("store: clearing pages table: %w", err)
	}

	pageStmt, err := tx.PrepareContext(ctx, `INSERT INTO pages (id, title) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("store: preparing pages insert: %w", err)
	}
	defer pageStmt.Close()

	linkStmt, err := tx.PrepareContext(ctx, `INSERT INTO links (src, ord, dst) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("store: preparing links insert: %w", err)
	}
	defer linkStmt.Close()

	for _, p := range g.Pages() {
		if _, err := pageStmt.ExecContext(ctx, p.ID, p.Title); err != nil {
			return fmt.Errorf("store: inserting page %d: %w", p.ID, err)
		}

		var ord int
		g.EachLink(p.ID, func(to int64) bool {
			if _, err = linkStmt.ExecContext(ctx, p.ID, ord, to); err != nil {
				return false
			}
			ord++
			return true
		})
		if err != nil {
			return fmt.Errorf("store: inserting link %d[%d]: %w", p.ID, ord, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`,
		metaSkippedLinks, g.SkippedLinks(),
	); err != nil {
		return fmt.Errorf("store: recording skipped links: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: committing snapshot: %w", err)
	}

	return nil
}

// Load rebuilds the stored graph. Link order within each page is restored
// from links.ord, so traversal tie-breaks match the text load. The rebuilt
// graph reports the SkippedLinks count recorded by Save.
func (d *DB) Load(ctx context.Context, opts ...core.BuilderOption) (*core.Graph, error) {
	pages, links, err := d.Stats(ctx)
	if err != nil {
		return nil, err
	}
	skipped, err := d.SkippedLinks(ctx)
	if err != nil {
		return nil, err
	}
	opts = append([]core.BuilderOption{
		core.WithExpectedPages(pages),
		core.WithExpectedLinks(links),
		core.WithSkippedLinks(skipped),
	}, opts...)
	b := core.NewBuilder(opts...)

	rows, err := d.db.QueryContext(ctx, `SELECT id, title FROM pages ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("store: querying pages: %w", err)
	}
	for rows.Next() {
		var id int64
		var title string
		if err := rows.Scan(&id, &title); err != nil {
			rows.Close()
			return nil, fmt.Errorf("store: scanning page: %w", err)
		}
		if err := b.AddPage(id, title); err != nil {
			rows.Close()
			return nil, fmt.Errorf("store: %w", err)
		}
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("store: reading pages: %w", err)
	}

	rows, err = d.db.QueryContext(ctx, `SELECT src, dst FROM links ORDER BY src, ord`)
	if err != nil {
		return nil, fmt.Errorf("store: querying links: %w", err)
	}
	for rows.Next() {
		var src, dst int64
		if err := rows.Scan(&src, &dst); err != nil {
			rows.Close()
			return nil, fmt.Errorf("store: scanning link: %w", err)
		}
		if err := b.AddLink(src, dst); err != nil {
			rows.Close()
			return nil, fmt.Errorf("store: %w", err)
		}
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("store: reading links: %w", err)
	}

	g, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("store: building graph: %w", err)
	}

	return g, nil
}

// Stats returns the number of stored pages and links.
func (d *DB) Stats(ctx context.Context) (pages, links int, err error) {
	if err = d.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pages`).Scan(&pages); err != nil {
		return 0, 0, fmt.Errorf("store: counting pages: %w", err)
	}
	if err = d.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM links`).Scan(&links); err != nil {
		return 0, 0, fmt.Errorf("store: counting links: %w", err)
	}

	return pages, links, nil
}

// SkippedLinks returns the dangling-link count recorded with the snapshot,
// or 0 if none was recorded.
func (d *DB) SkippedLinks(ctx context.Context) (int, error) {
	var n int
	err := d.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, metaSkippedLinks).Scan(&n)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("store: reading skipped links: %w", err)
	}

	return n, nil
}

func closeRows(rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	return rows.Close()
}
