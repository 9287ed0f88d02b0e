package db

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/cockroachdb/errors"

	"github.com/ziadkadry99/mcp-matrix/internal/catalog"
	"github.com/ziadkadry99/mcp-matrix/internal/matrix"
)

// ExportStats counts the rows written by ExportState.
type ExportStats struct {
	IDEs         int
	Clients      int
	Features     int
	Combinations int
	Support      int
	Changelog    int
}

// tables in delete order; children before parents.
var tables = []string{"support", "combinations", "native_names", "features", "ai_clients", "ides", "changelog"}

// ExportState replaces the database contents with state in one
// transaction. Every feature and transport gets a support row for every
// combination; missing entries are stored as unknown.
func (d *DB) ExportState(ctx context.Context, state *catalog.State) (ExportStats, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var stats ExportStats
	if state == nil {
		state = catalog.NewState(nil, nil, nil, nil, nil)
	}

	tx, err := d.BeginTx(ctx, nil)
	if err != nil {
		return stats, errors.Wrap(err, "beginning export")
	}
	defer tx.Rollback()

	for _, table := range tables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return stats, errors.Wrapf(err, "clearing %s", table)
		}
	}

	for i, ide := range state.IDEs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO ides (id, name, vendor, category, website, mcp_docs, position) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			ide.ID, ide.DisplayName(), ide.Vendor, string(ide.Category), ide.Website, ide.MCPDocs, i,
		); err != nil {
			return stats, errors.Wrapf(err, "inserting interface %s", ide.ID)
		}
		stats.IDEs++
	}

	for i, c := range state.Clients {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO ai_clients (id, name, vendor, website, position) VALUES (?, ?, ?, ?, ?)`,
			c.ID, c.DisplayName(), c.Vendor, c.Website, i,
		); err != nil {
			return stats, errors.Wrapf(err, "inserting client %s", c.ID)
		}
		stats.Clients++
		for ideID, name := range c.NativeNames {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO native_names (client_id, ide_id, name) VALUES (?, ?, ?)`,
				c.ID, ideID, name,
			); err != nil {
				return stats, errors.Wrapf(err, "inserting native name %s/%s", c.ID, ideID)
			}
		}
	}

	combos := matrix.BuildCombinations(state)
	for i, c := range combos {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO combinations (combo_key, ide_id, client_id, label, position) VALUES (?, ?, ?, ?, ?)`,
			c.Key.String(), c.Key.IDE, c.Key.Client, matrix.RowLabel(c), i,
		); err != nil {
			return stats, errors.Wrapf(err, "inserting combination %s", c.Key)
		}
		stats.Combinations++
	}

	support, err := tx.PrepareContext(ctx,
		`INSERT INTO support (kind, feature_id, combo_key, code, note_ref, note, source_url, evidence) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return stats, errors.Wrap(err, "preparing support insert")
	}
	defer support.Close()

	position := 0
	for _, group := range []struct {
		kind catalog.Kind
		list []*catalog.Feature
	}{
		{catalog.KindFeature, state.Features},
		{catalog.KindTransport, state.Transports},
	} {
		for _, f := range group.list {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO features (id, kind, title, description, spec_url, position) VALUES (?, ?, ?, ?, ?, ?)`,
				f.ID, string(group.kind), f.DisplayTitle(), f.Description, f.SpecURL, position,
			); err != nil {
				return stats, errors.Wrapf(err, "inserting %s %s", group.kind, f.ID)
			}
			position++
			stats.Features++

			n, err := insertSupport(ctx, support, group.kind, f, combos)
			if err != nil {
				return stats, err
			}
			stats.Support += n
		}
	}

	for _, e := range state.Changelog {
		links, err := json.Marshal(e.Links)
		if err != nil {
			return stats, errors.Wrap(err, "encoding changelog links")
		}
		if e.Links == nil {
			links = []byte("[]")
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO changelog (date, type, client, title, description, links) VALUES (?, ?, ?, ?, ?, ?)`,
			e.Date, string(e.Type), e.Client, e.Title, e.Description, string(links),
		); err != nil {
			return stats, errors.Wrapf(err, "inserting changelog entry %q", e.Title)
		}
		stats.Changelog++
	}

	if err := tx.Commit(); err != nil {
		return stats, errors.Wrap(err, "committing export")
	}
	return stats, nil
}

func insertSupport(ctx context.Context, stmt *sql.Stmt, kind catalog.Kind, f *catalog.Feature, combos []catalog.Combination) (int, error) {
	n := 0
	for _, c := range combos {
		cell := matrix.BuildCell(f, c.Key)
		src, _ := f.SourceFor(c.Key)
		if _, err := stmt.ExecContext(ctx,
			string(kind), f.ID, c.Key.String(), string(cell.Support.Code), cell.Support.NoteRef, cell.Note, src.URL, src.Evidence,
		); err != nil {
			return n, errors.Wrapf(err, "inserting support %s %s/%s", kind, f.ID, c.Key)
		}
		n++
	}
	return n, nil
}
