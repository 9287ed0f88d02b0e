// Package db exports a loaded catalog into a SQLite database for ad-hoc
// querying.
package db

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	"github.com/cockroachdb/errors"
	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB with export helpers.
type DB struct {
	*sql.DB
	mu   sync.Mutex
	path string
}

// Open creates or opens a SQLite database at the given path.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "creating database directory")
	}

	sqlDB, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, errors.Wrap(err, "pinging database")
	}

	d := &DB{DB: sqlDB, path: path}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, errors.Wrap(err, "running migrations")
	}

	return d, nil
}

// OpenMemory creates an in-memory SQLite database (useful for testing).
func OpenMemory() (*DB, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, errors.Wrap(err, "opening in-memory database")
	}
	// Every pooled connection would get its own empty in-memory database.
	sqlDB.SetMaxOpenConns(1)

	d := &DB{DB: sqlDB, path: ":memory:"}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, errors.Wrap(err, "running migrations")
	}

	return d, nil
}

// Path is the database file, or ":memory:".
func (d *DB) Path() string { return d.path }

// migrate runs all schema migrations.
func (d *DB) migrate() error {
	_, err := d.Exec(schema)
	return err
}

// schema contains the full database schema. New tables are added here.
const schema = `
CREATE TABLE IF NOT EXISTS ides (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    vendor TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL DEFAULT '',
    website TEXT NOT NULL DEFAULT '',
    mcp_docs TEXT NOT NULL DEFAULT '',
    position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS ai_clients (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    vendor TEXT NOT NULL DEFAULT '',
    website TEXT NOT NULL DEFAULT '',
    position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS native_names (
    client_id TEXT NOT NULL REFERENCES ai_clients(id) ON DELETE CASCADE,
    ide_id TEXT NOT NULL,
    name TEXT NOT NULL,
    PRIMARY KEY(client_id, ide_id)
);

CREATE TABLE IF NOT EXISTS features (
    kind TEXT NOT NULL CHECK(kind IN ('feature','transport')),
    id TEXT NOT NULL,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    spec_url TEXT NOT NULL DEFAULT '',
    position INTEGER NOT NULL,
    PRIMARY KEY(kind, id)
);

CREATE TABLE IF NOT EXISTS combinations (
    combo_key TEXT PRIMARY KEY,
    ide_id TEXT NOT NULL REFERENCES ides(id) ON DELETE CASCADE,
    client_id TEXT NOT NULL REFERENCES ai_clients(id) ON DELETE CASCADE,
    label TEXT NOT NULL,
    position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS support (
    kind TEXT NOT NULL,
    feature_id TEXT NOT NULL,
    combo_key TEXT NOT NULL REFERENCES combinations(combo_key) ON DELETE CASCADE,
    code TEXT NOT NULL CHECK(code IN ('y','a','n','d','u')),
    note_ref TEXT NOT NULL DEFAULT '',
    note TEXT NOT NULL DEFAULT '',
    source_url TEXT NOT NULL DEFAULT '',
    evidence TEXT NOT NULL DEFAULT '',
    PRIMARY KEY(kind, feature_id, combo_key),
    FOREIGN KEY(kind, feature_id) REFERENCES features(kind, id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_support_code ON support(code);

CREATE TABLE IF NOT EXISTS changelog (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    date TEXT NOT NULL,
    type TEXT NOT NULL DEFAULT '',
    client TEXT NOT NULL DEFAULT '',
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    links TEXT NOT NULL DEFAULT '[]'
);

CREATE INDEX IF NOT EXISTS idx_changelog_date ON changelog(date);
`
