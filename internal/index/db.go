// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package index maintains a SQLite full-text index over an IRC log
// archive, for searching without rescanning every log file.
package index

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA busy_timeout = 5000;

CREATE TABLE IF NOT EXISTS files (
    path  TEXT PRIMARY KEY,
    name  TEXT NOT NULL,
    date  TEXT NOT NULL,
    mtime INTEGER NOT NULL DEFAULT 0,
    size  INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS events (
    path     TEXT NOT NULL,
    line     INTEGER NOT NULL,
    ts       TEXT NOT NULL DEFAULT '',
    kind     TEXT NOT NULL,
    nick     TEXT NOT NULL DEFAULT '',
    text     TEXT NOT NULL,
    old_nick TEXT NOT NULL DEFAULT '',
    new_nick TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (path, line)
);

CREATE VIRTUAL TABLE IF NOT EXISTS events_fts USING fts5(
    nick,
    text,
    content=events,
    content_rowid=rowid,
    tokenize='unicode61'
);

-- triggers to keep FTS in sync
CREATE TRIGGER IF NOT EXISTS events_ai AFTER INSERT ON events BEGIN
    INSERT INTO events_fts(rowid, nick, text) VALUES (new.rowid, new.nick, new.text);
END;

CREATE TRIGGER IF NOT EXISTS events_ad AFTER DELETE ON events BEGIN
    INSERT INTO events_fts(events_fts, rowid, nick, text) VALUES('delete', old.rowid, old.nick, old.text);
END;

CREATE TRIGGER IF NOT EXISTS events_au AFTER UPDATE ON events BEGIN
    INSERT INTO events_fts(events_fts, rowid, nick, text) VALUES('delete', old.rowid, old.nick, old.text);
    INSERT INTO events_fts(rowid, nick, text) VALUES (new.rowid, new.nick, new.text);
END;
`

// DB is an open log index.
type DB struct {
	db *sql.DB
}

// Open opens (creating if necessary) the index database at dbPath.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &DB{db: db}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) Raw() *sql.DB {
	return d.db
}

// FileInfo is what Update compares to decide whether a log changed.
type FileInfo struct {
	Mtime int64
	Size  int64
}

// GetFileInfo returns the stored stat data for path, or nil when the
// file has never been indexed.
func (d *DB) GetFileInfo(path string) (*FileInfo, error) {
	var info FileInfo
	err := d.db.QueryRow(
		"SELECT mtime, size FROM files WHERE path = ?",
		path,
	).Scan(&info.Mtime, &info.Size)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// AllPaths returns every indexed log path.
func (d *DB) AllPaths() (map[string]struct{}, error) {
	rows, err := d.db.Query("SELECT path FROM files")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	paths := make(map[string]struct{})
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		paths[p] = struct{}{}
	}
	return paths, rows.Err()
}

// DeleteFile drops a log and its events from the index.
func (d *DB) DeleteFile(path string) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM events WHERE path = ?", path); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM files WHERE path = ?", path); err != nil {
		return err
	}
	return tx.Commit()
}

func (d *DB) FileCount() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM files").Scan(&n)
	return n, err
}

func (d *DB) EventCount() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM events").Scan(&n)
	return n, err
}
