// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

package index

import (
	"fmt"
	"log"
	"os"

	"github.com/wingedpig/irclog/internal/archive"
	"github.com/wingedpig/irclog/internal/logparse"
)

// Stats summarizes one Update run.
type Stats struct {
	Scanned int
	Updated int
	Skipped int
	Pruned  int
	Errors  int
}

func (s Stats) String() string {
	return fmt.Sprintf("scanned=%d updated=%d skipped=%d pruned=%d errors=%d",
		s.Scanned, s.Updated, s.Skipped, s.Pruned, s.Errors)
}

// Options select which logs Update indexes.
type Options struct {
	Pattern   string // log file glob, default "*.log"
	DircProxy bool
}

// Update brings the index in line with the archive at dir: new and
// modified logs are re-read, logs whose mtime and size are unchanged
// are skipped, and logs that vanished from disk are pruned. A log that
// cannot be read is logged and counted, not fatal.
func Update(db *DB, dir string, opts Options) (Stats, error) {
	var stats Stats

	files, err := archive.FindLogFiles(dir, opts.Pattern)
	if err != nil {
		return stats, err
	}
	stats.Scanned = len(files)

	seen := make(map[string]struct{}, len(files))
	for _, f := range files {
		seen[f.Path] = struct{}{}

		fi, err := os.Stat(f.Path)
		if err != nil {
			stats.Errors++
			log.Printf("index: stat %s: %v", f.Path, err)
			continue
		}

		stored, err := db.GetFileInfo(f.Path)
		if err != nil {
			return stats, err
		}
		if stored != nil && stored.Mtime == fi.ModTime().Unix() && stored.Size == fi.Size() {
			stats.Skipped++
			continue
		}

		if err := indexFile(db, f, fi.ModTime().Unix(), fi.Size(), opts.DircProxy); err != nil {
			stats.Errors++
			log.Printf("index: %s: %v", f.Path, err)
			continue
		}
		stats.Updated++
	}

	pruned, err := prune(db, seen)
	if err != nil {
		return stats, fmt.Errorf("prune: %w", err)
	}
	stats.Pruned = pruned
	return stats, nil
}

func indexFile(db *DB, f *archive.LogFile, mtime, size int64, dircproxy bool) error {
	in, err := f.Open()
	if err != nil {
		return err
	}
	defer in.Close()

	if err := db.DeleteFile(f.Path); err != nil {
		return err
	}

	tx, err := db.Raw().Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO files (path, name, date, mtime, size) VALUES (?, ?, ?, ?, ?)",
		f.Path, f.Name, f.Date.Format("2006-01-02"), mtime, size,
	)
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(
		`INSERT INTO events (path, line, ts, kind, nick, text, old_nick, new_nick)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	p := logparse.New(in, dircproxy)
	line := 0
	for p.Scan() {
		ev := p.Event()
		line++
		_, err := stmt.Exec(f.Path, line, ev.Time, string(ev.Kind),
			ev.Nick, ev.Text, ev.OldNick, ev.NewNick)
		if err != nil {
			return err
		}
	}
	if err := p.Err(); err != nil {
		return err
	}
	return tx.Commit()
}

func prune(db *DB, seen map[string]struct{}) (int, error) {
	all, err := db.AllPaths()
	if err != nil {
		return 0, err
	}

	pruned := 0
	for path := range all {
		if _, ok := seen[path]; !ok {
			if err := db.DeleteFile(path); err != nil {
				return pruned, err
			}
			pruned++
		}
	}
	return pruned, nil
}
