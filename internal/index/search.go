// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

package index

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/wingedpig/irclog/internal/archive"
	"github.com/wingedpig/irclog/internal/logparse"
	"github.com/wingedpig/irclog/internal/search"
)

// containsCJK reports whether the query holds CJK ideographs, which
// the unicode61 tokenizer does not segment.
func containsCJK(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}

// Search runs query against the index and returns matches in archive
// order: newest day first, line order within a day. The query is
// matched as a phrase; CJK queries fall back to a substring scan.
// Stats count the whole indexed corpus, not just what matched.
func Search(db *DB, query string, limit int) ([]search.Result, search.Stats, error) {
	var stats search.Stats

	var err error
	stats.Files, err = db.FileCount()
	if err != nil {
		return nil, stats, err
	}
	stats.Lines, err = db.EventCount()
	if err != nil {
		return nil, stats, err
	}

	if limit <= 0 {
		limit = -1 // no limit
	}

	var q string
	var arg any
	if containsCJK(query) {
		q = `
			SELECT e.path, e.ts, e.kind, e.nick, e.text, e.old_nick, e.new_nick
			FROM events e
			JOIN files f ON e.path = f.path
			WHERE (e.nick || ' ' || e.text) LIKE ?
			ORDER BY f.date DESC, f.name DESC, e.line ASC
			LIMIT ?`
		arg = "%" + query + "%"
	} else {
		q = `
			SELECT e.path, e.ts, e.kind, e.nick, e.text, e.old_nick, e.new_nick
			FROM events_fts
			JOIN events e ON events_fts.rowid = e.rowid
			JOIN files f ON e.path = f.path
			WHERE events_fts MATCH ?
			ORDER BY f.date DESC, f.name DESC, e.line ASC
			LIMIT ?`
		arg = `"` + strings.ReplaceAll(query, `"`, `""`) + `"`
	}

	rows, err := db.Raw().Query(q, arg, limit)
	if err != nil {
		return nil, stats, fmt.Errorf("search query: %w", err)
	}
	defer rows.Close()

	logFiles := make(map[string]*archive.LogFile)
	var results []search.Result
	for rows.Next() {
		var path, ts, kind, nick, text, oldNick, newNick string
		if err := rows.Scan(&path, &ts, &kind, &nick, &text, &oldNick, &newNick); err != nil {
			return nil, stats, err
		}
		lf, ok := logFiles[path]
		if !ok {
			lf, err = archive.NewLogFile(path)
			if err != nil {
				return nil, stats, err
			}
			logFiles[path] = lf
		}
		results = append(results, search.Result{
			File: lf,
			Event: logparse.Event{
				Time:    ts,
				Kind:    logparse.Kind(kind),
				Nick:    nick,
				Text:    text,
				OldNick: oldNick,
				NewNick: newNick,
			},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, stats, err
	}
	stats.Matches = len(results)
	return results, stats, nil
}
