// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package search greps an IRC log archive and renders the matches as
// an HTML page of per-day log fragments.
package search

import (
	"fmt"
	"strings"

	"github.com/wingedpig/irclog/internal/archive"
	"github.com/wingedpig/irclog/internal/logparse"
)

// Stats counts what a search touched. Files and Lines cover only what
// was scanned before the match limit cut the search short.
type Stats struct {
	Files   int
	Lines   int
	Matches int
}

// Result is one matching log line.
type Result struct {
	File  *archive.LogFile
	Event logparse.Event
}

// Options select which logs to search.
type Options struct {
	Dir       string
	Pattern   string // log file glob, default "*.log"
	Limit     int    // stop after this many matches, <= 0 means no limit
	DircProxy bool
}

// Scan searches the archive for query, newest log first. Matching is
// a case-insensitive substring test against the line's text, with the
// nick prepended for ordinary messages.
func Scan(query string, opts Options) ([]Result, Stats, error) {
	var stats Stats
	query = strings.ToLower(query)

	files, err := archive.FindLogFiles(opts.Dir, opts.Pattern)
	if err != nil {
		return nil, stats, err
	}

	var results []Result
	for i := len(files) - 1; i >= 0; i-- {
		f := files[i]
		in, err := f.Open()
		if err != nil {
			return results, stats, fmt.Errorf("open %s: %w", f.Name, err)
		}
		stats.Files++

		p := logparse.New(in, opts.DircProxy)
		for p.Scan() {
			ev := p.Event()
			stats.Lines++
			text := ev.Text
			if ev.Kind == logparse.Comment {
				text = ev.Nick + " " + ev.Text
			}
			if !strings.Contains(strings.ToLower(text), query) {
				continue
			}
			stats.Matches++
			results = append(results, Result{File: f, Event: ev})
			if opts.Limit > 0 && stats.Matches == opts.Limit {
				in.Close()
				return results, stats, nil
			}
		}
		err = p.Err()
		in.Close()
		if err != nil {
			return results, stats, fmt.Errorf("read %s: %w", f.Name, err)
		}
	}
	return results, stats, nil
}
