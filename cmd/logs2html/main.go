// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

// logs2html converts a directory of daily IRC logs into a browsable
// HTML archive, optionally staying around to keep it fresh.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wingedpig/irclog/internal/archive"
	"github.com/wingedpig/irclog/internal/config"
	"github.com/wingedpig/irclog/internal/index"
	"github.com/wingedpig/irclog/internal/version"
)

func main() {
	var (
		configPath  string
		styleName   string
		title       string
		prefix      string
		pattern     string
		force       bool
		searchbox   bool
		dircproxy   bool
		output      string
		workers     int
		indexPath   string
		watch       bool
		showVersion bool
	)

	flag.StringVar(&configPath, "config", "", "Path to config file (default: auto-detect)")
	flag.StringVar(&configPath, "c", "", "Path to config file (short)")
	flag.StringVar(&styleName, "style", "", "Output style; see irclog2html -s help")
	flag.StringVar(&styleName, "s", "", "Output style (short)")
	flag.StringVar(&title, "title", "", "Index page title")
	flag.StringVar(&title, "t", "", "Index page title (short)")
	flag.StringVar(&prefix, "prefix", "", "Prefix prepended to daily page titles")
	flag.StringVar(&pattern, "pattern", "", "Log file glob (default: *.log)")
	flag.StringVar(&pattern, "p", "", "Log file glob (short)")
	flag.BoolVar(&force, "force", false, "Regenerate up-to-date pages too")
	flag.BoolVar(&force, "f", false, "Regenerate up-to-date pages too (short)")
	flag.BoolVar(&searchbox, "searchbox", false, "Include a search box on daily pages")
	flag.BoolVar(&searchbox, "S", false, "Include a search box (short)")
	flag.BoolVar(&dircproxy, "dircproxy", false, "Strip dircproxy +/- prefixes from messages")
	flag.StringVar(&output, "output", "", "Output directory (default: the log directory)")
	flag.StringVar(&output, "o", "", "Output directory (short)")
	flag.IntVar(&workers, "j", 0, "Parallel conversions (default: GOMAXPROCS)")
	flag.StringVar(&indexPath, "index", "", "Maintain a full-text search database at this path")
	flag.BoolVar(&watch, "watch", false, "Keep running and regenerate when logs change")
	flag.BoolVar(&watch, "w", false, "Keep running and regenerate when logs change (short)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (short)")
	flag.Parse()

	if showVersion {
		fmt.Printf("logs2html %s\n", version.Version)
		os.Exit(0)
	}

	cfg, err := config.Resolve(context.Background(), configPath)
	if err != nil {
		fatal("%v", err)
	}
	if styleName == "" {
		styleName = cfg.Style
	}
	if title == "" {
		title = cfg.Title
	}
	if prefix == "" {
		prefix = cfg.Prefix
	}
	if pattern == "" {
		pattern = cfg.Pattern
	}
	if output == "" {
		output = cfg.OutputDir
	}
	if workers == 0 {
		workers = cfg.Workers
	}
	if indexPath == "" {
		indexPath = cfg.Search.Index
	}
	searchbox = searchbox || cfg.Searchbox
	dircproxy = dircproxy || cfg.DircProxy

	args := flag.Args()
	if len(args) != 1 {
		fatal("please specify one log directory")
	}
	dir := args[0]

	opts := archive.Options{
		Pattern:   pattern,
		Style:     styleName,
		Title:     title,
		Prefix:    prefix,
		Force:     force,
		Searchbox: searchbox,
		DircProxy: dircproxy,
		OutputDir: output,
		Workers:   workers,
		Colours:   cfg.Colours.Map(),
	}

	var db *index.DB
	if indexPath != "" {
		db, err = index.Open(indexPath)
		if err != nil {
			fatal("open search index: %v", err)
		}
		defer db.Close()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	run := func() error {
		if err := archive.Process(ctx, dir, opts); err != nil {
			return err
		}
		if db == nil {
			return nil
		}
		stats, err := index.Update(db, dir, index.Options{
			Pattern:   pattern,
			DircProxy: dircproxy,
		})
		if err != nil {
			return fmt.Errorf("update search index: %w", err)
		}
		log.Printf("Search index: %s", stats)
		return nil
	}

	if err := run(); err != nil {
		fatal("%v", err)
	}
	if !watch {
		return
	}

	debounce, err := time.ParseDuration(cfg.Watch.Debounce)
	if err != nil {
		fatal("bad watch.debounce %q: %v", cfg.Watch.Debounce, err)
	}
	log.Printf("Watching %s for changes", dir)
	err = archive.Watch(ctx, dir, pattern, debounce, func() {
		if err := run(); err != nil {
			log.Printf("regenerate: %v", err)
		}
	})
	if err != nil && ctx.Err() == nil {
		fatal("%v", err)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "logs2html: %s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
