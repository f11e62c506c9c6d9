// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/wingedpig/irclog/internal/logparse"
	"github.com/wingedpig/irclog/static"
)

// Options control one batch conversion run.
type Options struct {
	Pattern   string // log file glob, default "*.log"
	Style     string // output style name, "" = default
	Title     string // index page title
	Prefix    string // prepended to each daily page title
	Force     bool   // regenerate up-to-date pages too
	Searchbox bool
	DircProxy bool
	OutputDir string // where generated files go; "" = the log directory
	Workers   int    // parallel conversions, <= 0 means GOMAXPROCS
	Colours   map[logparse.Kind]string
}

// LatestLink is the name of the symlink kept pointing at the newest
// generated page.
const LatestLink = "latest.log.html"

// Process converts every stale log in dir, then refreshes the index
// page, the stylesheet and the latest symlink. Conversions run in
// parallel; each page is written by exactly one goroutine.
func Process(ctx context.Context, dir string, opts Options) error {
	files, err := FindLogFiles(dir, opts.Pattern)
	if err != nil {
		return err
	}

	if opts.OutputDir == "" {
		opts.OutputDir = dir
	} else if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, f := range files {
		f := f
		if !opts.Force && f.UpToDate(opts.OutputDir) {
			continue
		}
		var prev, next *LogFile
		if i > 0 {
			prev = files[i-1]
		}
		if i+1 < len(files) {
			next = files[i+1]
		}
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			return f.Generate(prev, next, opts)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	latest := ""
	if len(files) > 0 {
		latest = LatestLink
	}
	idxPath := filepath.Join(opts.OutputDir, "index.html")
	idx, err := os.Create(idxPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", idxPath, err)
	}
	if err := WriteIndex(idx, opts.Title, files, latest); err != nil {
		idx.Close()
		return fmt.Errorf("write %s: %w", idxPath, err)
	}
	if err := idx.Close(); err != nil {
		return fmt.Errorf("write %s: %w", idxPath, err)
	}

	if err := InstallCSS(opts.OutputDir); err != nil {
		return err
	}

	if len(files) > 0 {
		target := files[len(files)-1].LinkName()
		if err := MoveSymlink(target, filepath.Join(opts.OutputDir, LatestLink)); err != nil {
			log.Printf("cannot update %s: %v", LatestLink, err)
		}
	}
	return nil
}

// MoveSymlink points linkname at target, replacing any previous link
// atomically: symlink under a temporary name, then rename over.
func MoveSymlink(target, linkname string) error {
	tmp := linkname + ".tmp"
	os.Remove(tmp)
	if err := os.Symlink(target, tmp); err != nil {
		return err
	}
	return os.Rename(tmp, linkname)
}

// InstallCSS installs the embedded stylesheet in outDir unless one is
// already there, so local modifications survive regeneration.
func InstallCSS(outDir string) error {
	path := filepath.Join(outDir, static.CSSName)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	data, err := static.CSS()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("install stylesheet: %w", err)
	}
	return nil
}
