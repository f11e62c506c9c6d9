// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch re-runs run whenever log files in dir change, after a quiet
// period of debounce. Only names matching pattern (or pattern+".gz")
// count: generated pages usually land in the same directory and must
// not retrigger the watcher. Runs are serialized; events arriving
// during a run schedule the next one. Blocks until ctx is cancelled.
func Watch(ctx context.Context, dir, pattern string, debounce time.Duration, run func()) error {
	if pattern == "" {
		pattern = "*.log"
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	d := NewDebouncer(debounce)
	defer d.Stop()

	trigger := make(chan struct{}, 1)
	schedule := func() {
		d.Debounce(dir, func() {
			select {
			case trigger <- struct{}{}:
			default:
			}
		})
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-trigger:
			run()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
				!ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
				continue
			}
			name := filepath.Base(ev.Name)
			matched, _ := filepath.Match(pattern, name)
			if !matched {
				matched, _ = filepath.Match(pattern+".gz", name)
			}
			if !matched {
				continue
			}
			schedule()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch %s: %v", dir, err)
		}
	}
}
