// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/wingedpig/irclog/internal/archive"
	"github.com/wingedpig/irclog/internal/style"
)

// activeCutoff separates channels with recent traffic from dormant
// ones in the directory listing.
const activeCutoff = 7 * 24 * time.Hour

// Channel is one subdirectory of the channel tree.
type Channel struct {
	Name string
	// Age is the time since the newest log in the channel; negative
	// when the channel holds no logs at all.
	Age time.Duration
}

// FindChannels lists the channel subdirectories of dir, sorted by
// name. Hidden directories are skipped.
func FindChannels(dir, pattern string) ([]Channel, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var channels []Channel
	for _, e := range entries {
		if !e.IsDir() || e.Name()[0] == '.' {
			continue
		}
		ch := Channel{Name: e.Name(), Age: -1}
		if newest := newestLogTime(filepath.Join(dir, e.Name()), pattern); !newest.IsZero() {
			ch.Age = now.Sub(newest)
		}
		channels = append(channels, ch)
	}
	sort.Slice(channels, func(i, j int) bool { return channels[i].Name < channels[j].Name })
	return channels, nil
}

func newestLogTime(dir, pattern string) time.Time {
	files, err := archive.FindLogFiles(dir, pattern)
	if err != nil || len(files) == 0 {
		return time.Time{}
	}
	var newest time.Time
	for _, f := range files {
		if info, err := os.Stat(f.Path); err == nil && info.ModTime().After(newest) {
			newest = info.ModTime()
		}
	}
	return newest
}

// writeDirListing renders the channel index. Channels active within
// the last week come first; the two groups get headings only when both
// are present.
func writeDirListing(w io.Writer, channels []Channel) {
	var active, old []Channel
	for _, ch := range channels {
		if ch.Age >= 0 && ch.Age < activeCutoff {
			active = append(active, ch)
		} else {
			old = append(old, ch)
		}
	}

	fmt.Fprint(w, "<h1>IRC logs</h1>\n")
	switch {
	case len(channels) == 0:
		fmt.Fprint(w, "<p>No channels found.</p>\n")
	case len(active) > 0 && len(old) > 0:
		fmt.Fprint(w, "<h2>Active channels</h2>\n")
		writeChannelList(w, active)
		fmt.Fprint(w, "<h2>Old channels</h2>\n")
		writeChannelList(w, old)
	default:
		writeChannelList(w, channels)
	}
}

func writeChannelList(w io.Writer, channels []Channel) {
	fmt.Fprint(w, "<ul>\n")
	for _, ch := range channels {
		fmt.Fprintf(w, "<li><a href=\"%s/\">%s</a></li>\n",
			url.QueryEscape(ch.Name), style.Escape(ch.Name))
	}
	fmt.Fprint(w, "</ul>\n")
}
