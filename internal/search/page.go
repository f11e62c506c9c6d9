// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/wingedpig/irclog/internal/colour"
	"github.com/wingedpig/irclog/internal/logparse"
	"github.com/wingedpig/irclog/internal/style"
	"github.com/wingedpig/irclog/internal/version"
)

// PageHeader writes the shared document shell used by the search and
// channel listing pages.
func PageHeader(w io.Writer) {
	fmt.Fprintf(w, `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN"
          "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">
<html>
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Search IRC logs</title>
  <link rel="stylesheet" href="irclog.css" />
  <meta name="generator" content="irclog2html %s" />
  <meta name="version" content="%s" />
</head>
<body>
`, version.Version, version.Version)
}

// PageFooter closes the document opened by PageHeader.
func PageFooter(w io.Writer) {
	fmt.Fprintf(w, `
<div class="generatedby">
<p>Generated by irclog2html %s - find it at <a href="%s">%s</a>!</p>
</div>
</body>
</html>
`, version.Version, style.Escape(version.Homepage), style.Escape(version.Homepage))
}

func searchForm(w io.Writer, query string) {
	fmt.Fprintf(w, "<form action=\"\" method=\"get\">\n")
	if query == "" {
		fmt.Fprintf(w, "<input type=\"text\" name=\"q\" />\n")
	} else {
		fmt.Fprintf(w, "<input type=\"text\" name=\"q\" value=\"%s\" />\n", style.Escape(query))
	}
	fmt.Fprintf(w, "<input type=\"submit\" />\n</form>\n")
}

// WriteForm renders the empty search page.
func WriteForm(w io.Writer) error {
	bw := bufio.NewWriter(w)
	PageHeader(bw)
	fmt.Fprintf(bw, "<h1>Search IRC logs</h1>\n")
	searchForm(bw, "")
	PageFooter(bw)
	return bw.Flush()
}

// WriteResults renders matches grouped by day, newest day first, each
// group a log table whose time anchors link back to the daily page.
// Nick colours are assigned across the whole result set, so a nick
// keeps its colour from one day to the next.
func WriteResults(w io.Writer, query string, results []Result, stats Stats, elapsed time.Duration) error {
	bw := bufio.NewWriter(w)
	PageHeader(bw)
	fmt.Fprintf(bw, "<h1>IRC log search results for %s</h1>\n", style.Escape(query))
	searchForm(bw, query)

	f := style.NewXHTMLTable(bw, style.Options{})
	colours := colour.NewColourizer()

	open := false
	var current, href string
	for _, r := range results {
		if link := r.File.LinkName(); link != current {
			if open {
				if err := f.CloseTable(); err != nil {
					return err
				}
				fmt.Fprintf(bw, "  </li>\n")
			} else {
				fmt.Fprintf(bw, "<ul class=\"searchresults\">\n")
			}
			current = link
			href = style.Escape(style.QuoteURL(link))
			fmt.Fprintf(bw, "  <li><a href=\"%s\">%s</a>:\n",
				href, style.Escape(r.File.Title()))
			if err := f.OpenTable(); err != nil {
				return err
			}
			open = true
		}

		ev := r.Event
		var err error
		switch ev.Kind {
		case logparse.Comment:
			err = f.NickTextAt(href, ev.Time, ev.Nick, ev.Text, colours.Lookup(ev.Nick))
		case logparse.NickChange:
			colours.Rename(ev.OldNick, ev.NewNick)
			err = f.ServerMsgAt(href, ev.Time, ev.Kind, ev.Text)
		default:
			err = f.ServerMsgAt(href, ev.Time, ev.Kind, ev.Text)
		}
		if err != nil {
			return err
		}
	}
	if open {
		if err := f.CloseTable(); err != nil {
			return err
		}
		fmt.Fprintf(bw, "  </li>\n</ul>\n")
	}

	fmt.Fprintf(bw, "<p>%d matches in %d log files with %d lines (%.1f seconds).</p>\n",
		stats.Matches, stats.Files, stats.Lines, elapsed.Seconds())
	PageFooter(bw)
	return bw.Flush()
}
