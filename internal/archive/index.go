// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"bufio"
	"fmt"
	"io"

	"github.com/wingedpig/irclog/internal/style"
	"github.com/wingedpig/irclog/internal/version"
)

// WriteIndex renders the archive index page: an optional bookmarkable
// link to the latest page, then every log grouped by month, oldest
// first.
func WriteIndex(w io.Writer, title string, files []*LogFile, latestLink string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN"
          "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">
<html>
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>%s</title>
  <link rel="stylesheet" href="irclog.css" />
  <meta name="generator" content="logs2html %s" />
  <meta name="version" content="%s" />
</head>
<body>
<h1>%s</h1>
`, style.Escape(title), version.Version, version.Version, style.Escape(title))

	if latestLink != "" {
		fmt.Fprintf(bw, "<ul>\n<li><a href=\"%s\">Latest (bookmarkable)</a></li>\n</ul>\n",
			style.Escape(style.QuoteURL(latestLink)))
	}

	month := ""
	for _, f := range files {
		if m := f.Date.Format("2006-01"); m != month {
			if month != "" {
				fmt.Fprint(bw, "</ul>\n")
			}
			month = m
			fmt.Fprintf(bw, "<h2>%s</h2>\n<ul>\n", month)
		}
		fmt.Fprintf(bw, "<li><a href=\"%s\">%s</a></li>\n",
			style.Escape(style.QuoteURL(f.LinkName())), style.Escape(f.Title()))
	}
	if month != "" {
		fmt.Fprint(bw, "</ul>\n")
	}

	fmt.Fprintf(bw, `
<div class="generatedby">
<p>Generated by logs2html %s - find it at <a href="%s">%s</a>!</p>
</div>
</body>
</html>
`, version.Version, style.Escape(version.Homepage), style.Escape(version.Homepage))

	return bw.Flush()
}
