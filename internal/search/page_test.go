// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteForm(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteForm(&buf))
	page := buf.String()

	assert.Contains(t, page, "<title>Search IRC logs</title>")
	assert.Contains(t, page, "<h1>Search IRC logs</h1>")
	assert.Contains(t, page, `<form action="" method="get">`)
	assert.Contains(t, page, `<input type="text" name="q" />`)
	assert.Contains(t, page, `<input type="submit" />`)
	assert.Contains(t, page, `<div class="generatedby">`)
	assert.Contains(t, page, "</html>")
}

func TestWriteResults(t *testing.T) {
	dir := sampleArchive(t)
	results, stats, err := Scan("povbot", Options{Dir: dir})
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, WriteResults(&buf, "povbot", results, stats, 1234*time.Millisecond))
	page := buf.String()

	assert.Contains(t, page, "<h1>IRC log search results for povbot</h1>")
	assert.Contains(t, page, `<input type="text" name="q" value="povbot" />`)
	assert.Contains(t, page, `<ul class="searchresults">`)

	// Newest day first, each day its own list item.
	newest := strings.Index(page, `<li><a href="sample-2013-03-18.log.html">2013-03-18 (Monday)</a>:`)
	older := strings.Index(page, `<li><a href="sample-2013-03-17.log.html">2013-03-17 (Sunday)</a>:`)
	require.NotEqual(t, -1, newest)
	require.NotEqual(t, -1, older)
	assert.Less(t, newest, older)

	assert.Equal(t, 2, strings.Count(page, `<table class="irclog">`))
	assert.Equal(t, 2, strings.Count(page, "</table>"))

	// Rows anchor back into the daily pages.
	assert.Contains(t, page,
		`<tr id="t23:48:00"><td class="join" colspan="2">*** povbot has joined #chan</td><td><a href="sample-2013-03-18.log.html#t23:48:00" class="time">23:48</a></td></tr>`)
	assert.Contains(t, page,
		`<th class="nick" style="background: #407a40">povbot</th>`)

	// The second day repeats the timestamps, so its anchors get
	// deduplicating suffixes.
	assert.Contains(t, page, `<tr id="t23:48:00-2">`)
	assert.Contains(t, page, `href="sample-2013-03-17.log.html#t23:48:00-2"`)

	assert.Contains(t, page, "<p>4 matches in 2 log files with 8 lines (1.2 seconds).</p>")
}

func TestWriteResults_NoMatches(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteResults(&buf, "nothing", nil, Stats{Files: 2, Lines: 8}, 40*time.Millisecond))
	page := buf.String()

	assert.NotContains(t, page, "<ul class=\"searchresults\">")
	assert.Contains(t, page, "<p>0 matches in 2 log files with 8 lines (0.0 seconds).</p>")
}

func TestWriteResults_EscapesQuery(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteResults(&buf, `<script>&`, nil, Stats{}, 0))
	page := buf.String()

	assert.Contains(t, page, "<h1>IRC log search results for &lt;script&gt;&amp;</h1>")
	assert.Contains(t, page, `value="&lt;script&gt;&amp;"`)
	assert.NotContains(t, page, "<script>")
}

func TestWriteResults_QuotesFileLinks(t *testing.T) {
	dir := t.TempDir()
	content := "10:00 <mg> hello world\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "#chan-2013-03-18.log"), []byte(content), 0644))

	results, stats, err := Scan("hello", Options{Dir: dir})
	require.NoError(t, err)
	require.Len(t, results, 1)

	var buf strings.Builder
	require.NoError(t, WriteResults(&buf, "hello", results, stats, 0))
	page := buf.String()

	// The hash must be percent-encoded or the href becomes a fragment.
	assert.Contains(t, page, `<li><a href="%23chan-2013-03-18.log.html">2013-03-18 (Monday)</a>:`)
	assert.Contains(t, page, `href="%23chan-2013-03-18.log.html#t10:00"`)
	assert.NotContains(t, page, `href="#chan-2013-03-18.log.html`)
}

func TestWriteResults_RenameKeepsNickColour(t *testing.T) {
	dir := t.TempDir()
	content := "10:00 <mg> hello world\n" +
		"10:01 *** mg is now known as mg_away\n" +
		"10:02 <mg_away> hello again\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chan-2013-03-18.log"), []byte(content), 0644))

	results, stats, err := Scan("mg", Options{Dir: dir})
	require.NoError(t, err)
	require.Len(t, results, 3)

	var buf strings.Builder
	require.NoError(t, WriteResults(&buf, "mg", results, stats, 0))
	page := buf.String()

	assert.Contains(t, page, `<td class="nickchange" colspan="2">*** mg is now known as mg_away</td>`)
	// Each message row states the colour twice: nick background and
	// text colour. Two rows, one nick: four occurrences of one colour.
	assert.Equal(t, 4, strings.Count(page, "#407a40"), "rename should keep the first colour:\n%s", page)
	assert.NotContains(t, page, "#42427e")
}
