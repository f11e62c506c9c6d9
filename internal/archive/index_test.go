// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexFiles(t *testing.T, names ...string) []*LogFile {
	t.Helper()
	files := make([]*LogFile, 0, len(names))
	for _, name := range names {
		lf, err := NewLogFile("/logs/" + name)
		require.NoError(t, err)
		files = append(files, lf)
	}
	return files
}

func TestWriteIndex(t *testing.T) {
	files := indexFiles(t,
		"somechannel-20130225.log",
		"somechannel-20130316.log",
		"somechannel-20130317.log",
	)

	var buf strings.Builder
	require.NoError(t, WriteIndex(&buf, "IRC logs of #somechannel", files, LatestLink))
	page := buf.String()

	assert.Contains(t, page, "<title>IRC logs of #somechannel</title>")
	assert.Contains(t, page, "<h1>IRC logs of #somechannel</h1>")
	assert.Contains(t, page, `<li><a href="latest.log.html">Latest (bookmarkable)</a></li>`)
	assert.Contains(t, page, "<h2>2013-02</h2>")
	assert.Contains(t, page, "<h2>2013-03</h2>")
	assert.Contains(t, page, `<li><a href="somechannel-20130225.log.html">2013-02-25 (Monday)</a></li>`)
	assert.Contains(t, page, `<li><a href="somechannel-20130316.log.html">2013-03-16 (Saturday)</a></li>`)
	assert.Contains(t, page, `<li><a href="somechannel-20130317.log.html">2013-03-17 (Sunday)</a></li>`)

	// Each month list is opened and closed.
	assert.Equal(t, strings.Count(page, "<ul>"), strings.Count(page, "</ul>"))
	// Months come out in chronological order.
	assert.Less(t, strings.Index(page, "<h2>2013-02</h2>"), strings.Index(page, "<h2>2013-03</h2>"))
}

func TestWriteIndex_EscapesTitle(t *testing.T) {
	files := indexFiles(t, "somechannel-20130317.log")

	var buf strings.Builder
	require.NoError(t, WriteIndex(&buf, "IRC logs of #chan <test>", files, ""))
	page := buf.String()

	assert.Contains(t, page, "<h1>IRC logs of #chan &lt;test&gt;</h1>")
	assert.NotContains(t, page, "Latest (bookmarkable)")
}

func TestWriteIndex_Empty(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteIndex(&buf, "IRC logs", nil, ""))
	page := buf.String()

	assert.Contains(t, page, "<h1>IRC logs</h1>")
	assert.NotContains(t, page, "<h2>")
	assert.Contains(t, page, "</html>")
}
