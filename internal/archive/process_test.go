// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcess(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"somechannel-20130316.log",
		"somechannel-20130317.log",
		"somechannel-20130318.log",
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("10:00 <mg> hello\n"), 0644))
	}

	opts := Options{Title: "IRC logs", Prefix: "IRC logs for "}
	require.NoError(t, Process(context.Background(), dir, opts))

	for _, name := range []string{
		"somechannel-20130316.log.html",
		"somechannel-20130317.log.html",
		"somechannel-20130318.log.html",
		"index.html",
		"irclog.css",
	} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	target, err := os.Readlink(filepath.Join(dir, LatestLink))
	require.NoError(t, err)
	assert.Equal(t, "somechannel-20130318.log.html", target)

	data, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `<a href="somechannel-20130317.log.html">2013-03-17 (Sunday)</a>`)
}

func TestProcess_SkipsUpToDate(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "somechannel-20130317.log")
	htmlPath := filepath.Join(dir, "somechannel-20130317.log.html")
	require.NoError(t, os.WriteFile(logPath, []byte("10:00 <mg> hello\n"), 0644))
	require.NoError(t, os.WriteFile(htmlPath, []byte("SENTINEL"), 0644))

	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(logPath, old, old))

	require.NoError(t, Process(context.Background(), dir, Options{}))

	data, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Equal(t, "SENTINEL", string(data))

	// The index, stylesheet and symlink are refreshed regardless.
	_, err = os.Stat(filepath.Join(dir, "index.html"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "irclog.css"))
	assert.NoError(t, err)
	_, err = os.Lstat(filepath.Join(dir, LatestLink))
	assert.NoError(t, err)
}

func TestProcess_Force(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "somechannel-20130317.log")
	htmlPath := filepath.Join(dir, "somechannel-20130317.log.html")
	require.NoError(t, os.WriteFile(logPath, []byte("10:00 <mg> hello\n"), 0644))
	require.NoError(t, os.WriteFile(htmlPath, []byte("SENTINEL"), 0644))

	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(logPath, old, old))

	require.NoError(t, Process(context.Background(), dir, Options{Force: true}))

	data, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<!DOCTYPE"), "page not regenerated: %q", data)
}

func TestProcess_OutputDir(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "somechannel-20130317.log")
	require.NoError(t, os.WriteFile(logPath, []byte("10:00 <mg> hello\n"), 0644))

	out := filepath.Join(dir, "new", "out")
	opts := Options{OutputDir: out}
	require.NoError(t, Process(context.Background(), dir, opts))

	for _, name := range []string{
		"somechannel-20130317.log.html",
		"index.html",
		"irclog.css",
	} {
		_, err := os.Stat(filepath.Join(out, name))
		assert.NoError(t, err, name)
	}
	_, err := os.Lstat(filepath.Join(out, LatestLink))
	assert.NoError(t, err)

	// Nothing generated next to the logs.
	_, err = os.Stat(filepath.Join(dir, "somechannel-20130317.log.html"))
	assert.True(t, os.IsNotExist(err))
}

func TestProcess_OutputDirNotCreatable(t *testing.T) {
	dir := t.TempDir()
	blocked := filepath.Join(dir, "blocked")
	require.NoError(t, os.WriteFile(blocked, nil, 0644))

	err := Process(context.Background(), dir, Options{OutputDir: filepath.Join(blocked, "out")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create output directory")
}

func TestProcess_UndatedLogAborts(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nodate.log"), nil, 0644))

	err := Process(context.Background(), dir, Options{})
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "index.html"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestProcess_EmptyDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Process(context.Background(), dir, Options{Title: "IRC logs"}))

	_, err := os.Stat(filepath.Join(dir, "index.html"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "irclog.css"))
	assert.NoError(t, err)
	_, err = os.Lstat(filepath.Join(dir, LatestLink))
	assert.True(t, os.IsNotExist(err))
}

func TestProcess_KeepsCustomStylesheet(t *testing.T) {
	dir := t.TempDir()
	cssPath := filepath.Join(dir, "irclog.css")
	require.NoError(t, os.WriteFile(cssPath, []byte("/* custom */"), 0644))

	require.NoError(t, Process(context.Background(), dir, Options{}))

	data, err := os.ReadFile(cssPath)
	require.NoError(t, err)
	assert.Equal(t, "/* custom */", string(data))
}

func TestMoveSymlink(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "latest.log.html")

	require.NoError(t, MoveSymlink("a.html", link))
	target, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, "a.html", target)

	require.NoError(t, MoveSymlink("b.html", link))
	target, err = os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, "b.html", target)
}
