// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package archive turns a directory of dated IRC logs into a browsable
// HTML archive: one page per log, an index grouped by month, a
// bookmarkable "latest" symlink and the stylesheet, kept fresh either
// by one-shot batch runs or by a filesystem watcher.
package archive

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/wingedpig/irclog/internal/logparse"
	"github.com/wingedpig/irclog/internal/style"
)

var dateRx = regexp.MustCompile(`(\d\d\d\d)-?(\d\d)-?(\d\d)`)

// LogFile is one dated log file of an archive.
type LogFile struct {
	Path string    // full path to the log file
	Name string    // base name
	Date time.Time // date from the file name, midnight UTC
}

// NewLogFile inspects path and extracts the log's date from its name.
// Both 20130318 and 2013-03-18 name forms are accepted.
func NewLogFile(path string) (*LogFile, error) {
	name := filepath.Base(path)
	m := dateRx.FindStringSubmatch(name)
	if m == nil {
		return nil, fmt.Errorf("%s does not contain a YYYY-MM-DD date", name)
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return nil, fmt.Errorf("%s does not contain a valid date", name)
	}
	return &LogFile{Path: path, Name: name, Date: date}, nil
}

// Title returns the page title for this log, e.g. "2013-03-18 (Monday)".
func (f *LogFile) Title() string {
	return f.Date.Format("2006-01-02 (Monday)")
}

// LinkName returns the name of the generated page: the base name with
// any .gz stripped and .html appended.
func (f *LogFile) LinkName() string {
	return strings.TrimSuffix(f.Name, ".gz") + ".html"
}

// HTMLPath returns where the generated page for this log lives. An
// empty outputDir means next to the log itself.
func (f *LogFile) HTMLPath(outputDir string) string {
	if outputDir == "" {
		outputDir = filepath.Dir(f.Path)
	}
	return filepath.Join(outputDir, f.LinkName())
}

// UpToDate reports whether the generated page exists and is strictly
// newer than the log. Equal mtimes regenerate.
func (f *LogFile) UpToDate(outputDir string) bool {
	logInfo, err := os.Stat(f.Path)
	if err != nil {
		return false
	}
	htmlInfo, err := os.Stat(f.HTMLPath(outputDir))
	if err != nil {
		return false
	}
	return htmlInfo.ModTime().After(logInfo.ModTime())
}

// Open returns the raw log contents, transparently decompressing .gz
// files.
func (f *LogFile) Open() (io.ReadCloser, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(f.Name, ".gz") {
		return file, nil
	}
	zr, err := gzip.NewReader(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("gunzip %s: %w", f.Name, err)
	}
	return &gzipFile{Reader: zr, file: file}, nil
}

type gzipFile struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipFile) Close() error {
	err := g.Reader.Close()
	if cerr := g.file.Close(); err == nil {
		err = cerr
	}
	return err
}

// Generate converts the log into its HTML page, linking prev and next
// in the navigation bar.
func (f *LogFile) Generate(prev, next *LogFile, opts Options) error {
	in, err := f.Open()
	if err != nil {
		return fmt.Errorf("open %s: %w", f.Name, err)
	}
	defer in.Close()

	outPath := f.HTMLPath(opts.OutputDir)
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}

	bw := bufio.NewWriter(out)
	formatter, err := style.New(opts.Style, bw, style.Options{
		Filename: f.LinkName(),
		Colours:  opts.Colours,
	})
	if err != nil {
		out.Close()
		return err
	}

	nav := style.Nav{
		Index:     style.Link{Title: "Index", URL: "index.html"},
		Searchbox: opts.Searchbox,
	}
	if prev != nil {
		nav.Prev = style.Link{Title: prev.Title(), URL: prev.LinkName()}
	}
	if next != nil {
		nav.Next = style.Link{Title: next.Title(), URL: next.LinkName()}
	}

	p := logparse.New(in, opts.DircProxy)
	if err := style.Convert(p, formatter, opts.Prefix+f.Title(), nav); err != nil {
		out.Close()
		return fmt.Errorf("convert %s: %w", f.Name, err)
	}
	if err := bw.Flush(); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return out.Close()
}

// FindLogFiles lists the dated log files under dir matching pattern
// plus their gzipped variants, sorted by date then name. A matching
// file without a date in its name is an error.
func FindLogFiles(dir, pattern string) ([]*LogFile, error) {
	if pattern == "" {
		pattern = "*.log"
	}
	paths, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
	}
	gz, err := filepath.Glob(filepath.Join(dir, pattern+".gz"))
	if err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", pattern+".gz", err)
	}
	paths = append(paths, gz...)

	files := make([]*LogFile, 0, len(paths))
	for _, p := range paths {
		lf, err := NewLogFile(p)
		if err != nil {
			return nil, err
		}
		files = append(files, lf)
	}
	sortLogFiles(files)
	return files, nil
}

func sortLogFiles(files []*LogFile) {
	sort.Slice(files, func(i, j int) bool {
		if !files[i].Date.Equal(files[j].Date) {
			return files[i].Date.Before(files[j].Date)
		}
		return files[i].Name < files[j].Name
	})
}
