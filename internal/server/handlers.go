// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package server serves an IRC log archive over HTTP: generated pages
// straight from disk, everything else (daily pages, the index, search)
// rendered on the fly.
package server

import (
	"bufio"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/valyala/bytebufferpool"

	"github.com/wingedpig/irclog/internal/archive"
	"github.com/wingedpig/irclog/internal/index"
	"github.com/wingedpig/irclog/internal/logparse"
	"github.com/wingedpig/irclog/internal/search"
	"github.com/wingedpig/irclog/internal/style"
	"github.com/wingedpig/irclog/static"
)

// Options configure the request handlers.
type Options struct {
	LogDir      string // archive directory (single-channel mode)
	Pattern     string // log file glob, default "*.log"
	ChanDir     string // parent of per-channel archive directories
	Style       string // style for pages rendered on the fly
	DircProxy   bool
	SearchLimit int // default 100
	Colours     map[logparse.Kind]string
	Index       *index.DB // optional full-text index for LogDir
}

// Handler answers archive requests.
type Handler struct {
	opts Options
}

func NewHandler(opts Options) *Handler {
	if opts.Pattern == "" {
		opts.Pattern = "*.log"
	}
	if opts.SearchLimit == 0 {
		opts.SearchLimit = 100
	}
	return &Handler{opts: opts}
}

// Home serves the front page: the channel listing in multi-channel
// mode, the archive index otherwise.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	if h.opts.ChanDir != "" {
		h.channelListing(w)
		return
	}
	h.serveIndex(w, h.opts.LogDir, "")
}

// Search serves the search page of the main archive.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, h.opts.LogDir, true)
}

// CSS serves the embedded stylesheet.
func (h *Handler) CSS(w http.ResponseWriter, r *http.Request) {
	data, err := static.CSS()
	if err != nil {
		notFound(w)
		return
	}
	w.Header().Set("Content-Type", "text/css")
	w.Write(data)
}

// File serves one file of the main archive. In multi-channel mode a
// bare channel name redirects to the channel's index.
func (h *Handler) File(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["file"]
	if h.opts.ChanDir != "" && validName(name) {
		if info, err := os.Stat(filepath.Join(h.opts.ChanDir, name)); err == nil && info.IsDir() {
			http.Redirect(w, r, url.QueryEscape(name)+"/", http.StatusFound)
			return
		}
	}
	if h.opts.LogDir == "" {
		notFound(w)
		return
	}
	h.serveFile(w, h.opts.LogDir, "", name)
}

// ChannelHome serves a channel's index page.
func (h *Handler) ChannelHome(w http.ResponseWriter, r *http.Request) {
	dir, channel, ok := h.channelDir(r)
	if !ok {
		notFound(w)
		return
	}
	h.serveIndex(w, dir, channel)
}

// ChannelSearch serves a channel's search page.
func (h *Handler) ChannelSearch(w http.ResponseWriter, r *http.Request) {
	dir, _, ok := h.channelDir(r)
	if !ok {
		notFound(w)
		return
	}
	h.search(w, r, dir, false)
}

// ChannelFile serves one file of a channel's archive.
func (h *Handler) ChannelFile(w http.ResponseWriter, r *http.Request) {
	dir, channel, ok := h.channelDir(r)
	if !ok {
		notFound(w)
		return
	}
	h.serveFile(w, dir, channel, mux.Vars(r)["file"])
}

// channelDir resolves the {channel} path segment against the channel
// tree. False means multi-channel mode is off or the name is not safe
// to touch the filesystem with.
func (h *Handler) channelDir(r *http.Request) (dir, channel string, ok bool) {
	if h.opts.ChanDir == "" {
		return "", "", false
	}
	channel = mux.Vars(r)["channel"]
	if !validName(channel) {
		return "", "", false
	}
	return filepath.Join(h.opts.ChanDir, channel), channel, true
}

// validName rejects anything that could escape the archive directory.
func validName(name string) bool {
	return name != "" && name != ".." &&
		!strings.ContainsAny(name, "/\\")
}

func (h *Handler) channelListing(w http.ResponseWriter) {
	channels, err := FindChannels(h.opts.ChanDir, h.opts.Pattern)
	if err != nil {
		log.Printf("server: list %s: %v", h.opts.ChanDir, err)
		internalError(w)
		return
	}

	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)
	search.PageHeader(bb)
	writeDirListing(bb, channels)
	search.PageFooter(bb)
	htmlHeader(w)
	w.Write(bb.B)
}

// serveIndex serves dir's index.html, rendering one from the log files
// when the archive has none.
func (h *Handler) serveIndex(w http.ResponseWriter, dir, channel string) {
	if data, err := os.ReadFile(filepath.Join(dir, "index.html")); err == nil {
		htmlHeader(w)
		w.Write(data)
		return
	}

	files, err := archive.FindLogFiles(dir, h.opts.Pattern)
	if err != nil {
		log.Printf("server: index %s: %v", dir, err)
		internalError(w)
		return
	}

	title := "IRC logs"
	if channel != "" {
		title = "IRC logs of " + channel
	}
	latest := ""
	if _, err := os.Stat(filepath.Join(dir, archive.LatestLink)); err == nil {
		latest = archive.LatestLink
	}

	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)
	if err := archive.WriteIndex(bb, title, files, latest); err != nil {
		internalError(w)
		return
	}
	htmlHeader(w)
	w.Write(bb.B)
}

// search renders the search form, or search results when the q query
// parameter is present. The full-text index only covers the main
// archive; channel searches always scan the logs.
func (h *Handler) search(w http.ResponseWriter, r *http.Request, dir string, indexed bool) {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)

	q := r.URL.Query().Get("q")
	if q == "" {
		if err := search.WriteForm(bb); err != nil {
			internalError(w)
			return
		}
		htmlHeader(w)
		w.Write(bb.B)
		return
	}

	started := time.Now()
	var (
		results []search.Result
		stats   search.Stats
		err     error
	)
	if indexed && h.opts.Index != nil {
		results, stats, err = index.Search(h.opts.Index, q, h.opts.SearchLimit)
	} else {
		results, stats, err = search.Scan(q, search.Options{
			Dir:       dir,
			Pattern:   h.opts.Pattern,
			Limit:     h.opts.SearchLimit,
			DircProxy: h.opts.DircProxy,
		})
	}
	if err != nil {
		log.Printf("server: search %q in %s: %v", q, dir, err)
		internalError(w)
		return
	}

	if err := search.WriteResults(bb, q, results, stats, time.Since(started)); err != nil {
		internalError(w)
		return
	}
	htmlHeader(w)
	w.Write(bb.B)
}

// serveFile serves name from dir: generated files as they are, raw
// logs decoded to UTF-8 text, and missing daily pages rendered on the
// fly from the log.
func (h *Handler) serveFile(w http.ResponseWriter, dir, channel, name string) {
	if !validName(name) {
		notFound(w)
		return
	}
	if name == "index.html" {
		h.serveIndex(w, dir, channel)
		return
	}

	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err == nil {
		h.serveExisting(w, path, name)
		return
	}

	switch {
	case strings.HasSuffix(name, ".html"):
		h.renderLog(w, dir, channel, name)
	case isTextName(name):
		// A plain-text request may be answerable from the
		// compressed log.
		if _, err := os.Stat(path + ".gz"); err == nil {
			h.serveText(w, path+".gz")
			return
		}
		notFound(w)
	default:
		notFound(w)
	}
}

func (h *Handler) serveExisting(w http.ResponseWriter, path, name string) {
	switch {
	case isTextName(name) || (strings.HasSuffix(name, ".gz") && isTextName(strings.TrimSuffix(name, ".gz"))):
		h.serveText(w, path)
	case strings.HasSuffix(name, ".css"):
		data, err := os.ReadFile(path)
		if err != nil {
			notFound(w)
			return
		}
		w.Header().Set("Content-Type", "text/css")
		w.Write(data)
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			notFound(w)
			return
		}
		htmlHeader(w)
		w.Write(data)
	}
}

func isTextName(name string) bool {
	return strings.HasSuffix(name, ".log") || strings.HasSuffix(name, ".txt")
}

// serveText streams a log file as UTF-8 text, decompressing and
// re-decoding it line by line.
func (h *Handler) serveText(w http.ResponseWriter, path string) {
	lf := &archive.LogFile{Path: path, Name: filepath.Base(path)}
	in, err := lf.Open()
	if err != nil {
		notFound(w)
		return
	}
	defer in.Close()

	w.Header().Set("Content-Type", "text/plain; charset=UTF-8")
	bw := bufio.NewWriter(w)
	s := bufio.NewScanner(in)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for s.Scan() {
		bw.WriteString(logparse.Decode(s.Bytes()))
		bw.WriteByte('\n')
	}
	if err := s.Err(); err != nil {
		log.Printf("server: read %s: %v", path, err)
	}
	bw.Flush()
}

// renderLog converts a daily log to HTML on the fly. The requested
// name must correspond to a log file of this archive.
func (h *Handler) renderLog(w http.ResponseWriter, dir, channel, name string) {
	stem := strings.TrimSuffix(name, ".html")
	if ok, _ := filepath.Match(h.opts.Pattern, stem); !ok {
		notFound(w)
		return
	}
	logPath := filepath.Join(dir, stem)
	if _, err := os.Stat(logPath); err != nil {
		logPath += ".gz"
		if _, err := os.Stat(logPath); err != nil {
			notFound(w)
			return
		}
	}

	lf, err := archive.NewLogFile(logPath)
	if err != nil {
		notFound(w)
		return
	}

	title := "IRC log for " + lf.Date.Format("Monday, 2006-01-02")
	if channel != "" {
		title = "IRC log of " + channel + " for " + lf.Date.Format("Monday, 2006-01-02")
	}

	nav := style.Nav{
		Index:     style.Link{Title: "Index", URL: "index.html"},
		Searchbox: true,
	}
	if files, err := archive.FindLogFiles(dir, h.opts.Pattern); err == nil {
		for i, f := range files {
			if f.LinkName() != name {
				continue
			}
			if i > 0 {
				nav.Prev = style.Link{Title: files[i-1].Title(), URL: files[i-1].LinkName()}
			}
			if i+1 < len(files) {
				nav.Next = style.Link{Title: files[i+1].Title(), URL: files[i+1].LinkName()}
			}
			break
		}
	}

	in, err := lf.Open()
	if err != nil {
		notFound(w)
		return
	}
	defer in.Close()

	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)
	formatter, err := style.New(h.opts.Style, bb, style.Options{
		Filename: name,
		Colours:  h.opts.Colours,
	})
	if err != nil {
		log.Printf("server: style %q: %v", h.opts.Style, err)
		internalError(w)
		return
	}
	p := logparse.New(in, h.opts.DircProxy)
	if err := style.Convert(p, formatter, title, nav); err != nil {
		log.Printf("server: render %s: %v", logPath, err)
		internalError(w)
		return
	}
	htmlHeader(w)
	w.Write(bb.B)
}

func htmlHeader(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=UTF-8")
}

func notFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusNotFound)
	io.WriteString(w, "Not found")
}

func internalError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusInternalServerError)
	io.WriteString(w, "Internal server error")
}
