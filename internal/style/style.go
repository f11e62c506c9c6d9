// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package style renders classified IRC log events as documents in one
// of several fixed markup dialects.
package style

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/wingedpig/irclog/internal/logparse"
)

// Link is one entry of a page's navigation bar.
type Link struct {
	Title string
	URL   string
}

// Nav is the navigation context a page is generated with.
type Nav struct {
	Prev      Link
	Index     Link
	Next      Link
	Searchbox bool
}

// Formatter writes one complete document, incrementally: Head once,
// then any number of ServerMsg/NickText calls in event order, then Foot
// once. Methods never fail on event content; the returned error is
// always a write error.
type Formatter interface {
	Head(title string, nav Nav) error
	Foot() error

	// ServerMsg formats any event that is not a comment. The text
	// arrives unescaped.
	ServerMsg(ts string, kind logparse.Kind, text string) error

	// NickText formats a comment in the given nick colour. Nick and
	// text arrive unescaped.
	NickText(ts, nick, text, colour string) error
}

// Options configures a formatter instance.
type Options struct {
	// Filename is the name of the file being generated; anchors link
	// back to it. Only the base name is kept.
	Filename string
	// Colours overrides DefaultColours as the per-kind event colour
	// scheme of the colour-capable styles.
	Colours map[logparse.Kind]string
}

// DefaultStyle is used when no style is configured.
const DefaultStyle = "xhtmltable"

// DefaultColours returns the standard event colour scheme.
func DefaultColours() map[logparse.Kind]string {
	return map[logparse.Kind]string{
		logparse.Part:       "#000099",
		logparse.Join:       "#009900",
		logparse.Server:     "#009900",
		logparse.NickChange: "#009900",
		logparse.Action:     "#CC00CC",
	}
}

// Info describes an available style.
type Info struct {
	Name        string
	Description string
}

// Styles lists the available styles in presentation order.
func Styles() []Info {
	return []Info{
		{"simplett", "text style with little use of colour"},
		{"tt", "text style using colours for each nick"},
		{"simpletable", "table style, without heavy use of colour"},
		{"table", "table style with bold colours"},
		{"xhtml", "text style, produces XHTML that can be styled with CSS"},
		{"xhtmltable", "table style, produces XHTML that can be styled with CSS"},
		{"mediawiki", "table style, produces MediaWiki syntax"},
	}
}

// New constructs the named formatter writing to w. An empty name means
// DefaultStyle.
func New(name string, w io.Writer, opts Options) (Formatter, error) {
	switch name {
	case "simplett":
		return NewSimpleText(w, opts), nil
	case "tt":
		return NewText(w, opts), nil
	case "simpletable":
		return NewSimpleTable(w, opts), nil
	case "table":
		return NewTable(w, opts), nil
	case "xhtml":
		return NewXHTML(w, opts), nil
	case "xhtmltable", "":
		return NewXHTMLTable(w, opts), nil
	case "mediawiki":
		return NewMediaWiki(w, opts), nil
	}
	names := make([]string, 0, len(Styles()))
	for _, s := range Styles() {
		names = append(names, s.Name)
	}
	return nil, fmt.Errorf("unknown style %q (have %s)", name, strings.Join(names, ", "))
}

// base carries what every formatter shares: the writer, the options and
// the set of anchors already handed out. Each formatter instance owns
// its anchor set; two instances writing the same events produce the
// same anchors.
type base struct {
	w        io.Writer
	filename string
	colours  map[logparse.Kind]string
	anchors  map[string]bool
	// maxRune is the highest rune the output charset can represent;
	// 0 means unrestricted. Runes above it are written as decimal
	// character references.
	maxRune rune
}

func newBase(w io.Writer, opts Options, maxRune rune) base {
	name := opts.Filename
	if name != "" {
		name = filepath.Base(name)
	}
	colours := opts.Colours
	if colours == nil {
		colours = DefaultColours()
	}
	return base{
		w:        w,
		filename: name,
		colours:  colours,
		anchors:  make(map[string]bool),
		maxRune:  maxRune,
	}
}

func (b *base) emit(format string, args ...any) error {
	s := fmt.Sprintf(format, args...)
	if b.maxRune > 0 {
		s = charref(s, b.maxRune)
	}
	_, err := io.WriteString(b.w, s)
	return err
}

// anchor returns a document-unique anchor for a timestamp, suffixing
// -2, -3, ... when the same timestamp repeats.
func (b *base) anchor(ts string) string {
	a := "t" + ts
	if b.anchors[a] {
		for n := 2; ; n++ {
			c := fmt.Sprintf("%s-%d", a, n)
			if !b.anchors[c] {
				a = c
				break
			}
		}
	}
	b.anchors[a] = true
	return a
}

// charref writes runes above max as decimal character references, the
// HTML equivalent of an xmlcharrefreplace encoder.
func charref(s string, max rune) string {
	if !strings.ContainsFunc(s, func(r rune) bool { return r > max }) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 16)
	for _, r := range s {
		if r > max {
			fmt.Fprintf(&sb, "&#%d;", r)
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// prepText escapes server/comment text and wraps URLs in links.
func prepText(text string) string {
	return CreateLinks(Escape(text))
}

// prepNickText additionally keeps runs of two spaces visible.
func prepNickText(text string) string {
	return strings.ReplaceAll(prepText(text), "  ", "&nbsp;&nbsp;")
}
