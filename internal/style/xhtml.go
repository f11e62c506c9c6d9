// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

package style

import (
	"fmt"
	"io"
	"strings"

	"github.com/wingedpig/irclog/internal/logparse"
	"github.com/wingedpig/irclog/internal/version"
)

// xhtmlBase is the UTF-8 XHTML document shell shared by the xhtml and
// xhtmltable styles. It remembers the navigation links from Head so
// Foot can repeat them below the log.
type xhtmlBase struct {
	base
	nav Nav
}

func (s *xhtmlBase) head(title, open string, nav Nav) error {
	s.nav = nav
	err := s.emit(`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN"
          "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">
<html>
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>%s</title>
  <link rel="stylesheet" href="irclog.css" />
  <meta name="generator" content="irclog2html %s" />
  <meta name="version" content="%s" />
</head>
<body>
<h1>%s</h1>
`, Escape(title), version.Version, version.Version, Escape(title))
	if err != nil {
		return err
	}
	if nav.Searchbox {
		if err := s.searchbox(); err != nil {
			return err
		}
	}
	if err := s.navbar(nav); err != nil {
		return err
	}
	return s.emit("%s\n", open)
}

func (s *xhtmlBase) foot(close string) error {
	if err := s.emit("%s\n", close); err != nil {
		return err
	}
	if err := s.navbar(s.nav); err != nil {
		return err
	}
	return s.emit(`
<div class="generatedby">
<p>Generated by irclog2html %s - find it at <a href="%s">%s</a>!</p>
</div>
</body>
</html>
`, version.Version, Escape(version.Homepage), Escape(version.Homepage))
}

func (s *xhtmlBase) searchbox() error {
	return s.emit(`
<div class="searchbox">
<form action="search" method="get">
<input type="text" name="q" id="searchtext" />
<input type="submit" value="Search" id="searchbutton" />
</form>
</div>

`)
}

// navbar writes prev/index/next links. Titles may carry markup and are
// not escaped; bare URLs double as their own labels. The whole bar is
// skipped when no link has anything to show.
func (s *xhtmlBase) navbar(nav Nav) error {
	links := []Link{nav.Prev, nav.Index, nav.Next}
	present := false
	for _, l := range links {
		if l.Title != "" || l.URL != "" {
			present = true
			break
		}
	}
	if !present {
		return nil
	}
	var sb strings.Builder
	sb.WriteString(`<div class="navigation"> `)
	for _, l := range links {
		switch {
		case l.URL != "":
			label := l.Title
			if label == "" {
				label = Escape(l.URL)
			}
			fmt.Fprintf(&sb, `<a href="%s">%s</a> `, Escape(QuoteURL(l.URL)), label)
		case l.Title != "":
			fmt.Fprintf(&sb, `<span class="disabled">%s</span> `, l.Title)
		}
	}
	sb.WriteString("</div>\n")
	return s.emit("%s", sb.String())
}

// XHTMLStyle writes each event as a CSS-classed paragraph.
type XHTMLStyle struct{ xhtmlBase }

// NewXHTML returns the "xhtml" style.
func NewXHTML(w io.Writer, opts Options) *XHTMLStyle {
	return &XHTMLStyle{xhtmlBase{base: newBase(w, opts, 0)}}
}

func (s *XHTMLStyle) Head(title string, nav Nav) error {
	return s.head(title, `<div class="irclog">`, nav)
}

func (s *XHTMLStyle) Foot() error {
	return s.foot("</div>")
}

func (s *XHTMLStyle) ServerMsg(ts string, kind logparse.Kind, text string) error {
	text = prepText(text)
	if ts == "" {
		return s.emit("<p class=\"%s\">%s</p>\n", kind.Class(), text)
	}
	a := s.anchor(ts)
	return s.emit(`<p id="%s" class="%s"><a href="%s#%s" class="time">%s</a> %s</p>`+"\n",
		a, kind.Class(), s.filename, a, ShortTime(ts), text)
}

func (s *XHTMLStyle) NickText(ts, nick, text, colour string) error {
	nick = Escape(nick)
	text = prepNickText(text)
	if ts == "" {
		return s.emit(`<p class="comment"><span class="nick" style="color: %s">&lt;%s&gt;</span> <span class="text">%s</span></p>`+"\n",
			colour, nick, text)
	}
	a := s.anchor(ts)
	return s.emit(`<p id="%s" class="comment"><a href="%s#%s" class="time">%s</a> <span class="nick" style="color: %s">&lt;%s&gt;</span> <span class="text">%s</span></p>`+"\n",
		a, s.filename, a, ShortTime(ts), colour, nick, text)
}

// XHTMLTableStyle writes the log as a CSS-classed table. The *At
// variants take an explicit target page for the time anchors, which
// search result rendering uses to point rows back at their daily logs.
type XHTMLTableStyle struct{ xhtmlBase }

// NewXHTMLTable returns the "xhtmltable" style.
func NewXHTMLTable(w io.Writer, opts Options) *XHTMLTableStyle {
	return &XHTMLTableStyle{xhtmlBase{base: newBase(w, opts, 0)}}
}

func (s *XHTMLTableStyle) Head(title string, nav Nav) error {
	return s.head(title, `<table class="irclog">`, nav)
}

func (s *XHTMLTableStyle) Foot() error {
	return s.foot("</table>")
}

// OpenTable and CloseTable write just the table element, for pages
// that embed log fragments in their own document shell.
func (s *XHTMLTableStyle) OpenTable() error {
	return s.emit("<table class=\"irclog\">\n")
}

func (s *XHTMLTableStyle) CloseTable() error {
	return s.emit("</table>\n")
}

func (s *XHTMLTableStyle) ServerMsg(ts string, kind logparse.Kind, text string) error {
	return s.ServerMsgAt("", ts, kind, text)
}

// ServerMsgAt is ServerMsg with the anchor link aimed at page link
// instead of the style's own filename.
func (s *XHTMLTableStyle) ServerMsgAt(link, ts string, kind logparse.Kind, text string) error {
	text = prepText(text)
	if ts == "" {
		return s.emit(`<tr><td class="%s" colspan="3">%s</td></tr>`+"\n", kind.Class(), text)
	}
	if link == "" {
		link = s.filename
	}
	a := s.anchor(ts)
	return s.emit(`<tr id="%s"><td class="%s" colspan="2">%s</td><td><a href="%s#%s" class="time">%s</a></td></tr>`+"\n",
		a, kind.Class(), text, link, a, ShortTime(ts))
}

func (s *XHTMLTableStyle) NickText(ts, nick, text, colour string) error {
	return s.NickTextAt("", ts, nick, text, colour)
}

// NickTextAt is NickText with the anchor link aimed at page link
// instead of the style's own filename.
func (s *XHTMLTableStyle) NickTextAt(link, ts, nick, text, colour string) error {
	nick = Escape(nick)
	text = prepNickText(text)
	if ts == "" {
		return s.emit(`<tr><th class="nick" style="background: %s">%s</th><td class="text" colspan="2" style="color: %s">%s</td></tr>`+"\n",
			colour, nick, colour, text)
	}
	if link == "" {
		link = s.filename
	}
	a := s.anchor(ts)
	return s.emit(`<tr id="%s"><th class="nick" style="background: %s">%s</th><td class="text" style="color: %s">%s</td><td class="time"><a href="%s#%s" class="time">%s</a></td></tr>`+"\n",
		a, colour, nick, colour, text, link, a, ShortTime(ts))
}
