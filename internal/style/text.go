// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

package style

import (
	"fmt"
	"io"

	"github.com/wingedpig/irclog/internal/logparse"
	"github.com/wingedpig/irclog/internal/version"
)

// ttBase is the HTML 4 transitional document shell shared by the tt and
// table styles. Output is declared ISO-8859-1; runes outside it become
// character references.
type ttBase struct{ base }

func (s *ttBase) head(title string) error {
	return s.emit(`<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.0 Transitional//EN">
<html>
<head>
	<title>%s</title>
	<meta name="generator" content="irclog2html %s">
	<meta name="version" content="%s">
	<meta http-equiv="Content-Type" content="text/html; charset=iso-8859-1">
	<meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body text="#000000" bgcolor="#ffffff"><tt>
`, Escape(title), version.Version, version.Version)
}

func (s *ttBase) foot() error {
	return s.emit(`
<br>Generated by irclog2html %s - find it at <a href="%s">%s</a>!
</tt></body></html>
`, version.Version, Escape(version.Homepage), Escape(version.Homepage))
}

// serverText escapes and linkifies text, wrapped in the per-kind colour
// when the scheme has one.
func (s *ttBase) serverText(kind logparse.Kind, text string) string {
	text = prepText(text)
	if colour := s.colours[kind]; colour != "" {
		text = fmt.Sprintf(`<font color="%s">%s</font>`, colour, text)
	}
	return text
}

// SimpleTextStyle renders the log as plain teletype text, colouring
// only server messages.
type SimpleTextStyle struct{ ttBase }

// NewSimpleText returns the "simplett" style.
func NewSimpleText(w io.Writer, opts Options) *SimpleTextStyle {
	return &SimpleTextStyle{ttBase{newBase(w, opts, 0xFF)}}
}

func (s *SimpleTextStyle) Head(title string, nav Nav) error {
	return s.head(title)
}

func (s *SimpleTextStyle) Foot() error {
	return s.foot()
}

func (s *SimpleTextStyle) ServerMsg(ts string, kind logparse.Kind, text string) error {
	return s.emit("%s<br>\n", s.serverText(kind, text))
}

func (s *SimpleTextStyle) NickText(ts, nick, text, colour string) error {
	return s.emit("&lt;%s&gt; %s<br>\n", Escape(nick), prepNickText(text))
}

// TextStyle is SimpleTextStyle with per-nick colours.
type TextStyle struct{ SimpleTextStyle }

// NewText returns the "tt" style.
func NewText(w io.Writer, opts Options) *TextStyle {
	return &TextStyle{SimpleTextStyle{ttBase{newBase(w, opts, 0xFF)}}}
}

func (s *TextStyle) NickText(ts, nick, text, colour string) error {
	return s.emit(`<font color="%s">&lt;%s&gt;</font> <font color="#000000">%s</font><br>`+"\n",
		colour, Escape(nick), prepNickText(text))
}
