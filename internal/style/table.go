// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

package style

import (
	"io"

	"github.com/wingedpig/irclog/internal/logparse"
)

// SimpleTableStyle lays the log out as a two-column nick/text table.
type SimpleTableStyle struct{ ttBase }

// NewSimpleTable returns the "simpletable" style.
func NewSimpleTable(w io.Writer, opts Options) *SimpleTableStyle {
	return &SimpleTableStyle{ttBase{newBase(w, opts, 0xFF)}}
}

func (s *SimpleTableStyle) Head(title string, nav Nav) error {
	if err := s.head(title); err != nil {
		return err
	}
	return s.emit("<table cellspacing=3 cellpadding=2 border=0>\n")
}

func (s *SimpleTableStyle) Foot() error {
	if err := s.emit("</table>\n"); err != nil {
		return err
	}
	return s.foot()
}

func (s *SimpleTableStyle) ServerMsg(ts string, kind logparse.Kind, text string) error {
	return s.emit("<tr><td colspan=2><tt>%s</tt></td></tr>\n", s.serverText(kind, text))
}

func (s *SimpleTableStyle) NickText(ts, nick, text, colour string) error {
	return s.emit(`<tr bgcolor="#eeeeee"><th><font color="%s"><tt>%s</tt></font></th><td width="100%%"><tt>%s</tt></td></tr>`+"\n",
		colour, Escape(nick), prepNickText(text))
}

// TableStyle is SimpleTableStyle with solid-coloured nick cells.
type TableStyle struct{ SimpleTableStyle }

// NewTable returns the "table" style.
func NewTable(w io.Writer, opts Options) *TableStyle {
	return &TableStyle{SimpleTableStyle{ttBase{newBase(w, opts, 0xFF)}}}
}

func (s *TableStyle) NickText(ts, nick, text, colour string) error {
	return s.emit(`<tr><th bgcolor="%s"><font color="#ffffff"><tt>%s</tt></font></th><td width="100%%" bgcolor="#eeeeee"><tt><font color="%s">%s</font></tt></td></tr>`+"\n",
		colour, Escape(nick), colour, prepNickText(text))
}
