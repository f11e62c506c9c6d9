// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

package style

import (
	"io"

	"github.com/wingedpig/irclog/internal/logparse"
	"github.com/wingedpig/irclog/internal/version"
)

// MediaWikiStyle emits wiki table markup. MediaWiki linkifies URLs on
// its own, so text is escaped but never passed through CreateLinks.
// Output is kept to ASCII; anything above becomes a character
// reference.
type MediaWikiStyle struct{ base }

// NewMediaWiki returns the "mediawiki" style.
func NewMediaWiki(w io.Writer, opts Options) *MediaWikiStyle {
	return &MediaWikiStyle{newBase(w, opts, 0x7F)}
}

func (s *MediaWikiStyle) Head(title string, nav Nav) error {
	return s.emit("{|\n")
}

func (s *MediaWikiStyle) Foot() error {
	return s.emit("|}\n\nGenerated by irclog2html %s - find it at [%s %s]!\n",
		version.Version, version.Homepage, version.Homepage)
}

func (s *MediaWikiStyle) ServerMsg(ts string, kind logparse.Kind, text string) error {
	text = Escape(text)
	if ts == "" {
		return s.emit("|-\n| colspan=\"3\" | %s\n", text)
	}
	return s.emit("|- id=\"t%s\"\n| colspan=\"2\" | %s\n|| [[#t%s|%s]]\n",
		ts, text, ts, ShortTime(ts))
}

func (s *MediaWikiStyle) NickText(ts, nick, text, colour string) error {
	nick = Escape(nick)
	text = Escape(text)
	if ts == "" {
		return s.emit("|-\n| style=\"background-color: %s\" | %s\n| style=\"color: %s\" colspan=\"2\" | %s \n",
			colour, nick, colour, text)
	}
	return s.emit("|- id=\"t%s\"\n! style=\"background-color: %s\" | %s\n| style=\"color: %s\" | %s\n|| [[#t%s|%s]] \n",
		ts, colour, nick, colour, text, ts, ShortTime(ts))
}
