// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

package style

import (
	"github.com/wingedpig/irclog/internal/colour"
	"github.com/wingedpig/irclog/internal/logparse"
)

// Convert drains p through f, assigning nick colours in order of first
// appearance. Each call starts from a fresh colourizer, so regenerating
// a page always produces the same colours. Renames are applied to the
// colour table before the rename line itself is formatted.
func Convert(p *logparse.Parser, f Formatter, title string, nav Nav) error {
	colours := colour.NewColourizer()
	if err := f.Head(title, nav); err != nil {
		return err
	}
	for p.Scan() {
		ev := p.Event()
		if ev.Kind == logparse.Comment {
			if err := f.NickText(ev.Time, ev.Nick, ev.Text, colours.Lookup(ev.Nick)); err != nil {
				return err
			}
			continue
		}
		if ev.Kind == logparse.NickChange {
			colours.Rename(ev.OldNick, ev.NewNick)
		}
		if err := f.ServerMsg(ev.Time, ev.Kind, ev.Text); err != nil {
			return err
		}
	}
	if err := p.Err(); err != nil {
		return err
	}
	return f.Foot()
}
