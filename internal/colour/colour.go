// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package colour assigns deterministic colours to IRC nicknames.
package colour

import "fmt"

// Chooser maps an index within a population of n to an RGB colour. The
// same (i, n) pair always yields the same colour; neighbouring indexes
// get visually distinct colours by cycling through six weight vectors
// while the intensity falls with i.
type Chooser struct {
	rgbmin  int
	rgbmax  int
	palette [6][3]float64
}

// NewChooser returns a chooser with the standard palette.
func NewChooser() *Chooser {
	const a, b = 0.95, 0.5
	return &Chooser{
		rgbmin: 240,
		rgbmax: 125,
		palette: [6][3]float64{
			{a, b, b}, {b, a, b}, {b, b, a},
			{a, a, b}, {a, b, a}, {b, a, a},
		},
	}
}

// Choose returns colour i of a population of n as "#rrggbb". The result
// is a six-digit hex colour for any non-negative i and n, including
// i > n.
func (c *Chooser) Choose(i, n int) string {
	if n == 0 {
		n = 1
	}
	idx := i % len(c.palette)
	if idx < 0 {
		idx += len(c.palette)
	}
	v := c.palette[idx]
	m := float64(c.rgbmin) + float64(c.rgbmax-c.rgbmin)*float64(n-i)/float64(n)
	return fmt.Sprintf("#%02x%02x%02x",
		channel(v[0]*m), channel(v[1]*m), channel(v[2]*m))
}

func channel(x float64) int {
	c := int(x)
	if c < 0 {
		return 0
	}
	if c > 255 {
		return 255
	}
	return c
}

// Colourizer hands out colours to nicknames as they first appear and
// keeps them stable for the lifetime of one conversion run. Not safe
// for concurrent use; each run owns its own instance.
type Colourizer struct {
	chooser  *Chooser
	count    int
	capacity int
	colours  map[string]string
}

// The assumed number of participants. The capacity doubles whenever the
// count reaches it, so colours assigned earlier never change.
const defaultCapacity = 30

// NewColourizer returns an empty colourizer with the standard chooser.
func NewColourizer() *Colourizer {
	return &Colourizer{
		chooser:  NewChooser(),
		capacity: defaultCapacity,
		colours:  make(map[string]string),
	}
}

// Lookup returns the colour for nick, assigning the next free colour
// when the nick has none yet.
func (c *Colourizer) Lookup(nick string) string {
	if col := c.colours[nick]; col != "" {
		return col
	}
	c.count++
	if c.count >= c.capacity {
		c.capacity *= 2
	}
	col := c.chooser.Choose(c.count, c.capacity)
	c.colours[nick] = col
	return col
}

// Rename moves the colour of old to new, so a nick keeps its colour
// across a rename. Unknown old nicks are ignored; no colour is ever
// assigned here.
func (c *Colourizer) Rename(old, new string) {
	if col, ok := c.colours[old]; ok {
		c.colours[new] = col
		delete(c.colours, old)
	}
}
