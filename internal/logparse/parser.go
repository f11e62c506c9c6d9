// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

package logparse

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var (
	// 02:24, [02:24], [02:24:55], 2004-02-04T14:18:55, 02-Feb-2004 14:18,
	// Feb 02 14:18 and 02 Feb 14:18; the brackets are optional, the
	// trailing space is not.
	timeRx = regexp.MustCompile(`^\[?((?:\d{4}-\d{2}-\d{2}T|\d{2}-\w{3}-\d{4} |\w{3} \d{2} |\d{2} \w{3} )?\d\d:\d\d(?::\d\d)?)\]? +`)

	// Bare Unix timestamps, as written by dircproxy.
	epochRx = regexp.MustCompile(`^(\d+) +`)

	nickRx       = regexp.MustCompile(`^<(.*?)(?:!.*?)?>\s`)
	joinRx       = regexp.MustCompile(`^(?:\*\*\*|-->|-!-)\s.*joined`)
	partRx       = regexp.MustCompile(`^(?:\*\*\*|<--|-!-)\s.*(?:quit|left)`)
	servMsgRx    = regexp.MustCompile(`^(?:\*\*\*|---|-!-)\s`)
	nickChangeRx = regexp.MustCompile(`^(?:\*\*\*|---|-!-)\s+(.*?) (?:are|is) now known as (.*)`)
)

// Parser reads an IRC log and produces one classified event per
// non-blank line, in the bufio.Scanner idiom. It is single-pass and not
// restartable.
type Parser struct {
	scanner   *bufio.Scanner
	dircproxy bool
	ev        Event
}

// New returns a parser over r. With dircproxy set, the single +/- mode
// prefix dircproxy inserts before comment text is stripped.
func New(r io.Reader, dircproxy bool) *Parser {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Parser{scanner: s, dircproxy: dircproxy}
}

// Scan advances to the next meaningful line. It returns false at end of
// input or on a read error (see Err).
func (p *Parser) Scan() bool {
	for p.scanner.Scan() {
		line := strings.TrimRight(Decode(p.scanner.Bytes()), "\r\n")
		if line == "" {
			continue
		}
		p.ev = classify(line, p.dircproxy)
		return true
	}
	return false
}

// Event returns the event produced by the last successful Scan.
func (p *Parser) Event() Event {
	return p.ev
}

// Err returns the first error encountered while reading the input.
// Malformed log content is never an error; unrecognized lines classify
// as Other.
func (p *Parser) Err() error {
	return p.scanner.Err()
}

// Decode interprets a raw line as UTF-8 and falls back to
// Windows-1252 otherwise, which covers the hybrid Latin/Unicode
// encoding produced by older clients such as xchat.
func Decode(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		sb.WriteRune(charmap.Windows1252.DecodeByte(c))
	}
	return sb.String()
}

func classify(line string, dircproxy bool) Event {
	var ev Event
	if m := timeRx.FindStringSubmatch(line); m != nil {
		ev.Time = m[1]
		line = line[len(m[0]):]
	} else if m := epochRx.FindStringSubmatch(line); m != nil {
		if secs, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			ev.Time = time.Unix(secs, 0).UTC().Format("2006-01-02T15:04:05")
			line = line[len(m[0]):]
		}
	}

	if m := nickRx.FindStringSubmatch(line); m != nil {
		text := line[len(m[0]):]
		if dircproxy && (strings.HasPrefix(text, "+") || strings.HasPrefix(text, "-")) {
			text = text[1:]
		}
		ev.Kind = Comment
		ev.Nick = m[1]
		ev.Text = text
		return ev
	}

	switch {
	case strings.HasPrefix(line, "* ") || strings.HasPrefix(line, "*\t"):
		ev.Kind = Action
	case joinRx.MatchString(line):
		ev.Kind = Join
	case partRx.MatchString(line):
		ev.Kind = Part
	default:
		if m := nickChangeRx.FindStringSubmatch(line); m != nil {
			ev.Kind = NickChange
			ev.OldNick = m[1]
			ev.NewNick = m[2]
		} else if servMsgRx.MatchString(line) {
			ev.Kind = Server
		} else {
			ev.Kind = Other
		}
	}
	ev.Text = line
	return ev
}
