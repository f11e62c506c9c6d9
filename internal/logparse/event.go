// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package logparse classifies plain-text IRC log lines into typed events.
package logparse

// Kind identifies what a log line represents.
type Kind string

const (
	Comment    Kind = "comment"
	Action     Kind = "action"
	Join       Kind = "join"
	Part       Kind = "part"
	NickChange Kind = "nickchange"
	Server     Kind = "server"
	Other      Kind = "other"
)

// Class returns the CSS class used for events of this kind.
func (k Kind) Class() string {
	if k == Server {
		return "servermsg"
	}
	return string(k)
}

// Event is a single classified log line.
type Event struct {
	// Time is the timestamp text stripped from the line, "" when the
	// line carried none.
	Time string
	Kind Kind
	// Nick is set for comment events only.
	Nick string
	// Text is the payload: the message for comments, the full line
	// after the timestamp for every other kind.
	Text string
	// OldNick and NewNick are set for nickchange events only.
	OldNick string
	NewNick string
}
