// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

package style

import (
	"strings"
	"testing"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"Hello" & <world>`, "&quot;Hello&quot; &amp; &lt;world&gt;"},
		{"no markup", "no markup"},
		{"a<b", "a&lt;b"},
		{"a>b", "a&gt;b"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Escape(tt.in); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeStripsControlChars(t *testing.T) {
	var sb strings.Builder
	sb.WriteByte('[')
	for c := 0; c < 0x20; c++ {
		sb.WriteByte(byte(c))
	}
	sb.WriteByte(']')
	if got := Escape(sb.String()); got != "[]" {
		t.Errorf("Escape(control chars) = %q, want %q", got, "[]")
	}
}

func TestCreateLinks(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{
			"check out &lt;http://example.com/a?b=c&amp;c=d#e&gt;!",
			`check out &lt;<a href="http://example.com/a?b=c&amp;c=d#e" rel="nofollow">http://example.com/a?b=c&amp;c=d#e</a>&gt;!`,
		},
		{
			"http://example.com/a,",
			`<a href="http://example.com/a" rel="nofollow">http://example.com/a</a>,`,
		},
		{
			"http://example.com/a.",
			`<a href="http://example.com/a" rel="nofollow">http://example.com/a</a>.`,
		},
		{
			"http://example.com/a.b",
			`<a href="http://example.com/a.b" rel="nofollow">http://example.com/a.b</a>`,
		},
		{
			"ftp://ftp.example.org/pub",
			`<a href="ftp://ftp.example.org/pub" rel="nofollow">ftp://ftp.example.org/pub</a>`,
		},
		{"no links here", "no links here"},
	}
	for _, tt := range tests {
		if got := CreateLinks(tt.in); got != tt.want {
			t.Errorf("CreateLinks(%q)\n got %q\nwant %q", tt.in, got, tt.want)
		}
	}
}

func TestShortTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12:45:17", "12:45"},
		{"12:45", "12:45"},
		{"2005-02-04T12:45", "12:45"},
		{"2004-02-04T17:55:00", "17:55"},
	}
	for _, tt := range tests {
		if got := ShortTime(tt.in); got != tt.want {
			t.Errorf("ShortTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQuoteURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2004-02-04.html", "2004-02-04.html"},
		{"index.html", "index.html"},
		{"a b.html", "a%20b.html"},
		{"http://example.com/x", "http%3A//example.com/x"},
		{"~user/log_2004.html", "~user/log_2004.html"},
		{"100%.html", "100%25.html"},
	}
	for _, tt := range tests {
		if got := QuoteURL(tt.in); got != tt.want {
			t.Errorf("QuoteURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
