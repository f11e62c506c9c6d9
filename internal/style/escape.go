// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

package style

import (
	"fmt"
	"regexp"
	"strings"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Escape replaces ampersands, pointies and double quotes with entities
// and strips control characters.
func Escape(s string) string {
	s = htmlEscaper.Replace(s)
	if strings.IndexFunc(s, func(r rune) bool { return r <= 0x1F }) < 0 {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if r > 0x1F {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// urlRx matches things that look like URLs in already-escaped text.
// Trailing punctuation stays outside the match; escaped ampersands stay
// inside.
var urlRx = regexp.MustCompile(`((http|https|ftp|gopher|news)://([.,]*([^ '")>&.,]|&amp;))*)`)

// CreateLinks wraps URLs in escaped text with anchor tags.
func CreateLinks(text string) string {
	return urlRx.ReplaceAllString(text, `<a href="${1}" rel="nofollow">${1}</a>`)
}

// ShortTime strips the date and seconds from a timestamp, leaving HH:MM.
func ShortTime(ts string) string {
	if i := strings.LastIndex(ts, "T"); i >= 0 {
		ts = ts[i+1:]
	}
	if strings.Count(ts, ":") > 1 {
		parts := strings.SplitN(ts, ":", 3)
		ts = parts[0] + ":" + parts[1]
	}
	return ts
}

// QuoteURL percent-encodes s the way hrefs in generated pages expect:
// everything but unreserved characters and slashes.
func QuoteURL(s string) string {
	const safe = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_.-~/"
	if !strings.ContainsFunc(s, func(r rune) bool {
		return r > 0x7F || !strings.ContainsRune(safe, r)
	}) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= 0x7F && strings.IndexByte(safe, c) >= 0 {
			sb.WriteByte(c)
		} else {
			fmt.Fprintf(&sb, "%%%02X", c)
		}
	}
	return sb.String()
}
