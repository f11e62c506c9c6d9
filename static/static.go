// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package static holds the assets shipped alongside generated pages.
package static

import "embed"

// CSSName is the stylesheet filename generated pages link to.
const CSSName = "irclog.css"

//go:embed irclog.css
var Files embed.FS

// CSS returns the stylesheet contents.
func CSS() ([]byte, error) {
	return Files.ReadFile(CSSName)
}
