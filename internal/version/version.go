// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package version records the release identity stamped into generated pages.
package version

// Version is the current release.
const Version = "1.0.0"

// Homepage is advertised in generated page footers.
const Homepage = "https://github.com/wingedpig/irclog"
