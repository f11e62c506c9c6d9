// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package config handles HJSON configuration loading.
package config

import (
	"github.com/wingedpig/irclog/internal/logparse"
	"github.com/wingedpig/irclog/internal/style"
)

// Config is the root configuration structure. Every key is optional;
// CLI flags override anything set here.
type Config struct {
	Title     string       `json:"title"`      // archive/index title
	Prefix    string       `json:"prefix"`     // prepended to each daily page title
	Style     string       `json:"style"`      // output style name
	Pattern   string       `json:"pattern"`    // glob for log files
	Searchbox bool         `json:"searchbox"`  // emit a search form on generated pages
	DircProxy bool         `json:"dircproxy"`  // strip dircproxy mode prefixes from comments
	OutputDir string       `json:"output_dir"` // where generated HTML goes (default: log dir)
	Colours   ColourConfig `json:"colours"`
	Search    SearchConfig `json:"search"`
	Server    ServerConfig `json:"server"`
	Watch     WatchConfig  `json:"watch"`
	Workers   int          `json:"workers"` // parallel conversions, 0 = GOMAXPROCS
}

// ColourConfig overrides the default per-event colours. Values are
// "#rrggbb"; empty values keep the default.
type ColourConfig struct {
	Part       string `json:"part"`
	Join       string `json:"join"`
	Server     string `json:"server"`
	NickChange string `json:"nickchange"`
	Action     string `json:"action"`
}

// Map merges the overrides over the default scheme. Returns nil when
// nothing is overridden, so callers can pass it straight to the
// formatter options.
func (c ColourConfig) Map() map[logparse.Kind]string {
	overrides := map[logparse.Kind]string{
		logparse.Part:       c.Part,
		logparse.Join:       c.Join,
		logparse.Server:     c.Server,
		logparse.NickChange: c.NickChange,
		logparse.Action:     c.Action,
	}
	var out map[logparse.Kind]string
	for kind, colour := range overrides {
		if colour == "" {
			continue
		}
		if out == nil {
			out = style.DefaultColours()
		}
		out[kind] = colour
	}
	return out
}

// SearchConfig configures the search path.
type SearchConfig struct {
	Limit int    `json:"limit"` // stop after this many matches
	Index string `json:"index"` // SQLite FTS database path; empty = linear scan
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Host    string `json:"host"`
	Port    int    `json:"port"`
	LogDir  string `json:"logdir"`   // single-channel log directory
	ChanDir string `json:"chandir"`  // multi-channel parent directory
	TLSCert string `json:"tls_cert"` // path to TLS certificate (enables HTTPS if both cert and key set)
	TLSKey  string `json:"tls_key"`  // path to TLS private key
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	Debounce string `json:"debounce"` // quiet period before regenerating, e.g. "500ms"
}
