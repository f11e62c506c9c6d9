// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

// irclogserver serves an IRC log archive over HTTP: pages straight from
// disk where they exist, daily pages, indexes and search rendered on
// the fly where they don't.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/wingedpig/irclog/internal/app"
	"github.com/wingedpig/irclog/internal/config"
	"github.com/wingedpig/irclog/internal/version"
)

func main() {
	var (
		configPath  string
		host        string
		port        int
		logDir      string
		pattern     string
		chanDir     string
		showVersion bool
	)

	flag.StringVar(&configPath, "config", "", "Path to config file (default: auto-detect)")
	flag.StringVar(&configPath, "c", "", "Path to config file (short)")
	flag.StringVar(&host, "host", "", "HTTP server host (overrides config)")
	flag.IntVar(&port, "port", 0, "HTTP server port (overrides config)")
	flag.StringVar(&logDir, "logdir", "", "Archive directory to serve")
	flag.StringVar(&pattern, "pattern", "", "Log file glob (default: *.log)")
	flag.StringVar(&chanDir, "chandir", "", "Parent of per-channel archive directories")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (short)")
	flag.Parse()

	if showVersion {
		fmt.Printf("irclogserver %s\n", version.Version)
		os.Exit(0)
	}

	// Environment fallbacks, read once at startup.
	if logDir == "" {
		logDir = os.Getenv("IRCLOG_LOCATION")
	}
	if pattern == "" {
		pattern = os.Getenv("IRCLOG_GLOB")
	}
	if chanDir == "" {
		chanDir = os.Getenv("IRCLOG_CHAN_DIR")
	}

	// Find config file if not specified
	if configPath == "" {
		loader := config.NewLoader()
		found, err := loader.FindConfig()
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		configPath = found
	}
	if configPath != "" {
		log.Printf("Using config: %s", configPath)
	}

	application, err := app.New(app.Options{
		ConfigPath: configPath,
		Host:       host,
		Port:       port,
		LogDir:     logDir,
		Pattern:    pattern,
		ChanDir:    chanDir,
	})
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	ctx := context.Background()
	if err := application.Run(ctx); err != nil {
		log.Fatalf("App error: %v", err)
	}
}
