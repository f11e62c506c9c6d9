// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package app wires configuration, the optional full-text index and the
// HTTP server into a runnable irclogserver instance.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/wingedpig/irclog/internal/config"
	"github.com/wingedpig/irclog/internal/index"
	"github.com/wingedpig/irclog/internal/server"
)

// App is the main application container.
type App struct {
	config *config.Config
	index  *index.DB
	server *server.Server

	done     chan struct{}
	stopOnce sync.Once
}

// Options holds configuration options for the app.
type Options struct {
	ConfigPath string // path to config file; empty means defaults
	Host       string
	Port       int
	LogDir     string
	Pattern    string
	ChanDir    string
}

// New creates a new App instance. Option values override whatever the
// config file sets.
func New(opts Options) (*App, error) {
	var cfg *config.Config
	if opts.ConfigPath != "" {
		loader := config.NewLoader()
		var err error
		cfg, err = loader.LoadWithDefaults(context.Background(), opts.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	} else {
		cfg = config.Default()
	}

	if opts.Host != "" {
		cfg.Server.Host = opts.Host
	}
	if opts.Port > 0 {
		cfg.Server.Port = opts.Port
	}
	if opts.LogDir != "" {
		cfg.Server.LogDir = opts.LogDir
	}
	if opts.Pattern != "" {
		cfg.Pattern = opts.Pattern
	}
	if opts.ChanDir != "" {
		cfg.Server.ChanDir = opts.ChanDir
	}

	if cfg.Server.LogDir == "" && cfg.Server.ChanDir == "" {
		return nil, errors.New("no log directory configured (set server.logdir, -logdir or IRCLOG_LOCATION)")
	}

	return &App{config: cfg, done: make(chan struct{})}, nil
}

// Config returns the effective configuration.
func (app *App) Config() *config.Config {
	return app.config
}

// Initialize opens the optional full-text index and builds the HTTP
// server.
func (app *App) Initialize(ctx context.Context) error {
	cfg := app.config

	// The index only covers the main archive, not per-channel trees.
	if cfg.Search.Index != "" && cfg.Server.LogDir != "" {
		db, err := index.Open(cfg.Search.Index)
		if err != nil {
			return fmt.Errorf("open search index: %w", err)
		}
		app.index = db
		log.Printf("Using search index: %s", cfg.Search.Index)
	}

	handler := server.NewHandler(server.Options{
		LogDir:      cfg.Server.LogDir,
		Pattern:     cfg.Pattern,
		ChanDir:     cfg.Server.ChanDir,
		Style:       cfg.Style,
		DircProxy:   cfg.DircProxy,
		SearchLimit: cfg.Search.Limit,
		Colours:     cfg.Colours.Map(),
		Index:       app.index,
	})
	app.server = server.NewServer(server.Config{
		Host:    cfg.Server.Host,
		Port:    cfg.Server.Port,
		TLSCert: cfg.Server.TLSCert,
		TLSKey:  cfg.Server.TLSKey,
	}, handler)
	return nil
}

// Start launches the HTTP server in the background.
func (app *App) Start(ctx context.Context) error {
	go func() {
		if err := app.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
			app.Stop()
		}
	}()
	return nil
}

// Run starts the app and blocks until shutdown.
func (app *App) Run(ctx context.Context) error {
	if err := app.Initialize(ctx); err != nil {
		return err
	}
	if err := app.Start(ctx); err != nil {
		return err
	}

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("Received signal %v, shutting down...", sig)
	case <-ctx.Done():
		log.Printf("Context cancelled, shutting down...")
	case <-app.done:
		log.Printf("Shutdown requested...")
	}

	return app.Shutdown(context.Background())
}

// Stop requests shutdown from another goroutine.
func (app *App) Stop() {
	app.stopOnce.Do(func() { close(app.done) })
}

// Shutdown gracefully shuts down the server and closes the index.
func (app *App) Shutdown(ctx context.Context) error {
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if app.server != nil {
		if err := app.server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error shutting down server: %v", err)
		}
	}
	if app.index != nil {
		if err := app.index.Close(); err != nil {
			log.Printf("Error closing search index: %v", err)
		}
	}
	return nil
}
