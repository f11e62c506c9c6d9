// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

// Config holds the listening configuration.
type Config struct {
	Host    string
	Port    int
	TLSCert string // Path to TLS certificate file
	TLSKey  string // Path to TLS private key file
}

// NewRouter builds the route table. Exact paths come first; the
// channel routes match only in multi-channel mode.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()

	r.Use(Logging)
	r.Use(Recovery)

	r.HandleFunc("/", h.Home).Methods("GET")
	r.HandleFunc("/search", h.Search).Methods("GET")
	r.HandleFunc("/irclog.css", h.CSS).Methods("GET")
	r.HandleFunc("/{channel}/", h.ChannelHome).Methods("GET")
	r.HandleFunc("/{channel}/search", h.ChannelSearch).Methods("GET")
	r.HandleFunc("/{channel}/{file}", h.ChannelFile).Methods("GET")
	r.HandleFunc("/{file}", h.File).Methods("GET")

	return r
}

// Server is the archive web server.
type Server struct {
	router *mux.Router
	cfg    Config
	server *http.Server
}

// NewServer creates a server around the given handler.
func NewServer(cfg Config, h *Handler) *Server {
	return &Server{
		router: NewRouter(h),
		cfg:    cfg,
	}
}

// Router returns the underlying router.
func (s *Server) Router() *mux.Router {
	return s.router
}

// ListenAndServe starts the server.
// If TLS is configured (tls_cert and tls_key), uses HTTPS.
func (s *Server) ListenAndServe() error {
	addr := s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	cert, key, tlsEnabled, err := tlsPaths(s.cfg)
	if err != nil {
		return fmt.Errorf("TLS configuration error: %w", err)
	}

	if tlsEnabled {
		log.Printf("Server listening on https://%s (TLS enabled)", addr)
		return s.server.ListenAndServeTLS(cert, key)
	}

	log.Printf("Server listening on http://%s", addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}

	log.Println("Shutting down server...")

	shutdownCtx := ctx
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		shutdownCtx, cancel = context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
	}

	return s.server.Shutdown(shutdownCtx)
}
