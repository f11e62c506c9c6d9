// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/wingedpig/irclog/internal/style"
)

// Validator validates configuration against schema rules.
type Validator struct{}

// NewValidator creates a new config validator.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidationError contains multiple validation failures.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single field validation error.
type FieldError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	var msgs []string
	for _, fe := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(msgs, "; ")
}

// IsEmpty returns true if there are no validation errors.
func (e *ValidationError) IsEmpty() bool {
	return len(e.Errors) == 0
}

// Add adds a field error.
func (e *ValidationError) Add(field, message string) {
	e.Errors = append(e.Errors, FieldError{Field: field, Message: message})
}

var colourRx = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks configuration validity.
func (v *Validator) Validate(cfg *Config) error {
	errs := &ValidationError{}

	v.validateStyle(cfg, errs)
	v.validateColours(cfg, errs)
	v.validateSearch(cfg, errs)
	v.validateServer(cfg, errs)
	v.validateWatch(cfg, errs)
	v.validateWorkers(cfg, errs)

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func (v *Validator) validateStyle(cfg *Config, errs *ValidationError) {
	if cfg.Style == "" {
		return
	}
	for _, info := range style.Styles() {
		if info.Name == cfg.Style {
			return
		}
	}
	errs.Add("style", fmt.Sprintf("unknown style '%s'", cfg.Style))
}

func (v *Validator) validateColours(cfg *Config, errs *ValidationError) {
	fields := map[string]string{
		"colours.part":       cfg.Colours.Part,
		"colours.join":       cfg.Colours.Join,
		"colours.server":     cfg.Colours.Server,
		"colours.nickchange": cfg.Colours.NickChange,
		"colours.action":     cfg.Colours.Action,
	}
	for field, value := range fields {
		if value != "" && !colourRx.MatchString(value) {
			errs.Add(field, "must be a #rrggbb colour")
		}
	}
}

func (v *Validator) validateSearch(cfg *Config, errs *ValidationError) {
	if cfg.Search.Limit < 0 {
		errs.Add("search.limit", "must not be negative")
	}
}

func (v *Validator) validateServer(cfg *Config, errs *ValidationError) {
	if cfg.Server.Port != 0 {
		if cfg.Server.Port < 0 || cfg.Server.Port > 65535 {
			errs.Add("server.port", "must be between 0 and 65535")
		}
	}
	if (cfg.Server.TLSCert == "") != (cfg.Server.TLSKey == "") {
		errs.Add("server.tls_cert", "tls_cert and tls_key must be set together")
	}
}

func (v *Validator) validateWatch(cfg *Config, errs *ValidationError) {
	if cfg.Watch.Debounce == "" {
		return
	}
	if _, err := time.ParseDuration(cfg.Watch.Debounce); err != nil {
		errs.Add("watch.debounce", fmt.Sprintf("invalid duration '%s'", cfg.Watch.Debounce))
	}
}

func (v *Validator) validateWorkers(cfg *Config, errs *ValidationError) {
	if cfg.Workers < 0 {
		errs.Add("workers", "must not be negative")
	}
}
