// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// tlsPaths validates the configured TLS key pair and returns the
// expanded file paths. enabled is false when no TLS is configured at
// all; configuring only half the pair is an error.
func tlsPaths(cfg Config) (cert, key string, enabled bool, err error) {
	if cfg.TLSCert == "" && cfg.TLSKey == "" {
		return "", "", false, nil
	}
	if cfg.TLSCert == "" || cfg.TLSKey == "" {
		return "", "", false, errors.New("tls_cert and tls_key must be set together")
	}

	cert = expandHome(cfg.TLSCert)
	key = expandHome(cfg.TLSKey)
	if _, err := os.Stat(cert); err != nil {
		return "", "", false, fmt.Errorf("tls_cert: %w", err)
	}
	if _, err := os.Stat(key); err != nil {
		return "", "", false, fmt.Errorf("tls_key: %w", err)
	}
	return cert, key, true, nil
}

// expandHome substitutes a leading ~ with the user's home directory.
func expandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return home + path[1:]
		}
	}
	return path
}
