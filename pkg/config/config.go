// SPDX-FileCopyrightText: Copyright The Filegate Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the filegate configuration from an optional YAML
// file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// EnvBaseDir overrides the base directory. Consumed once at startup;
// later changes happen only via the set_base_directory tool.
const EnvBaseDir = "FILEGATE_BASE_DIR"

type Config struct {
	// BaseDir is the initial base directory. "~" is expanded.
	BaseDir string `yaml:"baseDir,omitempty"`
	// AuditLog is the path of the append-only operation log.
	AuditLog string `yaml:"auditLog,omitempty"`
	// DenyPrefixes extends the built-in git command denylist.
	DenyPrefixes []string `yaml:"denyPrefixes,omitempty"`
}

// Load reads the YAML file at path. An empty path yields a zero Config.
func Load(path string) (*Config, error) {
	var cfg Config
	if path == "" {
		return &cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("cannot parse %q: %w", path, err)
	}
	return &cfg, nil
}

// BaseDirectory resolves the initial base directory: the environment
// override wins over the config file, which wins over the default
// ~/filegate. The result is always absolute.
func (c *Config) BaseDirectory() (string, error) {
	if env := os.Getenv(EnvBaseDir); env != "" {
		if !filepath.IsAbs(env) {
			return "", fmt.Errorf("%s must be an absolute path, got %q", EnvBaseDir, env)
		}
		return filepath.Clean(env), nil
	}
	if c.BaseDir != "" {
		return expand(c.BaseDir)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, "filegate"), nil
}

// AuditLogPath resolves the audit log destination, defaulting to
// filegate/audit.jsonl under the user cache directory.
func (c *Config) AuditLogPath() (string, error) {
	if c.AuditLog != "" {
		return expand(c.AuditLog)
	}
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, "filegate", "audit.jsonl"), nil
}

// expand expands a leading "~" or "~/" and makes the path absolute.
// Paths like "~foo/bar" are unsupported.
func expand(orig string) (string, error) {
	s := orig
	if s == "" {
		return "", errors.New("empty path")
	}
	if strings.HasPrefix(s, "~") {
		if s != "~" && !strings.HasPrefix(s, "~/") {
			return "", fmt.Errorf("unexpandable path %q", orig)
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		s = strings.Replace(s, "~", homeDir, 1)
	}
	return filepath.Abs(s)
}
