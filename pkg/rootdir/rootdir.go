// SPDX-FileCopyrightText: Copyright The Filegate Authors
// SPDX-License-Identifier: Apache-2.0

// Package rootdir holds the process-wide mutable base directory.
package rootdir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrInvalidRoot is returned when a candidate base directory is not an
// absolute path or cannot be created.
var ErrInvalidRoot = errors.New("invalid base directory")

// State is a single mutable cell holding the current base directory.
// There is exactly one active base directory at a time; replacing it
// affects every subsequent operation. An operation that captured the old
// value keeps using it until it completes.
type State struct {
	mu  sync.RWMutex
	dir string
}

// New returns a State initialized to dir, with the same validation as Set.
func New(dir string) (*State, error) {
	s := &State{}
	if err := s.Set(dir); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the current base directory.
func (s *State) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dir
}

// Set validates dir, creates it with any missing ancestors, and replaces
// the stored value. On failure the stored value is left unchanged: the
// state never adopts a directory it could not create.
func (s *State) Set(dir string) error {
	if !filepath.IsAbs(dir) {
		return fmt.Errorf("%w: %q is not an absolute path", ErrInvalidRoot, dir)
	}
	dir = filepath.Clean(dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: cannot create %q: %w", ErrInvalidRoot, dir, err)
	}
	s.mu.Lock()
	s.dir = dir
	s.mu.Unlock()
	return nil
}
