// SPDX-FileCopyrightText: Copyright The Filegate Authors
// SPDX-License-Identifier: Apache-2.0

// Package pathguard confines caller-supplied paths to a base directory.
//
// Every path received from a client is treated as relative to the base
// directory, even when it looks absolute. The resolved path is guaranteed
// to be the base directory itself or a descendant of it.
package pathguard

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrPathEscape is returned when a requested path normalizes to a location
// outside the base directory.
var ErrPathEscape = errors.New("path escapes the base directory")

// Resolve maps requested onto an absolute path confined to root.
//
// An empty string, a bare "/", or a bare "\" refers to root itself.
// Leading slashes and backslashes are stripped, so a path that looks
// absolute is still interpreted relative to root. The result is recomputed
// on every call; it must not be cached across base directory changes.
func Resolve(root, requested string) (string, error) {
	switch requested {
	case "", "/", `\`:
		return root, nil
	}
	rel := strings.TrimLeft(requested, `/\`)
	rel = filepath.Clean(rel)
	// Fast reject for the common traversal pattern. The authoritative check
	// is the filepath.Rel test below.
	for _, seg := range splitSegments(rel) {
		if seg == ".." {
			return "", fmt.Errorf("%q: %w", requested, ErrPathEscape)
		}
	}
	candidate := filepath.Join(root, rel)
	relToRoot, err := filepath.Rel(root, candidate)
	if err != nil {
		return "", fmt.Errorf("%q: %w", requested, ErrPathEscape)
	}
	// filepath.Rel can produce an absolute path on platforms with multiple
	// volume roots (drive letters, UNC).
	if relToRoot == ".." ||
		strings.HasPrefix(relToRoot, ".."+string(filepath.Separator)) ||
		filepath.IsAbs(relToRoot) {
		return "", fmt.Errorf("%q: %w", requested, ErrPathEscape)
	}
	return candidate, nil
}

// splitSegments splits on both separator styles regardless of platform, so
// that "..\x" is rejected on non-Windows hosts too.
func splitSegments(p string) []string {
	return strings.FieldsFunc(p, func(r rune) bool {
		return r == '/' || r == '\\'
	})
}
