// SPDX-FileCopyrightText: Copyright The Filegate Authors
// SPDX-License-Identifier: Apache-2.0

// Package ptr holds utilities for taking pointer references to values.
package ptr

// Of returns a pointer to value.
func Of[T any](value T) *T {
	return &value
}
