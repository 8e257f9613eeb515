// SPDX-FileCopyrightText: Copyright The Filegate Authors
// SPDX-License-Identifier: Apache-2.0

// Package toolspec defines the MCP (Model Context Protocol) tools exposed
// by filegate, with their typed parameters and results.
//
// Every tool that takes a path interprets it relative to the current base
// directory, even when it looks absolute. The base directory itself is
// mutable at runtime via [SetBaseDirectory].
package toolspec
