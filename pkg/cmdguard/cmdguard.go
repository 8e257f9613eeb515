// SPDX-FileCopyrightText: Copyright The Filegate Authors
// SPDX-License-Identifier: Apache-2.0

// Package cmdguard validates caller-supplied git command strings and builds
// the concrete process invocation.
//
// The guard never hands the command string to a shell unescaped: the direct
// form is split into argv with shellwords, and the shell-wrapped forms embed
// the whole "git <command>" string as a single argument of the shell's
// run-one-command flag.
package cmdguard

import (
	"errors"
	"fmt"
	"strings"

	"al.essio.dev/pkg/shellescape"
	"github.com/mattn/go-shellwords"
)

// ErrCommandRejected is returned when a command string fails the injection
// or denylist policy.
var ErrCommandRejected = errors.New("command rejected")

// Shell selects how the git command string is wrapped before execution.
type Shell string

const (
	ShellNone       Shell = ""
	ShellCmd        Shell = "cmd"
	ShellPowerShell Shell = "powershell"
	ShellBash       Shell = "bash"
)

// metacharacters that allow chaining a second command or redirecting
// input/output. Their mere presence rejects the command.
const metacharacters = ";&|<>"

// defaultDenyPrefixes blocks known-dangerous git invocations. This is a
// prefix match, not a sub-command parse: "config user.name x" and
// "configure-helper" both match "config". Deliberately conservative and
// incomplete; anything not listed is allowed if it passes the
// metacharacter checks.
var defaultDenyPrefixes = []string{
	"config",     // mutating repository configuration
	"clean -xdf", // force-clean destroys untracked files
}

// Guard holds the denylist policy.
type Guard struct {
	denyPrefixes []string
}

// New returns a Guard with the built-in denylist extended by extraDenyPrefixes.
func New(extraDenyPrefixes ...string) *Guard {
	return &Guard{
		denyPrefixes: append(append([]string{}, defaultDenyPrefixes...), extraDenyPrefixes...),
	}
}

// Invocation is a fully built process invocation. Program and Args stay
// separate typed fields until the OS boundary, so the injection policy does
// not depend on shell-quoting behavior.
type Invocation struct {
	Program string
	Args    []string
}

// String renders the invocation as a copy-pasteable shell command line.
// For display and audit logging only.
func (inv *Invocation) String() string {
	return shellescape.QuoteCommand(append([]string{inv.Program}, inv.Args...))
}

// Build validates command against the injection policy and constructs the
// invocation. The command string excludes the leading "git".
func (g *Guard) Build(command string, shell Shell) (*Invocation, error) {
	trimmed := strings.TrimSpace(command)
	if trimmed == "" {
		return nil, fmt.Errorf("empty command: %w", ErrCommandRejected)
	}
	if i := strings.IndexAny(trimmed, metacharacters); i >= 0 {
		return nil, fmt.Errorf("command contains %q: %w", trimmed[i], ErrCommandRejected)
	}
	for _, prefix := range g.denyPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return nil, fmt.Errorf("command matches denied prefix %q: %w", prefix, ErrCommandRejected)
		}
	}
	full := "git " + trimmed
	switch shell {
	case ShellCmd:
		return &Invocation{Program: "cmd", Args: []string{"/c", full}}, nil
	case ShellPowerShell:
		return &Invocation{Program: "powershell", Args: []string{"-Command", full}}, nil
	case ShellBash:
		return &Invocation{Program: "bash", Args: []string{"-c", full}}, nil
	default:
		// Unset or unrecognized selector: run git directly without a shell.
		args, err := shellwords.Parse(trimmed)
		if err != nil {
			return nil, fmt.Errorf("cannot parse command %q: %w", trimmed, ErrCommandRejected)
		}
		return &Invocation{Program: "git", Args: args}, nil
	}
}
