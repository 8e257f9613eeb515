// SPDX-FileCopyrightText: Copyright The Filegate Authors
// SPDX-License-Identifier: Apache-2.0

package cmdguard

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestBuildValidation(t *testing.T) {
	g := New()

	tests := []struct {
		name    string
		command string
		wantErr bool
	}{
		{
			name:    "status",
			command: "status",
		},
		{
			name:    "log with flags",
			command: "log --oneline -n 5",
		},
		{
			name:    "branch",
			command: "branch -a",
		},
		{
			name:    "command chaining",
			command: "status; rm -rf /",
			wantErr: true,
		},
		{
			name:    "pipe",
			command: "log | mail x",
			wantErr: true,
		},
		{
			name:    "backgrounding",
			command: "status & whoami",
			wantErr: true,
		},
		{
			name:    "output redirection",
			command: "diff > out.txt",
			wantErr: true,
		},
		{
			name:    "input redirection",
			command: "apply < patch.diff",
			wantErr: true,
		},
		{
			name:    "config is denied",
			command: "config user.name x",
			wantErr: true,
		},
		{
			name:    "force clean is denied",
			command: "clean -xdf",
			wantErr: true,
		},
		{
			name:    "empty command",
			command: "",
			wantErr: true,
		},
		{
			name:    "blank command",
			command: "   ",
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			inv, err := g.Build(test.command, ShellNone)
			if test.wantErr {
				assert.ErrorIs(t, err, ErrCommandRejected)
			} else {
				assert.NilError(t, err)
				assert.Equal(t, "git", inv.Program)
			}
		})
	}
}

func TestBuildInvocation(t *testing.T) {
	g := New()

	tests := []struct {
		name        string
		command     string
		shell       Shell
		wantProgram string
		wantArgs    []string
	}{
		{
			name:        "direct execution splits argv",
			command:     "log --oneline -n 5",
			shell:       ShellNone,
			wantProgram: "git",
			wantArgs:    []string{"log", "--oneline", "-n", "5"},
		},
		{
			name:        "direct execution honors quoting",
			command:     `commit -m "two words"`,
			shell:       ShellNone,
			wantProgram: "git",
			wantArgs:    []string{"commit", "-m", "two words"},
		},
		{
			name:        "bash wraps as a single argument",
			command:     "status",
			shell:       ShellBash,
			wantProgram: "bash",
			wantArgs:    []string{"-c", "git status"},
		},
		{
			name:        "cmd wraps as a single argument",
			command:     "status",
			shell:       ShellCmd,
			wantProgram: "cmd",
			wantArgs:    []string{"/c", "git status"},
		},
		{
			name:        "powershell wraps as a single argument",
			command:     "status",
			shell:       ShellPowerShell,
			wantProgram: "powershell",
			wantArgs:    []string{"-Command", "git status"},
		},
		{
			name:        "unrecognized selector runs directly",
			command:     "status",
			shell:       Shell("zsh"),
			wantProgram: "git",
			wantArgs:    []string{"status"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			inv, err := g.Build(test.command, test.shell)
			assert.NilError(t, err)
			assert.Equal(t, test.wantProgram, inv.Program)
			assert.DeepEqual(t, test.wantArgs, inv.Args)
		})
	}
}

func TestBuildExtraDenyPrefixes(t *testing.T) {
	g := New("push --force")
	_, err := g.Build("push --force origin main", ShellNone)
	assert.ErrorIs(t, err, ErrCommandRejected)
	_, err = g.Build("push origin main", ShellNone)
	assert.NilError(t, err)
}

func TestInvocationString(t *testing.T) {
	g := New()
	inv, err := g.Build("status", ShellBash)
	assert.NilError(t, err)
	assert.Equal(t, "bash -c 'git status'", inv.String())
}
