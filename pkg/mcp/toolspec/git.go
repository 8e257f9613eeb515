// SPDX-FileCopyrightText: Copyright The Filegate Authors
// SPDX-License-Identifier: Apache-2.0

package toolspec

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var GitCommand = &mcp.Tool{
	Name:        "git_command",
	Description: `Executes a single git command with the base directory as the working directory. The command string excludes the leading "git". Command chaining and redirection are rejected.`,
}

type GitCommandParams struct {
	Command string `json:"command" jsonschema:"The git command to run, without the leading 'git' (e.g. 'status', 'log --oneline -n 5')."`
	Shell   string `json:"shell,omitempty" jsonschema:"Optional shell to wrap the command in: 'cmd', 'powershell', or 'bash'. When omitted, git is executed directly."`
}

type GitCommandResult struct {
	Stdout   string `json:"stdout" jsonschema:"Output from the standard output stream."`
	Stderr   string `json:"stderr" jsonschema:"Output from the standard error stream."`
	Error    string `json:"error,omitempty" jsonschema:"Any error message reported by the subprocess."`
	ExitCode *int   `json:"exit_code,omitempty" jsonschema:"Exit code of the command."`
}
