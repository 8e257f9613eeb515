// SPDX-FileCopyrightText: Copyright The Filegate Authors
// SPDX-License-Identifier: Apache-2.0

package toolset

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"github.com/filegate/filegate/pkg/cmdguard"
	"github.com/filegate/filegate/pkg/mcp/toolspec"
	"github.com/filegate/filegate/pkg/ptr"
)

func (ts *ToolSet) GitCommand(ctx context.Context,
	_ *mcp.CallToolRequest, args toolspec.GitCommandParams,
) (*mcp.CallToolResult, *toolspec.GitCommandResult, error) {
	// The working directory is read at call time, not cached: a base
	// directory change applies to the next command.
	dir := ts.root.Get()
	inv, err := ts.guard.Build(args.Command, cmdguard.Shell(args.Shell))
	if err != nil {
		ts.record("git_command", logrus.Fields{"command": args.Command}, err)
		return nil, nil, err
	}
	cmd := exec.CommandContext(ctx, inv.Program, inv.Args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmdErr := cmd.Run()
	res := &toolspec.GitCommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	fields := logrus.Fields{"invocation": inv.String(), "dir": dir}

	if cmdErr == nil {
		res.ExitCode = ptr.Of(0)
		ts.record("git_command", fields, nil)
		return textResult(outputText(res), res), res, nil
	}
	res.Error = cmdErr.Error()
	if st := cmd.ProcessState; st != nil {
		res.ExitCode = ptr.Of(st.ExitCode())
	}
	ts.record("git_command", fields, cmdErr)
	callToolRes := textResult(outputText(res), res)
	callToolRes.IsError = true
	return callToolRes, res, nil
}

// outputText joins the captured streams into the plain-text payload.
func outputText(res *toolspec.GitCommandResult) string {
	var b strings.Builder
	b.WriteString(res.Stdout)
	if res.Stderr != "" {
		if b.Len() > 0 && !strings.HasSuffix(res.Stdout, "\n") {
			b.WriteString("\n")
		}
		b.WriteString(res.Stderr)
	}
	if res.Error != "" && res.Stderr == "" {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(res.Error)
	}
	return b.String()
}
