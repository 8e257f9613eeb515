// SPDX-FileCopyrightText: Copyright The Filegate Authors
// SPDX-License-Identifier: Apache-2.0

// Package toolset implements the filegate MCP tools on top of the path and
// command guards.
package toolset

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"github.com/filegate/filegate/pkg/auditlog"
	"github.com/filegate/filegate/pkg/cmdguard"
	"github.com/filegate/filegate/pkg/mcp/toolspec"
	"github.com/filegate/filegate/pkg/rootdir"
)

// ToolSet binds the MCP tool handlers to the current base directory, the
// command guard, and the audit log.
type ToolSet struct {
	root  *rootdir.State
	guard *cmdguard.Guard
	audit *auditlog.Logger
}

func New(root *rootdir.State, guard *cmdguard.Guard, audit *auditlog.Logger) *ToolSet {
	return &ToolSet{
		root:  root,
		guard: guard,
		audit: audit,
	}
}

func (ts *ToolSet) RegisterServer(server *mcp.Server) error {
	mcp.AddTool(server, toolspec.SetBaseDirectory, ts.SetBaseDirectory)
	mcp.AddTool(server, toolspec.GetBaseDirectory, ts.GetBaseDirectory)
	mcp.AddTool(server, toolspec.ListFiles, ts.ListFiles)
	mcp.AddTool(server, toolspec.ReadFile, ts.ReadFile)
	mcp.AddTool(server, toolspec.WriteFile, ts.WriteFile)
	mcp.AddTool(server, toolspec.DeleteFile, ts.DeleteFile)
	mcp.AddTool(server, toolspec.GitCommand, ts.GitCommand)
	return nil
}

func (ts *ToolSet) Close() error {
	return ts.audit.Close()
}

// record writes the audit line for one tool invocation.
func (ts *ToolSet) record(tool string, fields logrus.Fields, err error) {
	ts.audit.Record(tool, fields, err)
}

// textResult wraps a structured result with the plain-text payload that
// forms the compatibility contract of the tool.
func textResult(text string, structured any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content:           []mcp.Content{&mcp.TextContent{Text: text}},
		StructuredContent: structured,
	}
}
