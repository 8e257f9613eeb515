// SPDX-FileCopyrightText: Copyright The Filegate Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/filegate/filegate/pkg/auditlog"
	"github.com/filegate/filegate/pkg/cmdguard"
	"github.com/filegate/filegate/pkg/mcp/toolset"
	"github.com/filegate/filegate/pkg/rootdir"
)

func newInfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show information about the MCP server",
		Args:  cobra.NoArgs,
		RunE:  infoAction,
	}
	return cmd
}

func infoAction(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	info, err := inspectInfo(ctx)
	if err != nil {
		return err
	}
	j, err := json.MarshalIndent(info, "", "    ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), string(j))
	return err
}

type Info struct {
	Tools []*mcp.Tool `json:"tools"`
}

// inspectInfo registers the tool set against an in-memory client/server
// pair and collects the registered tools. No tool is invoked.
func inspectInfo(ctx context.Context) (*Info, error) {
	root, err := rootdir.New(os.TempDir())
	if err != nil {
		return nil, err
	}
	ts := toolset.New(root, cmdguard.New(), auditlog.Fallback())
	server := newServer()
	if err := ts.RegisterServer(server); err != nil {
		return nil, err
	}
	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		return nil, err
	}
	client := mcp.NewClient(&mcp.Implementation{Name: "client"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		return nil, err
	}
	toolsResult, err := clientSession.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		return nil, err
	}
	if err = clientSession.Close(); err != nil {
		return nil, err
	}
	if err = serverSession.Wait(); err != nil {
		return nil, err
	}
	info := &Info{
		Tools: toolsResult.Tools,
	}
	return info, nil
}

func newGenDocCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "generate-doc DIR",
		Short:  "Generate documentation pages",
		Args:   cobra.MinimumNArgs(1),
		RunE:   genDocAction,
		Hidden: true,
	}
	return cmd
}

func genDocAction(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	dir := args[0]
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	fName := filepath.Join(dir, "mcp.md")
	f, err := os.Create(fName)
	if err != nil {
		return err
	}
	defer f.Close()
	fmt.Fprint(f, `---
title: MCP tools
weight: 99
---
Filegate exposes file system and git operations over MCP
(Model Context Protocol), confined to a configurable base directory.

Every path argument is interpreted relative to the base directory, even
when it looks absolute. Paths that would escape the base directory are
rejected.

`)
	info, err := inspectInfo(ctx)
	if err != nil {
		return err
	}
	for _, tool := range info.Tools {
		fmt.Fprintf(f, "## `%s`\n\n", tool.Name)
		if tool.Title != "" {
			fmt.Fprintf(f, "### Title\n\n%s\n\n", tool.Title)
		}
		if tool.Description != "" {
			fmt.Fprintf(f, "### Description\n\n%s\n\n", tool.Description)
		}
		if tool.InputSchema != nil {
			fmt.Fprint(f, "### Input Schema\n\n")
			schema, err := json.MarshalIndent(tool.InputSchema, "", "    ")
			if err != nil {
				return err
			}
			fmt.Fprintf(f, "```json\n%s\n```\n\n", string(schema))
		}
		if tool.OutputSchema != nil {
			fmt.Fprint(f, "### Output Schema\n\n")
			schema, err := json.MarshalIndent(tool.OutputSchema, "", "    ")
			if err != nil {
				return err
			}
			fmt.Fprintf(f, "```json\n%s\n```\n\n", string(schema))
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s\n", fName)
	return nil
}
