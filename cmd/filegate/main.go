// SPDX-FileCopyrightText: Copyright The Filegate Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/filegate/filegate/pkg/auditlog"
	"github.com/filegate/filegate/pkg/cmdguard"
	"github.com/filegate/filegate/pkg/config"
	"github.com/filegate/filegate/pkg/mcp/toolset"
	"github.com/filegate/filegate/pkg/rootdir"
	"github.com/filegate/filegate/pkg/version"
)

func main() {
	if err := newApp().Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func newApp() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "filegate",
		Short:         "Filegate: confined file and git operations over the Model Context Protocol",
		Version:       strings.TrimPrefix(version.Version, "v"),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String("log-level", "", "Set the logging level [trace, debug, info, warn, error]")
	cmd.PersistentFlags().String("log-format", "text", "Set the logging format [text, json]")
	cmd.PersistentFlags().Bool("debug", false, "Debug mode")
	cmd.PersistentFlags().String("config", "", "Path to the configuration YAML file")
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		return processGlobalFlags(cmd)
	}
	cmd.AddCommand(
		newServeCommand(),
		newInfoCommand(),
		newGenDocCommand(),
	)
	return cmd
}

func processGlobalFlags(rootCmd *cobra.Command) error {
	// --log-level will override --debug
	if debug, _ := rootCmd.Flags().GetBool("debug"); debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	l, _ := rootCmd.Flags().GetString("log-level")
	if l != "" {
		lvl, err := logrus.ParseLevel(l)
		if err != nil {
			return err
		}
		logrus.SetLevel(lvl)
	}

	logFormat, _ := rootCmd.Flags().GetString("log-format")
	switch logFormat {
	case "json":
		formatter := new(logrus.JSONFormatter)
		logrus.StandardLogger().SetFormatter(formatter)
	case "text":
		// logrus uses the text format by default.
		if runtime.GOOS == "windows" && isatty.IsCygwinTerminal(os.Stderr.Fd()) {
			formatter := new(logrus.TextFormatter)
			// the default setting does not recognize cygwin on windows
			formatter.ForceColors = true
			logrus.StandardLogger().SetFormatter(formatter)
		}
	default:
		return fmt.Errorf("unsupported log-format: %q", logFormat)
	}
	return nil
}

func newServer() *mcp.Server {
	impl := &mcp.Implementation{
		Name:    "filegate",
		Title:   "Filegate, for confining file I/O and git command executions to a base directory",
		Version: version.Version,
	}
	serverOpts := &mcp.ServerOptions{
		Instructions: `This MCP server exposes file system and git operations that are confined
to a configurable base directory. Every path argument is interpreted
relative to the base directory, even when it looks absolute; paths that
would escape the base directory are rejected.

Use set_base_directory to change the confinement root at runtime.
`,
	}
	return mcp.NewServer(impl, serverOpts)
}

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve MCP over stdio",
		Long: `Serve MCP over stdio.

Expected to be executed via an AI agent, not by a human`,
		Args: cobra.NoArgs,
		RunE: serveAction,
	}
	return cmd
}

func serveAction(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	baseDir, err := cfg.BaseDirectory()
	if err != nil {
		return err
	}
	// Startup is the only place where a base directory failure is fatal.
	root, err := rootdir.New(baseDir)
	if err != nil {
		return err
	}
	logrus.Debugf("base directory: %s", root.Get())

	audit := openAuditLog(cfg)
	ts := toolset.New(root, cmdguard.New(cfg.DenyPrefixes...), audit)
	defer ts.Close()
	server := newServer()
	if err := ts.RegisterServer(server); err != nil {
		return err
	}
	transport := &mcp.StdioTransport{}
	return server.Run(ctx, transport)
}

func openAuditLog(cfg *config.Config) *auditlog.Logger {
	path, err := cfg.AuditLogPath()
	if err == nil {
		var audit *auditlog.Logger
		if audit, err = auditlog.Open(path); err == nil {
			return audit
		}
	}
	logrus.WithError(err).Warn("cannot open the audit log, falling back to stderr")
	return auditlog.Fallback()
}
