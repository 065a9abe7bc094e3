package main

import (
	"context"

	"github.com/spf13/cobra"

	"dashcheck/internal/browser"
	"dashcheck/internal/logging"
	"dashcheck/internal/mcp"
	"dashcheck/internal/metrics"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

var serveFlags struct {
	run     runFlags
	browser bool
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server over stdio",
		Long: `Starts an MCP server over stdin/stdout exposing list_datasets,
resolve_expectation and verify_datasets. verify_datasets needs --browser.

The server exits when its parent process goes away.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
	f := cmd.Flags()
	serveFlags.run.register(cmd)
	f.BoolVar(&serveFlags.browser, "browser", false, "Launch a browser so verify_datasets can reach the dashboard")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := serveFlags.run.settings(cmd, nil)
	if err != nil {
		return err
	}
	if err := initLogging(cfg); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	srv := mcp.NewServer(version)
	srv.Parallel = cfg.Parallel
	if serveFlags.browser {
		b, err := browser.Launch(ctx, browser.Options{Headless: cfg.Headless})
		if err != nil {
			return err
		}
		defer b.Close()

		rec := metrics.NewRecorder()
		srv.Open = tabOpener(b, cfg)
		srv.Verify = verifyConfig(cfg, rec)
		if cfg.MetricsFile != "" {
			defer func() {
				if err := rec.WriteTextfile(cfg.MetricsFile); err != nil {
					logging.New("mcp").Error("write metrics", "error", err)
				}
			}()
		}
	}

	mcp.WatchParent(ctx, cancel)

	logging.New("mcp").Info("starting dashcheck MCP server over stdio", "browser", serveFlags.browser)
	return srv.MCPServer.Run(ctx, &sdkmcp.StdioTransport{})
}
