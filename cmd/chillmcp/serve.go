package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chillmcp/chillmcp/internal/cli"
	"github.com/chillmcp/chillmcp/internal/logging"
	"github.com/chillmcp/chillmcp/pkg/adapters/mcp"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the ChillMCP engine as an MCP server.
This exposes one tool per break action plus get_status, so AI agents can take
breaks (and check how suspicious the boss is) over the protocol.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Run: func(cmd *cobra.Command, args []string) {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")
		opts := runOptionsFrom(cmd)

		level := slog.LevelInfo
		if opts.Debug {
			level = slog.LevelDebug
		}
		logger := logging.New(level)
		slog.SetDefault(logger)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		app, err := cli.NewApp(ctx, opts, logger)
		if err != nil {
			log.Fatalf("Error initializing chillmcp: %v", err)
		}
		defer app.Close()

		app.Engine.Start(ctx)
		srv := mcp.NewServer(app.Engine)

		switch transport {
		case "stdio":
			// Ensure logs don't corrupt JSON-RPC on Stdout
			log.SetOutput(os.Stderr)
			slog.Info("Starting ChillMCP Server (Stdio)...")
			if err := srv.ServeStdio(); err != nil {
				slog.Error("MCP Server execution failed", "error", err)
				os.Exit(1)
			}
		case "sse":
			slog.Info("Starting ChillMCP Server (SSE)", "port", port)

			if err := srv.ServeSSE(ctx, port); err != nil {
				// Ignore server closed error if it was caused by context cancellation
				if err != http.ErrServerClosed {
					slog.Error("MCP Server execution failed", "error", err)
					os.Exit(1)
				}
			}
			slog.Info("MCP Server stopped gracefully")
		default:
			log.Fatalf("Unknown transport: %s. Supported: stdio, sse", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	serveCmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
}
