// Package mcp exposes the break engine over the Model Context Protocol:
// one tool per break action, a read-only status tool, and the catalog as a
// browsable resource.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/chillmcp/chillmcp"
	"github.com/chillmcp/chillmcp/pkg/domain"
	"github.com/chillmcp/chillmcp/pkg/ports"
)

const catalogURI = "chillmcp://catalog"

const serverInstructions = `ChillMCP lets an AI agent manage its own stress by taking breaks.
Call any break tool when stress runs high and get_status to check both levels.
Mind the boss: every break risks raising the boss alert level, and at 5/5
every action stalls for 20 seconds until the level cools back down.`

// BreakToolResponse is the structured payload returned by every break tool.
type BreakToolResponse struct {
	Summary        string `json:"summary" jsonschema_description:"Past-tense summary of the break activity"`
	Remark         string `json:"remark,omitempty" jsonschema_description:"Flavor line for this break; notes when the boss noticed"`
	StressLevel    int    `json:"stress_level" jsonschema_description:"Stress level after the break (0-100)"`
	BossAlertLevel int    `json:"boss_alert_level" jsonschema_description:"Boss alert level after the break (0-5)"`
}

// StatusResponse is the structured payload of the get_status tool.
type StatusResponse struct {
	Summary        string `json:"summary" jsonschema_description:"Human-readable status line with both levels and their bands"`
	StressLevel    int    `json:"stress_level" jsonschema_description:"Current stress level (0-100)"`
	BossAlertLevel int    `json:"boss_alert_level" jsonschema_description:"Current boss alert level (0-5)"`
}

// Server wraps a break engine and exposes it as an MCP server.
type Server struct {
	engine    ports.BreakEngine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance. The tool list is derived from
// the engine's catalog, so a custom catalog changes the advertised tools.
func NewServer(engine ports.BreakEngine) *Server {
	s := &Server{
		engine: engine,
		mcpServer: server.NewMCPServer(
			"chillmcp",
			strings.TrimSpace(chillmcp.Version),
			server.WithToolCapabilities(true),
			server.WithRecovery(),
			server.WithInstructions(serverInstructions),
		),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on stdin/stdout. The caller must route all
// logging to stderr first; anything else on stdout corrupts the JSON-RPC
// stream.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		fmt.Println("\nShutdown signal received, shutting down server...")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// One tool per break action; none of them take arguments.
	for _, act := range s.engine.Catalog() {
		tool := mcp.NewTool(act.Name,
			mcp.WithDescription(act.Description),
			mcp.WithOutputSchema[BreakToolResponse](),
		)
		s.mcpServer.AddTool(tool, mcp.NewStructuredToolHandler(s.breakHandler(act.Name)))
	}

	statusTool := mcp.NewTool(domain.StatusName,
		mcp.WithDescription("Get current agent status including stress and boss alert levels."),
		mcp.WithOutputSchema[StatusResponse](),
	)
	s.mcpServer.AddTool(statusTool, mcp.NewStructuredToolHandler(s.handleStatus))
}

// breakHandler builds the handler for one named action. A dispatch can stall
// for the full boss penalty before returning; that delay is the behaviour,
// not a timeout to paper over.
func (s *Server) breakHandler(name string) func(context.Context, mcp.CallToolRequest, map[string]interface{}) (BreakToolResponse, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (BreakToolResponse, error) {
		res, err := s.engine.Dispatch(ctx, name)
		if err != nil {
			return BreakToolResponse{}, fmt.Errorf("dispatch failed: %w", err)
		}
		return BreakToolResponse{
			Summary:        res.Summary,
			Remark:         res.Remark,
			StressLevel:    res.Stress,
			BossAlertLevel: res.Alert,
		}, nil
	}
}

func (s *Server) handleStatus(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (StatusResponse, error) {
	report := s.engine.Status(ctx)
	return StatusResponse{
		Summary:        report.Summary(),
		StressLevel:    report.Stress,
		BossAlertLevel: report.Alert,
	}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: chillmcp://catalog
	s.mcpServer.AddResource(mcp.NewResource(catalogURI, "Break Action Catalog",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.engine.Catalog())
		if err != nil {
			return nil, fmt.Errorf("failed to encode catalog: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      catalogURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
