package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/rowexpand"
	"github.com/aretw0/rowexpand/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ExpandedURI is the resource exposing the expanded key set.
const ExpandedURI = "rowexpand://expanded"

// RowsResponse is the result of render_rows.
type RowsResponse struct {
	Rows []domain.RowView `json:"rows" jsonschema_description:"Row descriptions in render order"`
}

// KeysResponse is the result of the key set tools.
type KeysResponse struct {
	ExpandedRowKeys []string `json:"expanded_row_keys" jsonschema_description:"Keys of the expanded rows"`
	Controlled      bool     `json:"controlled" jsonschema_description:"Whether an external owner controls the key set"`
}

// Table is the part of the expansion table exposed as MCP tools.
type Table interface {
	Controlled() bool
	ExpandedRowKeys() domain.KeySet
	View(side domain.FixedSide) []domain.RowView
	ToggleKey(key domain.RowKey, ev domain.InputEvent) (bool, error)
	ExpandKey(key domain.RowKey, ev domain.InputEvent) (bool, error)
	CollapseKey(key domain.RowKey, ev domain.InputEvent) (bool, error)
	SetExpandedRowKeys(keys domain.KeySet)
}

var _ Table = (*rowexpand.Table)(nil)

// Server exposes a Table as an MCP server.
type Server struct {
	table     Table
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(table Table, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		table:     table,
		logger:    logger,
		mcpServer: server.NewMCPServer("rowexpand-mcp", strings.TrimSpace(rowexpand.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves the MCP server over SSE on port until ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: render_rows
	s.mcpServer.AddTool(mcp.NewTool("render_rows",
		mcp.WithDescription("Render the rows of the table section, including detail rows of expanded parents."),
		mcp.WithString("side", mcp.Description("Fixed section: empty for the body, 'left' or 'right'")),
		mcp.WithBoolean("all", mcp.Description("Include rows hidden under collapsed parents")),
		mcp.WithOutputSchema[RowsResponse](),
	), mcp.NewStructuredToolHandler(s.handleRenderRows))

	// TOOL: toggle_row
	s.mcpServer.AddTool(mcp.NewTool("toggle_row",
		mcp.WithDescription("Expand, collapse or flip a row by key."),
		mcp.WithString("key", mcp.Required(), mcp.Description("Row key")),
		mcp.WithString("action", mcp.Description("One of 'toggle' (default), 'expand' or 'collapse'")),
		mcp.WithOutputSchema[KeysResponse](),
	), mcp.NewStructuredToolHandler(s.handleToggleRow))

	// TOOL: set_expanded_keys
	s.mcpServer.AddTool(mcp.NewTool("set_expanded_keys",
		mcp.WithDescription("Replace the expanded key set as an external owner would."),
		mcp.WithString("keys", mcp.Required(), mcp.Description("JSON array or comma separated list of row keys")),
		mcp.WithOutputSchema[KeysResponse](),
	), mcp.NewStructuredToolHandler(s.handleSetExpandedKeys))

	// TOOL: expanded_keys
	s.mcpServer.AddTool(mcp.NewTool("expanded_keys",
		mcp.WithDescription("List the keys of the expanded rows."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonBytes, err := json.Marshal(s.keys())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server) keys() KeysResponse {
	return KeysResponse{
		ExpandedRowKeys: s.table.ExpandedRowKeys().Strings(),
		Controlled:      s.table.Controlled(),
	}
}

func (s *Server) handleRenderRows(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (RowsResponse, error) {
	side, _ := args["side"].(string)
	all, _ := args["all"].(bool)

	switch domain.FixedSide(side) {
	case domain.FixedNone, domain.FixedLeft, domain.FixedRight:
	default:
		return RowsResponse{}, fmt.Errorf("invalid side %q", side)
	}

	rows := s.table.View(domain.FixedSide(side))
	out := make([]domain.RowView, 0, len(rows))
	for _, row := range rows {
		if all || row.Visible {
			out = append(out, row)
		}
	}
	return RowsResponse{Rows: out}, nil
}

func (s *Server) handleToggleRow(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (KeysResponse, error) {
	key, _ := args["key"].(string)
	action, _ := args["action"].(string)
	if key == "" {
		return KeysResponse{}, errors.New("key is required")
	}

	ev := domain.NewEvent("mcp")
	var err error
	switch action {
	case "", "toggle":
		_, err = s.table.ToggleKey(domain.RowKey(key), ev)
	case "expand":
		_, err = s.table.ExpandKey(domain.RowKey(key), ev)
	case "collapse":
		_, err = s.table.CollapseKey(domain.RowKey(key), ev)
	default:
		return KeysResponse{}, fmt.Errorf("unknown action %q", action)
	}
	if err != nil {
		s.logger.Warn("MCP toggle_row failed", "key", key, "action", action, "error", err)
		return KeysResponse{}, fmt.Errorf("toggle failed: %w", err)
	}
	return s.keys(), nil
}

func (s *Server) handleSetExpandedKeys(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (KeysResponse, error) {
	raw, _ := args["keys"].(string)
	keys, err := domain.ParseKeySet(raw)
	if err != nil {
		return KeysResponse{}, err
	}
	s.table.SetExpandedRowKeys(keys)
	return s.keys(), nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(ExpandedURI, "Expanded row keys",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.keys())
		if err != nil {
			return nil, fmt.Errorf("failed to encode keys: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      ExpandedURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
