// ABOUTME: MCP server implementation for when
// ABOUTME: Exposes clock and calendar-shift tools for AI agents over stdio

package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/harper/when/internal/clock"
)

// Server wraps the MCP server with when-specific context
type Server struct {
	mcpServer *server.MCPServer
	clk       *clock.Clock
}

// NewServer creates a new MCP server instance
func NewServer(clk *clock.Clock) *Server {
	s := &Server{
		clk: clk,
	}

	s.mcpServer = server.NewMCPServer(
		"when",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	s.registerTools()

	return s
}

// ServeStdio starts the MCP server on stdio
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// registerTools is implemented in tools.go
