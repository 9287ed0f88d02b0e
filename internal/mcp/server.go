// Package mcp exposes the compatibility catalog to AI assistants as a
// stdio MCP server.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/mcp-matrix/internal/catalog"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that answers compatibility questions from a
// loaded catalog.
type Server struct {
	state *catalog.State
	mcp   *server.MCPServer
}

// NewServer creates a new MCP server over state.
func NewServer(state *catalog.State) *Server {
	if state == nil {
		state = catalog.NewState(nil, nil, nil, nil, nil)
	}
	s := &Server{state: state}

	s.mcp = server.NewMCPServer(
		"mcpmatrix",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listFeaturesTool, s.handleListFeatures)
	s.mcp.AddTool(listCombinationsTool, s.handleListCombinations)
	s.mcp.AddTool(getSupportTool, s.handleGetSupport)
	s.mcp.AddTool(getEvidenceTool, s.handleGetEvidence)
	s.mcp.AddTool(getChangelogTool, s.handleGetChangelog)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
