package mcpserver

import (
	"errors"

	"assistant-tools/internal/rpc"
	"assistant-tools/pkg/log"

	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "assistant-tools"
	serverVersion = "1.0.0"
)

// MCPServer exposes registered functions as Model Context Protocol tools.
type MCPServer struct {
	l          log.Logger
	registries []*rpc.Registry
	mcp        *server.MCPServer
}

// New creates an MCPServer with one tool per function of every registry.
// A name registered twice keeps the last registry's function.
func New(l log.Logger, registries ...*rpc.Registry) (*MCPServer, error) {
	if l == nil {
		return nil, errors.New("logger is required")
	}
	if len(registries) == 0 {
		return nil, errors.New("at least one registry is required")
	}

	srv := &MCPServer{
		l:          l,
		registries: registries,
		mcp:        server.NewMCPServer(serverName, serverVersion, server.WithToolCapabilities(true)),
	}
	srv.registerTools()
	return srv, nil
}

// ServeStdio serves MCP over stdin/stdout until the input is closed.
func (srv *MCPServer) ServeStdio() error {
	return server.ServeStdio(srv.mcp)
}
