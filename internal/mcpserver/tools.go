package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"assistant-tools/internal/rpc"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (srv *MCPServer) registerTools() {
	ctx := context.Background()
	for _, reg := range srv.registries {
		for _, fn := range reg.List() {
			srv.mcp.AddTool(newTool(fn), srv.toolHandler(reg, fn.Name))
			srv.l.Debugf(ctx, "mcpserver: tool %s registered", fn.Name)
		}
	}
}

func newTool(fn rpc.Function) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(fn.Description)}
	for _, p := range fn.Params {
		popts := []mcp.PropertyOption{mcp.Description(p.Description)}
		if p.Required {
			popts = append(popts, mcp.Required())
		}

		switch p.Type {
		case "boolean":
			opts = append(opts, mcp.WithBoolean(p.Name, popts...))
		case "number":
			opts = append(opts, mcp.WithNumber(p.Name, popts...))
		default:
			opts = append(opts, mcp.WithString(p.Name, popts...))
		}
	}
	return mcp.NewTool(fn.Name, opts...)
}

// toolHandler runs name on reg. The result text is the JSON envelope; error
// envelopes are flagged as tool errors.
func (srv *MCPServer) toolHandler(reg *rpc.Registry, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := req.Params.Arguments.(map[string]any)

		env := reg.Call(ctx, name, rpc.Args(args))
		body, err := json.Marshal(env)
		if err != nil {
			srv.l.Errorf(ctx, "mcpserver.%s: encode result: %v", name, err)
			return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
		}

		if !env.OK() {
			return mcp.NewToolResultError(string(body)), nil
		}
		return mcp.NewToolResultText(string(body)), nil
	}
}
