package mcp

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/gg/gptr"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/adapter"
	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/registry"
	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/registry/errno"
	"github.com/kiosk404/dixa-mcp/pkg/logger"
)

// bridge exposes registry tools through an MCP server.
type bridge struct {
	registry *registry.Registry
	env      *adapter.Environment
}

// Tool converts spec to its MCP definition.
func Tool(spec *adapter.ToolSpec) (mcp.Tool, error) {
	schema, err := spec.Params.RawJSONSchema()
	if err != nil {
		return mcp.Tool{}, err
	}
	tool := mcp.NewToolWithRawSchema(spec.Name, spec.Description, schema)
	tool.Annotations = mcp.ToolAnnotation{
		Title:           spec.Name,
		ReadOnlyHint:    gptr.Of(spec.Hints.ReadOnly),
		DestructiveHint: gptr.Of(spec.Hints.Destructive),
		IdempotentHint:  gptr.Of(spec.Hints.Idempotent),
		OpenWorldHint:   gptr.Of(true),
	}
	return tool, nil
}

// register adds every allowed registry tool to srv and returns how many
// were exposed.
func (b *bridge) register(srv *server.MCPServer, cfg *ServerConfig) (int, error) {
	n := 0
	for _, spec := range b.registry.Tools() {
		if !cfg.allows(spec.Name) {
			continue
		}
		tool, err := Tool(spec)
		if err != nil {
			return n, err
		}
		srv.AddTool(tool, b.handler(spec.Name))
		n++
	}
	return n, nil
}

func (b *bridge) handler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ec := b.env.NewExecutionContext(name)

		res, err := b.registry.Invoke(ctx, name, req.GetArguments(), ec)
		if err != nil {
			ec.Log.WithField("category", adapter.Category(err).String()).Warnf("invocation failed: %v", err)
			if errors.Is(err, errno.ErrToolNotFound) {
				return nil, err
			}
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(res.Text), nil
	}
}

// logging records the duration and outcome of every tool call.
func logging(next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		res, err := next(ctx, req)

		entry := logger.WithFields(logger.Fields{
			"tool":     req.Params.Name,
			"duration": time.Since(start).String(),
		})
		switch {
		case err != nil:
			entry.Errorf("tool call error: %v", err)
		case res != nil && res.IsError:
			entry.Info("tool call returned failure")
		default:
			entry.Debug("tool call succeeded")
		}
		return res, err
	}
}
