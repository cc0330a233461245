// Package dixa declares the Dixa REST API operations exposed as tools.
package dixa

import (
	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/adapter"
	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/registry"
)

// DefaultBaseURL is the root of the Dixa REST API.
const DefaultBaseURL = "https://dev.dixa.io/v1"

var (
	readOnly    = adapter.Hints{ReadOnly: true, Idempotent: true}
	idempotent  = adapter.Hints{Idempotent: true}
	destructive = adapter.Hints{Destructive: true, Idempotent: true}
)

// Tools returns a fresh set of all Dixa tools in catalog order.
func Tools() []*adapter.ToolSpec {
	var out []*adapter.ToolSpec
	out = append(out, conversationTools()...)
	out = append(out, tagTools()...)
	out = append(out, userTools()...)
	out = append(out, agentTools()...)
	out = append(out, analyticsTools()...)
	return out
}

// Register adds every Dixa tool to r.
func Register(r *registry.Registry) error {
	for _, tool := range Tools() {
		if err := r.Register(tool); err != nil {
			return err
		}
	}
	return nil
}

func mustTool(name, description string, params adapter.Schema, hints adapter.Hints, ep adapter.Endpoint) *adapter.ToolSpec {
	tool, err := adapter.NewHTTPTool(name, description, params, hints, ep)
	if err != nil {
		panic(err)
	}
	return tool
}

func id(name, description string) adapter.Field {
	return adapter.Field{Name: name, Type: adapter.String, Required: true, MinLength: 1, Description: description}
}
