// Package registry holds the set of invocable tools and routes invocations
// to them by name.
package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/adapter"
	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/registry/errno"
	"github.com/kiosk404/dixa-mcp/pkg/logger"
)

// Registry is a name-unique collection of tools.
//
// Registration happens during bootstrap; afterwards the registry is only
// read, so lookups take the read lock.
type Registry struct {
	mu sync.RWMutex

	// tools maps tool name → ToolSpec.
	tools map[string]*adapter.ToolSpec

	// order preserves the registration order of tools.
	order []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		tools: make(map[string]*adapter.ToolSpec),
	}
}

// Register adds tool. Names are unique; a second tool with the same name
// is rejected.
func (r *Registry) Register(tool *adapter.ToolSpec) error {
	if tool == nil {
		return errno.ErrNilTool
	}
	if tool.Name == "" {
		return errno.ErrEmptyToolName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tools[tool.Name]; ok {
		return fmt.Errorf("%w: %s", errno.ErrDuplicateTool, tool.Name)
	}
	r.tools[tool.Name] = tool
	r.order = append(r.order, tool.Name)
	logger.Debug("[Registry] registered tool %s", tool.Name)
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(tools ...*adapter.ToolSpec) {
	for _, tool := range tools {
		if err := r.Register(tool); err != nil {
			panic(err)
		}
	}
}

// Tools returns all tools in registration order.
func (r *Registry) Tools() []*adapter.ToolSpec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*adapter.ToolSpec, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

// Get returns the tool called name.
func (r *Registry) Get(name string) (*adapter.ToolSpec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, ok := r.tools[name]
	return tool, ok
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Invoke routes an invocation to the tool called name.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]any, ec *adapter.ExecutionContext) (*adapter.Result, error) {
	tool, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errno.ErrToolNotFound, name)
	}
	return tool.Invoke(ctx, args, ec)
}
