package v1

import (
	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/adapter"
)

// ToolResponse describes one tool for discovery.
type ToolResponse struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Hints       adapter.Hints  `json:"hints"`
	Method      string         `json:"method,omitempty"`
	Path        string         `json:"path,omitempty"`
	InputSchema map[string]any `json:"inputSchema"`
}

// ToolListResponse is the body of GET /v1/tools.
type ToolListResponse struct {
	Data []ToolResponse `json:"data"`
}
