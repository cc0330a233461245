package mcp

import (
	"fmt"
	"net"
	"slices"
	"strings"
)

// Supported transports.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
	TransportHTTP  = "http"
)

// ServerConfig defines how the MCP server is exposed to hosts.
type ServerConfig struct {
	// Name is reported to hosts during the handshake.
	Name string `json:"name,omitempty" mapstructure:"name"`

	// Version is reported to hosts during the handshake.
	Version string `json:"version,omitempty" mapstructure:"version"`

	// Transport is the MCP transport protocol: "stdio", "sse" or "http".
	// Default: "stdio".
	Transport string `json:"transport,omitempty" mapstructure:"transport"`

	// --- sse / http transport fields ---

	// Addr is the listen address. Example: "127.0.0.1:8931"
	Addr string `json:"addr,omitempty" mapstructure:"addr"`

	// BaseURL is the public URL advertised to SSE clients.
	// Defaults to http://<Addr>.
	BaseURL string `json:"baseURL,omitempty" mapstructure:"base-url"`

	// EndpointPath is the streamable HTTP endpoint. Default: "/mcp".
	EndpointPath string `json:"endpointPath,omitempty" mapstructure:"endpoint-path"`

	// --- common fields ---

	// ToolFilter is an optional list of tool names to expose.
	// If empty, every registered tool is exposed.
	ToolFilter []string `json:"toolFilter,omitempty" mapstructure:"tool-filter"`
}

// NewServerConfig returns a stdio configuration with defaults filled.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Name:         "dixa-mcp-server",
		Version:      "1.0.0",
		Transport:    TransportStdio,
		Addr:         "127.0.0.1:8931",
		EndpointPath: "/mcp",
	}
}

// Validate checks the server configuration for obvious errors.
func (c *ServerConfig) Validate() []error {
	var errs []error
	switch c.Transport {
	case "", TransportStdio:
	case TransportSSE, TransportHTTP:
		if c.Addr == "" {
			errs = append(errs, fmt.Errorf("mcp.addr is required for %s transport", c.Transport))
		} else if _, _, err := net.SplitHostPort(c.Addr); err != nil {
			errs = append(errs, fmt.Errorf("mcp.addr %q: %w", c.Addr, err))
		}
		if c.Transport == TransportHTTP && c.EndpointPath != "" && !strings.HasPrefix(c.EndpointPath, "/") {
			errs = append(errs, fmt.Errorf("mcp.endpoint-path %q must start with /", c.EndpointPath))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported mcp transport %q (must be 'stdio', 'sse' or 'http')", c.Transport))
	}
	return errs
}

func (c *ServerConfig) allows(tool string) bool {
	if len(c.ToolFilter) == 0 {
		return true
	}
	return slices.Contains(c.ToolFilter, tool)
}
