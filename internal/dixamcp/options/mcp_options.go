package options

import (
	"github.com/spf13/pflag"

	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/mcp"
)

// MCPOptions holds options for the MCP server.
type MCPOptions struct {
	// Transport is "stdio", "sse" or "http". Default: "stdio".
	Transport string `json:"transport" mapstructure:"transport"`
	// Addr is the listen address for the sse and http transports.
	Addr string `json:"addr" mapstructure:"addr"`
	// BaseURL is the public URL advertised to SSE clients.
	BaseURL string `json:"base-url" mapstructure:"base-url"`
	// EndpointPath is the streamable HTTP endpoint path.
	EndpointPath string `json:"endpoint-path" mapstructure:"endpoint-path"`
	// Tools restricts the exposed tools. Empty exposes all.
	Tools []string `json:"tools" mapstructure:"tools"`
}

// NewMCPOptions creates a default MCPOptions instance.
func NewMCPOptions() *MCPOptions {
	def := mcp.NewServerConfig()
	return &MCPOptions{
		Transport:    def.Transport,
		Addr:         def.Addr,
		EndpointPath: def.EndpointPath,
	}
}

// ServerConfig converts the options into an MCP server configuration.
func (o *MCPOptions) ServerConfig(version string) *mcp.ServerConfig {
	cfg := mcp.NewServerConfig()
	cfg.Version = version
	cfg.Transport = o.Transport
	cfg.Addr = o.Addr
	cfg.BaseURL = o.BaseURL
	cfg.EndpointPath = o.EndpointPath
	cfg.ToolFilter = o.Tools
	return cfg
}

// Validate checks the MCPOptions for correctness.
func (o *MCPOptions) Validate() []error {
	return o.ServerConfig("").Validate()
}

// AddFlags adds the MCPOptions flags to the given flag set.
func (o *MCPOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Transport, "mcp.transport", o.Transport, "MCP transport: 'stdio', 'sse' or 'http'.")
	fs.StringVar(&o.Addr, "mcp.addr", o.Addr, "Listen address for the sse and http transports.")
	fs.StringVar(&o.BaseURL, "mcp.base-url", o.BaseURL, "Public base URL advertised to SSE clients.")
	fs.StringVar(&o.EndpointPath, "mcp.endpoint-path", o.EndpointPath, "Endpoint path for the http transport.")
	fs.StringSliceVar(&o.Tools, "mcp.tools", o.Tools, "Only expose these tools (comma separated). Empty exposes all.")
}
