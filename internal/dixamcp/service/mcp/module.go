package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/adapter"
	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/registry"
	"github.com/kiosk404/dixa-mcp/pkg/logger"
)

type Config struct {
	Server   *ServerConfig
	Registry *registry.Registry

	// Credential resolves the API key per invocation.
	Credential    adapter.CredentialSource
	CredentialKey string
	BaseURL       string
	HTTPClient    adapter.HTTPDoer

	// Stdin and Stdout back the stdio transport. Default: os.Stdin, os.Stdout.
	Stdin  io.Reader
	Stdout io.Writer
}

// CompletedConfig is the completed configuration for MCP.
type CompletedConfig struct {
	*Config
}

// Complete fills defaults.
func (c *Config) Complete() CompletedConfig {
	if c.Server == nil {
		c.Server = NewServerConfig()
	}
	if c.Server.Transport == "" {
		c.Server.Transport = TransportStdio
	}
	if c.Server.EndpointPath == "" {
		c.Server.EndpointPath = "/mcp"
	}
	if c.CredentialKey == "" {
		c.CredentialKey = adapter.DefaultCredentialKey
	}
	if c.HTTPClient == nil {
		c.HTTPClient = http.DefaultClient
	}
	if c.Stdin == nil {
		c.Stdin = os.Stdin
	}
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	return CompletedConfig{c}
}

// Module is the top-level MCP module.
type Module struct {
	Server *Server
}

// New creates the MCP server and registers the tools.
func (c CompletedConfig) New(_ context.Context) (*Module, error) {
	if c.Registry == nil {
		return nil, fmt.Errorf("[MCP] tool registry is required")
	}
	if errs := c.Server.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("[MCP] invalid server config: %w", errors.Join(errs...))
	}

	srv := server.NewMCPServer(
		c.Server.Name,
		c.Server.Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithLogging(),
		server.WithToolHandlerMiddleware(logging),
	)

	b := &bridge{
		registry: c.Registry,
		env: &adapter.Environment{
			Credential:    c.Credential,
			CredentialKey: c.CredentialKey,
			BaseURL:       c.BaseURL,
			Client:        c.HTTPClient,
		},
	}
	n, err := b.register(srv, c.Server)
	if err != nil {
		return nil, fmt.Errorf("[MCP] register tools: %w", err)
	}

	logger.Info("[MCP] module initialized (%d of %d tools exposed)", n, c.Registry.Len())
	return &Module{
		Server: &Server{
			config: c.Server,
			mcp:    srv,
			stdin:  c.Stdin,
			stdout: c.Stdout,
		},
	}, nil
}

// Close releases all resources held by the MCP module.
func (m *Module) Close() error {
	if m.Server != nil {
		return m.Server.Shutdown(context.Background())
	}
	return nil
}
