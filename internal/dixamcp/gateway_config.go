package dixamcp

import (
	"github.com/kiosk404/dixa-mcp/internal/dixamcp/handler/middleware"
	"github.com/kiosk404/dixa-mcp/internal/dixamcp/options"
)

// GatewayConfig holds the gateway-level configuration for HTTP API endpoints.
type GatewayConfig struct {
	// Addr is the listen address.
	Addr string `json:"addr"`
	// Auth holds the authentication configuration for the gateway.
	Auth middleware.AuthConfig `json:"auth"`
	// Pprof mounts the profiling endpoints.
	Pprof bool `json:"pprof"`
}

func DefaultGatewayConfig() *GatewayConfig {
	return &GatewayConfig{
		Addr: "127.0.0.1:8932",
		Auth: middleware.AuthConfig{
			Enabled:    false,
			AllowLocal: true,
		},
	}
}

func buildGatewayConfig(o *options.GatewayOptions) *GatewayConfig {
	cfg := DefaultGatewayConfig()
	if o.Addr != "" {
		cfg.Addr = o.Addr
	}
	cfg.Auth.Token = o.Token
	cfg.Auth.AllowLocal = o.AllowLocal
	cfg.Auth.Enabled = cfg.Auth.ResolveToken() != ""
	cfg.Pprof = o.Pprof
	return cfg
}
