package options

import (
	"fmt"
	"net"

	"github.com/spf13/pflag"
)

// GatewayOptions holds options for the optional HTTP gateway.
type GatewayOptions struct {
	// Enabled starts the gateway next to the MCP transport. (default: false)
	Enabled bool `json:"enabled" mapstructure:"enabled"`
	// Addr is the gateway listen address.
	Addr string `json:"addr" mapstructure:"addr"`
	// Token protects the gateway with a Bearer token when set.
	Token string `json:"-" mapstructure:"token"`
	// AllowLocal lets loopback requests skip the token check.
	AllowLocal bool `json:"allow-local" mapstructure:"allow-local"`
	// Pprof mounts the profiling endpoints under /debug/pprof.
	Pprof bool `json:"pprof" mapstructure:"pprof"`
}

// NewGatewayOptions creates a default GatewayOptions instance.
func NewGatewayOptions() *GatewayOptions {
	return &GatewayOptions{
		Addr:       "127.0.0.1:8932",
		AllowLocal: true,
	}
}

// Validate checks the GatewayOptions for correctness.
func (o *GatewayOptions) Validate() []error {
	if !o.Enabled {
		return nil
	}
	if _, _, err := net.SplitHostPort(o.Addr); err != nil {
		return []error{fmt.Errorf("gateway.addr %q: %w", o.Addr, err)}
	}
	return nil
}

// AddFlags adds the GatewayOptions flags to the given flag set.
func (o *GatewayOptions) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&o.Enabled, "gateway.enabled", o.Enabled, "Serve the HTTP gateway for tool discovery and invocation.")
	fs.StringVar(&o.Addr, "gateway.addr", o.Addr, "Listen address of the HTTP gateway.")
	fs.StringVar(&o.Token, "gateway.token", o.Token, "Bearer token required by the gateway. Falls back to DIXA_GATEWAY_TOKEN.")
	fs.BoolVar(&o.AllowLocal, "gateway.allow-local", o.AllowLocal, "Allow loopback requests without a token.")
	fs.BoolVar(&o.Pprof, "gateway.pprof", o.Pprof, "Mount pprof handlers on the gateway.")
}
