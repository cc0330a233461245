package config

import (
	"github.com/kiosk404/dixa-mcp/internal/dixamcp/options"
)

// Config is the running configuration structure of the dixa-mcp service.
type Config struct {
	*options.Options
}

// CreateConfigFromOptions creates a running configuration instance based
// on the given command line or configuration file option.
func CreateConfigFromOptions(opts *options.Options) (*Config, error) {
	return &Config{opts}, nil
}
