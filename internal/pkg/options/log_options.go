package options

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/kiosk404/dixa-mcp/pkg/logger"
)

// LogOptions configures the process logger. Logs go to stderr unless a
// file is set; stdout is reserved for the stdio transport.
type LogOptions struct {
	Level      string `json:"level" mapstructure:"level"`
	Format     string `json:"format" mapstructure:"format"`
	OutputPath string `json:"output-path" mapstructure:"output-path"`
}

// NewLogOptions returns a new instance of LogOptions.
func NewLogOptions() *LogOptions {
	return &LogOptions{
		Level:  "info",
		Format: "text",
	}
}

// Validate checks LogOptions fields.
func (o *LogOptions) Validate() []error {
	var errs []error
	if _, err := logrus.ParseLevel(o.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if o.Format != "text" && o.Format != "json" {
		errs = append(errs, fmt.Errorf("log.format %q must be 'text' or 'json'", o.Format))
	}
	return errs
}

// AddFlags adds flags for the log options.
func (o *LogOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Level, "log.level", o.Level, "Minimum log level: trace, debug, info, warn or error.")
	fs.StringVar(&o.Format, "log.format", o.Format, "Log format: 'text' or 'json'.")
	fs.StringVar(&o.OutputPath, "log.output-path", o.OutputPath, "Write logs to this file instead of stderr.")
}

// Init applies the options to the process logger.
func (o *LogOptions) Init() error {
	return logger.Init(logger.Config{
		Level:      o.Level,
		Format:     o.Format,
		OutputPath: o.OutputPath,
	})
}
