package dixamcp

import (
	"github.com/kiosk404/dixa-mcp/internal/dixamcp/config"
	"github.com/kiosk404/dixa-mcp/internal/dixamcp/options"
	"github.com/kiosk404/dixa-mcp/pkg/app"
	"github.com/kiosk404/dixa-mcp/pkg/logger"
)

const commandDesc = `dixa-mcp exposes the Dixa customer-support REST API as Model Context Protocol tools.

Each tool validates its arguments against a published JSON Schema, calls the
Dixa API with the key from DIXA_API_KEY and returns the response as
pretty-printed JSON. Serve it over stdio for desktop hosts, or over SSE or
streamable HTTP for remote hosts.`

// NewApp creates an App object with default parameters.
func NewApp(basename string) *app.App {
	opts := options.NewOptions()
	application := app.NewApp("Dixa MCP Server",
		basename,
		app.WithOptions(opts),
		app.WithDescription(commandDesc),
		app.WithDefaultValidArgs(),
		app.WithSilence(),
		app.WithRunFunc(run(opts)),
	)
	return application
}

func run(opts *options.Options) app.RunFunc {
	return func(basename string) error {
		if err := opts.LogOptions.Init(); err != nil {
			return err
		}
		defer logger.FlushLog()

		cfg, err := config.CreateConfigFromOptions(opts)
		if err != nil {
			return err
		}

		return Run(cfg)
	}
}
