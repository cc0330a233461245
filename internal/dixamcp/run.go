package dixamcp

import (
	"github.com/kiosk404/dixa-mcp/internal/dixamcp/config"
)

func Run(cfg *config.Config) error {
	server, err := createAPIServer(cfg)
	if err != nil {
		return err
	}

	return server.PrepareRun().Run()
}
