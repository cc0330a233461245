// dixa-mcp serves the Dixa REST API as Model Context Protocol tools.
package main

import (
	_ "go.uber.org/automaxprocs"

	"github.com/kiosk404/dixa-mcp/internal/dixamcp"
)

func main() {
	dixamcp.NewApp("dixa-mcp").Run()
}
