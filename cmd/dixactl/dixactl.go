// dixactl is the command line companion of the dixa-mcp server.
package main

import (
	"os"

	"github.com/kiosk404/dixa-mcp/internal/dixactl/cmd"
)

func main() {
	command := cmd.NewDefaultDixaCtlCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}
