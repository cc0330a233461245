// Package tools implements the dixactl tools subcommands.
package tools

import (
	"github.com/spf13/cobra"

	"github.com/kiosk404/dixa-mcp/internal/dixactl/cmd/util"
	"github.com/kiosk404/dixa-mcp/pkg/utils/templates"
)

var toolsLong = templates.LongDesc(`
	Inspect and call the Dixa tools served by dixa-mcp.

	The tools are called in-process, with the same validation and error
	handling an MCP host sees, which makes this the quickest way to check an
	API key or reproduce a failing call.`)

// NewCmdTools returns the tools command group.
func NewCmdTools(f util.Factory, ioStreams util.IOStreams) *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "tools SUBCOMMAND",
		DisableFlagsInUseLine: true,
		Short:                 "List, describe and call Dixa tools",
		Long:                  toolsLong,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	cmd.AddCommand(NewCmdList(f, ioStreams))
	cmd.AddCommand(NewCmdDescribe(f, ioStreams))
	cmd.AddCommand(NewCmdCall(f, ioStreams))

	return cmd
}
