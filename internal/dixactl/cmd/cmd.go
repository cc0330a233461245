package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kiosk404/dixa-mcp/internal/dixactl/cmd/tools"
	"github.com/kiosk404/dixa-mcp/internal/dixactl/cmd/util"
	"github.com/kiosk404/dixa-mcp/internal/dixactl/cmd/version"
	"github.com/kiosk404/dixa-mcp/internal/pkg/options"
	"github.com/kiosk404/dixa-mcp/pkg/logger"
	"github.com/kiosk404/dixa-mcp/pkg/utils/cliflag"
	"github.com/kiosk404/dixa-mcp/pkg/utils/templates"
)

// NewDefaultDixaCtlCommand creates the `dixactl` command with default arguments.
func NewDefaultDixaCtlCommand() *cobra.Command {
	return NewDixaCtlCommand(os.Stdin, os.Stdout, os.Stderr)
}

// NewDixaCtlCommand creates the `dixactl` command bound to the given streams.
func NewDixaCtlCommand(in io.Reader, out, err io.Writer) *cobra.Command {
	dixaOpts := options.NewDixaOptions()
	logOpts := options.NewLogOptions()
	logOpts.Level = "warn"

	// Parent command to which all subcommands are added.
	cmds := &cobra.Command{
		Use:   "dixactl",
		Short: "dixactl inspects and calls the Dixa MCP tools",
		Long: templates.LongDesc(`
		dixactl is the command line companion of dixa-mcp.

		It lists the tools an MCP host sees, prints their parameter schemas and
		calls them directly against the Dixa API using the same validation and
		error handling as the server.`),
		Run: runHelp,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return logOpts.Init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			logger.FlushLog()
		},
		SilenceUsage: true,
	}
	cmds.SetIn(in)
	cmds.SetOut(out)
	cmds.SetErr(err)

	flags := cmds.PersistentFlags()
	flags.SetNormalizeFunc(cliflag.WordSepNormalizeFunc)
	dixaOpts.AddFlags(flags)
	logOpts.AddFlags(flags)
	_ = viper.BindPFlags(flags)

	ioStreams := util.IOStreams{In: in, Out: out, ErrOut: err}
	f := util.NewFactory(dixaOpts)

	groups := templates.CommandGroups{
		{
			Message: "Tool Commands:",
			Commands: []*cobra.Command{
				tools.NewCmdTools(f, ioStreams),
			},
		},
		{
			Message: "Other Commands:",
			Commands: []*cobra.Command{
				version.NewCmdVersion(ioStreams),
			},
		},
	}
	groups.Add(cmds)

	return cmds
}

func runHelp(cmd *cobra.Command, args []string) {
	_ = cmd.Help()
}
