// Package version prints the client version information.
package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kiosk404/dixa-mcp/internal/dixactl/cmd/util"
	"github.com/kiosk404/dixa-mcp/pkg/utils/json"
	"github.com/kiosk404/dixa-mcp/pkg/version"
)

// NewCmdVersion returns a cobra command for fetching versions.
func NewCmdVersion(ioStreams util.IOStreams) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the client version information",
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get()
			if output == "json" {
				out, err := json.MarshalIndent(info, "", "  ")
				util.CheckErr(err)
				fmt.Fprintln(ioStreams.Out, string(out))
				return
			}
			fmt.Fprintf(ioStreams.Out, "Client Version: %s (%s, %s)\n", info.GitVersion, info.GoVersion, info.Platform)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "One of '' or 'json'.")
	return cmd
}
