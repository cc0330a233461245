package tools

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kiosk404/dixa-mcp/internal/dixactl/cmd/util"
	"github.com/kiosk404/dixa-mcp/pkg/utils/json"
	"github.com/kiosk404/dixa-mcp/pkg/utils/templates"
)

var callExample = templates.Examples(`
		# Fetch a conversation
		dixactl tools call getConversation --args '{"conversationId":"123"}'

		# Read the arguments from a file
		dixactl tools call getAnalyticsMetricsData --args @metric.json

		# Read the arguments from stdin
		echo '{"pageLimit":10}' | dixactl tools call listAgents --args -`)

// CallOptions is an options struct to support 'call' sub command.
type CallOptions struct {
	Name string
	Args string

	factory util.Factory
	util.IOStreams
}

// NewCallOptions returns an initialized CallOptions instance.
func NewCallOptions(f util.Factory, ioStreams util.IOStreams) *CallOptions {
	return &CallOptions{Args: "{}", factory: f, IOStreams: ioStreams}
}

// NewCmdCall returns new initialized instance of 'call' sub command.
func NewCmdCall(f util.Factory, ioStreams util.IOStreams) *cobra.Command {
	o := NewCallOptions(f, ioStreams)

	cmd := &cobra.Command{
		Use:                   "call TOOL [--args JSON]",
		DisableFlagsInUseLine: true,
		Short:                 "Call a tool against the Dixa API",
		Long: templates.LongDesc(`
			Call a tool against the Dixa API and print its result.

			Arguments are a JSON object, given inline, as @FILE, or as - to read stdin.
			The API key is read from DIXA_API_KEY or --dixa.api-key.`),
		Example: callExample,
		Run: func(cmd *cobra.Command, args []string) {
			util.CheckErr(o.Complete(cmd, args))
			util.CheckErr(o.Run(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&o.Args, "args", o.Args, "Tool arguments as a JSON object, @FILE or -.")

	return cmd
}

// Complete completes all the required options.
func (o *CallOptions) Complete(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return util.UsageErrorf(cmd.CommandPath(), "exactly one tool name is required")
	}
	o.Name = args[0]
	return nil
}

// Run executes a call subcommand using the specified options.
func (o *CallOptions) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	raw, err := o.readArgs()
	if err != nil {
		return err
	}
	args := map[string]any{}
	if len(strings.TrimSpace(string(raw))) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return fmt.Errorf("--args must be a JSON object: %w", err)
		}
	}

	reg, err := o.factory.Registry()
	if err != nil {
		return err
	}
	env := o.factory.Environment()
	res, err := reg.Invoke(ctx, o.Name, args, env.NewExecutionContext(o.Name))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(o.Out, res.Text)
	return err
}

func (o *CallOptions) readArgs() ([]byte, error) {
	switch {
	case o.Args == "-":
		return io.ReadAll(o.In)
	case strings.HasPrefix(o.Args, "@"):
		return os.ReadFile(strings.TrimPrefix(o.Args, "@"))
	}
	return []byte(o.Args), nil
}
