package tools

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/kiosk404/dixa-mcp/internal/dixactl/cmd/util"
	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/adapter"
	"github.com/kiosk404/dixa-mcp/pkg/utils/json"
	"github.com/kiosk404/dixa-mcp/pkg/utils/templates"
)

var listExample = templates.Examples(`
		# List every tool with its endpoint
		dixactl tools list

		# Print the tool catalog as JSON
		dixactl tools list -o json`)

// ListOptions is an options struct to support 'list' sub command.
type ListOptions struct {
	Output string

	factory util.Factory
	util.IOStreams
}

type listEntry struct {
	Name        string        `json:"name"`
	Method      string        `json:"method,omitempty"`
	Path        string        `json:"path,omitempty"`
	Hints       adapter.Hints `json:"hints"`
	Description string        `json:"description"`
}

// NewListOptions returns an initialized ListOptions instance.
func NewListOptions(f util.Factory, ioStreams util.IOStreams) *ListOptions {
	return &ListOptions{
		Output:    "table",
		factory:   f,
		IOStreams: ioStreams,
	}
}

// NewCmdList returns new initialized instance of 'list' sub command.
func NewCmdList(f util.Factory, ioStreams util.IOStreams) *cobra.Command {
	o := NewListOptions(f, ioStreams)

	cmd := &cobra.Command{
		Use:                   "list",
		DisableFlagsInUseLine: true,
		Aliases:               []string{"ls"},
		Short:                 "List the available tools",
		Example:               listExample,
		Run: func(cmd *cobra.Command, args []string) {
			util.CheckErr(o.Validate(cmd))
			util.CheckErr(o.Run())
		},
	}

	cmd.Flags().StringVarP(&o.Output, "output", "o", o.Output, "Output format. One of: table|json.")

	return cmd
}

// Validate makes sure the output format is supported.
func (o *ListOptions) Validate(cmd *cobra.Command) error {
	switch o.Output {
	case "table", "json":
		return nil
	}
	return util.UsageErrorf(cmd.CommandPath(), "unsupported output format %q", o.Output)
}

// Run executes a list subcommand using the specified options.
func (o *ListOptions) Run() error {
	reg, err := o.factory.Registry()
	if err != nil {
		return err
	}

	entries := make([]listEntry, 0, reg.Len())
	for _, spec := range reg.Tools() {
		e := listEntry{Name: spec.Name, Hints: spec.Hints, Description: spec.Description}
		if spec.Endpoint != nil {
			e.Method = spec.Endpoint.Method
			e.Path = spec.Endpoint.Path
		}
		entries = append(entries, e)
	}

	if o.Output == "json" {
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(o.Out, string(out))
		return err
	}

	table := uitable.New()
	table.MaxColWidth = 60
	table.AddRow("NAME", "METHOD", "PATH", "HINTS")
	for _, e := range entries {
		table.AddRow(e.Name, e.Method, e.Path, hintLabel(e.Hints))
	}
	_, err = fmt.Fprintln(o.Out, table)
	return err
}

func hintLabel(h adapter.Hints) string {
	var labels []string
	if h.ReadOnly {
		labels = append(labels, color.GreenString("read-only"))
	}
	if h.Destructive {
		labels = append(labels, color.RedString("destructive"))
	}
	if h.Idempotent {
		labels = append(labels, color.CyanString("idempotent"))
	}
	if len(labels) == 0 {
		return "-"
	}
	return strings.Join(labels, ",")
}
