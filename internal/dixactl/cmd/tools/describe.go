package tools

import (
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/mitchellh/go-wordwrap"
	"github.com/spf13/cobra"

	"github.com/kiosk404/dixa-mcp/internal/dixactl/cmd/util"
	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/adapter"
	"github.com/kiosk404/dixa-mcp/pkg/utils/json"
	"github.com/kiosk404/dixa-mcp/pkg/utils/templates"
)

const describeWidth = 80

var describeExample = templates.Examples(`
		# Show the parameters of a tool
		dixactl tools describe getAnalyticsMetricsData

		# Print the JSON Schema an MCP host receives
		dixactl tools describe listAgents --schema`)

// DescribeOptions is an options struct to support 'describe' sub command.
type DescribeOptions struct {
	Name   string
	Schema bool

	factory util.Factory
	util.IOStreams
}

// NewDescribeOptions returns an initialized DescribeOptions instance.
func NewDescribeOptions(f util.Factory, ioStreams util.IOStreams) *DescribeOptions {
	return &DescribeOptions{factory: f, IOStreams: ioStreams}
}

// NewCmdDescribe returns new initialized instance of 'describe' sub command.
func NewCmdDescribe(f util.Factory, ioStreams util.IOStreams) *cobra.Command {
	o := NewDescribeOptions(f, ioStreams)

	cmd := &cobra.Command{
		Use:                   "describe TOOL",
		DisableFlagsInUseLine: true,
		Short:                 "Show the parameters and endpoint of a tool",
		Example:               describeExample,
		Run: func(cmd *cobra.Command, args []string) {
			util.CheckErr(o.Complete(cmd, args))
			util.CheckErr(o.Run())
		},
	}

	cmd.Flags().BoolVar(&o.Schema, "schema", o.Schema, "Print the input JSON Schema instead of the summary.")

	return cmd
}

// Complete completes all the required options.
func (o *DescribeOptions) Complete(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return util.UsageErrorf(cmd.CommandPath(), "exactly one tool name is required")
	}
	o.Name = args[0]
	return nil
}

// Run executes a describe subcommand using the specified options.
func (o *DescribeOptions) Run() error {
	reg, err := o.factory.Registry()
	if err != nil {
		return err
	}
	spec, ok := reg.Get(o.Name)
	if !ok {
		return fmt.Errorf("tool %q not found", o.Name)
	}

	if o.Schema {
		out, err := json.MarshalIndent(spec.Params.JSONSchema(), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(o.Out, string(out))
		return err
	}

	fmt.Fprintf(o.Out, "Name:        %s\n", spec.Name)
	if spec.Endpoint != nil {
		fmt.Fprintf(o.Out, "Endpoint:    %s %s\n", spec.Endpoint.Method, spec.Endpoint.Path)
	}
	fmt.Fprintf(o.Out, "Hints:       %s\n", hintLabel(spec.Hints))
	fmt.Fprintf(o.Out, "Description:\n%s\n", indent(wordwrap.WrapString(spec.Description, describeWidth-2), "  "))

	if len(spec.Params) == 0 {
		fmt.Fprintln(o.Out, "Parameters:  <none>")
		return nil
	}
	fmt.Fprintln(o.Out, "Parameters:")
	table := uitable.New()
	table.Wrap = true
	table.MaxColWidth = 50
	table.AddRow("  NAME", "TYPE", "REQUIRED", "DEFAULT", "DESCRIPTION")
	writeFields(table, spec.Params, "  ")
	_, err = fmt.Fprintln(o.Out, table)
	return err
}

func writeFields(table *uitable.Table, fields []adapter.Field, prefix string) {
	for _, f := range fields {
		table.AddRow(prefix+f.Name, typeLabel(f), yesNo(f.Required), defaultLabel(f.Default), f.Description)
		if len(f.Fields) > 0 {
			writeFields(table, f.Fields, prefix+"  ")
		}
	}
}

func typeLabel(f adapter.Field) string {
	switch {
	case f.Const != "":
		return fmt.Sprintf("%q", f.Const)
	case len(f.Enum) > 0:
		return "enum"
	case f.Format != "":
		return fmt.Sprintf("%s (%s)", f.Type, f.Format)
	}
	return f.Type.String()
}

func defaultLabel(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
