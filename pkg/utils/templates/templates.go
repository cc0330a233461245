// Package templates normalizes the long help texts and examples of cobra
// commands.
package templates

import (
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

const indentation = `  `

// LongDesc normalizes a command's long description.
func LongDesc(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.TrimSpace(heredoc.Doc(s))
}

// Examples normalizes a command's examples by dedenting and indenting every
// line by two spaces.
func Examples(s string) string {
	if len(s) == 0 {
		return s
	}
	trimmed := strings.TrimSpace(heredoc.Doc(s))
	lines := strings.Split(trimmed, "\n")
	for i, line := range lines {
		lines[i] = indentation + strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

// CommandGroup is a titled set of subcommands.
type CommandGroup struct {
	Message  string
	Commands []*cobra.Command
}

// CommandGroups is an ordered list of command groups.
type CommandGroups []CommandGroup

// Add attaches every grouped command to c under a help section titled by
// the group message.
func (g CommandGroups) Add(c *cobra.Command) {
	for _, group := range g {
		c.AddGroup(&cobra.Group{ID: group.Message, Title: group.Message})
		for _, cmd := range group.Commands {
			cmd.GroupID = group.Message
			c.AddCommand(cmd)
		}
	}
}
