package templates

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestExamplesIndentsEveryLine(t *testing.T) {
	got := Examples(`
		# List tools
		dixactl tools list`)

	assert.Equal(t, "  # List tools\n  dixactl tools list", got)
}

func TestLongDescDedents(t *testing.T) {
	got := LongDesc(`
		first line
		second line
	`)
	assert.Equal(t, "first line\nsecond line", got)
}

func TestCommandGroupsAdd(t *testing.T) {
	root := &cobra.Command{Use: "root"}
	child := &cobra.Command{Use: "child"}

	CommandGroups{{Message: "Basic Commands:", Commands: []*cobra.Command{child}}}.Add(root)

	assert.Equal(t, "Basic Commands:", child.GroupID)
	assert.True(t, root.ContainsGroup("Basic Commands:"))
	assert.Len(t, root.Commands(), 1)
}
