package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/datagrid/pkg/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(ver string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the datagrid version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("datagrid %s\n", ver)
			cmd.Printf("  commit: %s\n", version.GetCommit())
			cmd.Printf("  built:  %s\n", version.GetBuildDate())
		},
	}
}
