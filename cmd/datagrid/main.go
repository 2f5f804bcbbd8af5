// Command datagrid sorts, paginates and renders tabular records.
package main

import (
	"fmt"
	"os"

	"github.com/rshade/datagrid/internal/cli"
	"github.com/rshade/datagrid/pkg/version"
)

func main() {
	os.Exit(exitCode(run()))
}

func run() error {
	return cli.NewRootCmd(version.GetVersion()).Execute()
}

// exitCode reports err on stderr and maps it to a process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	return 1
}
