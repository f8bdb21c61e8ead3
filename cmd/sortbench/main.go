// Command sortbench replays workloads against segmented sorted lists and
// sorts text files.
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/sorted/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
