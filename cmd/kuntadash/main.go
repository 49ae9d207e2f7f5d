// Command kuntadash fetches, archives, and serves regional statistical
// time series from the StatFin PxWeb API.
package main

import (
	"fmt"
	"os"

	"github.com/veksi/kuntadash/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
