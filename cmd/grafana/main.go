package main

import (
	"fmt"
	"os"

	"github.com/sznuper/grafana-plugin/internal/dispatch"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the root command and maps its error to an exit code.
// Rejections go to stdout, where the host reads; other errors to stderr.
func run(argv []string) int {
	// The leading terminator keeps cobra from routing tokens such as
	// __complete or help to its own subcommands.
	rootCmd.SetArgs(append([]string{argTerminator}, argv...))
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	if dispatch.IsRejection(err) {
		fmt.Fprintln(rootCmd.OutOrStdout(), err)
	} else {
		fmt.Fprintln(rootCmd.ErrOrStderr(), err)
	}
	return 1
}
