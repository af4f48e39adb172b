// Command geokernelctl is a thin command-line driver over kernelexec.Executor:
// every subcommand loads the model's command log from a state file, replays
// it, applies one more command, and writes the log back out. export-obj and
// export-ifc instead replay the log read-only and render the resulting
// model through the mesh and ifcio packages.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	statePath string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "geokernelctl",
	Short: "Drive the Pensaer geometry kernel from the command line",
	Long: `geokernelctl is a thin wrapper around kernelexec.Executor: each
invocation replays the model's command log from a state file, applies one
command, and persists the updated log.`,
}

func newLogger() zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&statePath, "state", "geokernel_state.json",
		"path to the model's command log")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log each command's dispatch and healing")

	rootCmd.AddCommand(addWallCmd)
	rootCmd.AddCommand(moveNodeCmd)
	rootCmd.AddCommand(deleteElementCmd)
	rootCmd.AddCommand(solveJoinsCmd)
	rootCmd.AddCommand(exportOBJCmd)
	rootCmd.AddCommand(exportIFCCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
