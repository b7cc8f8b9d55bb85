// Package cmd provides the command-line interface for ringwalk.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// NewRootCmd returns the base command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ringwalk",
		Short: "Simulate particle transport on a ring of capacity-limited nodes.",
		Long: `ringwalk moves particles between neighboring nodes of a ring under ` +
			`synchronous or sequential dynamics, stores the occupancy history ` +
			`in SQLite and renders occupancy histograms.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newHistogramCmd(),
		newValidateCmd(),
	)

	return rootCmd
}

// Execute runs the root command and exits with status 1 on error. Pending
// database writes are flushed before exiting.
func Execute() {
	err := NewRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
