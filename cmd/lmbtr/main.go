// Command lmbtr computes the Local Many-Body Tensor Representation for a
// molecule described by two on-disk arrays, and renders or analyzes the
// resulting descriptor.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "lmbtr",
		Short:         "Local Many-Body Tensor Representation toolkit",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.AddCommand(computeCmd())
	cmd.AddCommand(plotCmd())
	cmd.AddCommand(analyzeCmd())
	return cmd
}
