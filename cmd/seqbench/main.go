package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	ExitCodeExecuteFailed = 1
)

const (
	FlagLogLevel = "log-level"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitCodeExecuteFailed)
	}
}

func newRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "seqbench",
		Short: "Compare an array sequence with a linked list",
		Long: "Allocate an array sequence and a linked list of 1,000,000 ints, print their memory " +
			"footprint, prepend 100,000 values to each and time write and read loops over both",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().StringVar(&o.logLevel, FlagLogLevel, "warn", "log level for diagnostics written to stderr")
	return cmd
}
