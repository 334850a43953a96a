package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	verbose bool

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "cprint"})
)

var rootCmd = &cobra.Command{
	Use:   "cprint",
	Short: "Print through custom write functions",
	Long: `cprint prints its arguments through one of the cprint writer facades,
backed by a write function of a chosen shape that writes to stdout.

It exercises every combination of writer, error policy and function shape.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log dropped write errors")

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(newPrintCmd())
	rootCmd.AddCommand(newShapesCmd())
	rootCmd.AddCommand(newConfigCmd())
}
