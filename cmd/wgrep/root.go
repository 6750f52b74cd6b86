package main

import (
	"github.com/praetorian-inc/wgrep/pkg/logger"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbose bool
	quiet   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "wgrep",
		Short: "wgrep - search a file for a literal string",
		Long: `wgrep searches one file for a literal string and reports whether and where it occurs.
Matching can ignore case (Unicode-aware) and can be restricted to whole words.

Exit status is 0 if the string was found, 1 if it was not, and 2 on error.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Setup(cmd.ErrOrStderr(), opts.verbose, opts.quiet)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Quiet mode (exit status only)")

	// Add subcommands
	rootCmd.AddCommand(newSearchCmd(opts))
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
