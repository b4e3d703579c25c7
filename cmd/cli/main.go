package main

import (
	"fmt"
	"os"

	"calsdt/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// cli holds state shared by the subcommands
type cli struct {
	logLevel string
	logger   *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "calsdt",
		Short: "Rank phone numbers by Ngu Hanh balance and compatibility",
		Long: `calsdt classifies the digits of 10-digit phone numbers into the five
elements, filters them by balance and by compatibility with a user's element
(menh), and ranks the survivors by score.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.logLevel == "" {
				return nil
			}
			logger, err := logging.New(c.logLevel, true)
			if err != nil {
				return err
			}
			c.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}
	rootCmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "Log to stderr at this level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newAnalyzeCmd(c),
		newCheckCmd(c),
		newGenerateCmd(),
	)
	return rootCmd
}
