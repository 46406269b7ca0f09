package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	logLevel *string
}{}

var rootCmd = &cobra.Command{
	Use:   "smerge",
	Short: "Merge source files structurally instead of line by line",
	Long: `smerge performs semistructured three-way merge over source files.
It parses the base, left, and right revisions into concrete syntax trees,
aligns them, and merges the trees, so that reordered declarations and edits
to distinct program elements do not cause spurious conflicts.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := zerolog.ParseLevel(*rootFlags.logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level: %v", *rootFlags.logLevel)
		}
		zerolog.SetGlobalLevel(level)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		return nil
	},
}

func init() {
	rootFlags.logLevel = rootCmd.PersistentFlags().String("log-level", "info", "the minimum log level to be displayed in output")
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		return err
	}
	return nil
}
