package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"igaudit/pkg/config"
	"igaudit/pkg/logger"
)

var (
	// Version information
	version   = "1.0.0"
	gitCommit = "unknown"
	buildDate = "unknown"

	// Global flags
	configFile string
	logLevel   string

	// cfg is loaded once in the persistent pre-run and shared by subcommands
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "igaudit",
	Short: "Instagram profile authenticity and content analysis",
	Long: `igaudit runs the authenticity analysis engine over already-collected
Instagram profile and post metadata.

It combines a Bayesian authenticity scorer, a hashtag co-occurrence graph
analyzer, and a keyword-based content classifier into one report. Data
collection is out of scope: inputs arrive as normalized JSON documents
produced by a scraping collaborator or manual entry.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildDate),
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		return logger.Initialize(&cfg.Logging)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to configuration file")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "", "log level (debug, info, warn, error)")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
