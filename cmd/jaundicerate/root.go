package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"JaundiceRate/internal/app"
	"JaundiceRate/internal/config"
	"JaundiceRate/internal/logging"
)

var (
	cfgFile  string
	logLevel string

	cfg         config.Config
	logger      *slog.Logger
	application *app.Application
)

var rootCmd = &cobra.Command{
	Use:   "jaundicerate",
	Short: "Rate news articles by the density of charged words",
	Long: `jaundicerate downloads news articles, extracts their text with a
host-specific sanitizer and reports the share of charged words.

Example usage:
  jaundicerate rate https://inosmi.ru/20240101/article.html
  jaundicerate rate --feed https://inosmi.ru/export/rss2/index.xml
  jaundicerate serve`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp()
	},
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file (default: $JAUNDICE_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(rateCmd, serveCmd, watchCmd)
}

func initApp() error {
	cfg = config.Load(cfgFile)
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	logger = logging.New(cfg.Logging.Level)

	var err error
	application, err = app.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("init application: %w", err)
	}
	return nil
}
