package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"JaundiceRate/internal/domain"
)

var (
	watchFeed     string
	watchInterval time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-rate a feed periodically and print each round as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if watchFeed == "" {
			return fmt.Errorf("--feed is required")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		return application.Watch(ctx, watchFeed, watchInterval, func(_ time.Time, results []domain.ArticleResult) {
			if err := writeJSON(out, results); err != nil {
				logger.Error("write round", "error", err)
			}
		})
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchFeed, "feed", "", "RSS/Atom feed to watch")
	watchCmd.Flags().DurationVar(&watchInterval, "every", 0, "interval between rounds (default: watch.interval)")
}
