package cli

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/example/senryaku/internal/config"
	"github.com/example/senryaku/internal/notify"
	"github.com/example/senryaku/internal/scheduler"
	"github.com/example/senryaku/internal/wire"
)

// WatchCmd returns the watch command: a foreground process that pushes
// the morning briefing and the weekly review on their cron schedules.
func WatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Run the briefing and review schedulers in the foreground",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.WebhookURL == "" {
				return fmt.Errorf("SENRYAKU_WEBHOOK_URL is required for watch mode")
			}

			logger := log.New(os.Stderr, "[WATCH] ", log.LstdFlags)
			notifier := notify.NewWebhookNotifier(cfg.WebhookURL, cfg.WebhookType)

			s := scheduler.New(
				wire.BriefingService(),
				wire.CheckInService(),
				wire.ReviewService(),
				notifier,
				logger,
			)
			if err := s.Start(cfg.BriefingCron, cfg.ReviewCron); err != nil {
				return err
			}
			defer s.Stop()

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			<-sig
			return nil
		},
	}
}
