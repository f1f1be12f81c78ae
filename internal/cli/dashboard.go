package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/example/senryaku/internal/wire"
)

// DashboardCmd returns the dashboard command.
func DashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the health of every active campaign",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.DashboardAdapter().Show(cmd.Context(), time.Now())
		},
	}
}

// HealthCmd returns the health command for a single campaign.
func HealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health [campaign-id]",
		Short: "Show one campaign's health detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.DashboardAdapter().ShowOne(cmd.Context(), args[0], time.Now())
		},
	}
}
