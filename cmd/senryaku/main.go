package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/senryaku/internal/cli"
	"github.com/example/senryaku/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "senryaku",
		Short:   "Personal attention allocation for long-running campaigns",
		Version: version.String(),
		Long: `senryaku tracks campaigns, missions, and sorties, then tells you
where today's focus blocks should go given your energy and priorities.`,
	}

	// Planning entities
	rootCmd.AddCommand(cli.CampaignCmd())
	rootCmd.AddCommand(cli.MissionCmd())
	rootCmd.AddCommand(cli.SortieCmd())

	// Daily loop
	rootCmd.AddCommand(cli.CheckInCmd())
	rootCmd.AddCommand(cli.BriefingCmd())
	rootCmd.AddCommand(cli.NowCmd())

	// Reporting
	rootCmd.AddCommand(cli.DashboardCmd())
	rootCmd.AddCommand(cli.HealthCmd())
	rootCmd.AddCommand(cli.DriftCmd())
	rootCmd.AddCommand(cli.ReviewCmd())

	// Operational
	rootCmd.AddCommand(cli.SeedCmd())
	rootCmd.AddCommand(cli.WatchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
