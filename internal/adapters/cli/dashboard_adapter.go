package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/example/senryaku/internal/models"
	"github.com/example/senryaku/internal/ports/primary"
)

// DashboardAdapter translates CLI operations to HealthService calls.
type DashboardAdapter struct {
	service primary.HealthService
	out     io.Writer
}

// NewDashboardAdapter creates a new DashboardAdapter with the given service.
func NewDashboardAdapter(service primary.HealthService, out io.Writer) *DashboardAdapter {
	return &DashboardAdapter{
		service: service,
		out:     out,
	}
}

// Show prints the health of every active campaign in rank order.
func (a *DashboardAdapter) Show(ctx context.Context, now time.Time) error {
	campaigns, err := a.service.GetDashboard(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to get dashboard: %w", err)
	}

	if len(campaigns) == 0 {
		fmt.Fprintln(a.out, "No active campaigns")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-4s %-8s %-28s %-10s %-6s %-6s %s\n",
		"RANK", "HEALTH", "CAMPAIGN", "VELOCITY", "ADH", "STALE", "NEXT")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────────────────")
	for _, c := range campaigns {
		next := c.NextSortieTitle
		if next == "" {
			next = "(queue empty)"
		}
		fmt.Fprintf(a.out, "%-4d %-8s %-28s %d/%d %-6s %.2f  %3dd   %s\n",
			c.PriorityRank, healthLabel(c.Health), c.Name,
			c.Velocity, c.WeeklyBlockTarget, "", c.AdherenceRatio, c.StalenessDays, next)
		fmt.Fprintf(a.out, "%29s missions %d/%d\n", "", c.MissionsCompleted, c.MissionsTotal)
	}
	fmt.Fprintln(a.out)

	return nil
}

// ShowOne prints the health detail of a single campaign.
func (a *DashboardAdapter) ShowOne(ctx context.Context, campaignID string, now time.Time) error {
	c, err := a.service.ComputeCampaignHealth(ctx, campaignID, now)
	if err != nil {
		return fmt.Errorf("failed to compute health: %w", err)
	}

	fmt.Fprintf(a.out, "\nCampaign: %s (%s)\n", c.Name, c.CampaignID)
	fmt.Fprintf(a.out, "Health:    %s\n", healthLabel(c.Health))
	fmt.Fprintf(a.out, "Velocity:  %d of %d blocks this week\n", c.Velocity, c.WeeklyBlockTarget)
	fmt.Fprintf(a.out, "Adherence: %.2f\n", c.AdherenceRatio)
	fmt.Fprintf(a.out, "Staleness: %d days\n\n", c.StalenessDays)

	return nil
}

func healthLabel(h models.HealthStatus) string {
	switch h {
	case models.HealthGreen:
		return color.GreenString("green")
	case models.HealthYellow:
		return color.YellowString("yellow")
	case models.HealthRed:
		return color.RedString("red")
	}
	return string(h)
}
