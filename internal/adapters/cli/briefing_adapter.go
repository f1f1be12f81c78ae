// Package cli provides thin CLI adapters that translate between CLI
// concerns and application services. Adapters handle output formatting
// but delegate all decisions to services.
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

// BriefingAdapter translates CLI operations to BriefingService calls.
type BriefingAdapter struct {
	service primary.BriefingService
	out     io.Writer
}

// NewBriefingAdapter creates a new BriefingAdapter with the given service.
func NewBriefingAdapter(service primary.BriefingService, out io.Writer) *BriefingAdapter {
	return &BriefingAdapter{
		service: service,
		out:     out,
	}
}

// Generate prints the day's briefing for the given capacity.
func (a *BriefingAdapter) Generate(ctx context.Context, energy models.EnergyLevel, availableBlocks int, now time.Time) error {
	briefing, err := a.service.GenerateBriefing(ctx, primary.GenerateBriefingRequest{
		Energy:          energy,
		AvailableBlocks: availableBlocks,
		Now:             now,
	})
	if err != nil {
		return fmt.Errorf("failed to generate briefing: %w", err)
	}

	fmt.Fprintf(a.out, "\nBriefing for %s · energy %s · %d blocks\n",
		now.Format("Mon Jan 2"), energyLabel(briefing.Energy), briefing.AvailableBlocks)
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")

	if len(briefing.Items) == 0 {
		fmt.Fprintln(a.out, "Nothing eligible today. Queue a sortie or adjust your check-in.")
		fmt.Fprintln(a.out)
		return nil
	}

	for i, item := range briefing.Items {
		fmt.Fprintf(a.out, "%d. %-9s %-32s %s > %s (%d blocks, urgency %.1f)\n",
			i+1, loadLabel(item.Load), item.Title, item.CampaignName, item.MissionName,
			item.EstimatedBlocks, item.Urgency)
	}
	fmt.Fprintf(a.out, "\n%d of %d blocks planned\n\n", briefing.BlocksPlanned, briefing.AvailableBlocks)

	return nil
}

// Now prints the single next sortie under the current ordering.
func (a *BriefingAdapter) Now(ctx context.Context, energy models.EnergyLevel, now time.Time) error {
	item, err := a.service.RouteSingle(ctx, energy, now)
	if err != nil {
		return fmt.Errorf("failed to route: %w", err)
	}
	if item == nil {
		fmt.Fprintln(a.out, "Nothing eligible right now.")
		return nil
	}

	fmt.Fprintf(a.out, "\n→ %s %s\n", item.SortieID, item.Title)
	fmt.Fprintf(a.out, "  %s > %s · %s · %d blocks\n\n",
		item.CampaignName, item.MissionName, loadLabel(item.Load), item.EstimatedBlocks)

	return nil
}

func energyLabel(e models.EnergyLevel) string {
	switch e {
	case models.EnergyGreen:
		return color.GreenString(string(e))
	case models.EnergyYellow:
		return color.YellowString(string(e))
	case models.EnergyRed:
		return color.RedString(string(e))
	}
	return string(e)
}

func loadLabel(l models.CognitiveLoad) string {
	switch l {
	case models.LoadDeep:
		return color.MagentaString("[deep]")
	case models.LoadMedium:
		return color.CyanString("[medium]")
	case models.LoadLight:
		return "[light]"
	}
	return "[" + string(l) + "]"
}
