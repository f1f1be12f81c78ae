package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/example/senryaku/internal/core/drift"
	"github.com/example/senryaku/internal/ports/primary"
)

// DriftAdapter translates CLI operations to DriftService calls.
type DriftAdapter struct {
	service primary.DriftService
	out     io.Writer
}

// NewDriftAdapter creates a new DriftAdapter with the given service.
func NewDriftAdapter(service primary.DriftService, out io.Writer) *DriftAdapter {
	return &DriftAdapter{
		service: service,
		out:     out,
	}
}

// Show prints the drift report for the trailing window.
func (a *DriftAdapter) Show(ctx context.Context, windowWeeks int, now time.Time) error {
	report, err := a.service.ComputeDrift(ctx, windowWeeks, now)
	if err != nil {
		return fmt.Errorf("failed to compute drift: %w", err)
	}

	fmt.Fprintf(a.out, "\nPriority drift · trailing %d weeks · %d blocks logged\n",
		report.WindowWeeks, report.TotalBlocks)
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")

	if report.InsufficientData {
		fmt.Fprintln(a.out, "Not enough logged work in the window to measure drift.")
		fmt.Fprintln(a.out)
		return nil
	}

	for _, c := range report.Campaigns {
		marker := "  "
		if c.Misaligned {
			marker = color.RedString("!!")
		}
		fmt.Fprintf(a.out, "%s %-28s expected %4.0f%%  actual %4.0f%%  %s\n",
			marker, c.Name, c.ExpectedShare*100, c.ActualShare*100, trendLabel(c.Trend))
		fmt.Fprintf(a.out, "   %s\n", c.Statement)
	}
	fmt.Fprintln(a.out)

	return nil
}

func trendLabel(t drift.Trend) string {
	switch t {
	case drift.TrendImproving:
		return color.GreenString("improving")
	case drift.TrendWorsening:
		return color.RedString("worsening")
	}
	return "mixed"
}
