package primary

import (
	"context"
	"time"

	"github.com/example/senryaku/internal/core/drift"
)

// DriftService defines the primary port for priority-drift detection.
type DriftService interface {
	// ComputeDrift compares expected vs. actual share of invested blocks
	// per active campaign over the trailing window. WindowWeeks <= 0
	// selects the default.
	ComputeDrift(ctx context.Context, windowWeeks int, now time.Time) (*drift.Report, error)
}
