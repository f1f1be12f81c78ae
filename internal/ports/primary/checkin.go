package primary

import (
	"context"
	"time"

	"github.com/example/senryaku/internal/models"
)

// CheckInService defines the primary port for daily check-ins.
type CheckInService interface {
	// SubmitCheckIn records the day's energy and capacity, replacing any
	// earlier check-in for the same date.
	SubmitCheckIn(ctx context.Context, req SubmitCheckInRequest) (*CheckIn, error)

	// GetCheckIn retrieves the check-in for a calendar date, nil if none.
	GetCheckIn(ctx context.Context, date time.Time) (*CheckIn, error)
}

// SubmitCheckInRequest contains the day's check-in values.
type SubmitCheckInRequest struct {
	Date            time.Time
	Energy          models.EnergyLevel
	AvailableBlocks int
	FocusNote       string
}

// CheckIn is a daily check-in as exposed to callers.
type CheckIn struct {
	ID              string
	Date            time.Time
	Energy          models.EnergyLevel
	AvailableBlocks int
	FocusNote       string
}
