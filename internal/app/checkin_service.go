package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/senryaku/internal/ports/primary"
	"github.com/example/senryaku/internal/ports/secondary"
)

// CheckInServiceImpl implements the CheckInService interface.
type CheckInServiceImpl struct {
	checkinRepo secondary.CheckInRepository
	now         func() time.Time
}

// NewCheckInService creates a new CheckInService with injected
// dependencies.
func NewCheckInService(checkinRepo secondary.CheckInRepository) *CheckInServiceImpl {
	return &CheckInServiceImpl{checkinRepo: checkinRepo, now: time.Now}
}

// SubmitCheckIn records the day's energy and capacity. A second check-in
// on the same date replaces the first (upsert by calendar date).
func (s *CheckInServiceImpl) SubmitCheckIn(ctx context.Context, req primary.SubmitCheckInRequest) (*primary.CheckIn, error) {
	if req.AvailableBlocks < 0 {
		return nil, fmt.Errorf("available blocks must be >= 0")
	}

	record := &secondary.CheckInRecord{
		Date:            truncateToDate(req.Date),
		Energy:          req.Energy,
		AvailableBlocks: req.AvailableBlocks,
		FocusNote:       req.FocusNote,
		CreatedAt:       s.now(),
	}
	if err := s.checkinRepo.Upsert(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save check-in: %w", err)
	}

	saved, err := s.checkinRepo.GetByDate(ctx, record.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch check-in: %w", err)
	}
	return recordToCheckIn(saved), nil
}

// GetCheckIn retrieves the check-in for a calendar date, nil if none.
func (s *CheckInServiceImpl) GetCheckIn(ctx context.Context, date time.Time) (*primary.CheckIn, error) {
	record, err := s.checkinRepo.GetByDate(ctx, truncateToDate(date))
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return recordToCheckIn(record), nil
}

func recordToCheckIn(r *secondary.CheckInRecord) *primary.CheckIn {
	return &primary.CheckIn{
		ID:              r.ID,
		Date:            r.Date,
		Energy:          r.Energy,
		AvailableBlocks: r.AvailableBlocks,
		FocusNote:       r.FocusNote,
	}
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

var _ primary.CheckInService = (*CheckInServiceImpl)(nil)
