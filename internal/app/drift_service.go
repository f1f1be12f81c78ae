package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/senryaku/internal/core/drift"
	"github.com/example/senryaku/internal/models"
	"github.com/example/senryaku/internal/ports/primary"
	"github.com/example/senryaku/internal/ports/secondary"
)

// DriftServiceImpl implements the DriftService interface.
type DriftServiceImpl struct {
	campaignRepo secondary.CampaignRepository
	aarRepo      secondary.AARRepository
}

// NewDriftService creates a new DriftService with injected dependencies.
func NewDriftService(campaignRepo secondary.CampaignRepository, aarRepo secondary.AARRepository) *DriftServiceImpl {
	return &DriftServiceImpl{campaignRepo: campaignRepo, aarRepo: aarRepo}
}

// ComputeDrift aggregates per-sub-window invested blocks for each active
// campaign and hands the pure detector the result.
func (s *DriftServiceImpl) ComputeDrift(ctx context.Context, windowWeeks int, now time.Time) (*drift.Report, error) {
	if windowWeeks <= 0 {
		windowWeeks = drift.DefaultWindowWeeks
	}

	campaigns, err := s.campaignRepo.List(ctx, secondary.CampaignFilters{Status: models.CampaignStatusActive})
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	entries := make([]drift.Entry, 0, len(campaigns))
	for _, campaign := range campaigns {
		entry := drift.Entry{
			CampaignID:   campaign.ID,
			Name:         campaign.Name,
			PriorityRank: campaign.PriorityRank,
			WeeklyTarget: campaign.WeeklyBlockTarget,
		}
		// Sub-window 0 is the most recent 7 days, 1 the week before, and
		// so on: [now-7d(i+1), now-7d*i).
		for i := 0; i < windowWeeks; i++ {
			end := now.AddDate(0, 0, -drift.SubWindowDays*i)
			start := end.AddDate(0, 0, -drift.SubWindowDays)
			blocks, err := s.aarRepo.SumBlocksInWindow(ctx, campaign.ID, start, end)
			if err != nil {
				return nil, fmt.Errorf("failed to sum blocks for %s: %w", campaign.ID, err)
			}
			entry.SubWindowBlocks = append(entry.SubWindowBlocks, blocks)
		}
		entries = append(entries, entry)
	}

	report := drift.Compute(entries, windowWeeks)
	return &report, nil
}

var _ primary.DriftService = (*DriftServiceImpl)(nil)
