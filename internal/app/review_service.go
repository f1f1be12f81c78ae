package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/senryaku/internal/core/health"
	"github.com/example/senryaku/internal/core/review"
	"github.com/example/senryaku/internal/models"
	"github.com/example/senryaku/internal/ports/primary"
	"github.com/example/senryaku/internal/ports/secondary"
)

// ReviewServiceImpl implements the ReviewService interface.
type ReviewServiceImpl struct {
	campaignRepo secondary.CampaignRepository
	missionRepo  secondary.MissionRepository
	sortieRepo   secondary.SortieRepository
	aarRepo      secondary.AARRepository
	checkinRepo  secondary.CheckInRepository
}

// NewReviewService creates a new ReviewService with injected dependencies.
func NewReviewService(
	campaignRepo secondary.CampaignRepository,
	missionRepo secondary.MissionRepository,
	sortieRepo secondary.SortieRepository,
	aarRepo secondary.AARRepository,
	checkinRepo secondary.CheckInRepository,
) *ReviewServiceImpl {
	return &ReviewServiceImpl{
		campaignRepo: campaignRepo,
		missionRepo:  missionRepo,
		sortieRepo:   sortieRepo,
		aarRepo:      aarRepo,
		checkinRepo:  checkinRepo,
	}
}

// GenerateWeeklyReview rolls up the trailing week ending at weekEnding.
func (s *ReviewServiceImpl) GenerateWeeklyReview(ctx context.Context, weekEnding time.Time) (*review.Review, error) {
	cutoff := weekEnding.AddDate(0, 0, -7)

	campaigns, err := s.campaignRepo.List(ctx, secondary.CampaignFilters{Status: models.CampaignStatusActive})
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	input := review.Input{WeekEnding: weekEnding}

	for _, campaign := range campaigns {
		blocks, err := s.aarRepo.SumBlocksInWindow(ctx, campaign.ID, cutoff, weekEnding)
		if err != nil {
			return nil, fmt.Errorf("failed to sum blocks for %s: %w", campaign.ID, err)
		}
		samples, err := campaignSamples(ctx, s.aarRepo, campaign.ID)
		if err != nil {
			return nil, err
		}

		input.Campaigns = append(input.Campaigns, review.CampaignWeek{
			CampaignID:    campaign.ID,
			Name:          campaign.Name,
			Colour:        campaign.Colour,
			PriorityRank:  campaign.PriorityRank,
			WeeklyTarget:  campaign.WeeklyBlockTarget,
			Blocks:        blocks,
			StalenessDays: health.Staleness(samples, campaign.CreatedAt, weekEnding),
		})

		// Upcoming campaign deadline within the next 7 days.
		if campaign.TargetDate != nil && inNextWeek(*campaign.TargetDate, weekEnding) {
			input.UpcomingTargets = append(input.UpcomingTargets, review.TargetItem{
				Kind: "campaign", Name: campaign.Name, TargetDate: *campaign.TargetDate,
			})
		}

		missions, err := s.missionRepo.List(ctx, secondary.MissionFilters{CampaignID: campaign.ID})
		if err != nil {
			return nil, fmt.Errorf("failed to list missions for %s: %w", campaign.ID, err)
		}
		for _, m := range missions {
			if m.TargetDate != nil && inNextWeek(*m.TargetDate, weekEnding) {
				input.UpcomingTargets = append(input.UpcomingTargets, review.TargetItem{
					Kind: "mission", Name: campaign.Name + " > " + m.Name, TargetDate: *m.TargetDate,
				})
			}
		}

		blocked, err := s.sortieRepo.ListBlockedByCampaign(ctx, campaign.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list blocked sorties for %s: %w", campaign.ID, err)
		}
		missionNames := make(map[string]string, len(missions))
		for _, m := range missions {
			missionNames[m.ID] = m.Name
		}
		for _, b := range blocked {
			input.Blocked = append(input.Blocked, review.BlockedItem{
				Title:        b.Title,
				MissionName:  missionNames[b.MissionID],
				CampaignName: campaign.Name,
			})
		}
	}

	moved, err := s.missionRepo.ListCompletedSince(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed missions: %w", err)
	}
	campaignNames := make(map[string]string, len(campaigns))
	for _, c := range campaigns {
		campaignNames[c.ID] = c.Name
	}
	for _, m := range moved {
		input.MissionsMoved = append(input.MissionsMoved, review.MissionMove{
			Name:         m.Name,
			CampaignName: campaignNames[m.CampaignID],
			OldStatus:    models.MissionStatusInProgress,
			NewStatus:    m.Status,
		})
	}

	checkins, err := s.checkinRepo.ListRange(ctx, cutoff, weekEnding)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	for _, ci := range checkins {
		input.CheckIns = append(input.CheckIns, review.CheckIn{Date: ci.Date, Energy: ci.Energy})
	}

	result := review.Build(input)
	return &result, nil
}

func inNextWeek(target, weekEnding time.Time) bool {
	start := weekEnding.AddDate(0, 0, 1)
	end := weekEnding.AddDate(0, 0, 8)
	return !target.Before(start) && !target.After(end)
}

var _ primary.ReviewService = (*ReviewServiceImpl)(nil)
