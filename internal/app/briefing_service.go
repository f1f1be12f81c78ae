package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/senryaku/internal/core/briefing"
	"github.com/example/senryaku/internal/core/health"
	"github.com/example/senryaku/internal/core/urgency"
	"github.com/example/senryaku/internal/models"
	"github.com/example/senryaku/internal/ports/primary"
	"github.com/example/senryaku/internal/ports/secondary"
)

// BriefingServiceImpl implements the BriefingService interface.
type BriefingServiceImpl struct {
	campaignRepo secondary.CampaignRepository
	missionRepo  secondary.MissionRepository
	sortieRepo   secondary.SortieRepository
	aarRepo      secondary.AARRepository
}

// NewBriefingService creates a new BriefingService with injected
// dependencies.
func NewBriefingService(
	campaignRepo secondary.CampaignRepository,
	missionRepo secondary.MissionRepository,
	sortieRepo secondary.SortieRepository,
	aarRepo secondary.AARRepository,
) *BriefingServiceImpl {
	return &BriefingServiceImpl{
		campaignRepo: campaignRepo,
		missionRepo:  missionRepo,
		sortieRepo:   sortieRepo,
		aarRepo:      aarRepo,
	}
}

// GenerateBriefing produces the day's ordered selection of queued sorties.
func (s *BriefingServiceImpl) GenerateBriefing(ctx context.Context, req primary.GenerateBriefingRequest) (*primary.Briefing, error) {
	queues, err := s.buildQueues(ctx, req.Now)
	if err != nil {
		return nil, err
	}

	selections := briefing.Allocate(queues, req.Energy, req.AvailableBlocks)

	result := &primary.Briefing{
		Energy:          req.Energy,
		AvailableBlocks: req.AvailableBlocks,
	}
	for _, sel := range selections {
		result.Items = append(result.Items, selectionToItem(sel))
		result.BlocksPlanned += sel.Sortie.EstimatedBlocks
	}
	return result, nil
}

// RouteSingle returns the first selection under the same eligibility and
// ordering rules, before any capping. Nil item means nothing eligible.
func (s *BriefingServiceImpl) RouteSingle(ctx context.Context, energy models.EnergyLevel, now time.Time) (*primary.BriefingItem, error) {
	queues, err := s.buildQueues(ctx, now)
	if err != nil {
		return nil, err
	}

	sel, ok := briefing.First(queues, energy)
	if !ok {
		return nil, nil
	}
	item := selectionToItem(sel)
	return &item, nil
}

// buildQueues snapshots the allocation inputs: one queue per active
// campaign with its queued sorties and its urgency at now.
func (s *BriefingServiceImpl) buildQueues(ctx context.Context, now time.Time) ([]briefing.CampaignQueue, error) {
	campaigns, err := s.campaignRepo.List(ctx, secondary.CampaignFilters{Status: models.CampaignStatusActive})
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	queues := make([]briefing.CampaignQueue, 0, len(campaigns))
	for _, campaign := range campaigns {
		samples, err := campaignSamples(ctx, s.aarRepo, campaign.ID)
		if err != nil {
			return nil, err
		}
		velocity := health.Velocity(samples, now)
		staleness := health.Staleness(samples, campaign.CreatedAt, now)
		score := urgency.Score(campaign.WeeklyBlockTarget, velocity, staleness, campaign.PriorityRank)

		queued, err := s.sortieRepo.ListQueuedByCampaign(ctx, campaign.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list queued sorties for %s: %w", campaign.ID, err)
		}

		missionNames, err := s.missionNames(ctx, campaign.ID)
		if err != nil {
			return nil, err
		}

		queue := briefing.CampaignQueue{
			CampaignID:   campaign.ID,
			Name:         campaign.Name,
			Colour:       campaign.Colour,
			PriorityRank: campaign.PriorityRank,
			Urgency:      score,
		}
		for _, srt := range queued {
			queue.Sorties = append(queue.Sorties, briefing.Candidate{
				SortieID:        srt.ID,
				Title:           srt.Title,
				Load:            srt.Load,
				EstimatedBlocks: srt.EstimatedBlocks,
				SortOrder:       srt.SortOrder,
				CreatedAt:       srt.CreatedAt,
				MissionID:       srt.MissionID,
				MissionName:     missionNames[srt.MissionID],
			})
		}
		queues = append(queues, queue)
	}

	return queues, nil
}

func (s *BriefingServiceImpl) missionNames(ctx context.Context, campaignID string) (map[string]string, error) {
	missions, err := s.missionRepo.List(ctx, secondary.MissionFilters{CampaignID: campaignID})
	if err != nil {
		return nil, fmt.Errorf("failed to list missions for %s: %w", campaignID, err)
	}
	names := make(map[string]string, len(missions))
	for _, m := range missions {
		names[m.ID] = m.Name
	}
	return names, nil
}

func selectionToItem(sel briefing.Selection) primary.BriefingItem {
	return primary.BriefingItem{
		SortieID:        sel.Sortie.SortieID,
		Title:           sel.Sortie.Title,
		Load:            sel.Sortie.Load,
		EstimatedBlocks: sel.Sortie.EstimatedBlocks,
		CampaignID:      sel.CampaignID,
		CampaignName:    sel.CampaignName,
		CampaignColour:  sel.Colour,
		MissionID:       sel.Sortie.MissionID,
		MissionName:     sel.Sortie.MissionName,
		Urgency:         sel.Urgency,
	}
}

var _ primary.BriefingService = (*BriefingServiceImpl)(nil)
