// Package app contains the application services that implement the
// primary ports. Services fetch records through the secondary ports and
// delegate the actual decisions to the pure core packages.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/senryaku/internal/core/health"
	"github.com/example/senryaku/internal/models"
	"github.com/example/senryaku/internal/ports/primary"
	"github.com/example/senryaku/internal/ports/secondary"
)

// HealthServiceImpl implements the HealthService interface.
type HealthServiceImpl struct {
	campaignRepo secondary.CampaignRepository
	missionRepo  secondary.MissionRepository
	sortieRepo   secondary.SortieRepository
	aarRepo      secondary.AARRepository
}

// NewHealthService creates a new HealthService with injected dependencies.
func NewHealthService(
	campaignRepo secondary.CampaignRepository,
	missionRepo secondary.MissionRepository,
	sortieRepo secondary.SortieRepository,
	aarRepo secondary.AARRepository,
) *HealthServiceImpl {
	return &HealthServiceImpl{
		campaignRepo: campaignRepo,
		missionRepo:  missionRepo,
		sortieRepo:   sortieRepo,
		aarRepo:      aarRepo,
	}
}

// ComputeCampaignHealth classifies a single campaign at the given time.
func (s *HealthServiceImpl) ComputeCampaignHealth(ctx context.Context, campaignID string, now time.Time) (*primary.CampaignHealth, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	return s.healthFor(ctx, campaign, now)
}

// GetDashboard returns health for all active campaigns ordered by
// priority rank, enriched with mission progress and the next queued
// sortie. The aggregate is just the per-campaign result mapped over the
// active set.
func (s *HealthServiceImpl) GetDashboard(ctx context.Context, now time.Time) ([]*primary.CampaignHealth, error) {
	campaigns, err := s.campaignRepo.List(ctx, secondary.CampaignFilters{Status: models.CampaignStatusActive})
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	results := make([]*primary.CampaignHealth, 0, len(campaigns))
	for _, campaign := range campaigns {
		ch, err := s.healthFor(ctx, campaign, now)
		if err != nil {
			return nil, err
		}

		missions, err := s.missionRepo.List(ctx, secondary.MissionFilters{CampaignID: campaign.ID})
		if err != nil {
			return nil, fmt.Errorf("failed to list missions for %s: %w", campaign.ID, err)
		}
		ch.MissionsTotal = len(missions)
		for _, m := range missions {
			if m.Status == models.MissionStatusCompleted {
				ch.MissionsCompleted++
			}
		}

		queued, err := s.sortieRepo.ListQueuedByCampaign(ctx, campaign.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list queued sorties for %s: %w", campaign.ID, err)
		}
		if len(queued) > 0 {
			ch.NextSortieTitle = queued[0].Title
		}

		results = append(results, ch)
	}

	return results, nil
}

func (s *HealthServiceImpl) healthFor(ctx context.Context, campaign *secondary.CampaignRecord, now time.Time) (*primary.CampaignHealth, error) {
	samples, err := campaignSamples(ctx, s.aarRepo, campaign.ID)
	if err != nil {
		return nil, err
	}

	m := health.Compute(campaign.WeeklyBlockTarget, samples, campaign.CreatedAt, now)
	return &primary.CampaignHealth{
		CampaignID:        campaign.ID,
		Name:              campaign.Name,
		Colour:            campaign.Colour,
		PriorityRank:      campaign.PriorityRank,
		Health:            m.Health,
		Velocity:          m.Velocity,
		WeeklyBlockTarget: campaign.WeeklyBlockTarget,
		StalenessDays:     m.StalenessDays,
		AdherenceRatio:    m.AdherenceRatio,
	}, nil
}

// campaignSamples loads a campaign's after-action reports as health
// samples. The AAR's recorded-at timestamp stands in for the sortie
// completion time; the complete operation writes both in one step.
func campaignSamples(ctx context.Context, aarRepo secondary.AARRepository, campaignID string) ([]health.Sample, error) {
	aars, err := aarRepo.ListByCampaign(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to list AARs for %s: %w", campaignID, err)
	}
	samples := make([]health.Sample, 0, len(aars))
	for _, a := range aars {
		samples = append(samples, health.Sample{ActualBlocks: a.ActualBlocks, RecordedAt: a.CreatedAt})
	}
	return samples, nil
}

var _ primary.HealthService = (*HealthServiceImpl)(nil)
