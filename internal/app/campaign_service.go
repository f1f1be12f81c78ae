package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/senryaku/internal/models"
	"github.com/example/senryaku/internal/ports/primary"
	"github.com/example/senryaku/internal/ports/secondary"
)

// CampaignServiceImpl implements the CampaignService interface.
type CampaignServiceImpl struct {
	campaignRepo secondary.CampaignRepository
	now          func() time.Time
}

// NewCampaignService creates a new CampaignService with injected
// dependencies.
func NewCampaignService(campaignRepo secondary.CampaignRepository) *CampaignServiceImpl {
	return &CampaignServiceImpl{campaignRepo: campaignRepo, now: time.Now}
}

// CreateCampaign creates a new active campaign ranked below all existing
// active campaigns.
func (s *CampaignServiceImpl) CreateCampaign(ctx context.Context, req primary.CreateCampaignRequest) (*primary.Campaign, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("campaign name is required")
	}
	if req.WeeklyBlockTarget < 0 {
		return nil, fmt.Errorf("weekly block target must be >= 0")
	}

	active, err := s.campaignRepo.List(ctx, secondary.CampaignFilters{Status: models.CampaignStatusActive})
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	id, err := s.campaignRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate campaign ID: %w", err)
	}

	record := &secondary.CampaignRecord{
		ID:                id,
		Name:              req.Name,
		Description:       req.Description,
		Status:            models.CampaignStatusActive,
		PriorityRank:      len(active) + 1,
		WeeklyBlockTarget: req.WeeklyBlockTarget,
		Colour:            req.Colour,
		Tags:              req.Tags,
		TargetDate:        req.TargetDate,
		CreatedAt:         s.now(),
	}
	if err := s.campaignRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	return recordToCampaign(record), nil
}

// GetCampaign retrieves a campaign by ID.
func (s *CampaignServiceImpl) GetCampaign(ctx context.Context, id string) (*primary.Campaign, error) {
	record, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return recordToCampaign(record), nil
}

// ListCampaigns lists campaigns ordered by priority rank.
func (s *CampaignServiceImpl) ListCampaigns(ctx context.Context, filters primary.CampaignFilters) ([]*primary.Campaign, error) {
	records, err := s.campaignRepo.List(ctx, secondary.CampaignFilters{Status: filters.Status})
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	campaigns := make([]*primary.Campaign, 0, len(records))
	for _, r := range records {
		campaigns = append(campaigns, recordToCampaign(r))
	}
	return campaigns, nil
}

// UpdateCampaign edits a campaign's descriptive fields. Zero-valued
// request fields keep their stored values.
func (s *CampaignServiceImpl) UpdateCampaign(ctx context.Context, req primary.UpdateCampaignRequest) (*primary.Campaign, error) {
	record, err := s.campaignRepo.GetByID(ctx, req.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("campaign %s not found: %w", req.CampaignID, err)
	}

	if req.Name != "" {
		record.Name = req.Name
	}
	if req.Description != "" {
		record.Description = req.Description
	}
	if req.WeeklyBlockTarget >= 0 {
		record.WeeklyBlockTarget = req.WeeklyBlockTarget
	}
	if req.Colour != "" {
		record.Colour = req.Colour
	}
	if req.Tags != "" {
		record.Tags = req.Tags
	}
	if req.TargetDate != nil {
		record.TargetDate = req.TargetDate
	}

	if err := s.campaignRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}
	return recordToCampaign(record), nil
}

// UpdateCampaignStatus changes a campaign's lifecycle status.
func (s *CampaignServiceImpl) UpdateCampaignStatus(ctx context.Context, id string, status models.CampaignStatus) error {
	if _, err := s.campaignRepo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("campaign %s not found: %w", id, err)
	}
	if err := s.campaignRepo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("failed to update campaign status: %w", err)
	}
	return nil
}

// RerankCampaigns rewrites priority ranks 1..n in the order given. Every
// active campaign must appear exactly once so the ranking stays a unique
// total order.
func (s *CampaignServiceImpl) RerankCampaigns(ctx context.Context, orderedIDs []string) error {
	active, err := s.campaignRepo.List(ctx, secondary.CampaignFilters{Status: models.CampaignStatusActive})
	if err != nil {
		return fmt.Errorf("failed to list campaigns: %w", err)
	}
	if len(orderedIDs) != len(active) {
		return fmt.Errorf("rerank requires all %d active campaigns, got %d", len(active), len(orderedIDs))
	}
	seen := make(map[string]bool, len(orderedIDs))
	byID := make(map[string]bool, len(active))
	for _, c := range active {
		byID[c.ID] = true
	}
	for _, id := range orderedIDs {
		if !byID[id] {
			return fmt.Errorf("campaign %s is not active", id)
		}
		if seen[id] {
			return fmt.Errorf("campaign %s listed twice", id)
		}
		seen[id] = true
	}

	if err := s.campaignRepo.Rerank(ctx, orderedIDs); err != nil {
		return fmt.Errorf("failed to rerank campaigns: %w", err)
	}
	return nil
}

func recordToCampaign(r *secondary.CampaignRecord) *primary.Campaign {
	return &primary.Campaign{
		ID:                r.ID,
		Name:              r.Name,
		Description:       r.Description,
		Status:            r.Status,
		PriorityRank:      r.PriorityRank,
		WeeklyBlockTarget: r.WeeklyBlockTarget,
		Colour:            r.Colour,
		Tags:              r.Tags,
		TargetDate:        r.TargetDate,
		CreatedAt:         r.CreatedAt,
	}
}

var _ primary.CampaignService = (*CampaignServiceImpl)(nil)
