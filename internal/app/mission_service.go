package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/senryaku/internal/models"
	"github.com/example/senryaku/internal/ports/primary"
	"github.com/example/senryaku/internal/ports/secondary"
)

// MissionServiceImpl implements the MissionService interface.
type MissionServiceImpl struct {
	missionRepo  secondary.MissionRepository
	campaignRepo secondary.CampaignRepository
	now          func() time.Time
}

// NewMissionService creates a new MissionService with injected
// dependencies.
func NewMissionService(missionRepo secondary.MissionRepository, campaignRepo secondary.CampaignRepository) *MissionServiceImpl {
	return &MissionServiceImpl{missionRepo: missionRepo, campaignRepo: campaignRepo, now: time.Now}
}

// CreateMission creates a new mission under a campaign.
func (s *MissionServiceImpl) CreateMission(ctx context.Context, req primary.CreateMissionRequest) (*primary.Mission, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("mission name is required")
	}
	if _, err := s.campaignRepo.GetByID(ctx, req.CampaignID); err != nil {
		return nil, fmt.Errorf("campaign %s not found: %w", req.CampaignID, err)
	}

	siblings, err := s.missionRepo.List(ctx, secondary.MissionFilters{CampaignID: req.CampaignID})
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}

	id, err := s.missionRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate mission ID: %w", err)
	}

	record := &secondary.MissionRecord{
		ID:          id,
		CampaignID:  req.CampaignID,
		Name:        req.Name,
		Description: req.Description,
		Status:      models.MissionStatusNotStarted,
		SortOrder:   len(siblings) + 1,
		TargetDate:  req.TargetDate,
		CreatedAt:   s.now(),
	}
	if err := s.missionRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create mission: %w", err)
	}

	return recordToMission(record), nil
}

// GetMission retrieves a mission by ID.
func (s *MissionServiceImpl) GetMission(ctx context.Context, id string) (*primary.Mission, error) {
	record, err := s.missionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return recordToMission(record), nil
}

// ListMissions lists missions with optional campaign/status filters.
func (s *MissionServiceImpl) ListMissions(ctx context.Context, filters primary.MissionFilters) ([]*primary.Mission, error) {
	records, err := s.missionRepo.List(ctx, secondary.MissionFilters{
		CampaignID: filters.CampaignID,
		Status:     filters.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	missions := make([]*primary.Mission, 0, len(records))
	for _, r := range records {
		missions = append(missions, recordToMission(r))
	}
	return missions, nil
}

// UpdateMission edits a mission's descriptive fields. Zero-valued
// request fields keep their stored values.
func (s *MissionServiceImpl) UpdateMission(ctx context.Context, req primary.UpdateMissionRequest) (*primary.Mission, error) {
	record, err := s.missionRepo.GetByID(ctx, req.MissionID)
	if err != nil {
		return nil, fmt.Errorf("mission %s not found: %w", req.MissionID, err)
	}

	if req.Name != "" {
		record.Name = req.Name
	}
	if req.Description != "" {
		record.Description = req.Description
	}
	if req.TargetDate != nil {
		record.TargetDate = req.TargetDate
	}

	if err := s.missionRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update mission: %w", err)
	}
	return recordToMission(record), nil
}

// UpdateMissionStatus changes a mission's status. Completion stamps
// CompletedAt at the repository level.
func (s *MissionServiceImpl) UpdateMissionStatus(ctx context.Context, id string, status models.MissionStatus) error {
	if _, err := s.missionRepo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("mission %s not found: %w", id, err)
	}
	if err := s.missionRepo.UpdateStatus(ctx, id, status, s.now()); err != nil {
		return fmt.Errorf("failed to update mission status: %w", err)
	}
	return nil
}

func recordToMission(r *secondary.MissionRecord) *primary.Mission {
	return &primary.Mission{
		ID:          r.ID,
		CampaignID:  r.CampaignID,
		Name:        r.Name,
		Description: r.Description,
		Status:      r.Status,
		SortOrder:   r.SortOrder,
		TargetDate:  r.TargetDate,
		CreatedAt:   r.CreatedAt,
		CompletedAt: r.CompletedAt,
	}
}

var _ primary.MissionService = (*MissionServiceImpl)(nil)
