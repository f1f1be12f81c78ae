package app

import (
	"context"
	"fmt"
	"time"

	core "github.com/example/senryaku/internal/core/sortie"
	"github.com/example/senryaku/internal/ports/primary"
	"github.com/example/senryaku/internal/ports/secondary"
)

// SortieServiceImpl implements the SortieService interface.
type SortieServiceImpl struct {
	sortieRepo  secondary.SortieRepository
	missionRepo secondary.MissionRepository
	aarRepo     secondary.AARRepository
	now         func() time.Time
}

// NewSortieService creates a new SortieService with injected dependencies.
func NewSortieService(
	sortieRepo secondary.SortieRepository,
	missionRepo secondary.MissionRepository,
	aarRepo secondary.AARRepository,
) *SortieServiceImpl {
	return &SortieServiceImpl{
		sortieRepo:  sortieRepo,
		missionRepo: missionRepo,
		aarRepo:     aarRepo,
		now:         time.Now,
	}
}

// CreateSortie queues a new sortie under a mission.
func (s *SortieServiceImpl) CreateSortie(ctx context.Context, req primary.CreateSortieRequest) (*primary.Sortie, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("sortie title is required")
	}
	if req.EstimatedBlocks < 1 {
		return nil, fmt.Errorf("estimated blocks must be >= 1")
	}
	if _, err := s.missionRepo.GetByID(ctx, req.MissionID); err != nil {
		return nil, fmt.Errorf("mission %s not found: %w", req.MissionID, err)
	}

	sortOrder := req.SortOrder
	if sortOrder == 0 {
		siblings, err := s.sortieRepo.ListByMission(ctx, req.MissionID)
		if err != nil {
			return nil, fmt.Errorf("failed to list sorties: %w", err)
		}
		sortOrder = len(siblings) + 1
	}

	id, err := s.sortieRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate sortie ID: %w", err)
	}

	record := &secondary.SortieRecord{
		ID:              id,
		MissionID:       req.MissionID,
		Title:           req.Title,
		Description:     req.Description,
		Load:            req.Load,
		EstimatedBlocks: req.EstimatedBlocks,
		Status:          core.InitialStatus(),
		SortOrder:       sortOrder,
		CreatedAt:       s.now(),
	}
	if err := s.sortieRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create sortie: %w", err)
	}

	return recordToSortie(record), nil
}

// GetSortie retrieves a sortie by ID.
func (s *SortieServiceImpl) GetSortie(ctx context.Context, id string) (*primary.Sortie, error) {
	record, err := s.sortieRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return recordToSortie(record), nil
}

// ListSorties lists a mission's sorties in queue order.
func (s *SortieServiceImpl) ListSorties(ctx context.Context, missionID string) ([]*primary.Sortie, error) {
	records, err := s.sortieRepo.ListByMission(ctx, missionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sorties: %w", err)
	}
	sorties := make([]*primary.Sortie, 0, len(records))
	for _, r := range records {
		sorties = append(sorties, recordToSortie(r))
	}
	return sorties, nil
}

// UpdateSortie edits a queued or active sortie. Zero-valued request
// fields keep their stored values; terminal sorties are immutable.
func (s *SortieServiceImpl) UpdateSortie(ctx context.Context, req primary.UpdateSortieRequest) (*primary.Sortie, error) {
	record, err := s.sortieRepo.GetByID(ctx, req.SortieID)
	if err != nil {
		return nil, err
	}
	if err := core.CanEdit(record.ID, record.Status).Error(); err != nil {
		return nil, err
	}

	if req.Title != "" {
		record.Title = req.Title
	}
	if req.Description != "" {
		record.Description = req.Description
	}
	if req.Load != "" {
		record.Load = req.Load
	}
	if req.EstimatedBlocks >= 1 {
		record.EstimatedBlocks = req.EstimatedBlocks
	}

	if err := s.sortieRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update sortie: %w", err)
	}
	return recordToSortie(record), nil
}

// StartSortie transitions a queued sortie to active.
func (s *SortieServiceImpl) StartSortie(ctx context.Context, id string, now time.Time) (*primary.Sortie, error) {
	record, err := s.sortieRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := core.CanStart(record.ID, record.Status).Error(); err != nil {
		return nil, err
	}
	if err := s.sortieRepo.Start(ctx, id, now); err != nil {
		return nil, fmt.Errorf("failed to start sortie: %w", err)
	}
	return s.GetSortie(ctx, id)
}

// CompleteSortie closes out an active sortie: writes its AAR and moves
// it to the terminal status the outcome dictates.
func (s *SortieServiceImpl) CompleteSortie(ctx context.Context, req primary.CompleteSortieRequest) (*primary.Sortie, error) {
	if req.ActualBlocks < 0 {
		return nil, fmt.Errorf("actual blocks must be >= 0")
	}

	record, err := s.sortieRepo.GetByID(ctx, req.SortieID)
	if err != nil {
		return nil, err
	}
	if err := core.CanComplete(record.ID, record.Status).Error(); err != nil {
		return nil, err
	}

	result := core.ApplyCompletion(req.Outcome, req.Now)

	// The guarded status transition goes first: if it fails (e.g. a
	// concurrent complete won), no AAR is written.
	if err := s.sortieRepo.Finish(ctx, req.SortieID, result.NewStatus, result.CompletedAt); err != nil {
		return nil, fmt.Errorf("failed to finish sortie: %w", err)
	}

	aarID, err := s.aarRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate AAR ID: %w", err)
	}
	aar := &secondary.AARRecord{
		ID:           aarID,
		SortieID:     req.SortieID,
		EnergyBefore: req.EnergyBefore,
		EnergyAfter:  req.EnergyAfter,
		Outcome:      req.Outcome,
		Notes:        req.Notes,
		ActualBlocks: req.ActualBlocks,
		CreatedAt:    req.Now,
	}
	if err := s.aarRepo.Create(ctx, aar); err != nil {
		return nil, fmt.Errorf("failed to create AAR: %w", err)
	}

	return s.GetSortie(ctx, req.SortieID)
}

// AbandonSortie marks a queued or active sortie abandoned.
func (s *SortieServiceImpl) AbandonSortie(ctx context.Context, id string, now time.Time) error {
	record, err := s.sortieRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := core.CanAbandon(record.ID, record.Status).Error(); err != nil {
		return err
	}
	if err := s.sortieRepo.Abandon(ctx, id, now); err != nil {
		return fmt.Errorf("failed to abandon sortie: %w", err)
	}
	return nil
}

// MoveSortie reassigns a sortie to a different mission.
func (s *SortieServiceImpl) MoveSortie(ctx context.Context, id, missionID string) error {
	if _, err := s.sortieRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if _, err := s.missionRepo.GetByID(ctx, missionID); err != nil {
		return fmt.Errorf("target mission %s not found: %w", missionID, err)
	}
	if err := s.sortieRepo.Move(ctx, id, missionID); err != nil {
		return fmt.Errorf("failed to move sortie: %w", err)
	}
	return nil
}

func recordToSortie(r *secondary.SortieRecord) *primary.Sortie {
	return &primary.Sortie{
		ID:              r.ID,
		MissionID:       r.MissionID,
		Title:           r.Title,
		Description:     r.Description,
		Load:            r.Load,
		EstimatedBlocks: r.EstimatedBlocks,
		Status:          r.Status,
		SortOrder:       r.SortOrder,
		CreatedAt:       r.CreatedAt,
		StartedAt:       r.StartedAt,
		CompletedAt:     r.CompletedAt,
	}
}

var _ primary.SortieService = (*SortieServiceImpl)(nil)
