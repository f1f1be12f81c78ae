package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/senryaku/internal/models"
	"github.com/example/senryaku/internal/ports/secondary"
)

// SortieRepository implements secondary.SortieRepository with SQLite.
// The Start and Finish transitions are guarded UPDATEs: the WHERE clause
// checks the current status, so two racing writers cannot both succeed.
type SortieRepository struct {
	db *sql.DB
}

// NewSortieRepository creates a new SQLite sortie repository.
func NewSortieRepository(db *sql.DB) *SortieRepository {
	return &SortieRepository{db: db}
}

const sortieColumns = "id, mission_id, title, description, load, estimated_blocks, status, sort_order, created_at, started_at, completed_at"

// Create persists a new sortie.
// The record must have ID and Status pre-populated by the service layer.
func (r *SortieRepository) Create(ctx context.Context, sortie *secondary.SortieRecord) error {
	if sortie.ID == "" {
		return fmt.Errorf("sortie ID must be pre-populated by service layer")
	}
	if sortie.Status == "" {
		return fmt.Errorf("sortie Status must be pre-populated by service layer")
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sorties (id, mission_id, title, description, load, estimated_blocks, status, sort_order, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sortie.ID, sortie.MissionID, sortie.Title, nullString(sortie.Description),
		sortie.Load, sortie.EstimatedBlocks, sortie.Status, sortie.SortOrder, sortie.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create sortie: %w", err)
	}

	return nil
}

// GetByID retrieves a sortie by its ID.
func (r *SortieRepository) GetByID(ctx context.Context, id string) (*secondary.SortieRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+sortieColumns+" FROM sorties WHERE id = ?", id,
	)
	record, err := scanSortie(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("sortie %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sortie: %w", err)
	}
	return record, nil
}

// ListByMission retrieves a mission's sorties ordered by sort order.
func (r *SortieRepository) ListByMission(ctx context.Context, missionID string) ([]*secondary.SortieRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+sortieColumns+" FROM sorties WHERE mission_id = ? ORDER BY sort_order ASC, created_at ASC",
		missionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sorties: %w", err)
	}
	defer rows.Close()

	return collectSorties(rows)
}

// ListQueuedByCampaign retrieves queued sorties across a campaign's
// missions, ordered by sort order then creation time.
func (r *SortieRepository) ListQueuedByCampaign(ctx context.Context, campaignID string) ([]*secondary.SortieRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT s.id, s.mission_id, s.title, s.description, s.load, s.estimated_blocks, s.status, s.sort_order, s.created_at, s.started_at, s.completed_at
		 FROM sorties s JOIN missions m ON s.mission_id = m.id
		 WHERE m.campaign_id = ? AND s.status = 'queued'
		 ORDER BY s.sort_order ASC, s.created_at ASC`,
		campaignID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list queued sorties: %w", err)
	}
	defer rows.Close()

	return collectSorties(rows)
}

// ListBlockedByCampaign retrieves non-terminal sorties whose mission is
// blocked.
func (r *SortieRepository) ListBlockedByCampaign(ctx context.Context, campaignID string) ([]*secondary.SortieRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT s.id, s.mission_id, s.title, s.description, s.load, s.estimated_blocks, s.status, s.sort_order, s.created_at, s.started_at, s.completed_at
		 FROM sorties s JOIN missions m ON s.mission_id = m.id
		 WHERE m.campaign_id = ? AND m.status = 'blocked' AND s.status IN ('queued', 'active')
		 ORDER BY s.sort_order ASC, s.created_at ASC`,
		campaignID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list blocked sorties: %w", err)
	}
	defer rows.Close()

	return collectSorties(rows)
}

// Update updates an existing sortie's mutable fields.
func (r *SortieRepository) Update(ctx context.Context, sortie *secondary.SortieRecord) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE sorties SET title = ?, description = ?, load = ?, estimated_blocks = ?, sort_order = ?
		 WHERE id = ?`,
		sortie.Title, nullString(sortie.Description), sortie.Load,
		sortie.EstimatedBlocks, sortie.SortOrder, sortie.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update sortie: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("sortie %s not found", sortie.ID)
	}

	return nil
}

// Start transitions a queued sortie to active and stamps started_at.
func (r *SortieRepository) Start(ctx context.Context, id string, now time.Time) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE sorties SET status = 'active', started_at = ? WHERE id = ? AND status = 'queued'",
		now, id,
	)
	if err != nil {
		return fmt.Errorf("failed to start sortie: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("sortie %s is not queued", id)
	}

	return nil
}

// Finish transitions an active sortie to a terminal status and stamps
// completed_at.
func (r *SortieRepository) Finish(ctx context.Context, id string, status models.SortieStatus, now time.Time) error {
	if status != models.SortieStatusCompleted && status != models.SortieStatusAbandoned {
		return fmt.Errorf("finish requires a terminal status, got %s", status)
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE sorties SET status = ?, completed_at = ? WHERE id = ? AND status = 'active'",
		status, now, id,
	)
	if err != nil {
		return fmt.Errorf("failed to finish sortie: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("sortie %s is not active", id)
	}

	return nil
}

// Abandon marks a queued or active sortie abandoned.
func (r *SortieRepository) Abandon(ctx context.Context, id string, now time.Time) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE sorties SET status = 'abandoned', completed_at = ? WHERE id = ? AND status IN ('queued', 'active')",
		now, id,
	)
	if err != nil {
		return fmt.Errorf("failed to abandon sortie: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("sortie %s is not queued or active", id)
	}

	return nil
}

// Move reassigns a sortie to a different mission.
func (r *SortieRepository) Move(ctx context.Context, id, missionID string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE sorties SET mission_id = ? WHERE id = ?",
		missionID, id,
	)
	if err != nil {
		return fmt.Errorf("failed to move sortie: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("sortie %s not found", id)
	}

	return nil
}

// GetNextID returns the next available sortie ID.
func (r *SortieRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM sorties",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next sortie ID: %w", err)
	}

	return fmt.Sprintf("SRT-%03d", maxID+1), nil
}

func scanSortie(s scanner) (*secondary.SortieRecord, error) {
	var (
		desc         sql.NullString
		load, status string
		createdAt    time.Time
		startedAt    sql.NullTime
		completedAt  sql.NullTime
	)

	record := &secondary.SortieRecord{}
	err := s.Scan(&record.ID, &record.MissionID, &record.Title, &desc, &load,
		&record.EstimatedBlocks, &status, &record.SortOrder, &createdAt, &startedAt, &completedAt)
	if err != nil {
		return nil, err
	}

	record.Load, err = models.ParseCognitiveLoad(load)
	if err != nil {
		return nil, fmt.Errorf("sortie %s: %w", record.ID, err)
	}
	record.Status, err = models.ParseSortieStatus(status)
	if err != nil {
		return nil, fmt.Errorf("sortie %s: %w", record.ID, err)
	}
	record.Description = desc.String
	record.CreatedAt = createdAt
	if startedAt.Valid {
		record.StartedAt = &startedAt.Time
	}
	if completedAt.Valid {
		record.CompletedAt = &completedAt.Time
	}

	return record, nil
}

func collectSorties(rows *sql.Rows) ([]*secondary.SortieRecord, error) {
	var sorties []*secondary.SortieRecord
	for rows.Next() {
		record, err := scanSortie(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sortie: %w", err)
		}
		sorties = append(sorties, record)
	}
	return sorties, rows.Err()
}

// Ensure SortieRepository implements the interface
var _ secondary.SortieRepository = (*SortieRepository)(nil)
