package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/senryaku/internal/models"
	"github.com/example/senryaku/internal/ports/secondary"
)

// MissionRepository implements secondary.MissionRepository with SQLite.
type MissionRepository struct {
	db *sql.DB
}

// NewMissionRepository creates a new SQLite mission repository.
func NewMissionRepository(db *sql.DB) *MissionRepository {
	return &MissionRepository{db: db}
}

// Create persists a new mission.
// The record must have ID and Status pre-populated by the service layer.
func (r *MissionRepository) Create(ctx context.Context, mission *secondary.MissionRecord) error {
	if mission.ID == "" {
		return fmt.Errorf("mission ID must be pre-populated by service layer")
	}
	if mission.Status == "" {
		return fmt.Errorf("mission Status must be pre-populated by service layer")
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO missions (id, campaign_id, name, description, status, sort_order, target_date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		mission.ID, mission.CampaignID, mission.Name, nullString(mission.Description),
		mission.Status, mission.SortOrder, nullTime(mission.TargetDate), mission.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create mission: %w", err)
	}

	return nil
}

// GetByID retrieves a mission by its ID.
func (r *MissionRepository) GetByID(ctx context.Context, id string) (*secondary.MissionRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, campaign_id, name, description, status, sort_order, target_date, created_at, completed_at FROM missions WHERE id = ?",
		id,
	)
	record, err := scanMission(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("mission %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get mission: %w", err)
	}
	return record, nil
}

// List retrieves missions matching the filters, ordered by sort order.
func (r *MissionRepository) List(ctx context.Context, filters secondary.MissionFilters) ([]*secondary.MissionRecord, error) {
	query := "SELECT id, campaign_id, name, description, status, sort_order, target_date, created_at, completed_at FROM missions"
	args := []any{}
	where := ""

	if filters.CampaignID != "" {
		where = " WHERE campaign_id = ?"
		args = append(args, filters.CampaignID)
	}
	if filters.Status != "" {
		if where == "" {
			where = " WHERE status = ?"
		} else {
			where += " AND status = ?"
		}
		args = append(args, filters.Status)
	}

	query += where + " ORDER BY sort_order ASC, created_at ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	defer rows.Close()

	var missions []*secondary.MissionRecord
	for rows.Next() {
		record, err := scanMission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mission: %w", err)
		}
		missions = append(missions, record)
	}

	return missions, rows.Err()
}

// Update updates an existing mission's mutable fields.
func (r *MissionRepository) Update(ctx context.Context, mission *secondary.MissionRecord) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE missions SET name = ?, description = ?, sort_order = ?, target_date = ?
		 WHERE id = ?`,
		mission.Name, nullString(mission.Description), mission.SortOrder,
		nullTime(mission.TargetDate), mission.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update mission: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("mission %s not found", mission.ID)
	}

	return nil
}

// UpdateStatus updates a mission's status. Transitioning to completed
// stamps completed_at; any other transition clears it.
func (r *MissionRepository) UpdateStatus(ctx context.Context, id string, status models.MissionStatus, now time.Time) error {
	var completedAt sql.NullTime
	if status == models.MissionStatusCompleted {
		completedAt = sql.NullTime{Time: now, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE missions SET status = ?, completed_at = ? WHERE id = ?",
		status, completedAt, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update mission status: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("mission %s not found", id)
	}

	return nil
}

// ListCompletedSince retrieves missions completed at or after the cutoff.
func (r *MissionRepository) ListCompletedSince(ctx context.Context, cutoff time.Time) ([]*secondary.MissionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, campaign_id, name, description, status, sort_order, target_date, created_at, completed_at
		 FROM missions WHERE completed_at IS NOT NULL AND completed_at >= ? ORDER BY completed_at ASC`,
		cutoff,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed missions: %w", err)
	}
	defer rows.Close()

	var missions []*secondary.MissionRecord
	for rows.Next() {
		record, err := scanMission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mission: %w", err)
		}
		missions = append(missions, record)
	}

	return missions, rows.Err()
}

// GetNextID returns the next available mission ID.
func (r *MissionRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM missions",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next mission ID: %w", err)
	}

	return fmt.Sprintf("MSN-%03d", maxID+1), nil
}

func scanMission(s scanner) (*secondary.MissionRecord, error) {
	var (
		desc        sql.NullString
		status      string
		targetDate  sql.NullTime
		createdAt   time.Time
		completedAt sql.NullTime
	)

	record := &secondary.MissionRecord{}
	err := s.Scan(&record.ID, &record.CampaignID, &record.Name, &desc, &status,
		&record.SortOrder, &targetDate, &createdAt, &completedAt)
	if err != nil {
		return nil, err
	}

	record.Status, err = models.ParseMissionStatus(status)
	if err != nil {
		return nil, fmt.Errorf("mission %s: %w", record.ID, err)
	}
	record.Description = desc.String
	if targetDate.Valid {
		record.TargetDate = &targetDate.Time
	}
	record.CreatedAt = createdAt
	if completedAt.Valid {
		record.CompletedAt = &completedAt.Time
	}

	return record, nil
}

// Ensure MissionRepository implements the interface
var _ secondary.MissionRepository = (*MissionRepository)(nil)
