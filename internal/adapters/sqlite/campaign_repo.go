// Package sqlite contains SQLite implementations of repository interfaces.
//
// Enum columns are parsed through models.Parse* on the way out: an
// unknown stored tag surfaces as a data-integrity error rather than
// leaking inward as a raw string.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/senryaku/internal/models"
	"github.com/example/senryaku/internal/ports/secondary"
)

// CampaignRepository implements secondary.CampaignRepository with SQLite.
type CampaignRepository struct {
	db *sql.DB
}

// NewCampaignRepository creates a new SQLite campaign repository.
func NewCampaignRepository(db *sql.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// Create persists a new campaign.
// The record must have ID, Status and PriorityRank pre-populated by the
// service layer.
func (r *CampaignRepository) Create(ctx context.Context, campaign *secondary.CampaignRecord) error {
	if campaign.ID == "" {
		return fmt.Errorf("campaign ID must be pre-populated by service layer")
	}
	if campaign.Status == "" {
		return fmt.Errorf("campaign Status must be pre-populated by service layer")
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO campaigns (id, name, description, status, priority_rank, weekly_block_target, colour, tags, target_date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		campaign.ID, campaign.Name, nullString(campaign.Description), campaign.Status,
		campaign.PriorityRank, campaign.WeeklyBlockTarget, nullString(campaign.Colour),
		nullString(campaign.Tags), nullTime(campaign.TargetDate), campaign.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}

	return nil
}

// GetByID retrieves a campaign by its ID.
func (r *CampaignRepository) GetByID(ctx context.Context, id string) (*secondary.CampaignRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, name, description, status, priority_rank, weekly_block_target, colour, tags, target_date, created_at, updated_at FROM campaigns WHERE id = ?",
		id,
	)
	record, err := scanCampaign(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("campaign %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	return record, nil
}

// List retrieves campaigns matching the given filters, ordered by
// priority rank ascending.
func (r *CampaignRepository) List(ctx context.Context, filters secondary.CampaignFilters) ([]*secondary.CampaignRecord, error) {
	query := "SELECT id, name, description, status, priority_rank, weekly_block_target, colour, tags, target_date, created_at, updated_at FROM campaigns"
	args := []any{}

	if filters.Status != "" {
		query += " WHERE status = ?"
		args = append(args, filters.Status)
	}

	query += " ORDER BY priority_rank ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []*secondary.CampaignRecord
	for rows.Next() {
		record, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, record)
	}

	return campaigns, rows.Err()
}

// Update updates an existing campaign's mutable fields.
func (r *CampaignRepository) Update(ctx context.Context, campaign *secondary.CampaignRecord) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE campaigns SET name = ?, description = ?, weekly_block_target = ?, colour = ?, tags = ?, target_date = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		campaign.Name, nullString(campaign.Description), campaign.WeeklyBlockTarget,
		nullString(campaign.Colour), nullString(campaign.Tags), nullTime(campaign.TargetDate),
		campaign.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update campaign: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("campaign %s not found", campaign.ID)
	}

	return nil
}

// UpdateStatus updates only the lifecycle status.
func (r *CampaignRepository) UpdateStatus(ctx context.Context, id string, status models.CampaignStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE campaigns SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update campaign status: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("campaign %s not found", id)
	}

	return nil
}

// Rerank rewrites priority ranks 1..n in the order given, inside one
// transaction so a failure leaves the old ranking intact.
func (r *CampaignRepository) Rerank(ctx context.Context, orderedIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin rerank: %w", err)
	}
	defer tx.Rollback()

	for i, id := range orderedIDs {
		result, err := tx.ExecContext(ctx,
			"UPDATE campaigns SET priority_rank = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
			i+1, id,
		)
		if err != nil {
			return fmt.Errorf("failed to rerank campaign %s: %w", id, err)
		}
		rowsAffected, _ := result.RowsAffected()
		if rowsAffected == 0 {
			return fmt.Errorf("campaign %s not found", id)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit rerank: %w", err)
	}
	return nil
}

// GetNextID returns the next available campaign ID.
func (r *CampaignRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 6) AS INTEGER)), 0) FROM campaigns",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next campaign ID: %w", err)
	}

	return fmt.Sprintf("CAMP-%03d", maxID+1), nil
}

// scanner abstracts *sql.Row and *sql.Rows for the shared scan helpers.
type scanner interface {
	Scan(dest ...any) error
}

func scanCampaign(s scanner) (*secondary.CampaignRecord, error) {
	var (
		desc, colour, tags sql.NullString
		status             string
		targetDate         sql.NullTime
		createdAt          time.Time
		updatedAt          time.Time
	)

	record := &secondary.CampaignRecord{}
	err := s.Scan(&record.ID, &record.Name, &desc, &status, &record.PriorityRank,
		&record.WeeklyBlockTarget, &colour, &tags, &targetDate, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	record.Status, err = models.ParseCampaignStatus(status)
	if err != nil {
		return nil, fmt.Errorf("campaign %s: %w", record.ID, err)
	}
	record.Description = desc.String
	record.Colour = colour.String
	record.Tags = tags.String
	if targetDate.Valid {
		record.TargetDate = &targetDate.Time
	}
	record.CreatedAt = createdAt
	record.UpdatedAt = updatedAt

	return record, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// Ensure CampaignRepository implements the interface
var _ secondary.CampaignRepository = (*CampaignRepository)(nil)
