package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/senryaku/internal/models"
	"github.com/example/senryaku/internal/ports/secondary"
)

// AARRepository implements secondary.AARRepository with SQLite.
type AARRepository struct {
	db *sql.DB
}

// NewAARRepository creates a new SQLite AAR repository.
func NewAARRepository(db *sql.DB) *AARRepository {
	return &AARRepository{db: db}
}

// Create persists a new after-action report. The sortie_id UNIQUE
// constraint rejects a second AAR for the same sortie.
func (r *AARRepository) Create(ctx context.Context, aar *secondary.AARRecord) error {
	if aar.ID == "" {
		return fmt.Errorf("AAR ID must be pre-populated by service layer")
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO aars (id, sortie_id, energy_before, energy_after, outcome, notes, actual_blocks, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		aar.ID, aar.SortieID, aar.EnergyBefore, aar.EnergyAfter, aar.Outcome,
		nullString(aar.Notes), aar.ActualBlocks, aar.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create AAR: %w", err)
	}

	return nil
}

// GetBySortie retrieves the AAR linked to a sortie, nil if none.
func (r *AARRepository) GetBySortie(ctx context.Context, sortieID string) (*secondary.AARRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, sortie_id, energy_before, energy_after, outcome, notes, actual_blocks, created_at FROM aars WHERE sortie_id = ?",
		sortieID,
	)
	record, err := scanAAR(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get AAR: %w", err)
	}
	return record, nil
}

// ListByCampaign retrieves all AARs for sorties under a campaign.
func (r *AARRepository) ListByCampaign(ctx context.Context, campaignID string) ([]*secondary.AARRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT a.id, a.sortie_id, a.energy_before, a.energy_after, a.outcome, a.notes, a.actual_blocks, a.created_at
		 FROM aars a
		 JOIN sorties s ON a.sortie_id = s.id
		 JOIN missions m ON s.mission_id = m.id
		 WHERE m.campaign_id = ?
		 ORDER BY a.created_at ASC`,
		campaignID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list AARs: %w", err)
	}
	defer rows.Close()

	var aars []*secondary.AARRecord
	for rows.Next() {
		record, err := scanAAR(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan AAR: %w", err)
		}
		aars = append(aars, record)
	}

	return aars, rows.Err()
}

// SumBlocksInWindow sums actual blocks recorded in [start, end) for a
// campaign. Missing rows sum to zero, never an error.
func (r *AARRepository) SumBlocksInWindow(ctx context.Context, campaignID string, start, end time.Time) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(a.actual_blocks), 0)
		 FROM aars a
		 JOIN sorties s ON a.sortie_id = s.id
		 JOIN missions m ON s.mission_id = m.id
		 WHERE m.campaign_id = ? AND a.created_at >= ? AND a.created_at < ?`,
		campaignID, start, end,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum blocks: %w", err)
	}

	return total, nil
}

// GetNextID returns the next available AAR ID.
func (r *AARRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM aars",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next AAR ID: %w", err)
	}

	return fmt.Sprintf("AAR-%03d", maxID+1), nil
}

func scanAAR(s scanner) (*secondary.AARRecord, error) {
	var (
		before, after, outcome string
		notes                  sql.NullString
		createdAt              time.Time
	)

	record := &secondary.AARRecord{}
	err := s.Scan(&record.ID, &record.SortieID, &before, &after, &outcome,
		&notes, &record.ActualBlocks, &createdAt)
	if err != nil {
		return nil, err
	}

	record.EnergyBefore, err = models.ParseEnergyLevel(before)
	if err != nil {
		return nil, fmt.Errorf("AAR %s: %w", record.ID, err)
	}
	record.EnergyAfter, err = models.ParseEnergyLevel(after)
	if err != nil {
		return nil, fmt.Errorf("AAR %s: %w", record.ID, err)
	}
	record.Outcome, err = models.ParseAAROutcome(outcome)
	if err != nil {
		return nil, fmt.Errorf("AAR %s: %w", record.ID, err)
	}
	record.Notes = notes.String
	record.CreatedAt = createdAt

	return record, nil
}

// Ensure AARRepository implements the interface
var _ secondary.AARRepository = (*AARRepository)(nil)
