package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/senryaku/internal/models"
	"github.com/example/senryaku/internal/ports/secondary"
)

// dateLayout is how check-in calendar dates are stored. A TEXT date
// keeps the UNIQUE(date) constraint byte-exact regardless of timezone.
const dateLayout = "2006-01-02"

// CheckInRepository implements secondary.CheckInRepository with SQLite.
type CheckInRepository struct {
	db *sql.DB
}

// NewCheckInRepository creates a new SQLite check-in repository.
func NewCheckInRepository(db *sql.DB) *CheckInRepository {
	return &CheckInRepository{db: db}
}

// Upsert creates the day's check-in or replaces the existing one for
// the same date, atomically via the UNIQUE(date) constraint.
func (r *CheckInRepository) Upsert(ctx context.Context, checkin *secondary.CheckInRecord) error {
	if checkin.ID == "" {
		id, err := r.getNextID(ctx)
		if err != nil {
			return err
		}
		checkin.ID = id
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO checkins (id, date, energy, available_blocks, focus_note, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(date) DO UPDATE SET
		   energy = excluded.energy,
		   available_blocks = excluded.available_blocks,
		   focus_note = excluded.focus_note,
		   created_at = excluded.created_at`,
		checkin.ID, checkin.Date.Format(dateLayout), checkin.Energy,
		checkin.AvailableBlocks, nullString(checkin.FocusNote), checkin.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert check-in: %w", err)
	}

	return nil
}

// GetByDate retrieves the check-in for a calendar date, nil if none.
func (r *CheckInRepository) GetByDate(ctx context.Context, date time.Time) (*secondary.CheckInRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, date, energy, available_blocks, focus_note, created_at FROM checkins WHERE date = ?",
		date.Format(dateLayout),
	)
	record, err := scanCheckIn(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get check-in: %w", err)
	}
	return record, nil
}

// ListRange retrieves check-ins with date in [from, to], ordered by date.
func (r *CheckInRepository) ListRange(ctx context.Context, from, to time.Time) ([]*secondary.CheckInRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, date, energy, available_blocks, focus_note, created_at FROM checkins WHERE date >= ? AND date <= ? ORDER BY date ASC",
		from.Format(dateLayout), to.Format(dateLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	defer rows.Close()

	var checkins []*secondary.CheckInRecord
	for rows.Next() {
		record, err := scanCheckIn(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan check-in: %w", err)
		}
		checkins = append(checkins, record)
	}

	return checkins, rows.Err()
}

func (r *CheckInRepository) getNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM checkins",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next check-in ID: %w", err)
	}

	return fmt.Sprintf("CHK-%03d", maxID+1), nil
}

func scanCheckIn(s scanner) (*secondary.CheckInRecord, error) {
	var (
		date, energy string
		focusNote    sql.NullString
		createdAt    time.Time
	)

	record := &secondary.CheckInRecord{}
	err := s.Scan(&record.ID, &date, &energy, &record.AvailableBlocks, &focusNote, &createdAt)
	if err != nil {
		return nil, err
	}

	record.Date, err = time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("check-in %s: bad date %q: %w", record.ID, date, err)
	}
	record.Energy, err = models.ParseEnergyLevel(energy)
	if err != nil {
		return nil, fmt.Errorf("check-in %s: %w", record.ID, err)
	}
	record.FocusNote = focusNote.String
	record.CreatedAt = createdAt

	return record, nil
}

// Ensure CheckInRepository implements the interface
var _ secondary.CheckInRepository = (*CheckInRepository)(nil)
