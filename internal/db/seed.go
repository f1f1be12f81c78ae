package db

import (
	"database/sql"
	"fmt"
	"time"
)

// SeedFixtures populates the database with development fixtures: three
// ranked campaigns with missions, queued sorties, a week of AARs and a
// check-in, enough to exercise the briefing, dashboard and drift views.
func SeedFixtures(database *sql.DB) error {
	now := time.Now().UTC()

	campaigns := []struct {
		id, name, colour string
		rank, target     int
		createdDaysAgo   int
	}{
		{"CAMP-001", "Deep Work Novel", "blue", 1, 10, 60},
		{"CAMP-002", "Open Source Maintenance", "green", 2, 5, 45},
		{"CAMP-003", "Household Ops", "grey", 3, 3, 30},
	}
	for _, c := range campaigns {
		if _, err := database.Exec(
			"INSERT INTO campaigns (id, name, status, priority_rank, weekly_block_target, colour, created_at) VALUES (?, ?, 'active', ?, ?, ?, ?)",
			c.id, c.name, c.rank, c.target, c.colour, now.AddDate(0, 0, -c.createdDaysAgo),
		); err != nil {
			return fmt.Errorf("seed campaigns: %w", err)
		}
	}

	missions := []struct {
		id, campaignID, name, status string
		sortOrder                    int
	}{
		{"MSN-001", "CAMP-001", "Draft part one", "in_progress", 1},
		{"MSN-002", "CAMP-001", "Outline part two", "not_started", 2},
		{"MSN-003", "CAMP-002", "Triage issue backlog", "in_progress", 1},
		{"MSN-004", "CAMP-002", "Cut next release", "blocked", 2},
		{"MSN-005", "CAMP-003", "Plan kitchen repairs", "in_progress", 1},
	}
	for _, m := range missions {
		if _, err := database.Exec(
			"INSERT INTO missions (id, campaign_id, name, status, sort_order, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			m.id, m.campaignID, m.name, m.status, m.sortOrder, now.AddDate(0, 0, -20),
		); err != nil {
			return fmt.Errorf("seed missions: %w", err)
		}
	}

	sorties := []struct {
		id, missionID, title, load, status string
		blocks, sortOrder                  int
	}{
		{"SRT-001", "MSN-001", "Write chapter three scene", "deep", "queued", 2, 1},
		{"SRT-002", "MSN-001", "Revise chapter two notes", "medium", "queued", 1, 2},
		{"SRT-003", "MSN-002", "Sketch act structure", "medium", "queued", 1, 1},
		{"SRT-004", "MSN-003", "Label stale issues", "light", "queued", 1, 1},
		{"SRT-005", "MSN-003", "Review pending patches", "deep", "queued", 2, 2},
		{"SRT-006", "MSN-004", "Wait on upstream fix", "light", "queued", 1, 1},
		{"SRT-007", "MSN-005", "Get contractor quotes", "light", "queued", 1, 1},
		{"SRT-008", "MSN-001", "Warm-up freewrite", "deep", "completed", 1, 0},
		{"SRT-009", "MSN-003", "Merge dependency bumps", "light", "completed", 1, 0},
	}
	for _, s := range sorties {
		if _, err := database.Exec(
			"INSERT INTO sorties (id, mission_id, title, load, estimated_blocks, status, sort_order, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			s.id, s.missionID, s.title, s.load, s.blocks, s.status, s.sortOrder, now.AddDate(0, 0, -15),
		); err != nil {
			return fmt.Errorf("seed sorties: %w", err)
		}
	}

	aars := []struct {
		id, sortieID, outcome string
		blocks, daysAgo       int
	}{
		{"AAR-001", "SRT-008", "completed", 2, 2},
		{"AAR-002", "SRT-009", "completed", 1, 5},
	}
	for _, a := range aars {
		if _, err := database.Exec(
			"INSERT INTO aars (id, sortie_id, energy_before, energy_after, outcome, actual_blocks, created_at) VALUES (?, ?, 'green', 'yellow', ?, ?, ?)",
			a.id, a.sortieID, a.outcome, a.blocks, now.AddDate(0, 0, -a.daysAgo),
		); err != nil {
			return fmt.Errorf("seed aars: %w", err)
		}
	}

	if _, err := database.Exec(
		"INSERT INTO checkins (id, date, energy, available_blocks, focus_note, created_at) VALUES ('CHK-001', ?, 'green', 4, 'seeded check-in', ?)",
		now.Format("2006-01-02"), now,
	); err != nil {
		return fmt.Errorf("seed checkins: %w", err)
	}

	return nil
}
