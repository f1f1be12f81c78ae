// Package sqlite_test contains integration tests for SQLite repositories.
//
// All test setup loads the schema through db.GetSchemaSQL() so tests run
// against the authoritative schema. Do not hardcode CREATE TABLE
// statements in test files.
package sqlite_test

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/senryaku/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err = testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedCampaign inserts a test campaign and returns its ID.
func seedCampaign(t *testing.T, db *sql.DB, id string, rank, target int) string {
	t.Helper()
	if id == "" {
		id = "CAMP-001"
	}
	_, err := db.Exec(
		"INSERT INTO campaigns (id, name, status, priority_rank, weekly_block_target, created_at) VALUES (?, ?, 'active', ?, ?, ?)",
		id, "Test Campaign "+id, rank, target, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("failed to seed campaign: %v", err)
	}
	return id
}

// seedMission inserts a test mission and returns its ID.
func seedMission(t *testing.T, db *sql.DB, id, campaignID string) string {
	t.Helper()
	if id == "" {
		id = "MSN-001"
	}
	if campaignID == "" {
		campaignID = "CAMP-001"
	}
	_, err := db.Exec(
		"INSERT INTO missions (id, campaign_id, name, status, sort_order, created_at) VALUES (?, ?, ?, 'in_progress', 1, ?)",
		id, campaignID, "Test Mission "+id, time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("failed to seed mission: %v", err)
	}
	return id
}

// seedSortie inserts a queued test sortie and returns its ID.
func seedSortie(t *testing.T, db *sql.DB, id, missionID string) string {
	t.Helper()
	if id == "" {
		id = "SRT-001"
	}
	if missionID == "" {
		missionID = "MSN-001"
	}
	_, err := db.Exec(
		"INSERT INTO sorties (id, mission_id, title, load, estimated_blocks, status, sort_order, created_at) VALUES (?, ?, ?, 'medium', 1, 'queued', 1, ?)",
		id, missionID, "Test Sortie "+id, time.Date(2025, 5, 3, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("failed to seed sortie: %v", err)
	}
	return id
}
