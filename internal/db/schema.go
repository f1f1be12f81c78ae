package db

// SchemaSQL is the complete schema for fresh senryaku installs.
//
// This is the single source of truth for the database schema. All
// repository tests load it via GetSchemaSQL() so test schemas cannot
// drift from what InitSchema creates: a repository referencing a column
// missing here fails immediately with "no such column".
const SchemaSQL = `
-- Campaigns (long-running areas of intent, uniquely ranked)
CREATE TABLE IF NOT EXISTS campaigns (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT,
	status TEXT NOT NULL CHECK(status IN ('active', 'paused', 'completed', 'archived')) DEFAULT 'active',
	priority_rank INTEGER NOT NULL,
	weekly_block_target INTEGER NOT NULL DEFAULT 0,
	colour TEXT,
	tags TEXT,
	target_date DATETIME,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Missions (concrete milestones within a campaign)
CREATE TABLE IF NOT EXISTS missions (
	id TEXT PRIMARY KEY,
	campaign_id TEXT NOT NULL,
	name TEXT NOT NULL,
	description TEXT,
	status TEXT NOT NULL CHECK(status IN ('not_started', 'in_progress', 'blocked', 'completed')) DEFAULT 'not_started',
	sort_order INTEGER NOT NULL DEFAULT 0,
	target_date DATETIME,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	completed_at DATETIME,
	FOREIGN KEY (campaign_id) REFERENCES campaigns(id)
);

-- Sorties (atomic units of schedulable work)
CREATE TABLE IF NOT EXISTS sorties (
	id TEXT PRIMARY KEY,
	mission_id TEXT NOT NULL,
	title TEXT NOT NULL,
	description TEXT,
	load TEXT NOT NULL CHECK(load IN ('deep', 'medium', 'light')),
	estimated_blocks INTEGER NOT NULL,
	status TEXT NOT NULL CHECK(status IN ('queued', 'active', 'completed', 'abandoned')) DEFAULT 'queued',
	sort_order INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	started_at DATETIME,
	completed_at DATETIME,
	FOREIGN KEY (mission_id) REFERENCES missions(id)
);

-- After-action reports (authoritative record of blocks invested)
CREATE TABLE IF NOT EXISTS aars (
	id TEXT PRIMARY KEY,
	sortie_id TEXT NOT NULL UNIQUE,
	energy_before TEXT NOT NULL CHECK(energy_before IN ('green', 'yellow', 'red')),
	energy_after TEXT NOT NULL CHECK(energy_after IN ('green', 'yellow', 'red')),
	outcome TEXT NOT NULL CHECK(outcome IN ('completed', 'partial', 'blocked', 'pivoted')),
	notes TEXT,
	actual_blocks INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (sortie_id) REFERENCES sorties(id)
);

-- Daily check-ins (one per calendar date, date stored as YYYY-MM-DD)
CREATE TABLE IF NOT EXISTS checkins (
	id TEXT PRIMARY KEY,
	date TEXT NOT NULL UNIQUE,
	energy TEXT NOT NULL CHECK(energy IN ('green', 'yellow', 'red')),
	available_blocks INTEGER NOT NULL DEFAULT 0,
	focus_note TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_missions_campaign ON missions(campaign_id);
CREATE INDEX IF NOT EXISTS idx_sorties_mission ON sorties(mission_id);
CREATE INDEX IF NOT EXISTS idx_sorties_status ON sorties(status);
CREATE INDEX IF NOT EXISTS idx_aars_sortie ON aars(sortie_id);
CREATE INDEX IF NOT EXISTS idx_aars_created ON aars(created_at);
`

// GetSchemaSQL returns the authoritative schema DDL.
func GetSchemaSQL() string {
	return SchemaSQL
}

// InitSchema applies the schema to the shared connection.
func InitSchema() error {
	database, err := GetDB()
	if err != nil {
		return err
	}
	_, err = database.Exec(SchemaSQL)
	return err
}
