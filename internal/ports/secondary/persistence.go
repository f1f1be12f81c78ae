// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application
// drives the record store and other external systems.
//
// Records carry typed enums and real timestamps: adapters must parse
// stored tags through models.Parse* and surface unknown values as
// data-integrity errors instead of leaking raw strings inward.
package secondary

import (
	"context"
	"time"

	"github.com/example/senryaku/internal/models"
)

// CampaignRecord represents a campaign as stored in persistence.
type CampaignRecord struct {
	ID                string
	Name              string
	Description       string
	Status            models.CampaignStatus
	PriorityRank      int
	WeeklyBlockTarget int
	Colour            string
	Tags              string
	TargetDate        *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CampaignFilters contains filter options for querying campaigns.
type CampaignFilters struct {
	Status models.CampaignStatus
}

// CampaignRepository defines the secondary port for campaign persistence.
type CampaignRepository interface {
	// Create persists a new campaign.
	Create(ctx context.Context, campaign *CampaignRecord) error

	// GetByID retrieves a campaign by its ID.
	GetByID(ctx context.Context, id string) (*CampaignRecord, error)

	// List retrieves campaigns matching the given filters, ordered by
	// priority rank ascending.
	List(ctx context.Context, filters CampaignFilters) ([]*CampaignRecord, error)

	// Update updates an existing campaign.
	Update(ctx context.Context, campaign *CampaignRecord) error

	// UpdateStatus updates only the lifecycle status.
	UpdateStatus(ctx context.Context, id string, status models.CampaignStatus) error

	// Rerank rewrites priority ranks 1..n in the order given.
	Rerank(ctx context.Context, orderedIDs []string) error

	// GetNextID returns the next available campaign ID.
	GetNextID(ctx context.Context) (string, error)
}

// MissionRecord represents a mission as stored in persistence.
type MissionRecord struct {
	ID          string
	CampaignID  string
	Name        string
	Description string
	Status      models.MissionStatus
	SortOrder   int
	TargetDate  *time.Time
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// MissionFilters contains filter options for querying missions.
type MissionFilters struct {
	CampaignID string
	Status     models.MissionStatus
}

// MissionRepository defines the secondary port for mission persistence.
type MissionRepository interface {
	// Create persists a new mission.
	Create(ctx context.Context, mission *MissionRecord) error

	// GetByID retrieves a mission by its ID.
	GetByID(ctx context.Context, id string) (*MissionRecord, error)

	// List retrieves missions matching the filters, ordered by sort order.
	List(ctx context.Context, filters MissionFilters) ([]*MissionRecord, error)

	// Update updates an existing mission's fields.
	Update(ctx context.Context, mission *MissionRecord) error

	// UpdateStatus updates a mission's status, stamping CompletedAt when
	// the status is completed.
	UpdateStatus(ctx context.Context, id string, status models.MissionStatus, now time.Time) error

	// ListCompletedSince retrieves missions completed at or after the cutoff.
	ListCompletedSince(ctx context.Context, cutoff time.Time) ([]*MissionRecord, error)

	// GetNextID returns the next available mission ID.
	GetNextID(ctx context.Context) (string, error)
}

// SortieRecord represents a sortie as stored in persistence.
type SortieRecord struct {
	ID              string
	MissionID       string
	Title           string
	Description     string
	Load            models.CognitiveLoad
	EstimatedBlocks int
	Status          models.SortieStatus
	SortOrder       int
	CreatedAt       time.Time
	StartedAt       *time.Time
	CompletedAt     *time.Time
}

// SortieRepository defines the secondary port for sortie persistence.
type SortieRepository interface {
	// Create persists a new sortie.
	Create(ctx context.Context, sortie *SortieRecord) error

	// GetByID retrieves a sortie by its ID.
	GetByID(ctx context.Context, id string) (*SortieRecord, error)

	// ListByMission retrieves a mission's sorties ordered by sort order.
	ListByMission(ctx context.Context, missionID string) ([]*SortieRecord, error)

	// ListQueuedByCampaign retrieves queued sorties across a campaign's
	// missions, ordered by sort order then creation time.
	ListQueuedByCampaign(ctx context.Context, campaignID string) ([]*SortieRecord, error)

	// ListBlockedByCampaign retrieves sorties whose mission is blocked.
	ListBlockedByCampaign(ctx context.Context, campaignID string) ([]*SortieRecord, error)

	// Update updates an existing sortie's fields.
	Update(ctx context.Context, sortie *SortieRecord) error

	// Start transitions a queued sortie to active and stamps StartedAt.
	// The update is guarded on the current status so two concurrent
	// starts cannot both succeed.
	Start(ctx context.Context, id string, now time.Time) error

	// Finish transitions an active sortie to the given terminal status
	// and stamps CompletedAt. Guarded on status=active so a double
	// complete cannot double-write an AAR.
	Finish(ctx context.Context, id string, status models.SortieStatus, now time.Time) error

	// Abandon marks a queued or active sortie abandoned.
	Abandon(ctx context.Context, id string, now time.Time) error

	// Move reassigns a sortie to a different mission.
	Move(ctx context.Context, id, missionID string) error

	// GetNextID returns the next available sortie ID.
	GetNextID(ctx context.Context) (string, error)
}

// AARRecord represents an after-action report as stored in persistence.
type AARRecord struct {
	ID           string
	SortieID     string
	EnergyBefore models.EnergyLevel
	EnergyAfter  models.EnergyLevel
	Outcome      models.AAROutcome
	Notes        string
	ActualBlocks int
	CreatedAt    time.Time
}

// AARRepository defines the secondary port for after-action reports,
// the authoritative source of blocks actually invested.
type AARRepository interface {
	// Create persists a new AAR.
	Create(ctx context.Context, aar *AARRecord) error

	// GetBySortie retrieves the AAR linked to a sortie, nil if none.
	GetBySortie(ctx context.Context, sortieID string) (*AARRecord, error)

	// ListByCampaign retrieves all AARs for sorties under a campaign.
	ListByCampaign(ctx context.Context, campaignID string) ([]*AARRecord, error)

	// SumBlocksInWindow sums actual blocks recorded in [start, end) for
	// a campaign.
	SumBlocksInWindow(ctx context.Context, campaignID string, start, end time.Time) (int, error)

	// GetNextID returns the next available AAR ID.
	GetNextID(ctx context.Context) (string, error)
}

// CheckInRecord represents a daily check-in as stored in persistence.
// Date is a calendar date (time at midnight UTC); there is at most one
// record per date.
type CheckInRecord struct {
	ID              string
	Date            time.Time
	Energy          models.EnergyLevel
	AvailableBlocks int
	FocusNote       string
	CreatedAt       time.Time
}

// CheckInRepository defines the secondary port for daily check-ins.
type CheckInRepository interface {
	// Upsert creates the day's check-in or replaces the existing one for
	// the same date. The operation is atomic at the store level.
	Upsert(ctx context.Context, checkin *CheckInRecord) error

	// GetByDate retrieves the check-in for a calendar date, nil if none.
	GetByDate(ctx context.Context, date time.Time) (*CheckInRecord, error)

	// ListRange retrieves check-ins with date in [from, to], ordered by date.
	ListRange(ctx context.Context, from, to time.Time) ([]*CheckInRecord, error)
}
