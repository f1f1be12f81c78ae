package primary

import (
	"context"
	"time"

	"github.com/example/senryaku/internal/models"
)

// MissionService defines the primary port for mission operations.
type MissionService interface {
	// CreateMission creates a new mission under a campaign.
	CreateMission(ctx context.Context, req CreateMissionRequest) (*Mission, error)

	// GetMission retrieves a mission by ID.
	GetMission(ctx context.Context, id string) (*Mission, error)

	// ListMissions lists missions with optional campaign/status filters.
	ListMissions(ctx context.Context, filters MissionFilters) ([]*Mission, error)

	// UpdateMission edits a mission's descriptive fields. Zero-valued
	// request fields are left unchanged.
	UpdateMission(ctx context.Context, req UpdateMissionRequest) (*Mission, error)

	// UpdateMissionStatus changes a mission's status, stamping the
	// completion time when it completes.
	UpdateMissionStatus(ctx context.Context, id string, status models.MissionStatus) error
}

// UpdateMissionRequest contains parameters for editing a mission.
type UpdateMissionRequest struct {
	MissionID   string
	Name        string
	Description string
	TargetDate  *time.Time
}

// CreateMissionRequest contains parameters for creating a mission.
type CreateMissionRequest struct {
	CampaignID  string
	Name        string
	Description string
	TargetDate  *time.Time
}

// Mission is a mission as exposed to callers.
type Mission struct {
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

// MissionFilters contains filter options for listing missions.
type MissionFilters struct {
	CampaignID string
	Status     models.MissionStatus
}
