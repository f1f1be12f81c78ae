// Package primary defines the primary ports (driving interfaces) for the
// application, plus the request/response types they exchange.
package primary

import (
	"context"
	"time"

	"github.com/example/senryaku/internal/models"
)

// CampaignService defines the primary port for campaign operations.
type CampaignService interface {
	// CreateCampaign creates a new campaign at the bottom of the ranking.
	CreateCampaign(ctx context.Context, req CreateCampaignRequest) (*Campaign, error)

	// GetCampaign retrieves a campaign by ID.
	GetCampaign(ctx context.Context, id string) (*Campaign, error)

	// ListCampaigns lists campaigns with optional status filter, ordered
	// by priority rank.
	ListCampaigns(ctx context.Context, filters CampaignFilters) ([]*Campaign, error)

	// UpdateCampaign edits a campaign's descriptive fields. Zero-valued
	// request fields are left unchanged.
	UpdateCampaign(ctx context.Context, req UpdateCampaignRequest) (*Campaign, error)

	// UpdateCampaignStatus changes a campaign's lifecycle status.
	UpdateCampaignStatus(ctx context.Context, id string, status models.CampaignStatus) error

	// RerankCampaigns rewrites priority ranks 1..n in the order given.
	RerankCampaigns(ctx context.Context, orderedIDs []string) error
}

// CreateCampaignRequest contains parameters for creating a campaign.
type CreateCampaignRequest struct {
	Name              string
	Description       string
	WeeklyBlockTarget int
	Colour            string
	Tags              string
	TargetDate        *time.Time
}

// UpdateCampaignRequest contains parameters for editing a campaign.
// WeeklyBlockTarget < 0 leaves the target unchanged; a nil TargetDate
// leaves the date unchanged.
type UpdateCampaignRequest struct {
	CampaignID        string
	Name              string
	Description       string
	WeeklyBlockTarget int
	Colour            string
	Tags              string
	TargetDate        *time.Time
}

// Campaign is a campaign as exposed to callers.
type Campaign struct {
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
}

// CampaignFilters contains filter options for listing campaigns.
type CampaignFilters struct {
	Status models.CampaignStatus
}
