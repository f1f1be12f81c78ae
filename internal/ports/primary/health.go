package primary

import (
	"context"
	"time"

	"github.com/example/senryaku/internal/models"
)

// HealthService defines the primary port for campaign health.
type HealthService interface {
	// ComputeCampaignHealth classifies a single campaign at the given time.
	ComputeCampaignHealth(ctx context.Context, campaignID string, now time.Time) (*CampaignHealth, error)

	// GetDashboard returns health for all active campaigns ordered by
	// priority rank, with mission progress and the next queued sortie.
	GetDashboard(ctx context.Context, now time.Time) ([]*CampaignHealth, error)
}

// CampaignHealth is the health result for one campaign.
type CampaignHealth struct {
	CampaignID        string
	Name              string
	Colour            string
	PriorityRank      int
	Health            models.HealthStatus
	Velocity          int
	WeeklyBlockTarget int
	StalenessDays     int
	AdherenceRatio    float64
	MissionsCompleted int
	MissionsTotal     int
	NextSortieTitle   string
}
