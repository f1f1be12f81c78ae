package primary

import (
	"context"
	"time"

	"github.com/example/senryaku/internal/models"
)

// BriefingService defines the primary port for the attention allocator.
type BriefingService interface {
	// GenerateBriefing produces the day's ordered, capacity-bounded,
	// fairness-capped selection of queued sorties. An empty briefing is
	// a valid state, not an error.
	GenerateBriefing(ctx context.Context, req GenerateBriefingRequest) (*Briefing, error)

	// RouteSingle answers "what should I do now?" - the first selection
	// under the same eligibility and ordering, before any capping. Nil
	// item when no eligible sortie exists.
	RouteSingle(ctx context.Context, energy models.EnergyLevel, now time.Time) (*BriefingItem, error)
}

// GenerateBriefingRequest carries the day's capacity inputs. Energy and
// AvailableBlocks are always explicit - the service never reads a
// check-in behind the caller's back, and Now is injected for testability.
type GenerateBriefingRequest struct {
	Energy          models.EnergyLevel
	AvailableBlocks int
	Now             time.Time
}

// Briefing is the day's ordered selection.
type Briefing struct {
	Energy          models.EnergyLevel
	AvailableBlocks int
	BlocksPlanned   int
	Items           []BriefingItem
}

// BriefingItem is one selected sortie with its campaign and mission
// context, in presentation order.
type BriefingItem struct {
	SortieID        string
	Title           string
	Load            models.CognitiveLoad
	EstimatedBlocks int
	CampaignID      string
	CampaignName    string
	CampaignColour  string
	MissionID       string
	MissionName     string
	Urgency         float64
}
