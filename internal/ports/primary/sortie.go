package primary

import (
	"context"
	"time"

	"github.com/example/senryaku/internal/models"
)

// SortieService defines the primary port for sortie lifecycle operations.
type SortieService interface {
	// CreateSortie queues a new sortie under a mission.
	CreateSortie(ctx context.Context, req CreateSortieRequest) (*Sortie, error)

	// GetSortie retrieves a sortie by ID.
	GetSortie(ctx context.Context, id string) (*Sortie, error)

	// ListSorties lists a mission's sorties in queue order.
	ListSorties(ctx context.Context, missionID string) ([]*Sortie, error)

	// StartSortie transitions a queued sortie to active. Now is explicit
	// for testability.
	StartSortie(ctx context.Context, id string, now time.Time) (*Sortie, error)

	// UpdateSortie edits a queued or active sortie's fields. Zero-valued
	// request fields are left unchanged; terminal sorties cannot change.
	UpdateSortie(ctx context.Context, req UpdateSortieRequest) (*Sortie, error)

	// CompleteSortie closes out an active sortie, writing its AAR. The
	// outcome decides the terminal status.
	CompleteSortie(ctx context.Context, req CompleteSortieRequest) (*Sortie, error)

	// AbandonSortie marks a queued or active sortie abandoned.
	AbandonSortie(ctx context.Context, id string, now time.Time) error

	// MoveSortie reassigns a sortie to a different mission.
	MoveSortie(ctx context.Context, id, missionID string) error
}

// CreateSortieRequest contains parameters for queueing a sortie.
type CreateSortieRequest struct {
	MissionID       string
	Title           string
	Description     string
	Load            models.CognitiveLoad
	EstimatedBlocks int
	SortOrder       int
}

// UpdateSortieRequest contains parameters for editing a sortie.
// EstimatedBlocks < 1 and an empty Load leave those fields unchanged.
type UpdateSortieRequest struct {
	SortieID        string
	Title           string
	Description     string
	Load            models.CognitiveLoad
	EstimatedBlocks int
}

// CompleteSortieRequest contains the after-action report for a sortie.
type CompleteSortieRequest struct {
	SortieID     string
	Outcome      models.AAROutcome
	EnergyBefore models.EnergyLevel
	EnergyAfter  models.EnergyLevel
	ActualBlocks int
	Notes        string
	Now          time.Time
}

// Sortie is a sortie as exposed to callers.
type Sortie struct {
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
