package primary

import (
	"context"
	"time"

	"github.com/example/senryaku/internal/core/review"
)

// ReviewService defines the primary port for the weekly review.
type ReviewService interface {
	// GenerateWeeklyReview rolls up the trailing week ending at the given
	// date.
	GenerateWeeklyReview(ctx context.Context, weekEnding time.Time) (*review.Review, error)
}
