package repository

import (
	"context"

	"github.com/osse101/crimson/internal/domain"
)

// Leaderboard defines the interface for reading helper ticket closures
type Leaderboard interface {
	// HelperActivity counts tickets closed by each helper in the window.
	// Helpers without closures are omitted.
	HelperActivity(ctx context.Context, window domain.TimeWindow) (domain.HelperActivity, error)
}
