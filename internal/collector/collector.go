package collector

import (
	"context"

	"github.com/astralhq/github-wrapped/internal/domain"
)

// Collector defines the interface for fetching wrapped profile data
type Collector interface {
	// FetchProfile queries the upstream GraphQL API for a user's profile,
	// contribution, and repository data.
	FetchProfile(ctx context.Context, login string) (*domain.ProfileSnapshot, error)

	// FetchActivityStats derives the peak-activity slot from punch-card
	// data for a bounded sample of the given repositories. Fetch failures
	// are absorbed per repository; the result always resolves, falling
	// back to a fixed default slot when no data is available.
	FetchActivityStats(ctx context.Context, login string, repos []domain.Repository) domain.ActivityStats
}
