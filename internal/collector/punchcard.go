package collector

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/astralhq/github-wrapped/internal/domain"
	"github.com/astralhq/github-wrapped/internal/stats"
)

// FetchActivityStats sums punch-card data for up to punchSampleSize of the
// given repositories into a 7x24 commit grid and returns its peak slot.
// Repositories are sampled in the order given (the profile query returns
// them most-starred first). A repository whose punch card cannot be fetched
// contributes nothing and never fails the overall request.
func (c *githubCollector) FetchActivityStats(ctx context.Context, login string, repos []domain.Repository) domain.ActivityStats {
	sample := repos
	if len(sample) > c.punchSampleSize {
		sample = sample[:c.punchSampleSize]
	}

	var grid stats.PunchGrid
	for _, repo := range sample {
		rows, err := c.fetchPunchCard(ctx, login, repo.Name)
		if err != nil {
			log.Debug("skipping punch card", "repo", repo.Name, "err", err)
			continue
		}
		grid.Add(rows)
	}
	return grid.Peak()
}

// fetchPunchCard retrieves one repository's punch card with bounded retries.
// GitHub answers 202 while the stats are being computed, so a short fixed
// delay between attempts is usually enough for the data to materialize.
func (c *githubCollector) fetchPunchCard(ctx context.Context, owner, repo string) ([]stats.PunchRow, error) {
	var lastErr error
	for attempt := 0; attempt < c.retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.retryDelay):
			}
		}

		cards, _, err := c.ghClient.Repositories.ListPunchCard(ctx, owner, repo)
		if err != nil {
			lastErr = err
			continue
		}

		rows := make([]stats.PunchRow, 0, len(cards))
		for _, card := range cards {
			if card == nil || card.Day == nil || card.Hour == nil || card.Commits == nil {
				continue
			}
			rows = append(rows, stats.PunchRow{
				Day:     *card.Day,
				Hour:    *card.Hour,
				Commits: *card.Commits,
			})
		}
		return rows, nil
	}
	return nil, lastErr
}
