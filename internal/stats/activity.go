package stats

import "github.com/astralhq/github-wrapped/internal/domain"

// Fallback slot used when no punch-card data is available at all.
const (
	fallbackPeakDay    = 3
	fallbackPeakHour   = 14
	fallbackMaxCommits = 1
)

// PunchRow is one punch-card entry: commit count for a weekday/hour slot.
type PunchRow struct {
	Day     int // 0 (Sunday) through 6
	Hour    int // 0 through 23
	Commits int
}

// PunchGrid accumulates commit counts by day-of-week and hour-of-day.
type PunchGrid [7][24]int

// Add sums rows into the grid. Rows from multiple repositories accumulate
// rather than overwrite. Out-of-range slots are ignored.
func (g *PunchGrid) Add(rows []PunchRow) {
	for _, r := range rows {
		if r.Day < 0 || r.Day > 6 || r.Hour < 0 || r.Hour > 23 {
			continue
		}
		g[r.Day][r.Hour] += r.Commits
	}
}

// Peak computes the peak-activity slot from the grid. Ties resolve to the
// first maximum in day-major, hour-minor scan order. An all-zero grid
// resolves to the fixed fallback slot.
func (g *PunchGrid) Peak() domain.ActivityStats {
	best := domain.ActivityStats{}
	for day := 0; day < 7; day++ {
		for hour := 0; hour < 24; hour++ {
			if g[day][hour] > best.MaxCommits {
				best = domain.ActivityStats{
					PeakDay:    day,
					PeakHour:   hour,
					MaxCommits: g[day][hour],
				}
			}
		}
	}
	if best.MaxCommits == 0 {
		return domain.ActivityStats{
			PeakDay:    fallbackPeakDay,
			PeakHour:   fallbackPeakHour,
			MaxCommits: fallbackMaxCommits,
		}
	}
	return best
}
