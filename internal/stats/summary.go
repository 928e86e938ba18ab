package stats

import (
	"fmt"

	"github.com/astralhq/github-wrapped/internal/domain"
)

// Summary holds the derived statistics computed from a profile snapshot.
type Summary struct {
	TotalStarsReceived int                `json:"totalStarsReceived"`
	TopLanguage        string             `json:"topLanguage"`
	MostLovedRepo      *domain.Repository `json:"mostLovedRepo,omitempty"`
	PeakTimeLabel      string             `json:"peakTimeLabel"`
	PeakHourText       string             `json:"peakHourText"`
}

// BuildSummary computes all derived statistics for a snapshot.
func BuildSummary(p *domain.ProfileSnapshot) Summary {
	s := Summary{
		TotalStarsReceived: TotalStars(p.Repositories.Nodes),
		TopLanguage:        TopLanguage(p.Repositories.Nodes),
		MostLovedRepo:      MostLovedRepo(p),
	}
	if p.ActivityStats != nil {
		s.PeakTimeLabel = PeakTimeLabel(p.ActivityStats.PeakHour)
		s.PeakHourText = HourText(p.ActivityStats.PeakHour)
	}
	return s
}

// TotalStars sums stargazer counts across owned repositories.
func TotalStars(repos []domain.Repository) int {
	total := 0
	for _, r := range repos {
		total += r.StargazerCount
	}
	return total
}

// TopLanguage returns the language attached to the most repositories. Ties
// resolve to the language encountered first in iteration order.
func TopLanguage(repos []domain.Repository) string {
	counts := make(map[string]int)
	var order []string
	for _, r := range repos {
		for _, lang := range r.Languages.Nodes {
			if lang.Name == "" {
				continue
			}
			if _, seen := counts[lang.Name]; !seen {
				order = append(order, lang.Name)
			}
			counts[lang.Name]++
		}
	}

	top := ""
	best := 0
	for _, name := range order {
		if counts[name] > best {
			top = name
			best = counts[name]
		}
	}
	return top
}

// MostLovedRepo picks the owned repository with the highest commit
// contribution count. When the contributions list is empty or names no owned
// repository, it falls back to the repository with the most stars. Returns
// nil when the user owns no repositories.
func MostLovedRepo(p *domain.ProfileSnapshot) *domain.Repository {
	repos := p.Repositories.Nodes
	if len(repos) == 0 {
		return nil
	}

	byName := make(map[string]*domain.Repository, len(repos))
	for i := range repos {
		byName[repos[i].Name] = &repos[i]
	}

	var loved *domain.Repository
	best := 0
	for _, rc := range p.ContributionsCollection.CommitContributionsByRepository {
		repo, owned := byName[rc.Repository.Name]
		if !owned {
			continue
		}
		if rc.Contributions.TotalCount > best {
			loved = repo
			best = rc.Contributions.TotalCount
		}
	}
	if loved != nil {
		return loved
	}

	loved = &repos[0]
	for i := 1; i < len(repos); i++ {
		if repos[i].StargazerCount > loved.StargazerCount {
			loved = &repos[i]
		}
	}
	return loved
}

// PeakTimeLabel maps a peak hour to its named band.
func PeakTimeLabel(hour int) string {
	switch {
	case hour >= 5 && hour <= 11:
		return "Morning Bird"
	case hour >= 12 && hour <= 16:
		return "Afternoon Builder"
	case hour >= 17 && hour <= 21:
		return "Evening Hacker"
	default:
		return "Night Owl"
	}
}

// HourText formats an hour as 12-hour clock text.
func HourText(hour int) string {
	switch {
	case hour == 0:
		return "Midnight"
	case hour == 12:
		return "Noon"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}
