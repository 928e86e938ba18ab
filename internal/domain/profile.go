package domain

import "time"

// ProfileSnapshot is the normalized profile document returned by the wrapped
// endpoint. Field names mirror the upstream GraphQL selection so the payload
// can be forwarded to clients without reshaping.
type ProfileSnapshot struct {
	Login                   string                  `json:"login"`
	CreatedAt               time.Time               `json:"createdAt"`
	AvatarURL               string                  `json:"avatarUrl"`
	Following               CountNode               `json:"following"`
	PullRequests            CountNode               `json:"pullRequests"`
	Issues                  CountNode               `json:"issues"`
	StarredRepositories     StarredRepositories     `json:"starredRepositories"`
	ContributionsCollection ContributionsCollection `json:"contributionsCollection"`
	Repositories            RepositoryConnection    `json:"repositories"`

	// ActivityStats is computed server-side from punch-card data and is not
	// part of the upstream response.
	ActivityStats *ActivityStats `json:"activityStats,omitempty"`
}

// CountNode wraps a totalCount-only GraphQL connection.
type CountNode struct {
	TotalCount int `json:"totalCount"`
}

// StarredRepositories holds the ordered list of starred-repository summaries.
type StarredRepositories struct {
	TotalCount int           `json:"totalCount"`
	Nodes      []StarredRepo `json:"nodes"`
}

// StarredRepo is a summary of a repository the user has starred.
type StarredRepo struct {
	Name           string `json:"name"`
	NameWithOwner  string `json:"nameWithOwner"`
	StargazerCount int    `json:"stargazerCount"`
}

// ContributionsCollection aggregates contribution counts by kind plus the
// contribution calendar and per-repository commit contributions.
type ContributionsCollection struct {
	TotalCommitContributions            int                  `json:"totalCommitContributions"`
	TotalIssueContributions             int                  `json:"totalIssueContributions"`
	TotalPullRequestContributions       int                  `json:"totalPullRequestContributions"`
	TotalPullRequestReviewContributions int                  `json:"totalPullRequestReviewContributions"`
	CommitContributionsByRepository     []RepoContribution   `json:"commitContributionsByRepository"`
	ContributionCalendar                ContributionCalendar `json:"contributionCalendar"`
}

// RepoContribution is the commit contribution count for a single repository.
type RepoContribution struct {
	Repository    RepoRef   `json:"repository"`
	Contributions CountNode `json:"contributions"`
}

// RepoRef identifies a repository by name.
type RepoRef struct {
	Name string `json:"name"`
}

// ContributionCalendar is the weekly/daily contribution grid.
type ContributionCalendar struct {
	TotalContributions int                `json:"totalContributions"`
	Weeks              []ContributionWeek `json:"weeks"`
}

// ContributionWeek is one calendar column of contribution days.
type ContributionWeek struct {
	ContributionDays []ContributionDay `json:"contributionDays"`
}

// ContributionDay is a single day cell of the contribution calendar.
type ContributionDay struct {
	ContributionCount int    `json:"contributionCount"`
	Date              string `json:"date"`
	Color             string `json:"color"`
}

// RepositoryConnection holds the user's owned non-fork repositories.
type RepositoryConnection struct {
	TotalCount int          `json:"totalCount"`
	Nodes      []Repository `json:"nodes"`
}

// Repository is an owned repository summary.
type Repository struct {
	Name           string             `json:"name"`
	StargazerCount int                `json:"stargazerCount"`
	ForkCount      int                `json:"forkCount"`
	DiskUsage      int                `json:"diskUsage"`
	CreatedAt      time.Time          `json:"createdAt"`
	Languages      LanguageConnection `json:"languages"`
}

// LanguageConnection holds the languages attached to a repository.
type LanguageConnection struct {
	Nodes []Language `json:"nodes"`
}

// Language is a programming language with its display color.
type Language struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ActivityStats is the peak-activity time slot derived from punch-card data.
type ActivityStats struct {
	PeakDay    int `json:"peakDay"`  // 0 (Sunday) through 6
	PeakHour   int `json:"peakHour"` // 0 through 23
	MaxCommits int `json:"maxCommits"`
}
