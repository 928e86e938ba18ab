package collector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/go-github/v55/github"
	"golang.org/x/oauth2"

	"github.com/astralhq/github-wrapped/internal/domain"
	apperrors "github.com/astralhq/github-wrapped/internal/errors"
)

const defaultGraphQLURL = "https://api.github.com/graphql"

// profileQuery is the fixed GraphQL selection backing the wrapped document.
const profileQuery = `query($login: String!) {
  user(login: $login) {
    login
    createdAt
    avatarUrl
    following { totalCount }
    pullRequests { totalCount }
    issues { totalCount }
    starredRepositories(first: 10, orderBy: {field: STARRED_AT, direction: DESC}) {
      totalCount
      nodes { name nameWithOwner stargazerCount }
    }
    contributionsCollection {
      totalCommitContributions
      totalIssueContributions
      totalPullRequestContributions
      totalPullRequestReviewContributions
      commitContributionsByRepository(maxRepositories: 100) {
        repository { name }
        contributions { totalCount }
      }
      contributionCalendar {
        totalContributions
        weeks { contributionDays { contributionCount date color } }
      }
    }
    repositories(first: 100, isFork: false, ownerAffiliations: OWNER, orderBy: {field: STARGAZERS, direction: DESC}) {
      totalCount
      nodes {
        name
        stargazerCount
        forkCount
        diskUsage
        createdAt
        languages(first: 10) { nodes { name color } }
      }
    }
  }
}`

// githubCollector implements Collector against the GitHub v4 and v3 APIs
type githubCollector struct {
	httpClient *http.Client
	ghClient   *github.Client
	graphqlURL string

	punchSampleSize int
	retryAttempts   int
	retryDelay      time.Duration
}

// NewGitHubCollector creates a collector authenticated with the given token
func NewGitHubCollector(token string) Collector {
	ctx := context.Background()
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	return &githubCollector{
		httpClient:      tc,
		ghClient:        github.NewClient(tc),
		graphqlURL:      defaultGraphQLURL,
		punchSampleSize: 5,
		retryAttempts:   3,
		retryDelay:      time.Second,
	}
}

type graphqlRequest struct {
	Query     string            `json:"query"`
	Variables map[string]string `json:"variables"`
}

type graphqlResponse struct {
	Data struct {
		User *domain.ProfileSnapshot `json:"user"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// FetchProfile queries the GraphQL API for the user's profile document
func (c *githubCollector) FetchProfile(ctx context.Context, login string) (*domain.ProfileSnapshot, error) {
	body, err := json.Marshal(graphqlRequest{
		Query:     profileQuery,
		Variables: map[string]string{"login": login},
	})
	if err != nil {
		return nil, apperrors.NewInternalError("failed to encode query", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.graphqlURL, bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError("profile query failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, apperrors.NewUpstreamError(
			fmt.Sprintf("profile query returned status %d: %s", resp.StatusCode, snippet), nil)
	}

	var result graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, apperrors.NewUpstreamError("failed to decode profile response", err)
	}
	if len(result.Errors) > 0 {
		return nil, apperrors.NewUpstreamError(result.Errors[0].Message, nil)
	}
	if result.Data.User == nil {
		return nil, apperrors.NewUpstreamError(fmt.Sprintf("user %q not found", login), nil)
	}

	return result.Data.User, nil
}
