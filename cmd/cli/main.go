package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/astralhq/github-wrapped/internal/config"
	"github.com/astralhq/github-wrapped/internal/journey"
	"github.com/astralhq/github-wrapped/internal/stats"
	"github.com/astralhq/github-wrapped/pkg/client"
)

var (
	outputJSON      bool
	journeyDuration float64
	journeyDistance float64
)

var rootCmd = &cobra.Command{
	Use:   "wrapped",
	Short: "GitHub Wrapped tool",
	Long: `A CLI tool for the GitHub Wrapped service.

Fetches a user's profile, contribution, and repository data through the
wrapped API and prints the derived summary statistics, or simulates the
flight timeline offline.`,
}

var fetchCmd = &cobra.Command{
	Use:   "fetch [user]",
	Short: "Fetch a user's wrapped profile",
	Long:  `Fetch the normalized wrapped profile document for a GitHub user and display it.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runFetch,
}

var summaryCmd = &cobra.Command{
	Use:   "summary [user]",
	Short: "Show derived summary statistics",
	Long:  `Display the derived summary statistics (stars, top language, most loved repository, peak time) for a GitHub user.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSummary,
}

var journeyCmd = &cobra.Command{
	Use:   "journey",
	Short: "Simulate the flight timeline",
	Long:  `Simulate the flight timeline offline and print the stage transition schedule.`,
	Args:  cobra.NoArgs,
	RunE:  runJourney,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output in JSON format")
	journeyCmd.Flags().Float64Var(&journeyDuration, "duration", 60, "flight duration in seconds")
	journeyCmd.Flags().Float64Var(&journeyDistance, "distance", 3600, "flight distance in depth units")

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(journeyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newAPIClient() (*client.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return client.NewClient(cfg.APIEndpoint), nil
}

func runFetch(cmd *cobra.Command, args []string) error {
	c, err := newAPIClient()
	if err != nil {
		return err
	}

	snapshot, err := c.GetWrapped(args[0])
	if err != nil {
		return err
	}

	if outputJSON {
		return printJSON(snapshot)
	}

	fmt.Printf("Profile: %s (joined %s)\n\n", snapshot.Login, snapshot.CreatedAt.Format("2006-01-02"))

	overview := tablewriter.NewWriter(os.Stdout)
	overview.SetHeader([]string{"Following", "Pull Requests", "Issues", "Repos", "Contributions"})
	overview.Append([]string{
		strconv.Itoa(snapshot.Following.TotalCount),
		strconv.Itoa(snapshot.PullRequests.TotalCount),
		strconv.Itoa(snapshot.Issues.TotalCount),
		strconv.Itoa(snapshot.Repositories.TotalCount),
		strconv.Itoa(snapshot.ContributionsCollection.ContributionCalendar.TotalContributions),
	})
	overview.Render()

	fmt.Println()
	repos := tablewriter.NewWriter(os.Stdout)
	repos.SetHeader([]string{"Repository", "Stars", "Forks", "Language"})
	for _, repo := range snapshot.Repositories.Nodes {
		lang := ""
		if len(repo.Languages.Nodes) > 0 {
			lang = repo.Languages.Nodes[0].Name
		}
		repos.Append([]string{
			repo.Name,
			strconv.Itoa(repo.StargazerCount),
			strconv.Itoa(repo.ForkCount),
			lang,
		})
	}
	repos.Render()

	if snapshot.ActivityStats != nil {
		a := snapshot.ActivityStats
		fmt.Printf("\nPeak activity: %s at %s (%d commits, %s)\n",
			time.Weekday(a.PeakDay), stats.HourText(a.PeakHour), a.MaxCommits,
			stats.PeakTimeLabel(a.PeakHour))
	}
	return nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	c, err := newAPIClient()
	if err != nil {
		return err
	}

	summary, err := c.GetSummary(args[0])
	if err != nil {
		return err
	}

	if outputJSON {
		return printJSON(summary)
	}

	loved := "-"
	if summary.MostLovedRepo != nil {
		loved = summary.MostLovedRepo.Name
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Total Stars", "Top Language", "Most Loved Repo", "Peak Time"})
	table.Append([]string{
		strconv.Itoa(summary.TotalStarsReceived),
		summary.TopLanguage,
		loved,
		fmt.Sprintf("%s (%s)", summary.PeakTimeLabel, summary.PeakHourText),
	})
	table.Render()
	return nil
}

func runJourney(cmd *cobra.Command, args []string) error {
	timeline := journey.NewTimeline(
		journey.WithDuration(journeyDuration),
		journey.WithDistance(journeyDistance),
	)
	timeline.Start()

	type transition struct {
		Stage   string  `json:"stage"`
		Elapsed float64 `json:"elapsed"`
		Depth   float64 `json:"depth"`
	}

	// Step at render cadence and record each stage change.
	const step = 1.0 / 30
	transitions := []transition{{Stage: "launch", Elapsed: 0, Depth: 0}}
	for elapsed := step; ; elapsed += step {
		state := timeline.Advance(elapsed)
		if state.Transitioned {
			transitions = append(transitions, transition{
				Stage:   string(state.Stage),
				Elapsed: elapsed,
				Depth:   state.Depth,
			})
		}
		if state.Progress >= 1 {
			break
		}
	}

	if outputJSON {
		return printJSON(transitions)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Stage", "Elapsed (s)", "Depth"})
	for _, tr := range transitions {
		table.Append([]string{
			tr.Stage,
			fmt.Sprintf("%.2f", tr.Elapsed),
			fmt.Sprintf("%.0f", tr.Depth),
		})
	}
	table.Render()
	return nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
