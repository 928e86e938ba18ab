package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/astralhq/github-wrapped/internal/api"
	"github.com/astralhq/github-wrapped/internal/collector"
	"github.com/astralhq/github-wrapped/internal/config"
	"github.com/astralhq/github-wrapped/internal/journey"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration", "err", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", "err", err)
	}

	// Initialize collector; the wrapped endpoint reports a missing token
	// per request, so the server still starts without one.
	var col collector.Collector
	if cfg.GitHubToken != "" {
		col = collector.NewGitHubCollector(cfg.GitHubToken)
	} else {
		log.Warn("GITHUB_TOKEN not set; wrapped requests will fail with a configuration error")
	}

	// Optional stage table override
	var stages []journey.StageParams
	if cfg.StageTablePath != "" {
		stages, err = journey.LoadStageTable(cfg.StageTablePath)
		if err != nil {
			log.Fatal("failed to load stage table", "path", cfg.StageTablePath, "err", err)
		}
	}

	// Initialize handler and routes
	handler := api.NewHandler(col, cfg.JourneyDuration, cfg.JourneyDistance, stages)
	router := api.SetupRoutes(handler)

	// Start server
	addr := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Info("starting API server", "addr", addr)

	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
