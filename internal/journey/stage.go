package journey

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/astralhq/github-wrapped/internal/domain"
)

// StageParams describes one stage of the flight: its anchor depth, the
// camera rig targets while flying through it, and the caption fade bands.
// Depths are negative and strictly decreasing along the flight path.
type StageParams struct {
	Stage     domain.Stage `yaml:"stage"`
	Depth     float64      `yaml:"depth"`     // anchor depth, 0 or negative
	Lateral   float64      `yaml:"lateral"`   // target camera X offset
	Elevation float64      `yaml:"elevation"` // target camera Y offset
	FadeIn    float64      `yaml:"fadeIn"`    // approach fade band, units
	FadeOut   float64      `yaml:"fadeOut"`   // departure fade band, units
}

// Boundary tuning shared by all stages.
const (
	stageTolerance = 100 // threshold slack so stages do not flicker at boundaries
	fullOpacityIn  = 80  // captions are fully opaque within this distance of the anchor
)

// DefaultStages is the built-in stage table. Anchors are spaced evenly over
// the default flight distance of 3600 units.
func DefaultStages() []StageParams {
	return []StageParams{
		{Stage: domain.StageLaunch, Depth: 0, Lateral: 0, Elevation: 10, FadeIn: 120, FadeOut: 180},
		{Stage: domain.StageSun, Depth: -600, Lateral: 40, Elevation: 25, FadeIn: 120, FadeOut: 180},
		{Stage: domain.StagePlanet, Depth: -1200, Lateral: -60, Elevation: 15, FadeIn: 120, FadeOut: 180},
		{Stage: domain.StageGalaxy, Depth: -1800, Lateral: 30, Elevation: 45, FadeIn: 120, FadeOut: 180},
		{Stage: domain.StageStars, Depth: -2400, Lateral: -25, Elevation: 60, FadeIn: 120, FadeOut: 180},
		{Stage: domain.StageCity, Depth: -3000, Lateral: 15, Elevation: 20, FadeIn: 120, FadeOut: 180},
		{Stage: domain.StageOutro, Depth: -3600, Lateral: 0, Elevation: 30, FadeIn: 120, FadeOut: 180},
	}
}

// LoadStageTable reads a stage table override from a YAML file. The file
// must cover every stage exactly once, in flight order, with strictly
// decreasing depths.
func LoadStageTable(path string) ([]StageParams, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage table: %w", err)
	}

	var stages []StageParams
	if err := yaml.Unmarshal(data, &stages); err != nil {
		return nil, fmt.Errorf("failed to parse stage table: %w", err)
	}
	if err := validateStages(stages); err != nil {
		return nil, err
	}
	return stages, nil
}

func validateStages(stages []StageParams) error {
	if len(stages) != len(domain.Stages) {
		return fmt.Errorf("stage table must define %d stages, got %d", len(domain.Stages), len(stages))
	}
	for i, s := range stages {
		if s.Stage != domain.Stages[i] {
			return fmt.Errorf("stage %d: expected %q, got %q", i, domain.Stages[i], s.Stage)
		}
		if s.Depth > 0 {
			return fmt.Errorf("stage %q: depth must be 0 or negative", s.Stage)
		}
		if i > 0 && s.Depth >= stages[i-1].Depth {
			return fmt.Errorf("stage %q: depth must decrease along the flight", s.Stage)
		}
		if s.FadeIn <= fullOpacityIn || s.FadeOut <= fullOpacityIn {
			return fmt.Errorf("stage %q: fade bands must exceed %d units", s.Stage, fullOpacityIn)
		}
	}
	return nil
}
