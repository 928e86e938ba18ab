package journey

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astralhq/github-wrapped/internal/domain"
)

const validStageYAML = `- {stage: launch, depth: 0, lateral: 0, elevation: 5, fadeIn: 120, fadeOut: 180}
- {stage: sun, depth: -500, lateral: 20, elevation: 30, fadeIn: 120, fadeOut: 180}
- {stage: planet, depth: -1000, lateral: -30, elevation: 10, fadeIn: 120, fadeOut: 180}
- {stage: galaxy, depth: -1500, lateral: 10, elevation: 40, fadeIn: 120, fadeOut: 180}
- {stage: stars, depth: -2000, lateral: -15, elevation: 55, fadeIn: 120, fadeOut: 180}
- {stage: city, depth: -2500, lateral: 5, elevation: 15, fadeIn: 150, fadeOut: 200}
- {stage: outro, depth: -3000, lateral: 0, elevation: 25, fadeIn: 120, fadeOut: 180}
`

func writeStageFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stages.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadStageTable(t *testing.T) {
	stages, err := LoadStageTable(writeStageFile(t, validStageYAML))
	require.NoError(t, err)
	require.Len(t, stages, 7)

	assert.Equal(t, domain.StageSun, stages[1].Stage)
	assert.Equal(t, -500.0, stages[1].Depth)
	assert.Equal(t, 200.0, stages[5].FadeOut)
}

func TestLoadStageTableMissingFile(t *testing.T) {
	_, err := LoadStageTable(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadStageTableRejectsWrongCount(t *testing.T) {
	_, err := LoadStageTable(writeStageFile(t,
		`- {stage: launch, depth: 0, lateral: 0, elevation: 5, fadeIn: 120, fadeOut: 180}`))
	assert.ErrorContains(t, err, "must define 7 stages")
}

func TestLoadStageTableRejectsWrongOrder(t *testing.T) {
	shuffled := `- {stage: sun, depth: 0, lateral: 0, elevation: 5, fadeIn: 120, fadeOut: 180}
- {stage: launch, depth: -500, lateral: 20, elevation: 30, fadeIn: 120, fadeOut: 180}
- {stage: planet, depth: -1000, lateral: -30, elevation: 10, fadeIn: 120, fadeOut: 180}
- {stage: galaxy, depth: -1500, lateral: 10, elevation: 40, fadeIn: 120, fadeOut: 180}
- {stage: stars, depth: -2000, lateral: -15, elevation: 55, fadeIn: 120, fadeOut: 180}
- {stage: city, depth: -2500, lateral: 5, elevation: 15, fadeIn: 120, fadeOut: 180}
- {stage: outro, depth: -3000, lateral: 0, elevation: 25, fadeIn: 120, fadeOut: 180}
`
	_, err := LoadStageTable(writeStageFile(t, shuffled))
	assert.Error(t, err)
}

func TestLoadStageTableRejectsNonDecreasingDepth(t *testing.T) {
	bad := `- {stage: launch, depth: 0, lateral: 0, elevation: 5, fadeIn: 120, fadeOut: 180}
- {stage: sun, depth: -500, lateral: 20, elevation: 30, fadeIn: 120, fadeOut: 180}
- {stage: planet, depth: -400, lateral: -30, elevation: 10, fadeIn: 120, fadeOut: 180}
- {stage: galaxy, depth: -1500, lateral: 10, elevation: 40, fadeIn: 120, fadeOut: 180}
- {stage: stars, depth: -2000, lateral: -15, elevation: 55, fadeIn: 120, fadeOut: 180}
- {stage: city, depth: -2500, lateral: 5, elevation: 15, fadeIn: 120, fadeOut: 180}
- {stage: outro, depth: -3000, lateral: 0, elevation: 25, fadeIn: 120, fadeOut: 180}
`
	_, err := LoadStageTable(writeStageFile(t, bad))
	assert.ErrorContains(t, err, "depth must decrease")
}

func TestDefaultStagesAreValid(t *testing.T) {
	assert.NoError(t, validateStages(DefaultStages()))
}
