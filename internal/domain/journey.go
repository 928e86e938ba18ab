package domain

// Stage represents a named phase of the flight timeline
type Stage string

const (
	StageLaunch Stage = "launch"
	StageSun    Stage = "sun"
	StagePlanet Stage = "planet"
	StageGalaxy Stage = "galaxy"
	StageStars  Stage = "stars"
	StageCity   Stage = "city"
	StageOutro  Stage = "outro"
)

// Stages lists all stages in flight order.
var Stages = []Stage{
	StageLaunch,
	StageSun,
	StagePlanet,
	StageGalaxy,
	StageStars,
	StageCity,
	StageOutro,
}

// Vec3 is a right-handed 3D coordinate. Depth along the flight path is
// negative Z.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// JourneyState is the per-frame output of the flight timeline. It is derived
// from elapsed time only and never persisted.
type JourneyState struct {
	Stage          Stage             `json:"stage"`
	Transitioned   bool              `json:"transitioned"` // true only on the frame the stage changed
	Progress       float64           `json:"progress"`     // 0..1 fraction of the configured duration
	Depth          float64           `json:"depth"`        // eased depth coordinate, 0..-totalDistance
	CameraPosition Vec3              `json:"cameraPosition"`
	CameraLookAt   Vec3              `json:"cameraLookAt"`
	Roll           float64           `json:"roll"`
	Pitch          float64           `json:"pitch"`
	Overlays       map[Stage]float64 `json:"overlays"` // per-stage caption opacity, 0..1
}
