package journey

import "github.com/astralhq/github-wrapped/internal/domain"

// Camera tuning. The rig eases toward its per-stage targets instead of
// jumping, so stage changes produce continuous, inertia-like motion.
const (
	defaultBlend = 0.02  // per-frame blend toward position/look-at targets
	angleBlend   = 0.05  // per-frame blend for roll and pitch
	rollScale    = 0.012 // bank per unit of lateral deviation
	pitchScale   = 0.008 // pitch per unit of vertical deviation
	lookAhead    = 200   // distance ahead of the camera for the look-at target
)

// Timeline derives JourneyState from elapsed flight time. All mutable
// smoothing state (position, look-at, previous stage) is owned by the single
// caller driving Advance once per frame; the type is not safe for
// concurrent use.
type Timeline struct {
	stages   []StageParams
	duration float64
	distance float64
	blend    float64

	active  bool
	prevIdx int
	pos     domain.Vec3
	lookAt  domain.Vec3
	roll    float64
	pitch   float64
	last    domain.JourneyState
}

// Option configures a Timeline.
type Option func(*Timeline)

// WithStages overrides the built-in stage table.
func WithStages(stages []StageParams) Option {
	return func(t *Timeline) { t.stages = stages }
}

// WithDuration sets the total flight duration in seconds.
func WithDuration(seconds float64) Option {
	return func(t *Timeline) {
		if seconds > 0 {
			t.duration = seconds
		}
	}
}

// WithDistance sets the total flight distance in depth units.
func WithDistance(units float64) Option {
	return func(t *Timeline) {
		if units > 0 {
			t.distance = units
		}
	}
}

// NewTimeline creates a timeline with the default stage table, a 60 second
// duration, and a 3600 unit flight distance unless overridden.
func NewTimeline(opts ...Option) *Timeline {
	t := &Timeline{
		stages:   DefaultStages(),
		duration: 60,
		distance: 3600,
		blend:    defaultBlend,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.reset()
	return t
}

func (t *Timeline) reset() {
	first := t.stages[0]
	t.prevIdx = 0
	t.pos = domain.Vec3{X: first.Lateral, Y: first.Elevation, Z: 0}
	t.lookAt = domain.Vec3{X: first.Lateral, Y: first.Elevation, Z: -lookAhead}
	t.roll = 0
	t.pitch = 0
	t.last = domain.JourneyState{
		Stage:          first.Stage,
		CameraPosition: t.pos,
		CameraLookAt:   t.lookAt,
		Overlays:       t.overlays(0),
	}
}

// Start arms the timeline at elapsed zero.
func (t *Timeline) Start() {
	t.reset()
	t.active = true
}

// Stop freezes the derived output at its last computed value. Subsequent
// Advance calls return that value unchanged.
func (t *Timeline) Stop() {
	t.active = false
}

// Active reports whether the timeline is being driven.
func (t *Timeline) Active() bool {
	return t.active
}

// Duration returns the total flight duration in seconds.
func (t *Timeline) Duration() float64 {
	return t.duration
}

// Advance computes the journey state for the given elapsed seconds since
// Start. It must be called once per frame by a single goroutine.
func (t *Timeline) Advance(elapsed float64) domain.JourneyState {
	if !t.active {
		return t.last
	}

	progress := clamp01(elapsed / t.duration)
	depth := -easeFinal(progress) * t.distance

	idx := t.stageIndex(depth)
	transitioned := idx != t.prevIdx
	stage := t.stages[idx]

	// Ease the rig toward the stage targets; depth tracks the flight path
	// directly.
	t.pos.X = lerp(t.pos.X, stage.Lateral, t.blend)
	t.pos.Y = lerp(t.pos.Y, stage.Elevation, t.blend)
	t.pos.Z = depth

	t.lookAt.X = lerp(t.lookAt.X, stage.Lateral, t.blend)
	t.lookAt.Y = lerp(t.lookAt.Y, stage.Elevation, t.blend)
	t.lookAt.Z = depth - lookAhead

	// Bank and pitch follow the instantaneous deviation from target.
	t.roll = lerp(t.roll, (stage.Lateral-t.pos.X)*rollScale, angleBlend)
	t.pitch = lerp(t.pitch, (stage.Elevation-t.pos.Y)*pitchScale, angleBlend)

	t.prevIdx = idx
	t.last = domain.JourneyState{
		Stage:          stage.Stage,
		Transitioned:   transitioned,
		Progress:       progress,
		Depth:          depth,
		CameraPosition: t.pos,
		CameraLookAt:   t.lookAt,
		Roll:           t.roll,
		Pitch:          t.pitch,
		Overlays:       t.overlays(depth),
	}
	return t.last
}

// stageIndex selects the deepest stage whose threshold has been passed,
// with a tolerance band so the selection does not flicker at boundaries.
// The index never moves backward.
func (t *Timeline) stageIndex(depth float64) int {
	idx := t.prevIdx
	for i := range t.stages {
		if depth <= t.stages[i].Depth+stageTolerance {
			idx = i
		}
	}
	if idx < t.prevIdx {
		idx = t.prevIdx
	}
	return idx
}

// overlays computes the caption opacity for every stage at the given depth.
// Opacity is 1 within fullOpacityIn units of the stage anchor, ramps
// linearly out to the stage's fade band, and is 0 beyond it. The band is
// narrower on approach than on departure.
func (t *Timeline) overlays(depth float64) map[domain.Stage]float64 {
	out := make(map[domain.Stage]float64, len(t.stages))
	for _, s := range t.stages {
		dist := depth - s.Depth
		approaching := dist > 0 // camera has not yet reached the anchor
		if dist < 0 {
			dist = -dist
		}

		var opacity float64
		band := s.FadeOut
		if approaching {
			band = s.FadeIn
		}
		switch {
		case dist <= fullOpacityIn:
			opacity = 1
		case dist >= band:
			opacity = 0
		default:
			opacity = (band - dist) / (band - fullOpacityIn)
		}
		out[s.Stage] = opacity
	}
	return out
}

// easeFinal applies a quadratic ease-out over the final 5% of progress so
// the flight settles into the outro instead of stopping dead.
func easeFinal(t float64) float64 {
	if t > 0.95 {
		d := 1 - t
		return 1 - 20*d*d
	}
	return t
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lerp(from, to, factor float64) float64 {
	return from + (to-from)*factor
}
