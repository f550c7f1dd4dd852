package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/iburimskiy/atom-viewer/internal/atom"
)

// ViewMode selects how electrons are drawn.
type ViewMode int

const (
	// ModeOrbit draws electrons as spheres circling ring orbits.
	ModeOrbit ViewMode = iota
	// ModeCloud draws each shell as a sampled probability cloud.
	ModeCloud
)

func (m ViewMode) String() string {
	switch m {
	case ModeOrbit:
		return "Bohr orbits"
	case ModeCloud:
		return "probability cloud"
	default:
		return "unknown"
	}
}

// Defaults restored on reset.
const (
	DefaultPitch     = 20
	DefaultYaw       = -30
	DefaultElectrons = 6

	MinElectrons = 1
	MaxElectrons = atom.MaxElectrons

	MaxPitch = 89

	// PhaseSpeed is the animation rate in degrees per second.
	PhaseSpeed = 40
)

// Camera is the eye placement and lens.
type Camera struct {
	Eye, Center, Up mgl32.Vec3
	FOV             float32 // degrees
	Near, Far       float32
}

// DefaultCamera looks at the atom from above and to the right.
func DefaultCamera() Camera {
	return Camera{
		Eye:    mgl32.Vec3{2.2, 1.8, 4.0},
		Center: mgl32.Vec3{0, 0.2, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		FOV:    60,
		Near:   0.1,
		Far:    100,
	}
}

// State is everything the input mapper changes and the composer reads.
// Angles are in degrees.
type State struct {
	Pitch float32
	Yaw   float32

	Animate bool
	Phase   float32

	ShowAxes  bool
	Mode      ViewMode
	Electrons int

	Camera Camera
}

// DefaultState returns the startup state.
func DefaultState() *State {
	st := &State{
		ShowAxes: true,
		Camera:   DefaultCamera(),
	}
	st.Reset()
	return st
}

// Reset restores the view and model defaults. Axis visibility and the camera
// lens are kept.
func (st *State) Reset() {
	st.Pitch = DefaultPitch
	st.Yaw = DefaultYaw
	st.Phase = 0
	st.Animate = true
	st.Mode = ModeOrbit
	st.Electrons = DefaultElectrons
}

// Advance moves the animation phase forward by dt seconds of wall-clock time.
func (st *State) Advance(dt float32) {
	if !st.Animate || dt <= 0 {
		return
	}
	st.Phase = wrapDegrees(st.Phase + PhaseSpeed*dt)
}

func wrapDegrees(a float32) float32 {
	a = math32.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

func clampPitch(p float32) float32 {
	return max(-MaxPitch, min(p, MaxPitch))
}

func clampElectrons(n int) int {
	return max(MinElectrons, min(n, MaxElectrons))
}
