package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/iburimskiy/atom-viewer/internal/atom"
)

// Geometry and palette of the atom.
const (
	NucleusRadius  = 0.25
	ElectronRadius = 0.08
	RingSegments   = 64
	PointSize      = 2.5

	AtomAxesLength     = 0.5
	ElectronAxesLength = 0.15

	// Each shell outward spins this much faster than the previous one.
	shellSpeedup = 0.3

	cloudYawPerElectron   = 18
	cloudPitchPerElectron = 7
	cloudDrift            = 0.4
)

var (
	NucleusColor  = RGB(1.0, 0.3, 0.3)
	ElectronColor = RGB(0.2, 0.6, 1.0)
	RingColor     = RGB(0.9, 0.9, 0.9)
)

// CloudColor is the point color of shell s.
func CloudColor(s int) Color {
	return Color{R: 0.3, G: 0.5 + 0.15*float32(s), B: 1.0, A: 0.16 + 0.05*float32(s)}
}

type model interface {
	compose(f *Frame, st *State)
}

// Composer turns a State into a Frame. It owns the cloud samples, which are
// generated once and never modified, so frames may share them.
type Composer struct {
	cloud  []atom.CloudPoint
	models map[ViewMode]model
}

// NewComposer builds a composer around a pre-generated cloud.
func NewComposer(cloud []atom.CloudPoint) *Composer {
	c := &Composer{cloud: cloud}
	c.models = map[ViewMode]model{
		ModeOrbit: orbitModel{},
		ModeCloud: cloudModel{points: cloud},
	}
	return c
}

// Cloud returns the samples the composer draws in cloud mode.
func (c *Composer) Cloud() []atom.CloudPoint {
	return c.cloud
}

// Compose builds the draw list for st.
func (c *Composer) Compose(st *State, ctl *Controller) Frame {
	f := Frame{
		View:       ctl.View(st.Camera),
		Projection: ctl.Projection(st.Camera),
		Scene:      SceneRotation(st.Pitch, st.Yaw),
	}
	if st.ShowAxes {
		f.Primitives = append(f.Primitives, Axes{Model: mgl32.Ident4(), Length: AtomAxesLength})
	}
	f.Primitives = append(f.Primitives, Sphere{
		Model:  mgl32.Ident4(),
		Radius: NucleusRadius,
		Color:  NucleusColor,
		Lit:    true,
	})
	if m, ok := c.models[st.Mode]; ok {
		m.compose(&f, st)
	}
	return f
}

// ElectronAngle is the orbit angle in degrees of electron i of k in shell s.
func ElectronAngle(i, k, s int, phase float32) float32 {
	base := 360 * float32(i) / float32(k)
	return base + phase*(1+shellSpeedup*float32(s))
}

type orbitModel struct{}

func (orbitModel) compose(f *Frame, st *State) {
	remaining := st.Electrons
	for s := 0; s < atom.MaxShells && remaining > 0; s++ {
		k := min(remaining, atom.ShellCapacity[s])
		r := atom.ShellRadius(s)
		f.Primitives = append(f.Primitives, Ring{
			Model:    mgl32.Ident4(),
			Radius:   r,
			Segments: RingSegments,
			Color:    RingColor,
		})
		for i := 0; i < k; i++ {
			angle := mgl32.DegToRad(ElectronAngle(i, k, s, st.Phase))
			m := mgl32.HomogRotate3DY(angle).Mul4(mgl32.Translate3D(r, 0, 0))
			if st.ShowAxes {
				f.Primitives = append(f.Primitives, Axes{Model: m, Length: ElectronAxesLength})
			}
			f.Primitives = append(f.Primitives, Sphere{
				Model:  m,
				Radius: ElectronRadius,
				Color:  ElectronColor,
				Lit:    true,
			})
		}
		remaining -= k
	}
}

type cloudModel struct {
	points []atom.CloudPoint
}

// CloudOrientation is the whole-cloud transform for n electrons at phase.
func CloudOrientation(n int, phase float32) mgl32.Mat4 {
	yaw := cloudYawPerElectron*float32(n-1) + cloudDrift*phase
	pitch := cloudPitchPerElectron * float32(n-1)
	return mgl32.HomogRotate3DY(mgl32.DegToRad(yaw)).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(pitch)))
}

func (c cloudModel) compose(f *Frame, st *State) {
	active := atom.ActiveShellCount(st.Electrons)
	set := PointSet{
		Model:  CloudOrientation(st.Electrons, st.Phase),
		Points: make([]Point, 0, len(c.points)),
		Size:   PointSize,
	}
	for _, p := range c.points {
		if p.Shell >= active {
			continue
		}
		set.Points = append(set.Points, Point{Pos: p.Pos, Color: CloudColor(p.Shell)})
	}
	f.Primitives = append(f.Primitives, set)
}
