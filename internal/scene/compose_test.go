package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/atom-viewer/internal/atom"
)

func testComposer() *Composer {
	return NewComposer(atom.GenerateCloud(atom.NewCloudRand(0), 100, atom.MaxShells))
}

type counts struct {
	spheres, rings, points, axes int
}

func count(f Frame) counts {
	var c counts
	for _, p := range f.Primitives {
		switch p.(type) {
		case Sphere:
			c.spheres++
		case Ring:
			c.rings++
		case PointSet:
			c.points++
		case Axes:
			c.axes++
		}
	}
	return c
}

func origin(m mgl32.Mat4) mgl32.Vec3 {
	return m.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
}

func TestComposeOrbit(t *testing.T) {
	c := testComposer()
	ctl := NewController(800, 600)
	st := DefaultState()
	st.ShowAxes = false

	tests := []struct {
		electrons int
		want      counts
	}{
		{1, counts{spheres: 2, rings: 1}},
		{2, counts{spheres: 3, rings: 1}},
		{6, counts{spheres: 7, rings: 2}},
		{10, counts{spheres: 11, rings: 2}},
		{18, counts{spheres: 19, rings: 3}},
	}
	for _, tt := range tests {
		st.Electrons = tt.electrons
		assert.Equal(t, tt.want, count(c.Compose(st, ctl)), "electrons=%d", tt.electrons)
	}
}

func TestComposeOrbitAxes(t *testing.T) {
	c := testComposer()
	ctl := NewController(800, 600)
	st := DefaultState()

	got := count(c.Compose(st, ctl))
	assert.Equal(t, counts{spheres: 7, rings: 2, axes: 7}, got)
}

func TestComposeNucleus(t *testing.T) {
	c := testComposer()
	ctl := NewController(800, 600)
	st := DefaultState()
	st.ShowAxes = false

	for _, mode := range []ViewMode{ModeOrbit, ModeCloud} {
		st.Mode = mode
		f := c.Compose(st, ctl)
		require.NotEmpty(t, f.Primitives)
		n, ok := f.Primitives[0].(Sphere)
		require.True(t, ok)
		assert.EqualValues(t, NucleusRadius, n.Radius)
		assert.Equal(t, NucleusColor, n.Color)
		assert.Equal(t, mgl32.Ident4(), n.Model)
	}
}

func TestComposeElectronPlacement(t *testing.T) {
	c := testComposer()
	ctl := NewController(800, 600)
	st := DefaultState()
	st.ShowAxes = false
	st.Electrons = 3
	st.Phase = 30

	f := c.Compose(st, ctl)

	var electrons []Sphere
	var rings []Ring
	for _, p := range f.Primitives {
		switch p := p.(type) {
		case Sphere:
			if p.Radius == ElectronRadius {
				electrons = append(electrons, p)
			}
		case Ring:
			rings = append(rings, p)
		}
	}
	require.Len(t, electrons, 3)
	require.Len(t, rings, 2)
	assert.InDelta(t, atom.ShellRadius(0), rings[0].Radius, tol)
	assert.InDelta(t, atom.ShellRadius(1), rings[1].Radius, tol)
	assert.Equal(t, RingSegments, rings[0].Segments)

	// shell 0: two electrons 180 degrees apart, rotated by the phase
	for i, e := range electrons[:2] {
		angle := mgl32.DegToRad(ElectronAngle(i, 2, 0, 30))
		want := mgl32.HomogRotate3DY(angle).Mul4x1(mgl32.Vec4{atom.ShellRadius(0), 0, 0, 1}).Vec3()
		got := origin(e.Model)
		assertVec3(t, want, got, "electron %d", i)
		assert.InDelta(t, atom.ShellRadius(0), got.Len(), tol)
		assert.InDelta(t, 0, got.Y(), tol)
	}
	// shell 1 spins 30% faster
	got := origin(electrons[2].Model)
	assert.InDelta(t, atom.ShellRadius(1), got.Len(), tol)
	assert.InDelta(t, 39, ElectronAngle(0, 1, 1, 30), tol)
}

func TestElectronAngle(t *testing.T) {
	assert.InDelta(t, 0, ElectronAngle(0, 4, 0, 0), tol)
	assert.InDelta(t, 90, ElectronAngle(1, 4, 0, 0), tol)
	assert.InDelta(t, 270, ElectronAngle(3, 4, 0, 0), tol)
	assert.InDelta(t, 90+100*1.6, ElectronAngle(1, 4, 2, 100), tol)
}

func TestComposeCloudFiltersShells(t *testing.T) {
	c := testComposer()
	ctl := NewController(800, 600)
	st := DefaultState()
	st.ShowAxes = false
	st.Mode = ModeCloud

	for n, shells := range map[int]int{1: 1, 2: 1, 3: 2, 10: 2, 11: 3, 18: 3} {
		st.Electrons = n
		f := c.Compose(st, ctl)
		assert.Equal(t, counts{spheres: 1, points: 1}, count(f))

		var want []Point
		for _, cp := range c.Cloud() {
			if cp.Shell < shells {
				want = append(want, Point{Pos: cp.Pos, Color: CloudColor(cp.Shell)})
			}
		}
		require.Len(t, want, 100*shells)

		set := f.Primitives[1].(PointSet)
		assert.Equal(t, want, set.Points, "electrons=%d", n)
		assert.EqualValues(t, PointSize, set.Size)
	}
}

func TestComposeCloudSharesSamples(t *testing.T) {
	c := testComposer()
	ctl := NewController(800, 600)
	st := DefaultState()
	st.Mode = ModeCloud
	st.Electrons = 18

	before := append([]atom.CloudPoint(nil), c.Cloud()...)
	f := c.Compose(st, ctl)
	set := f.Primitives[len(f.Primitives)-1].(PointSet)
	for i, p := range set.Points {
		assert.Equal(t, c.Cloud()[i].Pos, p.Pos)
	}
	assert.Equal(t, before, c.Cloud())
}

func TestCloudColor(t *testing.T) {
	for s := 0; s < atom.MaxShells; s++ {
		col := CloudColor(s)
		assert.InDelta(t, 0.16+0.05*float64(s), col.A, tol)
		assert.InDelta(t, 0.5+0.15*float64(s), col.G, tol)
		assert.InDelta(t, 1, col.B, tol)
		assert.Greater(t, col.B, col.R)
	}
}

func TestCloudOrientation(t *testing.T) {
	assertMat4(t, mgl32.Ident4(), CloudOrientation(1, 0))

	want := mgl32.HomogRotate3DY(mgl32.DegToRad(18*5 + 0.4*90)).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(7 * 5)))
	assertMat4(t, want, CloudOrientation(6, 90))
}

func TestComposeMatrices(t *testing.T) {
	c := testComposer()
	ctl := NewController(800, 600)
	st := DefaultState()

	f := c.Compose(st, ctl)
	assert.Equal(t, ctl.View(st.Camera), f.View)
	assert.Equal(t, ctl.Projection(st.Camera), f.Projection)
	assert.Equal(t, SceneRotation(st.Pitch, st.Yaw), f.Scene)
}

func TestColorNRGBA(t *testing.T) {
	c := Color{1, 0.5, 0, 0.16}.NRGBA()
	assert.EqualValues(t, 255, c.R)
	assert.EqualValues(t, 128, c.G)
	assert.EqualValues(t, 0, c.B)
	assert.EqualValues(t, 41, c.A)
	assert.EqualValues(t, 255, Color{2, -1, 0, 1}.NRGBA().R)
}
