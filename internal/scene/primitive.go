package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Color is a straight-alpha color with float channels in [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGB returns an opaque color.
func RGB(r, g, b float32) Color { return Color{r, g, b, 1} }

// NRGBA converts c for image/color consumers.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

func to8(v float32) uint8 {
	return uint8(max(0, min(v, 1))*255 + 0.5)
}

// Primitive is one draw command of a Frame. The concrete types are Sphere,
// Ring, PointSet and Axes.
type Primitive interface {
	primitive()
}

// Sphere is a sphere of Radius centered at the Model origin.
// Lit spheres are shaded; unlit ones keep a flat color.
type Sphere struct {
	Model  mgl32.Mat4
	Radius float32
	Color  Color
	Lit    bool
}

// Ring is a closed polyline circle of Radius in the Model XZ plane.
type Ring struct {
	Model    mgl32.Mat4
	Radius   float32
	Segments int
	Color    Color
}

// Point is one vertex of a PointSet.
type Point struct {
	Pos   mgl32.Vec3
	Color Color
}

// PointSet is a batch of screen-aligned points of Size pixels.
type PointSet struct {
	Model  mgl32.Mat4
	Points []Point
	Size   float32
}

// Axes is a red/green/blue triad along the Model X/Y/Z axes.
type Axes struct {
	Model  mgl32.Mat4
	Length float32
}

func (Sphere) primitive()   {}
func (Ring) primitive()     {}
func (PointSet) primitive() {}
func (Axes) primitive()     {}

// Frame is everything the backend needs to draw one frame. Primitive models
// are relative to Scene, so the full transform is Projection*View*Scene*Model.
type Frame struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Scene      mgl32.Mat4
	Primitives []Primitive
}
