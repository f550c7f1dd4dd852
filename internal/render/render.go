// Package render draws a scene.Frame onto an ebiten image. There is no depth
// buffer: every primitive is projected on the CPU, broken into screen-space
// items and painted back to front.
package render

import (
	"cmp"
	"image/color"
	"slices"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/atom-viewer/internal/scene"
)

const (
	ringWidth = 1
	axesWidth = 2

	// minW rejects vertices at or behind the eye.
	minW = 1e-4
)

var axisColors = [3]color.NRGBA{
	{R: 255, A: 255},
	{G: 255, A: 255},
	{B: 255, A: 255},
}

type itemKind int

const (
	discItem itemKind = iota
	lineItem
	dotItem
)

// item is one screen-space shape. depth is the distance in front of the eye
// and only matters for ordering.
type item struct {
	kind   itemKind
	depth  float32
	x0, y0 float32
	x1, y1 float32 // line end
	size   float32 // disc radius, line width or dot side
	color  color.NRGBA
}

// Renderer keeps scratch buffers between frames.
type Renderer struct {
	Light  Light
	items  []item
	layers []layer
}

// New returns a renderer with the default light.
func New() *Renderer {
	return &Renderer{Light: DefaultLight()}
}

// Draw paints f onto dst.
func (r *Renderer) Draw(dst *ebiten.Image, f scene.Frame) {
	b := dst.Bounds()
	for _, it := range r.build(f, b.Dx(), b.Dy()) {
		switch it.kind {
		case discItem:
			vector.DrawFilledCircle(dst, it.x0, it.y0, it.size, it.color, true)
		case lineItem:
			vector.StrokeLine(dst, it.x0, it.y0, it.x1, it.y1, it.size, it.color, true)
		case dotItem:
			h := it.size / 2
			vector.DrawFilledRect(dst, it.x0-h, it.y0-h, it.size, it.size, it.color, false)
		}
	}
}

// build projects f for a w by h viewport and returns the items ordered back
// to front. The slice is reused by the next call.
func (r *Renderer) build(f scene.Frame, w, h int) []item {
	r.items = r.items[:0]
	p := projector{
		viewScene: f.View.Mul4(f.Scene),
		proj:      f.Projection,
		w:         float32(w),
		h:         float32(h),
	}
	for _, prim := range f.Primitives {
		switch prim := prim.(type) {
		case scene.Sphere:
			r.addSphere(p, prim)
		case scene.Ring:
			r.addRing(p, prim)
		case scene.PointSet:
			r.addPoints(p, prim)
		case scene.Axes:
			r.addAxes(p, prim)
		}
	}
	slices.SortStableFunc(r.items, func(a, b item) int {
		return cmp.Compare(b.depth, a.depth)
	})
	return r.items
}

type projector struct {
	viewScene mgl32.Mat4
	proj      mgl32.Mat4
	w, h      float32
}

// eye moves a model-space point into eye space.
func (p projector) eye(model mgl32.Mat4, v mgl32.Vec3) mgl32.Vec3 {
	return p.viewScene.Mul4(model).Mul4x1(v.Vec4(1)).Vec3()
}

// screen projects an eye-space point to pixels. ok is false behind the eye.
func (p projector) screen(e mgl32.Vec3) (x, y float32, ok bool) {
	clip := p.proj.Mul4x1(e.Vec4(1))
	if clip.W() <= minW {
		return 0, 0, false
	}
	nx, ny := clip.X()/clip.W(), clip.Y()/clip.W()
	return (nx + 1) / 2 * p.w, (1 - ny) / 2 * p.h, true
}

func (r *Renderer) addSphere(p projector, s scene.Sphere) {
	c := p.eye(s.Model, mgl32.Vec3{})
	x, y, ok := p.screen(c)
	if !ok {
		return
	}
	ex, _, ok := p.screen(c.Add(mgl32.Vec3{s.Radius, 0, 0}))
	if !ok {
		return
	}
	radius := ex - x
	if radius <= 0 {
		return
	}
	depth := -c.Z()
	if !s.Lit {
		r.items = append(r.items, item{kind: discItem, depth: depth, x0: x, y0: y, size: radius, color: s.Color.NRGBA()})
		return
	}
	r.layers = r.Light.sphereLayers(r.layers[:0], c, s.Color)
	// layers share a depth; the stable sort keeps them outermost first
	for _, l := range r.layers {
		r.items = append(r.items, item{
			kind:  discItem,
			depth: depth,
			x0:    x + l.dx*radius,
			y0:    y + l.dy*radius,
			size:  l.scale * radius,
			color: l.color,
		})
	}
}

func (r *Renderer) addLine(p projector, a, b mgl32.Vec3, width float32, col color.NRGBA) {
	x0, y0, ok0 := p.screen(a)
	x1, y1, ok1 := p.screen(b)
	if !ok0 || !ok1 {
		return
	}
	r.items = append(r.items, item{
		kind:  lineItem,
		depth: -(a.Z() + b.Z()) / 2,
		x0:    x0,
		y0:    y0,
		x1:    x1,
		y1:    y1,
		size:  width,
		color: col,
	})
}

func (r *Renderer) addRing(p projector, ring scene.Ring) {
	n := ring.Segments
	if n < 3 {
		return
	}
	col := ring.Color.NRGBA()
	prev := p.eye(ring.Model, ringVertex(ring.Radius, 0, n))
	for i := 1; i <= n; i++ {
		cur := p.eye(ring.Model, ringVertex(ring.Radius, i%n, n))
		r.addLine(p, prev, cur, ringWidth, col)
		prev = cur
	}
}

// ringVertex is vertex i of an n-gon of radius r in the XZ plane.
func ringVertex(r float32, i, n int) mgl32.Vec3 {
	a := 2 * math32.Pi * float32(i) / float32(n)
	return mgl32.Vec3{r * math32.Cos(a), 0, r * math32.Sin(a)}
}

func (r *Renderer) addAxes(p projector, a scene.Axes) {
	o := p.eye(a.Model, mgl32.Vec3{})
	for i, col := range axisColors {
		var tip mgl32.Vec3
		tip[i] = a.Length
		r.addLine(p, o, p.eye(a.Model, tip), axesWidth, col)
	}
}

func (r *Renderer) addPoints(p projector, set scene.PointSet) {
	m := p.viewScene.Mul4(set.Model)
	for _, pt := range set.Points {
		e := m.Mul4x1(pt.Pos.Vec4(1)).Vec3()
		x, y, ok := p.screen(e)
		if !ok {
			continue
		}
		r.items = append(r.items, item{
			kind:  dotItem,
			depth: -e.Z(),
			x0:    x,
			y0:    y,
			size:  set.Size,
			color: pt.Color.NRGBA(),
		})
	}
}
