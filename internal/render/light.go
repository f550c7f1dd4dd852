package render

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/atom-viewer/internal/scene"
)

const eps = 1e-6

// Light is a point light in eye space with a Phong response and a rim glow.
type Light struct {
	Pos       mgl32.Vec3
	Ambient   float32
	Diffuse   float32
	Specular  float32
	Shininess float32
	Rim       colorful.Color
	RimPower  float32

	// Layers is how many nested discs approximate a shaded sphere.
	Layers int
}

// DefaultLight sits above and to the right of the viewer.
func DefaultLight() Light {
	return Light{
		Pos:       mgl32.Vec3{2, 3, 4},
		Ambient:   0.15,
		Diffuse:   0.75,
		Specular:  0.8,
		Shininess: 32,
		Rim:       colorful.Color{R: 0.2, G: 0.4, B: 1.0},
		RimPower:  3,
		Layers:    7,
	}
}

// Shade returns the color of an eye-space surface point pos with unit normal n.
func (l Light) Shade(pos, n mgl32.Vec3, base scene.Color) color.NRGBA {
	v := unit(pos.Mul(-1), mgl32.Vec3{0, 0, 1})
	ld := unit(l.Pos.Sub(pos), v)

	ndl := max(n.Dot(ld), 0)
	k := float64(l.Ambient + l.Diffuse*ndl)
	var hl float64
	if ndl > 0 {
		refl := ld.Mul(-1).Sub(n.Mul(2 * n.Dot(ld.Mul(-1))))
		hl = float64(l.Specular * math32.Pow(max(refl.Dot(v), 0), l.Shininess))
	}
	rim := float64(math32.Pow(1-max(n.Dot(v), 0), l.RimPower))

	// white highlight and rim add to the diffuse color; clamp once
	c := colorful.Color{
		R: float64(base.R)*k + hl + l.Rim.R*rim,
		G: float64(base.G)*k + hl + l.Rim.G*rim,
		B: float64(base.B)*k + hl + l.Rim.B*rim,
	}.Clamped()

	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: base.NRGBA().A}
}

// layer is one disc of a shaded sphere, offset and scaled relative to the
// projected radius.
type layer struct {
	dx, dy float32
	scale  float32
	color  color.NRGBA
}

// sphereLayers appends the discs for a sphere centered at eye-space c,
// outermost first. The outer disc takes the shadowed silhouette color and the
// inner ones walk toward the highlight.
func (l Light) sphereLayers(dst []layer, c mgl32.Vec3, base scene.Color) []layer {
	v := unit(c.Mul(-1), mgl32.Vec3{0, 0, 1})
	ld := unit(l.Pos.Sub(c), v)
	h := unit(ld.Add(v), v)

	if l.Layers < 2 {
		return append(dst, layer{scale: 1, color: l.Shade(c, v, base)})
	}

	// silhouette normal on the side facing away from the light
	away := v.Mul(ld.Dot(v)).Sub(ld)
	if away.Len() < eps {
		away = v.Cross(mgl32.Vec3{1, 0, 0})
	}
	away = unit(away, mgl32.Vec3{0, -1, 0})

	for i := 0; i < l.Layers; i++ {
		t := float32(i) / float32(l.Layers-1)
		n := unit(away.Mul(1-t).Add(h.Mul(t)), v)
		scale := 1 - 0.85*t
		off := 1 - scale
		dst = append(dst, layer{
			dx:    h.X() * off,
			dy:    -h.Y() * off,
			scale: scale,
			color: l.Shade(c, n, base),
		})
	}
	return dst
}

// unit normalizes v, or returns fallback for a zero vector.
func unit(v, fallback mgl32.Vec3) mgl32.Vec3 {
	if v.Len() < eps {
		return fallback
	}
	return v.Normalize()
}
