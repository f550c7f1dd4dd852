package scene

import "github.com/go-gl/mathgl/mgl32"

// Controller derives the view and projection transforms for a frame.
// It only remembers the viewport shape; everything else comes from State.
type Controller struct {
	width, height int
	aspect        float32
}

// NewController returns a controller for a viewport of w by h pixels.
func NewController(w, h int) *Controller {
	c := &Controller{}
	c.Resize(w, h)
	return c
}

// Resize recomputes the aspect ratio. A zero height is treated as one pixel.
func (c *Controller) Resize(w, h int) {
	if h <= 0 {
		h = 1
	}
	if w < 0 {
		w = 0
	}
	c.width, c.height = w, h
	c.aspect = float32(w) / float32(h)
}

// Viewport returns the last size passed to Resize.
func (c *Controller) Viewport() (w, h int) {
	return c.width, c.height
}

// Aspect is the viewport width over height.
func (c *Controller) Aspect() float32 {
	return c.aspect
}

// View is the look-at transform of cam.
func (c *Controller) View(cam Camera) mgl32.Mat4 {
	return mgl32.LookAtV(cam.Eye, cam.Center, cam.Up)
}

// Projection is the perspective transform of cam for the current viewport.
func (c *Controller) Projection(cam Camera) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(cam.FOV), c.aspect, cam.Near, cam.Far)
}

// SceneRotation rotates the scene, not the camera: pitch about world X
// followed by yaw about world Y.
func SceneRotation(pitch, yaw float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DX(mgl32.DegToRad(pitch)).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(yaw)))
}
