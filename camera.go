package worldui

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera looking at the scene. It converts between
// screen pixels (top-left origin, Y down) and world space.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	// FovY is the vertical field of view in radians.
	FovY      float32
	Near, Far float32
}

// NewCamera creates a camera at position looking at target with a 60°
// vertical field of view.
func NewCamera(position, target mgl32.Vec3) *Camera {
	return &Camera{
		Position: position,
		Target:   target,
		Up:       mgl32.Vec3{0, 1, 0},
		FovY:     mgl32.DegToRad(60),
		Near:     0.1,
		Far:      1000,
	}
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

// Projection returns the perspective matrix for a viewport of w×h pixels.
func (c *Camera) Projection(w, h int) mgl32.Mat4 {
	aspect := float32(1)
	if h > 0 {
		aspect = float32(w) / float32(h)
	}
	return mgl32.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// ScreenRay returns the world-space ray through the screen pixel (sx, sy) of
// a w×h viewport. The ray starts on the near plane.
func (c *Camera) ScreenRay(sx, sy float32, w, h int) (Ray, error) {
	if w <= 0 || h <= 0 {
		return Ray{}, fmt.Errorf("worldui: invalid viewport %dx%d", w, h)
	}
	view, proj := c.View(), c.Projection(w, h)
	// Unproject works in window coordinates with a bottom-left origin.
	wy := float32(h) - sy
	near, err := mgl32.UnProject(mgl32.Vec3{sx, wy, 0}, view, proj, 0, 0, w, h)
	if err != nil {
		return Ray{}, fmt.Errorf("worldui: unproject near: %w", err)
	}
	far, err := mgl32.UnProject(mgl32.Vec3{sx, wy, 1}, view, proj, 0, 0, w, h)
	if err != nil {
		return Ray{}, fmt.Errorf("worldui: unproject far: %w", err)
	}
	return Ray{Origin: near, Dir: far.Sub(near).Normalize()}, nil
}

// WorldToScreen projects a world point onto a w×h viewport. visible is
// false when the point is behind the camera or outside the depth range.
func (c *Camera) WorldToScreen(p mgl32.Vec3, w, h int) (x, y float32, visible bool) {
	view, proj := c.View(), c.Projection(w, h)
	clip := proj.Mul4(view).Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}
	win := mgl32.Project(p, view, proj, 0, 0, w, h)
	return win.X(), float32(h) - win.Y(), win.Z() >= 0 && win.Z() <= 1
}
