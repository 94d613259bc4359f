package worldui

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 3 transform components of a surface
// simultaneously. Create one via TweenTranslation, TweenScale or TweenYaw
// and call Update(dt) each frame. If the target surface is despawned, the
// group stops immediately.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens [3]*gween.Tween
	count  int
	apply  func(vals [3]float32)
	target *SurfaceEntity
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target transform.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDespawned() {
		g.Done = true
		return
	}

	var vals [3]float32
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		vals[i] = val
		if !finished {
			allDone = false
		}
	}
	g.apply(vals)
	g.Done = allDone
}

// TweenTranslation animates the surface's translation to the given world
// position.
func TweenTranslation(e *SurfaceEntity, to mgl32.Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := e.Transform.Translation
	g := &TweenGroup{count: 3, target: e}
	for i := 0; i < 3; i++ {
		g.tweens[i] = gween.New(from[i], to[i], duration, fn)
	}
	g.apply = func(v [3]float32) {
		e.Transform.Translation = mgl32.Vec3(v)
	}
	return g
}

// TweenScale animates the surface's scale.
func TweenScale(e *SurfaceEntity, to mgl32.Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := e.Transform.scale()
	g := &TweenGroup{count: 3, target: e}
	for i := 0; i < 3; i++ {
		g.tweens[i] = gween.New(from[i], to[i], duration, fn)
	}
	g.apply = func(v [3]float32) {
		e.Transform.Scale = mgl32.Vec3(v)
	}
	return g
}

// TweenYaw animates a rotation about the world Y axis from one angle to
// another (radians), applied on top of the surface's rotation at the time
// of the call.
func TweenYaw(e *SurfaceEntity, from, to float32, duration float32, fn ease.TweenFunc) *TweenGroup {
	base := e.Transform.normalizedRotation()
	g := &TweenGroup{count: 1, target: e}
	g.tweens[0] = gween.New(from, to, duration, fn)
	g.apply = func(v [3]float32) {
		e.Transform.Rotation = mgl32.QuatRotate(v[0], mgl32.Vec3{0, 1, 0}).Mul(base)
	}
	return g
}
