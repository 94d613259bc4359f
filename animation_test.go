package worldui

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween/ease"
)

func TestTweenTranslation(t *testing.T) {
	s := NewScene()
	e := spawnTestSurface(s, 1, 1, 10, 10)
	g := TweenTranslation(e, mgl32.Vec3{10, 0, -4}, 1, ease.Linear)

	g.Update(0.5)
	if g.Done {
		t.Fatal("tween finished early")
	}
	if !vecNear(e.Transform.Translation, mgl32.Vec3{5, 0, -2}, testEps) {
		t.Errorf("halfway = %v, want (5, 0, -2)", e.Transform.Translation)
	}

	g.Update(0.5)
	if !g.Done {
		t.Error("tween should be done")
	}
	if !vecNear(e.Transform.Translation, mgl32.Vec3{10, 0, -4}, testEps) {
		t.Errorf("end = %v", e.Transform.Translation)
	}
}

func TestTweenScaleFromUnit(t *testing.T) {
	s := NewScene()
	e := spawnTestSurface(s, 1, 1, 10, 10)
	g := TweenScale(e, mgl32.Vec3{2, 2, 2}, 1, ease.Linear)
	g.Update(1)
	if !vecNear(e.Transform.Scale, mgl32.Vec3{2, 2, 2}, testEps) {
		t.Errorf("Scale = %v", e.Transform.Scale)
	}
}

func TestTweenYawKeepsTranslationMapping(t *testing.T) {
	s := NewScene()
	e := spawnTestSurface(s, 2, 2, 100, 100)
	g := TweenYaw(e, 0, math.Pi/2, 1, ease.Linear)
	g.Update(1)

	// After a quarter turn about Y, local +X points along world -Z.
	got := e.Transform.LocalToWorld(mgl32.Vec3{1, 0, 0})
	if !vecNear(got, mgl32.Vec3{0, 0, -1}, testEps) {
		t.Errorf("local +X -> %v, want (0, 0, -1)", got)
	}

	s.SendMove(PointerMove[EntityID]{Target: e.ID, Position: vec(0, 0, -0.5), Normal: up})
	s.Update()
	evs := e.Input.Drain()
	if len(evs) != 1 || posDist(evs[0].Pos, Pos2{X: 75, Y: 50}) > 0.01 {
		t.Errorf("events = %+v, want move at (75, 50)", evs)
	}
}

func TestTweenStopsAfterDespawn(t *testing.T) {
	s := NewScene()
	e := spawnTestSurface(s, 1, 1, 10, 10)
	g := TweenTranslation(e, mgl32.Vec3{10, 0, 0}, 1, ease.Linear)

	s.Despawn(e.ID)
	g.Update(0.5)

	if !g.Done {
		t.Error("tween should stop once its surface is despawned")
	}
	if e.Transform.Translation != (mgl32.Vec3{}) {
		t.Errorf("despawned surface was moved to %v", e.Transform.Translation)
	}
}
