package worldui

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

var downRay = Ray{Origin: mgl32.Vec3{0, 5, 0}, Dir: mgl32.Vec3{0, -1, 0}}

func TestIntersectSurfaceHit(t *testing.T) {
	p, n, d, ok := IntersectSurface(downRay, NewSurface(2, 2), IdentityTransform(), 0)
	if !ok {
		t.Fatal("expected hit")
	}
	if !vecNear(p, mgl32.Vec3{}, testEps) || !vecNear(n, mgl32.Vec3{0, 1, 0}, testEps) {
		t.Errorf("hit = %v normal = %v", p, n)
	}
	if !floatNear(d, 5, testEps) {
		t.Errorf("distance = %v, want 5", d)
	}
}

func TestIntersectSurfaceMisses(t *testing.T) {
	s := NewSurface(2, 2)
	tests := []struct {
		name string
		ray  Ray
	}{
		{"outside extent", Ray{Origin: mgl32.Vec3{3, 5, 0}, Dir: mgl32.Vec3{0, -1, 0}}},
		{"behind origin", Ray{Origin: mgl32.Vec3{0, 5, 0}, Dir: mgl32.Vec3{0, 1, 0}}},
		{"parallel", Ray{Origin: mgl32.Vec3{0, 1, 0}, Dir: mgl32.Vec3{1, 0, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, _, ok := IntersectSurface(tt.ray, s, IdentityTransform(), 0); ok {
				t.Error("expected miss")
			}
		})
	}
}

func TestIntersectSurfaceTolerance(t *testing.T) {
	r := Ray{Origin: mgl32.Vec3{1.05, 5, 0}, Dir: mgl32.Vec3{0, -1, 0}}
	if _, _, _, ok := IntersectSurface(r, NewSurface(2, 2), IdentityTransform(), 0); ok {
		t.Error("expected miss without tolerance")
	}
	if _, _, _, ok := IntersectSurface(r, NewSurface(2, 2), IdentityTransform(), 0.1); !ok {
		t.Error("expected hit with tolerance")
	}
}

func TestIntersectSurfaceRotated(t *testing.T) {
	// Upright panel facing +Z, hit from the front.
	tf := NewTransform(mgl32.Vec3{0, 1, 0}, mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{1, 0, 0}))
	r := Ray{Origin: mgl32.Vec3{0.5, 1.25, 4}, Dir: mgl32.Vec3{0, 0, -1}}
	p, _, _, ok := IntersectSurface(r, NewSurface(2, 1), tf, 0)
	if !ok {
		t.Fatal("expected hit")
	}
	uv, _ := SurfaceUV(NewSurface(2, 1), tf, p)
	// Local +Z maps to world -Y, so a point above center has v < 0.5.
	if !vec2Near(uv, mgl32.Vec2{0.75, 0.25}, testEps) {
		t.Errorf("uv = %v, want (0.75, 0.25)", uv)
	}
}

func TestPickNearest(t *testing.T) {
	cands := []Pickable[string]{
		{Target: "low", Surface: NewSurface(2, 2), Transform: IdentityTransform()},
		{Target: "high", Surface: NewSurface(2, 2), Transform: NewTransform(mgl32.Vec3{0, 1, 0}, mgl32.QuatIdent())},
	}
	target, hit, ok := PickNearest(downRay, cands, 0)
	if !ok || target != "high" {
		t.Fatalf("PickNearest = %q (%v), want high", target, ok)
	}
	if hit.Position == nil || !floatNear(hit.Position.Y(), 1, testEps) {
		t.Errorf("hit = %+v", hit)
	}
}

func TestPickerHoverLeave(t *testing.T) {
	cands := []Pickable[string]{
		{Target: "a", Surface: NewSurface(2, 2), Transform: IdentityTransform()},
		{Target: "b", Surface: NewSurface(2, 2), Transform: NewTransform(mgl32.Vec3{5, 0, 0}, mgl32.QuatIdent())},
	}
	var p Picker[string]

	evs := p.Move(downRay, cands)
	if len(evs) != 1 || evs[0].Target != "a" || evs[0].Hit.Position == nil {
		t.Fatalf("first move = %+v", evs)
	}

	overB := Ray{Origin: mgl32.Vec3{5, 5, 0}, Dir: mgl32.Vec3{0, -1, 0}}
	evs = p.Move(overB, cands)
	if len(evs) != 2 {
		t.Fatalf("expected leave + move, got %+v", evs)
	}
	if evs[0].Target != "a" || evs[0].Hit.Position != nil {
		t.Errorf("expected position-less leave on a, got %+v", evs[0])
	}
	if evs[1].Target != "b" || evs[1].Hit.Position == nil {
		t.Errorf("expected move on b, got %+v", evs[1])
	}

	miss := Ray{Origin: mgl32.Vec3{50, 5, 0}, Dir: mgl32.Vec3{0, -1, 0}}
	evs = p.Move(miss, cands)
	if len(evs) != 1 || evs[0].Target != "b" || evs[0].Hit.Position != nil {
		t.Errorf("expected leave on b, got %+v", evs)
	}
	if _, hovering := p.Hovered(); hovering {
		t.Error("picker should not be hovering after a miss")
	}
	if evs = p.Move(miss, cands); len(evs) != 0 {
		t.Errorf("repeated miss should emit nothing, got %+v", evs)
	}
}

func TestPickerClick(t *testing.T) {
	cands := []Pickable[int]{{Target: 7, Surface: NewSurface(1, 1), Transform: IdentityTransform()}}
	var p Picker[int]
	ev, ok := p.Click(downRay, cands)
	if !ok || ev.Kind != PickClick || ev.Target != 7 {
		t.Errorf("Click = %+v (%v)", ev, ok)
	}
	if _, ok := p.Click(Ray{Origin: mgl32.Vec3{9, 5, 0}, Dir: mgl32.Vec3{0, -1, 0}}, cands); ok {
		t.Error("expected no click on miss")
	}
}

func TestPickerReset(t *testing.T) {
	cands := []Pickable[int]{{Target: 3, Surface: NewSurface(2, 2), Transform: IdentityTransform()}}
	var p Picker[int]
	p.Move(downRay, cands)
	p.Reset()

	if _, ok := p.Hovered(); ok {
		t.Fatal("Reset should clear the hover")
	}
	miss := Ray{Origin: mgl32.Vec3{50, 5, 0}, Dir: mgl32.Vec3{0, -1, 0}}
	if evs := p.Move(miss, cands); len(evs) != 0 {
		t.Errorf("Move after Reset emitted %+v, want no leave", evs)
	}
}
