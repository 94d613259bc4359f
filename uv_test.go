package worldui

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSurfaceUV(t *testing.T) {
	s := NewSurface(4, 2)
	tests := []struct {
		name  string
		local mgl32.Vec3
		want  mgl32.Vec2
	}{
		{"center", mgl32.Vec3{0, 0, 0}, mgl32.Vec2{0.5, 0.5}},
		{"min corner", mgl32.Vec3{-2, 0, -1}, mgl32.Vec2{0, 0}},
		{"max corner", mgl32.Vec3{2, 0, 1}, mgl32.Vec2{1, 1}},
		{"off plane ignored", mgl32.Vec3{1, 3, 0}, mgl32.Vec2{0.75, 0.5}},
		{"past edge", mgl32.Vec3{2.2, 0, 0}, mgl32.Vec2{1.05, 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uv, ok := SurfaceUV(s, IdentityTransform(), tt.local)
			if !ok {
				t.Fatal("expected ok")
			}
			if !vec2Near(uv, tt.want, testEps) {
				t.Errorf("uv = %v, want %v", uv, tt.want)
			}
		})
	}
}

func TestUVToLocalInverse(t *testing.T) {
	s := NewSurface(3, 1.5)
	x, z := UVToLocal(s, LocalToUV(s, 0.9, -0.3))
	if !floatNear(x, 0.9, testEps) || !floatNear(z, -0.3, testEps) {
		t.Errorf("UVToLocal = (%v, %v), want (0.9, -0.3)", x, z)
	}
}

func TestUVToPixel(t *testing.T) {
	got := UVToPixel(mgl32.Vec2{0.25, 0.5}, 800, 600)
	if got != (Pos2{X: 200, Y: 300}) {
		t.Errorf("UVToPixel = %+v, want (200, 300)", got)
	}
}
