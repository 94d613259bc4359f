package worldui

import "testing"

func TestNewSurface(t *testing.T) {
	s := NewSurface(2, 0.5)
	if s.Width != 2 || s.Height != 0.5 {
		t.Errorf("got %+v", s)
	}
	if !s.Valid() {
		t.Error("expected valid surface")
	}
}

func TestNewSurfaceInvalidPanics(t *testing.T) {
	tests := []struct {
		name string
		w, h float32
	}{
		{"zero width", 0, 1},
		{"negative height", 1, -1},
		{"both zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("NewSurface(%v, %v) should panic", tt.w, tt.h)
				}
			}()
			NewSurface(tt.w, tt.h)
		})
	}
}

func TestSurfaceExtent(t *testing.T) {
	minX, minZ, maxX, maxZ := NewSurface(4, 2).Extent()
	if minX != -2 || maxX != 2 || minZ != -1 || maxZ != 1 {
		t.Errorf("Extent = (%v, %v, %v, %v)", minX, minZ, maxX, maxZ)
	}
}

func TestSurfaceContainsLocal(t *testing.T) {
	s := NewSurface(2, 2)
	if !s.ContainsLocal(1, 1, 0) {
		t.Error("edge should be inside")
	}
	if s.ContainsLocal(1.05, 0, 0) {
		t.Error("point past edge should be outside without tolerance")
	}
	if !s.ContainsLocal(1.05, 0, 0.1) {
		t.Error("point past edge should be inside with tolerance")
	}
}
