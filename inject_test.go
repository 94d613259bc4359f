package worldui

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestInjectOneSamplePerFrame(t *testing.T) {
	s, e := pointerScene(t)
	s.InjectMove(viewW/2, viewH/2)
	s.InjectClick(viewW/2, viewH/2)

	if s.PendingInjected() != 2 {
		t.Fatalf("PendingInjected = %d, want 2", s.PendingInjected())
	}

	s.Update()
	if s.PendingInjected() != 1 {
		t.Errorf("PendingInjected after one frame = %d, want 1", s.PendingInjected())
	}
	if n := e.Input.Len(); n != 1 {
		t.Errorf("after frame 1 got %d events, want 1 move", n)
	}

	s.Update()
	if s.PendingInjected() != 0 {
		t.Errorf("queue not drained: %d", s.PendingInjected())
	}
	if n := e.Input.Len(); n != 3 {
		t.Errorf("after frame 2 got %d events, want 3", n)
	}
}

func TestInjectClickMapsToPixel(t *testing.T) {
	s, e := pointerScene(t)

	// Local (0.5, 0, -0.25) sits in the upper right quadrant of the panel.
	local := mgl32.Vec3{0.5, 0, -0.25}
	world := e.Transform.LocalToWorld(local)
	sx, sy, ok := s.Camera().WorldToScreen(world, viewW, viewH)
	if !ok {
		t.Fatal("panel point off screen")
	}

	s.InjectClick(sx, sy)
	s.Update()

	evs := e.Input.Drain()
	if len(evs) != 3 {
		t.Fatalf("expected move + press + release, got %d", len(evs))
	}
	want := Pos2{X: 150, Y: 25}
	for _, ev := range evs {
		if d := posDist(ev.Pos, want); d > 1 {
			t.Errorf("event %+v, want pos ~%+v", ev, want)
		}
	}
}

func TestInjectPath(t *testing.T) {
	s, e := pointerScene(t)
	s.InjectPath(viewW/2-20, viewH/2, viewW/2+20, viewH/2, 5)
	if s.PendingInjected() != 5 {
		t.Fatalf("PendingInjected = %d, want 5", s.PendingInjected())
	}
	for i := 0; i < 5; i++ {
		s.Update()
	}

	evs := e.Input.Drain()
	if len(evs) != 5 {
		t.Fatalf("expected 5 moves, got %d", len(evs))
	}
	for i := 1; i < len(evs); i++ {
		if evs[i].Pos.X <= evs[i-1].Pos.X {
			t.Errorf("path not monotonic at %d: %v then %v", i, evs[i-1].Pos.X, evs[i].Pos.X)
		}
	}
}

func TestInjectPathMinimumFrames(t *testing.T) {
	s := NewScene()
	s.InjectPath(0, 0, 10, 10, 0)
	if s.PendingInjected() != 2 {
		t.Errorf("PendingInjected = %d, want 2", s.PendingInjected())
	}
}
