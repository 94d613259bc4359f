package worldui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointerState tracks the single mouse pointer between frames.
type pointerState struct {
	lastX, lastY float32
	seen         bool
}

// SetCamera sets the camera and viewport size used to turn screen-space
// pointer samples (live mouse input and injected samples) into rays.
func (s *Scene) SetCamera(cam *Camera, width, height int) {
	s.camera = cam
	s.viewW = width
	s.viewH = height
}

// Camera returns the camera set by SetCamera.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// EnableMouseInput turns live Ebitengine mouse input on or off. When on,
// each Update reads the cursor and left button, picks against the scene's
// surfaces through the camera, and queues the resulting moves and clicks.
func (s *Scene) EnableMouseInput(enabled bool) {
	s.liveInput = enabled
}

// processInput is called from Scene.Update. Injected samples take priority
// over live mouse input for the frame.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	if !s.liveInput || s.camera == nil {
		return
	}
	mx, my := ebiten.CursorPosition()
	clicked := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	s.ProcessPointer(float32(mx), float32(my), clicked)
}

// ProcessPointer feeds one screen-space pointer sample through camera and
// picker. A move is picked only when the position changed since the last
// sample; a click is picked when clicked is true. Does nothing without a
// camera or with an invalid viewport.
func (s *Scene) ProcessPointer(sx, sy float32, clicked bool) {
	if s.camera == nil {
		return
	}
	moved := !s.pointer.seen || sx != s.pointer.lastX || sy != s.pointer.lastY
	if !moved && !clicked {
		return
	}
	ray, err := s.camera.ScreenRay(sx, sy, s.viewW, s.viewH)
	if err != nil {
		return
	}
	s.pointer.lastX, s.pointer.lastY, s.pointer.seen = sx, sy, true

	cands := s.pickables()
	if moved {
		for _, p := range s.picker.Move(ray, cands) {
			s.SendPick(p)
		}
	}
	if clicked {
		if p, ok := s.picker.Click(ray, cands); ok {
			s.SendPick(p)
		}
	}
}

// Hovered returns the surface currently under the pointer, if any.
func (s *Scene) Hovered() (EntityID, bool) {
	return s.picker.Hovered()
}
