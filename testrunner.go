package worldui

import (
	"encoding/json"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// replayStep is a single action in a replay script.
type replayStep struct {
	Action   string      `json:"action"`
	Target   EntityID    `json:"target,omitempty"`
	Position *[3]float32 `json:"position,omitempty"`
	Normal   *[3]float32 `json:"normal,omitempty"`
	X        float32     `json:"x,omitempty"`
	Y        float32     `json:"y,omitempty"`
	Click    bool        `json:"click,omitempty"`
	Frames   int         `json:"frames,omitempty"`
	Label    string      `json:"label,omitempty"`
}

// replayScript is the top-level JSON structure for a replay script.
type replayScript struct {
	Steps []replayStep `json:"steps"`
}

// Replay sequences recorded pointer interactions across frames for
// automated testing. Attach to a Scene via SetReplay.
//
// Actions:
//
//	move   {"target": 1, "position": [x,y,z], "normal": [x,y,z]}
//	click  {"target": 1, "position": [x,y,z]}
//	leave  {"target": 1}
//	screen {"x": 320, "y": 240, "click": true}
//	wait   {"frames": 3}
//	screenshot {"label": "after-click", "target": 1}
//
// A move or click without a normal uses the target surface's current
// normal. A screenshot with a target captures that surface's texture
// instead of the drawn frame. Each step runs on its own frame.
type Replay struct {
	steps     []replayStep
	cursor    int
	waitCount int
	done      bool
}

// LoadReplay parses a JSON replay script.
func LoadReplay(jsonData []byte) (*Replay, error) {
	var script replayScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse replay: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse replay: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "move", "click":
			if st.Position == nil {
				return nil, fmt.Errorf("parse replay: step %d: %s needs a position", i, st.Action)
			}
		}
	}
	return &Replay{steps: script.Steps}, nil
}

// SetReplay attaches a replay to the scene. Its step method is called at
// the start of each Scene.Update.
func (s *Scene) SetReplay(r *Replay) {
	s.replay = r
}

// Done reports whether every step has executed.
func (r *Replay) Done() bool {
	return r.done
}

// step advances the replay by one frame.
func (r *Replay) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for injected screen samples to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "move":
		pos, n := r.hit(s, st)
		s.SendMove(PointerMove[EntityID]{Target: st.Target, Position: pos, Normal: n})
	case "click":
		pos, n := r.hit(s, st)
		s.SendClick(PointerClick[EntityID]{Target: st.Target, Position: pos, Normal: n})
	case "leave":
		s.SendMove(PointerMove[EntityID]{Target: st.Target})
	case "screen":
		if st.Click {
			s.InjectClick(st.X, st.Y)
		} else {
			s.InjectMove(st.X, st.Y)
		}
	case "screenshot":
		if st.Target != 0 {
			s.ScreenshotSurface(st.Target, st.Label)
		} else {
			s.Screenshot(st.Label)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	default:
		Logger().Warn("worldui: unknown replay action", "action", st.Action, "step", r.cursor-1)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}

// hit returns the step's position and normal. A missing normal is taken
// from the target surface, falling back to +Y.
func (r *Replay) hit(s *Scene, st replayStep) (pos, normal *mgl32.Vec3) {
	p := mgl32.Vec3(*st.Position)
	pos = &p
	var n mgl32.Vec3
	switch {
	case st.Normal != nil:
		n = mgl32.Vec3(*st.Normal)
	case s.Surface(st.Target) != nil:
		n = s.Surface(st.Target).Transform.Normal()
	default:
		n = mgl32.Vec3{0, 1, 0}
	}
	return pos, &n
}
