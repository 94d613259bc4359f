package worldui

// syntheticPointerSample is a single injected screen-space pointer sample.
// Screen coordinates are used (matching what an automated tester sees in
// screenshots) and go through the camera and picker, identical to real
// mouse input.
type syntheticPointerSample struct {
	screenX, screenY float32
	clicked          bool
}

// InjectMove queues a pointer move to the given screen coordinates. The
// sample is consumed on the next Update.
func (s *Scene) InjectMove(x, y float32) {
	s.injectQueue = append(s.injectQueue, syntheticPointerSample{screenX: x, screenY: y})
}

// InjectClick queues a click at the given screen coordinates. The pointer
// moves there (if it is not already) and clicks in the same frame.
func (s *Scene) InjectClick(x, y float32) {
	s.injectQueue = append(s.injectQueue, syntheticPointerSample{screenX: x, screenY: y, clicked: true})
}

// InjectPath queues moves along a straight line from (fromX, fromY) to
// (toX, toY), one per frame over the given number of frames (minimum 2).
func (s *Scene) InjectPath(fromX, fromY, toX, toY float32, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float32(i) / float32(frames-1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// PendingInjected returns the number of injected samples not yet consumed.
func (s *Scene) PendingInjected() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one sample and feeds it through ProcessPointer.
// Returns true if a sample was consumed (live mouse input is skipped).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.ProcessPointer(evt.screenX, evt.screenY, evt.clicked)
	return true
}
