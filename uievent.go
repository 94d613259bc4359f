package worldui

// UIEventKind distinguishes the shape of a synthetic UI event.
type UIEventKind uint8

const (
	UIPointerMoved  UIEventKind = iota // pointer moved to Pos
	UIPointerButton                    // Button pressed or released at Pos
)

// String returns a short name for the kind.
func (k UIEventKind) String() string {
	switch k {
	case UIPointerMoved:
		return "pointer-moved"
	case UIPointerButton:
		return "pointer-button"
	default:
		return "unknown"
	}
}

// UIEvent is a synthetic input event in the pixel space of a surface's
// backing buffer, shaped the way an immediate-mode UI toolkit consumes
// native pointer events. Button, Pressed and Modifiers are only meaningful
// for UIPointerButton.
type UIEvent struct {
	Kind      UIEventKind
	Pos       Pos2
	Button    PointerButton
	Pressed   bool
	Modifiers KeyModifiers
}

// PointerMovedEvent returns a UIPointerMoved event at pos.
func PointerMovedEvent(pos Pos2) UIEvent {
	return UIEvent{Kind: UIPointerMoved, Pos: pos}
}

// PointerButtonEvent returns a primary-button event at pos with no modifiers.
func PointerButtonEvent(pos Pos2, pressed bool) UIEvent {
	return UIEvent{
		Kind:      UIPointerButton,
		Pos:       pos,
		Button:    PointerPrimary,
		Pressed:   pressed,
		Modifiers: ModNone,
	}
}

// InputQueue is the per-surface queue of synthetic events. The translator
// appends; the UI toolkit drains it on its own update pass.
type InputQueue struct {
	events []UIEvent
}

// Push appends events in order.
func (q *InputQueue) Push(events ...UIEvent) {
	q.events = append(q.events, events...)
}

// Len returns the number of queued events.
func (q *InputQueue) Len() int {
	return len(q.events)
}

// Events returns the queued events without consuming them. The returned
// slice MUST NOT be mutated.
func (q *InputQueue) Events() []UIEvent {
	return q.events
}

// Drain returns all queued events and empties the queue. Ownership of the
// returned slice passes to the caller.
func (q *InputQueue) Drain() []UIEvent {
	out := q.events
	q.events = nil
	return out
}
