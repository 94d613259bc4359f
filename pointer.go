package worldui

import "github.com/go-gl/mathgl/mgl32"

// PointerMove is a raw hover-move interaction on a surface. Position and
// Normal are nil when the picking backend had no concrete hit for the frame
// (for example when the pointer left the surface).
type PointerMove[K comparable] struct {
	Target   K
	Position *mgl32.Vec3
	Normal   *mgl32.Vec3
}

// Resolved reports whether the event carries a hit position and normal.
func (e PointerMove[K]) Resolved() bool {
	return e.Position != nil && e.Normal != nil
}

// PointerClick is a raw click interaction on a surface. The picking backend
// does not report press and release separately; the translator synthesizes
// both from one click.
type PointerClick[K comparable] struct {
	Target   K
	Position *mgl32.Vec3
	Normal   *mgl32.Vec3
}

// Resolved reports whether the event carries a hit position and normal.
func (e PointerClick[K]) Resolved() bool {
	return e.Position != nil && e.Normal != nil
}

// PickKind identifies the kind of a generic pick payload.
type PickKind uint8

const (
	PickMove  PickKind = iota // pointer moved over a surface
	PickClick                 // pointer clicked a surface
)

// String returns a short name for the kind.
func (k PickKind) String() string {
	switch k {
	case PickMove:
		return "move"
	case PickClick:
		return "click"
	default:
		return "unknown"
	}
}

// PickHit is the optional spatial part of a pick.
type PickHit struct {
	Position *mgl32.Vec3
	Normal   *mgl32.Vec3
	Distance float32
}

// NewPickHit returns a resolved hit.
func NewPickHit(position, normal mgl32.Vec3, distance float32) PickHit {
	return PickHit{Position: &position, Normal: &normal, Distance: distance}
}

// PickEvent is the generic payload produced by a picking backend.
type PickEvent[K comparable] struct {
	Kind   PickKind
	Target K
	Hit    PickHit
}

// MoveFromPick converts a pick payload into a PointerMove.
func MoveFromPick[K comparable](p PickEvent[K]) PointerMove[K] {
	return PointerMove[K]{Target: p.Target, Position: p.Hit.Position, Normal: p.Hit.Normal}
}

// ClickFromPick converts a pick payload into a PointerClick.
func ClickFromPick[K comparable](p PickEvent[K]) PointerClick[K] {
	return PointerClick[K]{Target: p.Target, Position: p.Hit.Position, Normal: p.Hit.Normal}
}

// Route converts p into its typed variant and hands it to the matching
// function. This is the only place a pick's kind is inspected. Unknown kinds
// are dropped.
func Route[K comparable](p PickEvent[K], onMove func(PointerMove[K]), onClick func(PointerClick[K])) {
	switch p.Kind {
	case PickMove:
		onMove(MoveFromPick(p))
	case PickClick:
		onClick(ClickFromPick(p))
	}
}
