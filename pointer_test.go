package worldui

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRouteDispatchesByKind(t *testing.T) {
	hit := NewPickHit(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 1, 0}, 4)

	var moves []PointerMove[int]
	var clicks []PointerClick[int]
	onMove := func(e PointerMove[int]) { moves = append(moves, e) }
	onClick := func(e PointerClick[int]) { clicks = append(clicks, e) }

	Route(PickEvent[int]{Kind: PickMove, Target: 1, Hit: hit}, onMove, onClick)
	Route(PickEvent[int]{Kind: PickClick, Target: 2, Hit: hit}, onMove, onClick)
	Route(PickEvent[int]{Kind: PickKind(42), Target: 3, Hit: hit}, onMove, onClick)

	if len(moves) != 1 || moves[0].Target != 1 || *moves[0].Position != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("moves = %+v", moves)
	}
	if len(clicks) != 1 || clicks[0].Target != 2 || !clicks[0].Resolved() {
		t.Errorf("clicks = %+v", clicks)
	}
}

func TestPointerEventResolved(t *testing.T) {
	p := mgl32.Vec3{}
	if (PointerMove[int]{}).Resolved() {
		t.Error("empty move should not be resolved")
	}
	if (PointerMove[int]{Position: &p}).Resolved() {
		t.Error("move without normal should not be resolved")
	}
	if !(PointerClick[int]{Position: &p, Normal: &p}).Resolved() {
		t.Error("click with position and normal should be resolved")
	}
}

func TestMoveFromPickLeave(t *testing.T) {
	m := MoveFromPick(PickEvent[string]{Kind: PickMove, Target: "x"})
	if m.Target != "x" || m.Position != nil || m.Normal != nil {
		t.Errorf("leave conversion = %+v", m)
	}
}
