package input

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestStateEdges(t *testing.T) {
	s := NewState()
	s.Push(Frame{}.Holding(ActionJump))
	if !s.Key(ActionJump) || !s.KeyDown(ActionJump) {
		t.Fatal("expected jump held and pressed on the first frame")
	}

	s.Push(Frame{}.Holding(ActionJump))
	if !s.Key(ActionJump) || s.KeyDown(ActionJump) {
		t.Fatal("key down must only fire on the first frame")
	}

	s.Push(Frame{})
	if s.Key(ActionJump) || !s.KeyUp(ActionJump) {
		t.Fatal("expected key up on release")
	}
	s.Push(Frame{})
	if s.KeyUp(ActionJump) {
		t.Fatal("key up must only fire once")
	}
}

func TestStateAxes(t *testing.T) {
	s := NewState()
	s.Push(Frame{Move: mgl32.Vec2{0, 1}, Look: mgl32.Vec2{2, -1}, Scroll: 1})
	if s.Axis(ActionMove) != (mgl32.Vec2{0, 1}) || s.Axis(ActionLook) != (mgl32.Vec2{2, -1}) {
		t.Fatal("axes not reported")
	}
	if s.Axis(ActionJump) != (mgl32.Vec2{}) {
		t.Fatal("non-axis action should report zero")
	}
	if s.Scroll() != 1 {
		t.Fatal("scroll not reported")
	}
}

func TestHoldingDoesNotAlias(t *testing.T) {
	base := Frame{}.Holding(ActionSprint)
	a := base.Holding(ActionJump)
	b := base.Holding(ActionCrouch)
	if len(a.Held) != 2 || len(b.Held) != 2 || a.Held[1] == b.Held[1] {
		t.Fatalf("frames share a held slice: %v %v", a.Held, b.Held)
	}
}
