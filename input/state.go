package input

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Frame is a serialisable snapshot of the input for a single tick.
type Frame struct {
	Move   mgl32.Vec2 `json:"move"`
	Look   mgl32.Vec2 `json:"look"`
	Held   []Action   `json:"held,omitempty"`
	Scroll float32    `json:"scroll,omitempty"`
}

// Holding returns a copy of the frame with the given actions added to the held set.
func (f Frame) Holding(actions ...Action) Frame {
	held := slices.Clone(f.Held)
	for _, a := range actions {
		if !slices.Contains(held, a) {
			held = append(held, a)
		}
	}
	f.Held = held
	return f
}

// State is a Source fed one Frame per tick. Key edges are derived from the previous frame.
type State struct {
	current Frame
	held    map[Action]struct{}
	last    map[Action]struct{}
}

// NewState returns an empty input state.
func NewState() *State {
	return &State{
		held: make(map[Action]struct{}),
		last: make(map[Action]struct{}),
	}
}

// Push replaces the current frame. It must be called once per tick, before the controller ticks.
func (s *State) Push(f Frame) {
	s.last, s.held = s.held, s.last
	clear(s.held)
	for _, a := range f.Held {
		s.held[a] = struct{}{}
	}
	s.current = f
}

// Frame returns the frame most recently pushed.
func (s *State) Frame() Frame {
	return s.current
}

func (s *State) Axis(a Action) mgl32.Vec2 {
	switch a {
	case ActionMove:
		return s.current.Move
	case ActionLook:
		return s.current.Look
	default:
		return mgl32.Vec2{}
	}
}

func (s *State) Key(a Action) bool {
	_, ok := s.held[a]
	return ok
}

func (s *State) KeyDown(a Action) bool {
	_, now := s.held[a]
	_, before := s.last[a]
	return now && !before
}

func (s *State) KeyUp(a Action) bool {
	_, now := s.held[a]
	_, before := s.last[a]
	return !now && before
}

func (s *State) Scroll() float32 {
	return s.current.Scroll
}
