package input

import "github.com/go-gl/mathgl/mgl32"

// Action is a named input action. Sources are free to bind actions to any device.
type Action string

const (
	ActionMove   Action = "move"
	ActionLook   Action = "look"
	ActionJump   Action = "jump"
	ActionCrouch Action = "crouch"
	ActionSprint Action = "sprint"
	ActionWalk   Action = "walk"
	ActionVault  Action = "vault"
	ActionSlide  Action = "slide"
	ActionDash   Action = "dash"
	ActionNoclip Action = "noclip"
)

// Source is queried by the controller once per tick. Implementations only need to answer boolean
// and vector queries keyed by action.
type Source interface {
	// Axis returns the 2D axis bound to the action. For ActionMove, X is strafe and Y is forward.
	// For ActionLook, X is yaw delta and Y is pitch delta.
	Axis(a Action) mgl32.Vec2
	// Key returns true while the action is held.
	Key(a Action) bool
	// KeyDown returns true on the tick the action was first pressed.
	KeyDown(a Action) bool
	// KeyUp returns true on the tick the action was released.
	KeyUp(a Action) bool
	// Scroll returns the scroll delta accumulated since the previous tick.
	Scroll() float32
}

// Nop is a Source that never reports any input.
type Nop struct{}

func (Nop) Axis(Action) mgl32.Vec2 { return mgl32.Vec2{} }
func (Nop) Key(Action) bool        { return false }
func (Nop) KeyDown(Action) bool    { return false }
func (Nop) KeyUp(Action) bool      { return false }
func (Nop) Scroll() float32        { return 0 }
