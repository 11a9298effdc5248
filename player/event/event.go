package event

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/strafe/world"
)

const (
	IDLand          = "strafe:land"
	IDJump          = "strafe:jump"
	IDCrouch        = "strafe:crouch"
	IDStand         = "strafe:stand"
	IDStep          = "strafe:step"
	IDColliderEnter = "strafe:collider_enter"
	IDColliderExit  = "strafe:collider_exit"
	IDAbilityStart  = "strafe:ability_start"
	IDAbilityEnd    = "strafe:ability_end"
)

// Event is an outbound notification produced during a tick and drained by the host afterwards.
type Event interface {
	ID() string
}

// Land is emitted on the tick the player goes from airborne to grounded.
type Land struct {
	// Airtime is the time, in seconds, spent airborne.
	Airtime float32
	// ImpactVelocity is the vertical velocity at the moment of landing, before any snapping.
	ImpactVelocity float32
	// FallHeight is the difference between the peak height of the airtime and the landing height.
	FallHeight float32
}

func (Land) ID() string { return IDLand }

// Jump is emitted when a jump impulse is applied.
type Jump struct {
	// Velocity is the velocity right after the impulse.
	Velocity mgl32.Vec3
	// Coyote is true if the jump was allowed by the coyote window rather than ground contact.
	Coyote bool
}

func (Jump) ID() string { return IDJump }

type Crouch struct{}

func (Crouch) ID() string { return IDCrouch }

type Stand struct{}

func (Stand) ID() string { return IDStand }

// Step is emitted when the mover climbs a step no higher than the configured step offset.
type Step struct {
	Height   float32
	Collider world.Collider
	Point    mgl32.Vec3
	Normal   mgl32.Vec3
}

func (Step) ID() string { return IDStep }

type ColliderEnter struct {
	Collider world.Collider
}

func (ColliderEnter) ID() string { return IDColliderEnter }

type ColliderExit struct {
	Collider world.Collider
}

func (ColliderExit) ID() string { return IDColliderExit }

// AbilityStart is emitted when an ability leaves its idle phase.
type AbilityStart struct {
	Ability string
	Type    string
}

func (AbilityStart) ID() string { return IDAbilityStart }

// AbilityEnd is emitted when an ability finishes or is cancelled.
type AbilityEnd struct {
	Ability   string
	Type      string
	Cancelled bool
}

func (AbilityEnd) ID() string { return IDAbilityEnd }
