package player

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/strafe/world"
)

// Stance is the discrete posture of the player.
type Stance uint8

const (
	StanceStand Stance = iota
	StanceCrouch
)

func (s Stance) String() string {
	if s == StanceCrouch {
		return "crouch"
	}
	return "stand"
}

// Regime is the integrator branch selected from the probe results.
type Regime uint8

const (
	RegimeGround Regime = iota
	RegimeSurf
	RegimeAir
)

func (r Regime) String() string {
	switch r {
	case RegimeGround:
		return "ground"
	case RegimeSurf:
		return "surf"
	default:
		return "air"
	}
}

// CollisionResult is the output of a single probe. It is recomputed every tick.
type CollisionResult struct {
	Hit      bool
	Normal   mgl32.Vec3
	Point    mgl32.Vec3
	Distance float32
	// Angle is the angle between the contact normal and up, in degrees.
	Angle    float32
	Collider world.Collider
}

// Capsule is the current, possibly interpolated, collision capsule of the player.
type Capsule struct {
	Radius       float32
	Height       float32
	CameraHeight float32
}

// MovementState is the movement state mutated once per tick and read by every processor. Pos is
// the bottom of the capsule.
type MovementState struct {
	Pos, LastPos mgl32.Vec3
	Vel, LastVel mgl32.Vec3

	// Yaw and Pitch are in degrees. Positive pitch looks down.
	Yaw, Pitch float32
	Tilt       float32

	Grounded    bool
	WasGrounded bool
	Ceiling     bool
	Side        bool
	Walkable    bool
	Regime      Regime

	Stance Stance

	FallTimer   float32
	GroundTimer float32
	// JumpArmed is true while a jump may still be spent in the current airtime.
	JumpArmed bool
}

func (s *MovementState) SetPos(pos mgl32.Vec3) {
	s.LastPos = s.Pos
	s.Pos = pos
}

func (s *MovementState) SetVel(vel mgl32.Vec3) {
	s.LastVel = s.Vel
	s.Vel = vel
}
