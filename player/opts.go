package player

import (
	"github.com/oomph-ac/strafe/oerror"
)

// CapsuleOpts describes the collision capsule and camera pivot of a stance.
type CapsuleOpts struct {
	Radius       float32
	Height       float32
	CameraHeight float32
	// Roughness is the rate at which the capsule and camera interpolate towards this stance.
	Roughness float32
}

type Opts struct {
	Stand  CapsuleOpts
	Crouch CapsuleOpts

	SkinWidth     float32
	GroundOffset  float32
	CeilingOffset float32
	SidesOffset   float32
	// SlopeLimit is the steepest walkable slope in degrees.
	SlopeLimit float32
	// StepOffset is the tallest step the mover climbs without jumping.
	StepOffset float32

	GroundSpeed         float32
	SpeedAccelerate     float32
	SprintMultiplier    float32
	CrouchMultiplier    float32
	WalkMultiplier      float32
	BackwardsMultiplier float32

	GroundAcceleration float32
	AirAcceleration    float32
	AirSpeed           float32
	Friction           float32
	StopSpeed          float32
	Overbounce         float32

	Gravity              float32
	JumpForce            float32
	CoyoteTime           float32
	LandingFrictionDelay float32
	JumpGroundLock       float32

	MaxDeltaTime float32
	MaxPitch     float32
	Sensitivity  float32
	FOV          float32
}

// DefaultOpts returns the options the player is tuned around.
func DefaultOpts() Opts {
	return Opts{
		Stand:  CapsuleOpts{Radius: 0.35, Height: 1.8, CameraHeight: 1.6, Roughness: 10},
		Crouch: CapsuleOpts{Radius: 0.35, Height: 1.0, CameraHeight: 0.85, Roughness: 12},

		SkinWidth:     0.02,
		GroundOffset:  0.1,
		CeilingOffset: 0.05,
		SidesOffset:   0.05,
		SlopeLimit:    45,
		StepOffset:    0.3,

		GroundSpeed:         2.5,
		SpeedAccelerate:     6,
		SprintMultiplier:    1.6,
		CrouchMultiplier:    0.5,
		WalkMultiplier:      0.5,
		BackwardsMultiplier: 0.8,

		GroundAcceleration: 10,
		AirAcceleration:    2,
		AirSpeed:           1,
		Friction:           6,
		StopSpeed:          1,
		Overbounce:         1.05,

		Gravity:              -20,
		JumpForce:            6,
		CoyoteTime:           0.15,
		LandingFrictionDelay: 0.033,
		JumpGroundLock:       0.1,

		MaxDeltaTime: 0.1,
		MaxPitch:     89,
		Sensitivity:  1,
		FOV:          90,
	}
}

func (c CapsuleOpts) validate(name string) error {
	if c.Radius <= 0 {
		return oerror.Newk(oerror.KindConfig, "%s capsule radius must be positive (got %v)", name, c.Radius)
	}
	if c.Height < c.Radius*2 {
		return oerror.Newk(oerror.KindConfig, "%s capsule height %v is shorter than its diameter %v", name, c.Height, c.Radius*2)
	}
	if c.CameraHeight < 0 || c.CameraHeight > c.Height {
		return oerror.Newk(oerror.KindConfig, "%s camera height %v is outside the capsule", name, c.CameraHeight)
	}
	if c.Roughness <= 0 {
		return oerror.Newk(oerror.KindConfig, "%s roughness must be positive", name)
	}
	return nil
}

// Validate reports the first misconfiguration found in the options.
func (o Opts) Validate() error {
	if err := o.Stand.validate("stand"); err != nil {
		return err
	}
	if err := o.Crouch.validate("crouch"); err != nil {
		return err
	}
	if o.Crouch.Height > o.Stand.Height {
		return oerror.Newk(oerror.KindConfig, "crouch height %v exceeds stand height %v", o.Crouch.Height, o.Stand.Height)
	}
	if o.SkinWidth < 0 || o.GroundOffset <= 0 || o.CeilingOffset < 0 || o.SidesOffset < 0 {
		return oerror.Newk(oerror.KindConfig, "probe offsets must not be negative and ground offset must be positive")
	}
	if o.SlopeLimit <= 0 || o.SlopeLimit >= 90 {
		return oerror.Newk(oerror.KindConfig, "slope limit must be within (0, 90) degrees (got %v)", o.SlopeLimit)
	}
	if o.StepOffset < 0 || o.StepOffset >= o.Stand.Height {
		return oerror.Newk(oerror.KindConfig, "step offset %v is invalid", o.StepOffset)
	}
	if o.GroundSpeed < 0 || o.SpeedAccelerate <= 0 {
		return oerror.Newk(oerror.KindConfig, "ground speed must not be negative and speed acceleration must be positive")
	}
	if o.Overbounce < 1 {
		return oerror.Newk(oerror.KindConfig, "overbounce must be at least 1 (got %v)", o.Overbounce)
	}
	if o.MaxDeltaTime <= 0 {
		return oerror.Newk(oerror.KindConfig, "max delta time must be positive")
	}
	return nil
}
