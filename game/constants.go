package game

import "github.com/go-gl/mathgl/mgl32"

var (
	// Up is the world up axis. The simulation is Y-up with yaw 0 facing +Z.
	Up = mgl32.Vec3{0, 1, 0}
)

const (
	// DefaultOverbounce is the factor applied when clipping velocity against a surface, giving a
	// slight bounce-off instead of a hard stop.
	DefaultOverbounce = float32(1.05)
	// GroundInfoRangeMultiplier scales the ground probe distance for the second, longer cast that
	// gathers slope information.
	GroundInfoRangeMultiplier = float32(2.5)
	// SurfAirSpeedMultiplier boosts air speed while surfing a steep slope.
	SurfAirSpeedMultiplier = float32(1.25)
	// LandingSnapVelocity is the vertical velocity set when landing on near-flat ground.
	LandingSnapVelocity = float32(-1)
	// LandingSnapMaxAngle is the steepest slope, in degrees, that still snaps on landing.
	LandingSnapMaxAngle = float32(5)
	// LedgeNormalTolerance is the max angle, in degrees, between a ledge surface normal and up.
	LedgeNormalTolerance = float32(5)

	// MinDuration guards divisions by an ability duration.
	MinDuration = float32(1e-3)
	// MinDirectionLength is the length under which a direction is treated as zero.
	MinDirectionLength = float32(1e-6)
	// MinSpeed is the horizontal speed under which friction stops the controller outright.
	MinSpeed = float32(1e-4)
)
