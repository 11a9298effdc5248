package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Accelerate applies the direction-projected acceleration used for both ground and air movement.
// The velocity is only ever pushed along dir until its projection onto dir reaches maxSpeed, which
// lets strafing add speed up to the cap without exceeding it in the move direction. dir must be a
// unit vector or zero.
func Accelerate(vel, dir mgl32.Vec3, maxSpeed, accel, dt float32) mgl32.Vec3 {
	addSpeed := maxSpeed - vel.Dot(dir)
	if addSpeed <= 0 {
		return vel
	}
	accelSpeed := math32.Min(accel*maxSpeed*dt, addSpeed)
	return vel.Add(dir.Mul(accelSpeed))
}

// ClipVelocity removes the component of vel directed into the surface with the given unit normal,
// scaled by overbounce. Velocity already moving away from the surface is left untouched.
func ClipVelocity(vel, normal mgl32.Vec3, overbounce float32) mgl32.Vec3 {
	backoff := vel.Dot(normal)
	if backoff >= 0 {
		return vel
	}
	return vel.Sub(normal.Mul(backoff * overbounce))
}

// ApplyFriction decelerates the horizontal component of vel. Speeds under stopSpeed are treated as
// stopSpeed so the controller comes to rest in finite time, and the result never reverses direction.
func ApplyFriction(vel mgl32.Vec3, friction, stopSpeed, dt float32) mgl32.Vec3 {
	speed := Vec3HzLen(vel)
	if speed < MinSpeed {
		vel[0], vel[2] = 0, 0
		return vel
	}

	control := math32.Max(speed, stopSpeed)
	newSpeed := math32.Max(speed-control*friction*dt, 0)
	scale := newSpeed / speed
	vel[0] *= scale
	vel[2] *= scale
	return vel
}

// Jump returns vel with the jump impulse applied. The result always moves upward with at least
// jumpForce, while any downward velocity is fully overridden.
func Jump(vel mgl32.Vec3, jumpForce float32) mgl32.Vec3 {
	vel[1] = math32.Max(vel[1]+jumpForce, jumpForce)
	return vel
}

// ArcVelocity solves the launch velocity that carries a point from start to end in exactly
// duration seconds under the given (signed) gravity.
func ArcVelocity(start, end mgl32.Vec3, duration, gravity float32) mgl32.Vec3 {
	duration = math32.Max(duration, MinDuration)
	delta := end.Sub(start)
	return mgl32.Vec3{
		delta.X() / duration,
		(delta.Y() - 0.5*gravity*duration*duration) / duration,
		delta.Z() / duration,
	}
}
