package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// RoundVec32 will round a 32-bit vector to a given precision.
func RoundVec32(v mgl32.Vec3, p int) mgl32.Vec3 {
	return mgl32.Vec3{Round32(v.X(), p), Round32(v.Y(), p), Round32(v.Z(), p)}
}

// Clamp clamps the given value to the given range.
func Clamp(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// Lerp interpolates a towards b by t, with t clamped to [0, 1].
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*Clamp(t, 0, 1)
}

// MoveTowards moves current towards target by at most maxDelta without overshooting.
func MoveTowards(current, target, maxDelta float32) float32 {
	if math32.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

// Forward returns the horizontal forward vector for the given yaw in degrees.
func Forward(yaw float32) mgl32.Vec3 {
	yawRad := mgl32.DegToRad(yaw)
	return mgl32.Vec3{math32.Sin(yawRad), 0, math32.Cos(yawRad)}
}

// Right returns the horizontal right vector for the given yaw in degrees.
func Right(yaw float32) mgl32.Vec3 {
	yawRad := mgl32.DegToRad(yaw)
	return mgl32.Vec3{math32.Cos(yawRad), 0, -math32.Sin(yawRad)}
}

// DirectionVector returns a direction vector from the given yaw and pitch values. Positive pitch
// looks down.
func DirectionVector(yaw, pitch float32) mgl32.Vec3 {
	yawRad, pitchRad := mgl32.DegToRad(yaw), mgl32.DegToRad(pitch)
	m := math32.Cos(pitchRad)

	return mgl32.Vec3{
		m * math32.Sin(yawRad),
		-math32.Sin(pitchRad),
		m * math32.Cos(yawRad),
	}
}

// WrapYaw wraps a yaw value into [0, 360).
func WrapYaw(yaw float32) float32 {
	yaw = math32.Mod(yaw, 360)
	if yaw < 0 {
		yaw += 360
	}
	return yaw
}

// Horizontal returns the vector with its Y component removed.
func Horizontal(vec3 mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{vec3.X(), 0, vec3.Z()}
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3.X()*vec3.X() + vec3.Z()*vec3.Z()
}

// Vec3HzLen returns the horizontal length of a vector.
func Vec3HzLen(vec3 mgl32.Vec3) float32 {
	return math32.Sqrt(Vec3HzDistSqr(vec3))
}

// SafeNormalize normalizes the vector, returning false and a zero vector if it is too short to
// have a meaningful direction.
func SafeNormalize(vec3 mgl32.Vec3) (mgl32.Vec3, bool) {
	l := vec3.Len()
	if l < MinDirectionLength {
		return mgl32.Vec3{}, false
	}
	return vec3.Mul(1 / l), true
}

// ProjectOnPlane removes the component of v along the plane normal n. n must be unit length.
func ProjectOnPlane(v, n mgl32.Vec3) mgl32.Vec3 {
	return v.Sub(n.Mul(v.Dot(n)))
}

// Angle returns the angle between two vectors in degrees. Zero-length vectors yield 0.
func Angle(a, b mgl32.Vec3) float32 {
	an, ok := SafeNormalize(a)
	if !ok {
		return 0
	}
	bn, ok := SafeNormalize(b)
	if !ok {
		return 0
	}
	return mgl32.RadToDeg(math32.Acos(Clamp(an.Dot(bn), -1, 1)))
}

// LerpVec3 interpolates a towards b by t, with t clamped to [0, 1].
func LerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(Clamp(t, 0, 1)))
}
