package game

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func randomUnit(r *rand.Rand) mgl32.Vec3 {
	for {
		v := mgl32.Vec3{r.Float32()*2 - 1, r.Float32()*2 - 1, r.Float32()*2 - 1}
		if n, ok := SafeNormalize(v); ok {
			return n
		}
	}
}

func TestAccelerateNeverExceedsCap(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		dir := randomUnit(r)
		vel := randomUnit(r).Mul(r.Float32() * 20)
		maxSpeed := r.Float32() * 10
		accel := r.Float32() * 50
		dt := r.Float32() * 0.1

		before := vel.Dot(dir)
		after := Accelerate(vel, dir, maxSpeed, accel, dt).Dot(dir)
		if before >= maxSpeed {
			if !Float32ApproxEq(before, after) {
				t.Fatalf("case %d: velocity above cap changed along dir (%f -> %f)", i, before, after)
			}
			continue
		}
		if after > maxSpeed+1e-4 {
			t.Fatalf("case %d: vel.dir = %f, want <= %f", i, after, maxSpeed)
		}
	}
}

func TestAccelerateStrafeAddsSpeed(t *testing.T) {
	vel := mgl32.Vec3{0, 0, 5}
	got := Accelerate(vel, mgl32.Vec3{1, 0, 0}, 1, 10, 0.1)
	if Vec3HzLen(got) <= Vec3HzLen(vel) {
		t.Fatalf("expected strafing to add speed, got %v", got)
	}
	if got.X() > 1+1e-5 {
		t.Fatalf("strafe component %f exceeds cap", got.X())
	}
}

func TestClipVelocityRemovesInwardComponent(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 2000; i++ {
		normal := randomUnit(r)
		vel := randomUnit(r).Mul(r.Float32() * 30)
		clipped := ClipVelocity(vel, normal, DefaultOverbounce)
		if d := clipped.Dot(normal); d < -1e-4 {
			t.Fatalf("case %d: clipped.normal = %f, want >= 0", i, d)
		}
		if vel.Dot(normal) >= 0 && clipped != vel {
			t.Fatalf("case %d: outward velocity was modified", i)
		}
	}
}

func TestClipVelocityOverbounce(t *testing.T) {
	got := ClipVelocity(mgl32.Vec3{0, -1, 0}, Up, DefaultOverbounce)
	if !Float32ApproxEq(got.Y(), 0.05) {
		t.Fatalf("expected slight bounce-off of 0.05, got %f", got.Y())
	}
}

func TestFrictionIsMonotonic(t *testing.T) {
	vel := mgl32.Vec3{3, 0, -4}
	last := Vec3HzLen(vel)
	for i := 0; i < 1000; i++ {
		next := ApplyFriction(vel, 6, 1, 1.0/60)
		speed := Vec3HzLen(next)
		if speed == 0 {
			return
		}
		if speed >= last {
			t.Fatalf("tick %d: speed did not decrease (%f -> %f)", i, last, speed)
		}
		if next.X()*vel.X() < 0 || next.Z()*vel.Z() < 0 {
			t.Fatalf("tick %d: friction reversed direction %v -> %v", i, vel, next)
		}
		vel, last = next, speed
	}
	t.Fatalf("friction never brought the controller to rest (speed=%f)", last)
}

func TestJumpMinimumImpulse(t *testing.T) {
	for _, vy := range []float32{-30, -1, 0, 2, 10} {
		got := Jump(mgl32.Vec3{0, vy, 0}, 6)
		if got.Y() < 6 {
			t.Fatalf("pre-jump vy=%f: got %f, want >= 6", vy, got.Y())
		}
	}
	if got := Jump(mgl32.Vec3{0, 2, 0}, 6); !Float32ApproxEq(got.Y(), 8) {
		t.Fatalf("upward velocity should stack with the impulse, got %f", got.Y())
	}
}

func TestArcVelocityLandsOnTarget(t *testing.T) {
	const (
		duration = float32(0.425)
		gravity  = float32(-20)
	)
	start := mgl32.Vec3{0, 0, 0}
	end := mgl32.Vec3{0, 1, 0.8}
	vel := ArcVelocity(start, end, duration, gravity)

	y := vel.Y()*duration + 0.5*gravity*duration*duration
	if math32.Abs(y-1) > 1e-4 {
		t.Fatalf("arc height at duration = %f, want 1", y)
	}
	if math32.Abs(vel.Z()*duration-0.8) > 1e-4 {
		t.Fatalf("arc horizontal displacement = %f, want 0.8", vel.Z()*duration)
	}
}

func TestArcVelocityZeroDuration(t *testing.T) {
	vel := ArcVelocity(mgl32.Vec3{}, mgl32.Vec3{0, 1, 1}, 0, -20)
	if math32.IsInf(vel.Y(), 0) || math32.IsNaN(vel.Y()) {
		t.Fatalf("zero duration produced a non-finite velocity %v", vel)
	}
}

func TestMoveTowards(t *testing.T) {
	if got := MoveTowards(0, 2.5, 0.1); !Float32ApproxEq(got, 0.1) {
		t.Fatalf("got %f", got)
	}
	if got := MoveTowards(2.45, 2.5, 0.1); got != 2.5 {
		t.Fatalf("overshoot: got %f", got)
	}
	if got := MoveTowards(3, 2.5, 0.1); !Float32ApproxEq(got, 2.9) {
		t.Fatalf("got %f", got)
	}
}

func TestAngle(t *testing.T) {
	if a := Angle(Up, mgl32.Vec3{1, 0, 0}); !Float32ApproxEq(Round32(a, 3), 90) {
		t.Fatalf("got %f", a)
	}
	if a := Angle(Up, mgl32.Vec3{}); a != 0 {
		t.Fatalf("zero vector angle = %f", a)
	}
}
