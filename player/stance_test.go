package player

import (
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/strafe/gate"
	"github.com/oomph-ac/strafe/input"
	"github.com/oomph-ac/strafe/player/event"
	"github.com/oomph-ac/strafe/world"
)

func crouchFrame() input.Frame {
	return input.Frame{}.Holding(input.ActionCrouch)
}

func TestCrouchShrinksCapsule(t *testing.T) {
	f := newFixture(t, mgl32.Vec3{0, spawnHeight, 0})
	if _, ok := findEvent[event.Crouch](f.tick(crouchFrame())); !ok {
		t.Fatalf("expected a crouch event")
	}
	for range 120 {
		f.tick(crouchFrame())
	}
	if f.p.Stance() != StanceCrouch {
		t.Fatalf("stance = %s, want crouch", f.p.Stance())
	}
	if got, want := f.p.Capsule().Height, f.p.Opts().Crouch.Height; got != want {
		t.Fatalf("capsule height = %v, want %v", got, want)
	}
	if got, want := f.p.Capsule().CameraHeight, f.p.Opts().Crouch.CameraHeight; got != want {
		t.Fatalf("camera height = %v, want %v", got, want)
	}
}

func TestCeilingBlocksStand(t *testing.T) {
	f := newFixture(t, mgl32.Vec3{0, spawnHeight, 0})
	for range 120 {
		f.tick(crouchFrame())
	}

	ceiling := f.w.AddBox(cube.Box(-5, 1.3, -5, 5, 3, 5), world.LayerStatic)
	for range 10 {
		if _, ok := findEvent[event.Stand](f.tick(input.Frame{})); ok {
			t.Fatalf("stood up into the ceiling")
		}
	}
	if f.p.Stance() != StanceCrouch {
		t.Fatalf("stance = %s, want crouch under the ceiling", f.p.Stance())
	}

	f.w.Remove(ceiling)
	if _, ok := findEvent[event.Stand](f.tick(input.Frame{})); !ok {
		t.Fatalf("expected to stand once the ceiling is gone")
	}
}

func TestCrouchGate(t *testing.T) {
	f := newFixture(t, mgl32.Vec3{0, spawnHeight, 0})
	tok := gate.NewToken()
	_ = f.p.DisableCrouch(tok)

	f.tick(crouchFrame())
	if f.p.Stance() != StanceStand {
		t.Fatalf("crouched while the crouch capability was disabled")
	}

	// Overrides bypass the capability.
	f.p.OverrideStance(StanceCrouch)
	f.tick(input.Frame{})
	if f.p.Stance() != StanceCrouch {
		t.Fatalf("stance override was ignored")
	}
	f.p.ClearStanceOverride()
	f.tick(input.Frame{})
	if f.p.Stance() != StanceStand {
		t.Fatalf("expected to stand after the override was cleared")
	}
}

func TestCrouchSlowsTargetSpeed(t *testing.T) {
	f := newFixture(t, mgl32.Vec3{0, spawnHeight, 0})
	f.tick(forward())
	standing := f.p.TargetSpeed()

	f.tick(forward().Holding(input.ActionCrouch))
	crouched := f.p.TargetSpeed()
	if want := standing * f.p.Opts().CrouchMultiplier; !mgl32.FloatEqual(crouched, want) {
		t.Fatalf("crouched target speed = %v, want %v", crouched, want)
	}
}
