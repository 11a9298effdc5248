package player

import (
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/strafe/game"
	"github.com/oomph-ac/strafe/input"
	"github.com/oomph-ac/strafe/player/event"
	"github.com/oomph-ac/strafe/world"
)

func jumpFrame() input.Frame {
	return input.Frame{}.Holding(input.ActionJump)
}

func TestJumpMinimumImpulse(t *testing.T) {
	f := newFixture(t, mgl32.Vec3{0, spawnHeight, 0})
	f.idle(3)

	f.p.SetVelocity(mgl32.Vec3{0, -3, 0})
	events := f.tick(jumpFrame())
	if _, ok := findEvent[event.Jump](events); !ok {
		t.Fatalf("expected a jump event")
	}
	if vy := f.p.Vel().Y(); vy < f.p.Opts().JumpForce {
		t.Fatalf("vertical velocity %.4f below jump force %.4f", vy, f.p.Opts().JumpForce)
	}
	if f.p.Grounded() {
		t.Fatalf("player must be airborne after jumping")
	}

	// The ground lock keeps the short ground probe from re-grounding the player straight away.
	f.tick(input.Frame{})
	if f.p.Grounded() {
		t.Fatalf("player re-grounded during the jump ground lock")
	}
}

func TestJumpDeniedUnderCeiling(t *testing.T) {
	w := world.New()
	floor := w.AddBox(cube.Box(-10, -1, -10, 10, 0, 10), world.LayerStatic)
	w.AddBox(cube.Box(-10, 1.85, -10, 10, 3, 10), world.LayerStatic)
	f := newFixtureIn(t, w, floor, mgl32.Vec3{0, spawnHeight, 0})
	f.idle(3)

	if !f.p.Ceiling() {
		t.Fatalf("expected ceiling contact")
	}
	if _, ok := findEvent[event.Jump](f.tick(jumpFrame())); ok {
		t.Fatalf("jump must be denied with ceiling contact")
	}
}

// coyoteJump removes the platform under a grounded player, waits the given number of airborne
// ticks and then presses jump.
func coyoteJump(t *testing.T, airborneTicks int) (event.Jump, bool) {
	t.Helper()
	w := world.New()
	platform := w.AddBox(cube.Box(-5, -1, -5, 5, 0, 5), world.LayerStatic)
	f := newFixtureIn(t, w, platform, mgl32.Vec3{0, spawnHeight, 0})
	f.tick(input.Frame{})
	if !f.p.Grounded() {
		t.Fatalf("expected the player to start grounded")
	}

	w.Remove(platform)
	f.idle(airborneTicks)
	return findEvent[event.Jump](f.tick(jumpFrame()))
}

func TestCoyoteWindow(t *testing.T) {
	// Airtime grows by 1/60s per tick and the window is 0.15s: pressing jump on the 8th airborne
	// tick happens at ~0.133s, on the 10th at ~0.167s.
	opts := DefaultOpts()
	if opts.CoyoteTime != 0.15 {
		t.Fatalf("test assumes a 0.15s coyote window")
	}

	jump, ok := coyoteJump(t, 7)
	if !ok {
		t.Fatalf("jump inside the coyote window was denied")
	}
	if !jump.Coyote {
		t.Fatalf("expected the jump to be flagged as a coyote jump")
	}
	if jump.Velocity.Y() < opts.JumpForce {
		t.Fatalf("coyote jump velocity %.4f below jump force", jump.Velocity.Y())
	}

	if _, ok := coyoteJump(t, 9); ok {
		t.Fatalf("jump outside the coyote window succeeded")
	}
}

func TestCoyoteJumpOnlyOncePerAirtime(t *testing.T) {
	f := newFixture(t, mgl32.Vec3{0, spawnHeight, 0})
	f.idle(3)
	if _, ok := findEvent[event.Jump](f.tick(jumpFrame())); !ok {
		t.Fatalf("expected the ground jump to succeed")
	}
	f.tick(input.Frame{})
	if _, ok := findEvent[event.Jump](f.tick(jumpFrame())); ok {
		t.Fatalf("a second jump in the same airtime succeeded")
	}
}

// landingTick returns the index of the tick on which a player dropped from the given height lands.
func landingTick(t *testing.T, height float32) int {
	t.Helper()
	f := newFixture(t, mgl32.Vec3{0, height, 0})
	for i := 0; i < 240; i++ {
		if _, ok := findEvent[event.Land](f.tick(input.Frame{})); ok {
			return i
		}
	}
	t.Fatalf("player never landed")
	return -1
}

func TestJumpOnLandingTick(t *testing.T) {
	const height = 1.0
	land := landingTick(t, height)

	f := newFixture(t, mgl32.Vec3{0, height, 0})
	f.idle(land)
	events := f.tick(jumpFrame())

	landIndex, jumpIndex := -1, -1
	for i, e := range events {
		switch e.(type) {
		case event.Land:
			landIndex = i
		case event.Jump:
			jumpIndex = i
		}
	}
	if landIndex < 0 {
		t.Fatalf("expected the landing on tick %d, got %v", land, events)
	}
	if jumpIndex < 0 {
		t.Fatalf("jump on the landing tick was denied")
	}
	if jumpIndex < landIndex {
		t.Fatalf("jump emitted before landing")
	}
	if f.p.GroundTimer() != 0 {
		t.Fatalf("ground timer must be reset by the landing, got %v", f.p.GroundTimer())
	}
}

func TestLandingReportsFallHeight(t *testing.T) {
	const drop = 2.0
	f := newFixture(t, mgl32.Vec3{0, drop, 0})

	var (
		land event.Land
		ok   bool
	)
	for i := 0; i < 240 && !ok; i++ {
		land, ok = findEvent[event.Land](f.tick(input.Frame{}))
	}
	if !ok {
		t.Fatalf("player never landed")
	}
	if !mgl32.FloatEqualThreshold(land.FallHeight, drop, 0.02) {
		t.Fatalf("fall height = %.4f, want %.4f", land.FallHeight, drop)
	}
	if land.ImpactVelocity >= -1 {
		t.Fatalf("impact velocity = %.4f, expected a hard landing", land.ImpactVelocity)
	}
	if land.Airtime <= 0 {
		t.Fatalf("airtime must be positive")
	}
	if f.p.Vel().Y() > 0 {
		t.Fatalf("player bounced off the floor: %v", f.p.Vel())
	}
}

func TestLandingSnapsOnFlatGround(t *testing.T) {
	f := newFixture(t, mgl32.Vec3{0, 1, 0})

	landed := false
	for i := 0; i < 240 && !landed; i++ {
		_, landed = findEvent[event.Land](f.tick(input.Frame{}))
	}
	if !landed {
		t.Fatalf("player never landed")
	}
	if f.p.Vel().Y() != game.LandingSnapVelocity {
		t.Fatalf("landing on flat ground must leave vertical velocity at %v after the tick, got %v", game.LandingSnapVelocity, f.p.Vel().Y())
	}

	f.tick(input.Frame{})
	if !f.p.Grounded() || f.p.Vel().Y() != 0 {
		t.Fatalf("expected the player to settle on the floor after landing, grounded=%t vel=%v", f.p.Grounded(), f.p.Vel())
	}
}
