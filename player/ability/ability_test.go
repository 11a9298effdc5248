package ability

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/strafe/input"
	"github.com/oomph-ac/strafe/player"
	"github.com/oomph-ac/strafe/player/event"
	"github.com/oomph-ac/strafe/world"
)

const testDt = float32(1) / 60

type fixture struct {
	p  *player.Player
	in *input.State
	w  *world.World
}

func newFixture(t *testing.T, w *world.World, pos mgl32.Vec3) *fixture {
	t.Helper()
	in := input.NewState()
	p, err := player.New(nil, player.DefaultOpts(), in, pos)
	if err != nil {
		t.Fatalf("unexpected error creating player: %v", err)
	}
	return &fixture{p: p, in: in, w: w}
}

func (f *fixture) register(t *testing.T, procs ...player.Processor) {
	t.Helper()
	for _, proc := range procs {
		if err := f.p.RegisterProcessor(proc); err != nil {
			t.Fatalf("unexpected error registering %s: %v", proc.Name(), err)
		}
	}
}

func (f *fixture) tick(frame input.Frame) []event.Event {
	f.in.Push(frame)
	f.p.Tick(testDt, f.w)
	return f.p.DrainEvents()
}

func forward() input.Frame {
	return input.Frame{Move: mgl32.Vec2{0, 1}}
}

func withFloor() *world.World {
	w := world.New()
	w.AddBox(cube.Box(-50, -1, -50, 50, 0, 50), world.LayerStatic)
	return w
}

func findEvent[T event.Event](events []event.Event) (T, bool) {
	for _, e := range events {
		if v, ok := e.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func approxEq(a, b, tolerance float32) bool {
	return math32.Abs(a-b) <= tolerance
}

func TestRegisterOrdersByPriority(t *testing.T) {
	f := newFixture(t, withFloor(), mgl32.Vec3{0, 0.02, 0})
	if err := Register(f.p, DefaultOpts()); err != nil {
		t.Fatalf("unexpected error registering abilities: %v", err)
	}
	want := []string{NameNoclip, NameVault, NameClimb, NameSlide, NameWallRun, NameDash}
	procs := f.p.Processors()
	if len(procs) != len(want) {
		t.Fatalf("expected %d processors, got %d", len(want), len(procs))
	}
	for i, proc := range procs {
		if proc.Name() != want[i] {
			t.Fatalf("processor %d is %s, want %s", i, proc.Name(), want[i])
		}
	}
}

func TestRegisterSkipsDisabled(t *testing.T) {
	f := newFixture(t, withFloor(), mgl32.Vec3{0, 0.02, 0})
	opts := DefaultOpts()
	opts.Dash.Enabled = false
	opts.Noclip.Enabled = false
	if err := Register(f.p, opts); err != nil {
		t.Fatalf("unexpected error registering abilities: %v", err)
	}
	if _, ok := f.p.Processor(NameDash); ok {
		t.Fatalf("disabled dash must not be registered")
	}
	if _, ok := f.p.Processor(NameNoclip); ok {
		t.Fatalf("disabled noclip must not be registered")
	}
}

func TestRegisterRejectsInvalidOpts(t *testing.T) {
	f := newFixture(t, withFloor(), mgl32.Vec3{0, 0.02, 0})
	opts := DefaultOpts()
	opts.Vault.MaxHeight = 0.1
	if err := Register(f.p, opts); err == nil {
		t.Fatalf("expected an error for an inverted vault height range")
	}
	if len(f.p.Processors()) != 0 {
		t.Fatalf("no processor may be registered when the options are invalid")
	}
}

func TestPhaseCycle(t *testing.T) {
	f := newFixture(t, withFloor(), mgl32.Vec3{0, 0.02, 0})
	d := NewDash(f.p, DefaultDashOpts())
	b := &d.base

	if !b.update(testDt) || b.Phase() != PhaseIdle {
		t.Fatalf("an idle ability must run")
	}
	b.start("test", []player.Capability{player.CapabilityJump}, nil)
	if b.Phase() != PhaseTriggered || !b.Active() {
		t.Fatalf("expected triggered phase after start, got %s", b.Phase())
	}
	if f.p.Enabled(player.CapabilityJump) {
		t.Fatalf("held capability must be disabled")
	}
	b.update(testDt)
	if b.Phase() != PhaseActive {
		t.Fatalf("expected active phase on the next tick, got %s", b.Phase())
	}
	b.end(false, 0.04)
	if b.Phase() != PhaseCooldown || !f.p.Enabled(player.CapabilityJump) {
		t.Fatalf("expected cooldown with the capability released")
	}
	for range 3 {
		if b.update(testDt) {
			t.Fatalf("an ability in cooldown must not run")
		}
	}
	if b.Phase() != PhaseIdle {
		t.Fatalf("expected idle after the cooldown, got %s", b.Phase())
	}

	b.start("test", nil, nil)
	b.end(true, 1)
	if b.Phase() != PhaseIdle {
		t.Fatalf("a cancelled ability must skip its cooldown, got %s", b.Phase())
	}
}
