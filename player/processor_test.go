package player

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/strafe/gate"
	"github.com/oomph-ac/strafe/input"
	"github.com/oomph-ac/strafe/oerror"
)

type mockProcessor struct {
	name     string
	priority int
	order    *[]string

	token  gate.Token
	holds  []Capability
	active bool
}

func (m *mockProcessor) Name() string  { return m.name }
func (m *mockProcessor) Priority() int { return m.priority }

func (m *mockProcessor) OnBeforeMove(p *Player) {
	*m.order = append(*m.order, m.name)
	if m.active || len(m.holds) == 0 {
		return
	}
	for _, c := range m.holds {
		_ = p.Disable(c, m.token)
	}
	m.active = true
}

func (m *mockProcessor) OnBeforeLook(*Player) {}

func (m *mockProcessor) Cancel(p *Player) {
	if !m.active {
		return
	}
	for _, c := range m.holds {
		_ = p.Enable(c, m.token)
	}
	m.active = false
}

func TestPipelineRunsInPriorityOrder(t *testing.T) {
	f := newFixture(t, mgl32.Vec3{0, spawnHeight, 0})
	var order []string
	for _, proc := range []*mockProcessor{
		{name: "c", priority: 30, order: &order},
		{name: "a", priority: 10, order: &order},
		{name: "b1", priority: 20, order: &order},
		{name: "b2", priority: 20, order: &order},
	} {
		if err := f.p.RegisterProcessor(proc); err != nil {
			t.Fatal(err)
		}
	}

	f.tick(input.Frame{})
	want := []string{"a", "b1", "b2", "c"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestRegisterAfterTickFails(t *testing.T) {
	f := newFixture(t, mgl32.Vec3{0, spawnHeight, 0})
	f.tick(input.Frame{})

	var order []string
	err := f.p.RegisterProcessor(&mockProcessor{name: "late", order: &order})
	if !oerror.IsKind(err, oerror.KindConfig) {
		t.Fatalf("expected a config error, got %v", err)
	}
}

func TestShutdownReleasesTokens(t *testing.T) {
	f := newFixture(t, mgl32.Vec3{0, spawnHeight, 0})
	var order []string
	proc := &mockProcessor{
		name:  "holder",
		order: &order,
		token: gate.NewToken(),
		holds: []Capability{CapabilityMovement, CapabilityJump, CapabilityColliders},
	}
	_ = f.p.RegisterProcessor(proc)

	f.tick(input.Frame{})
	for _, c := range proc.holds {
		if f.p.Enabled(c) {
			t.Fatalf("capability %s should be held by the processor", c)
		}
	}

	f.p.Shutdown()
	for el := f.p.Capabilities().Front(); el != nil; el = el.Next() {
		if !el.Value {
			t.Fatalf("capability %s still disabled after shutdown", el.Key)
		}
	}
}

func TestCapabilityMisuseIsClamped(t *testing.T) {
	f := newFixture(t, mgl32.Vec3{0, spawnHeight, 0})
	tok := gate.NewToken()

	if err := f.p.EnableSprint(tok); !oerror.IsKind(err, oerror.KindGateMisuse) {
		t.Fatalf("expected gate misuse, got %v", err)
	}
	if !f.p.Enabled(CapabilitySprint) || f.p.Gate(CapabilitySprint).Count() != 0 {
		t.Fatalf("over-release must leave the gate enabled with a zero count")
	}

	_ = f.p.DisableSprint(tok)
	if f.p.Enabled(CapabilitySprint) {
		t.Fatalf("expected sprint to be disabled")
	}
	_ = f.p.EnableSprint(tok)
	if !f.p.Enabled(CapabilitySprint) {
		t.Fatalf("expected sprint to be enabled again")
	}
}
