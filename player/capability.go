package player

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/strafe/gate"
)

// Capability names a feature of the player that independent systems may switch off.
type Capability string

const (
	CapabilitySprint    Capability = "sprint"
	CapabilityCrouch    Capability = "crouch"
	CapabilityJump      Capability = "jump"
	CapabilityLook      Capability = "look"
	CapabilityMovement  Capability = "movement"
	CapabilityColliders Capability = "colliders"
)

var capabilities = []Capability{
	CapabilitySprint,
	CapabilityCrouch,
	CapabilityJump,
	CapabilityLook,
	CapabilityMovement,
	CapabilityColliders,
}

func (p *Player) initCapabilities() {
	p.caps = orderedmap.NewOrderedMap[Capability, *gate.StackBool]()
	for _, c := range capabilities {
		g := &gate.StackBool{}
		g.Misuse = func(err error) {
			p.log.Warnf("capability %s: %v", c, err)
		}
		g.OnChange = func(enabled bool) {
			p.Dbg.Notify(DebugModePipeline, true, "capability %s enabled=%t", c, enabled)
		}
		p.caps.Set(c, g)
	}
}

// Gate returns the gate backing the capability, or nil if it is unknown.
func (p *Player) Gate(c Capability) *gate.StackBool {
	g, _ := p.caps.Get(c)
	return g
}

// Enabled returns true if no requester currently holds the capability disabled.
func (p *Player) Enabled(c Capability) bool {
	g := p.Gate(c)
	return g == nil || g.Enabled()
}

// Disable disables the capability on behalf of the token. Every call must be paired with one
// Enable using the same token.
func (p *Player) Disable(c Capability, t gate.Token) error {
	g := p.Gate(c)
	if g == nil {
		return nil
	}
	return g.Disable(t)
}

// Enable releases one disable request previously made with the token.
func (p *Player) Enable(c Capability, t gate.Token) error {
	g := p.Gate(c)
	if g == nil {
		return nil
	}
	return g.Enable(t)
}

// ReleaseAll drops every disable request made with the token on every capability.
func (p *Player) ReleaseAll(t gate.Token) {
	for el := p.caps.Front(); el != nil; el = el.Next() {
		el.Value.Release(t)
	}
}

// Capabilities returns the state of every capability in registration order.
func (p *Player) Capabilities() *orderedmap.OrderedMap[Capability, bool] {
	out := orderedmap.NewOrderedMap[Capability, bool]()
	for el := p.caps.Front(); el != nil; el = el.Next() {
		out.Set(el.Key, el.Value.Enabled())
	}
	return out
}

func (p *Player) DisableSprint(t gate.Token) error    { return p.Disable(CapabilitySprint, t) }
func (p *Player) EnableSprint(t gate.Token) error     { return p.Enable(CapabilitySprint, t) }
func (p *Player) DisableCrouch(t gate.Token) error    { return p.Disable(CapabilityCrouch, t) }
func (p *Player) EnableCrouch(t gate.Token) error     { return p.Enable(CapabilityCrouch, t) }
func (p *Player) DisableJump(t gate.Token) error      { return p.Disable(CapabilityJump, t) }
func (p *Player) EnableJump(t gate.Token) error       { return p.Enable(CapabilityJump, t) }
func (p *Player) DisableLook(t gate.Token) error      { return p.Disable(CapabilityLook, t) }
func (p *Player) EnableLook(t gate.Token) error       { return p.Enable(CapabilityLook, t) }
func (p *Player) DisableMovement(t gate.Token) error  { return p.Disable(CapabilityMovement, t) }
func (p *Player) EnableMovement(t gate.Token) error   { return p.Enable(CapabilityMovement, t) }
func (p *Player) DisableColliders(t gate.Token) error { return p.Disable(CapabilityColliders, t) }
func (p *Player) EnableColliders(t gate.Token) error  { return p.Enable(CapabilityColliders, t) }
