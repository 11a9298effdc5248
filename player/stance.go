package player

import (
	"github.com/chewxy/math32"
	"github.com/oomph-ac/strafe/game"
	"github.com/oomph-ac/strafe/input"
	"github.com/oomph-ac/strafe/player/event"
)

const stanceSnapEpsilon = 1e-3

func (p *Player) stanceOpts(s Stance) CapsuleOpts {
	if s == StanceCrouch {
		return p.opts.Crouch
	}
	return p.opts.Stand
}

// updateStance runs the stand/crouch transitions and interpolates the capsule towards the
// dimensions of the current stance.
func (p *Player) updateStance(dt float32) {
	s := &p.state
	wantCrouch := p.src.Key(input.ActionCrouch)
	if p.stanceOverride != nil {
		wantCrouch = *p.stanceOverride == StanceCrouch
	}

	switch {
	case wantCrouch && s.Stance == StanceStand && (p.stanceOverride != nil || p.Enabled(CapabilityCrouch)):
		s.Stance = StanceCrouch
		p.Emit(event.Crouch{})
		p.Dbg.Notify(DebugModeStance, true, "crouch")
	case !wantCrouch && s.Stance == StanceCrouch:
		if s.Ceiling || p.standBlocked() {
			p.Dbg.Notify(DebugModeStance, true, "stand blocked by ceiling")
			break
		}
		s.Stance = StanceStand
		p.Emit(event.Stand{})
		p.Dbg.Notify(DebugModeStance, true, "stand")
	}

	target := p.stanceOpts(s.Stance)
	t := game.Clamp(target.Roughness*dt, 0, 1)
	p.capsule.Height = approach(p.capsule.Height, target.Height, t)
	p.capsule.Radius = approach(p.capsule.Radius, target.Radius, t)
	p.capsule.CameraHeight = approach(p.capsule.CameraHeight, target.CameraHeight, t)
}

func approach(current, target, t float32) float32 {
	v := game.Lerp(current, target, t)
	if math32.Abs(target-v) < stanceSnapEpsilon {
		return target
	}
	return v
}

// OverrideStance forces the stance regardless of the crouch key and the crouch capability. The
// stand transition still waits for headroom.
func (p *Player) OverrideStance(s Stance) {
	p.stanceOverride = &s
}

// ClearStanceOverride hands the stance back to player input.
func (p *Player) ClearStanceOverride() {
	p.stanceOverride = nil
}

// StanceOverridden returns true if an override is in place.
func (p *Player) StanceOverridden() bool {
	return p.stanceOverride != nil
}
