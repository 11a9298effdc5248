package player

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/strafe/game"
	"github.com/oomph-ac/strafe/input"
	"github.com/oomph-ac/strafe/player/event"
)

// updateGroundState derives the grounded flags and the integrator regime from the probes, advances
// the ground and fall timers and handles landing.
func (p *Player) updateGroundState(dt float32) {
	s := &p.state
	s.WasGrounded = s.Grounded
	p.landed, p.snapped = false, false

	normalAngle := p.groundInfo.Angle
	if !p.groundInfo.Hit {
		normalAngle = p.ground.Angle
	}
	s.Walkable = p.ground.Hit && normalAngle < p.opts.SlopeLimit
	s.Ceiling = p.ceiling.Hit
	s.Side = p.side.Hit

	if p.jumpLock > 0 {
		p.jumpLock = math32.Max(p.jumpLock-dt, 0)
	}
	s.Grounded = s.Walkable && p.jumpLock == 0

	switch {
	case s.Grounded:
		s.Regime = RegimeGround
	case p.ground.Hit && !s.Walkable:
		s.Regime = RegimeSurf
	default:
		s.Regime = RegimeAir
	}

	if s.Grounded {
		p.lastWalkable = true
		if !s.WasGrounded && p.ticks > 0 {
			p.land(normalAngle)
		} else {
			s.GroundTimer += dt
		}
		s.FallTimer = 0
		s.JumpArmed = true
		p.peakLatched = false
		return
	}

	if s.WasGrounded {
		p.Dbg.Notify(DebugModeJump, true, "left ground at y=%.4f", s.Pos.Y())
	}
	if p.ground.Hit {
		p.lastWalkable = s.Walkable
	}
	s.GroundTimer = 0
	s.FallTimer += dt
	if !p.peakLatched && s.Vel.Y() <= 0 {
		p.peakY, p.peakLatched = s.Pos.Y(), true
	}
}

// land is called on the tick the player goes from airborne to grounded.
func (p *Player) land(angle float32) {
	s := &p.state
	p.landed = true
	impact := s.Vel.Y()

	peak, floor := p.peakY, s.Pos.Y()
	if p.ground.Hit {
		floor = p.ground.Point.Y()
	}
	if !p.peakLatched {
		peak = s.Pos.Y()
	}
	fallHeight := math32.Max(peak-floor, 0)

	if impact < 0 && angle <= game.LandingSnapMaxAngle {
		s.Vel[1] = game.LandingSnapVelocity
		p.snapped = true
	}
	p.Emit(event.Land{Airtime: s.FallTimer, ImpactVelocity: impact, FallHeight: fallHeight})
	p.Dbg.Notify(DebugModeJump, true, "landed: airtime=%.4f impact=%.4f fallHeight=%.4f", s.FallTimer, impact, fallHeight)

	s.GroundTimer = 0
}

// canJump evaluates the jump eligibility rules for the current tick.
func (p *Player) canJump() (ok bool, coyote bool) {
	s := &p.state
	if !p.Enabled(CapabilityJump) || s.Ceiling {
		return false, false
	}
	if s.Grounded {
		return s.WasGrounded || s.GroundTimer > 0 || p.landed, false
	}
	if !p.lastWalkable || !s.JumpArmed {
		return false, false
	}
	return s.FallTimer <= p.opts.CoyoteTime, true
}

// tryJump applies the jump impulse if the jump key was pressed and the player is eligible.
func (p *Player) tryJump() {
	if !p.src.KeyDown(input.ActionJump) {
		return
	}
	ok, coyote := p.canJump()
	if !ok {
		p.Dbg.Notify(DebugModeJump, true, "jump denied: grounded=%t fallTimer=%.4f armed=%t", p.state.Grounded, p.state.FallTimer, p.state.JumpArmed)
		return
	}
	p.Jump(coyote)
}

// Jump applies the jump impulse unconditionally and marks the airtime as spent. Abilities use it to
// eject the player into a jump.
func (p *Player) Jump(coyote bool) {
	p.launch(game.Jump(p.state.Vel, p.opts.JumpForce), coyote)
}

// LaunchJump replaces the velocity with vel and treats it as a jump, so the jump of the current
// airtime is spent.
func (p *Player) LaunchJump(vel mgl32.Vec3) {
	p.launch(vel, false)
}

func (p *Player) launch(vel mgl32.Vec3, coyote bool) {
	s := &p.state
	s.SetVel(vel)
	s.Grounded = false
	s.JumpArmed = false
	s.Regime = RegimeAir
	p.jumpLock = p.opts.JumpGroundLock
	p.jumped = true
	p.peakLatched = false

	p.Emit(event.Jump{Velocity: s.Vel, Coyote: coyote})
	p.Dbg.Notify(DebugModeJump, true, "jump: vel=%v coyote=%t", s.Vel, coyote)
}

// Jumped returns true if a jump impulse was applied during the current tick.
func (p *Player) Jumped() bool {
	return p.jumped
}

// Landed returns true if the player landed during the current tick.
func (p *Player) Landed() bool {
	return p.landed
}
