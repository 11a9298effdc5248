package player

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/strafe/game"
	"github.com/oomph-ac/strafe/input"
)

// updateWishDir computes the horizontal movement direction from the move axis and the view yaw.
func (p *Player) updateWishDir() {
	move := p.src.Axis(input.ActionMove)
	if l := move.Len(); l > 1 {
		move = move.Mul(1 / l)
	}
	p.moveInput = move

	dir := game.Forward(p.state.Yaw).Mul(move.Y()).Add(game.Right(p.state.Yaw).Mul(move.X()))
	p.wishDir, _ = game.SafeNormalize(dir)
}

// Sprinting returns true if the player currently moves at sprint speed.
func (p *Player) Sprinting() bool {
	return p.Enabled(CapabilitySprint) && p.src.Key(input.ActionSprint) && p.moveInput.Y() > 0 && p.state.Stance == StanceStand
}

// TargetSpeed returns the speed the player is ramping towards this tick.
func (p *Player) TargetSpeed() float32 {
	if p.wishDir == (mgl32.Vec3{}) {
		return 0
	}
	speed := p.opts.GroundSpeed
	if p.Sprinting() {
		speed *= p.opts.SprintMultiplier
	}
	if p.state.Stance == StanceCrouch {
		speed *= p.opts.CrouchMultiplier
	}
	if p.src.Key(input.ActionWalk) {
		speed *= p.opts.WalkMultiplier
	}
	if p.moveInput.Y() < 0 {
		speed *= p.opts.BackwardsMultiplier
	}
	return speed
}

// integrate runs the velocity integrator for the regime selected by the probes.
func (p *Player) integrate(dt float32) {
	target := p.TargetSpeed()
	p.speed = game.MoveTowards(p.speed, target, p.opts.SpeedAccelerate*dt)

	vel := p.state.Vel
	switch p.state.Regime {
	case RegimeGround:
		vel = p.moveGround(vel, dt)
	case RegimeSurf:
		vel = p.moveSurf(vel, dt)
	default:
		vel = p.moveAir(vel, dt)
	}

	if p.state.Ceiling && vel.Y() > 0 {
		vel[1] = 0
	}
	p.state.SetVel(vel)

	p.Dbg.Notify(DebugModeIntegrator, true, "regime=%s speed=%.4f target=%.4f vel=%v", p.state.Regime, p.speed, target, vel)
}

func (p *Player) moveGround(vel mgl32.Vec3, dt float32) mgl32.Vec3 {
	skipFriction := p.src.KeyDown(input.ActionJump) || p.state.GroundTimer < p.opts.LandingFrictionDelay
	if !skipFriction {
		vel = game.ApplyFriction(vel, p.opts.Friction, p.opts.StopSpeed, dt)
	}

	normal := p.groundNormal()
	if dir, ok := game.SafeNormalize(game.ProjectOnPlane(p.wishDir, normal)); ok {
		vel = game.Accelerate(vel, dir, p.speed, p.opts.GroundAcceleration, dt)
	}

	if p.state.Side {
		return game.ClipVelocity(vel, p.side.Normal, p.opts.Overbounce)
	}
	if p.snapped {
		// The landing snap holds for the landing tick.
		return vel
	}
	vel = game.ClipVelocity(vel, normal, p.opts.Overbounce)
	// Keep the player glued to the ground plane: the overbounce must not launch it.
	if n := vel.Dot(normal); n > 0 {
		vel = vel.Sub(normal.Mul(n))
	}
	return vel
}

func (p *Player) moveSurf(vel mgl32.Vec3, dt float32) mgl32.Vec3 {
	vel[1] += p.opts.Gravity * dt
	if p.ground.Hit {
		vel = game.ClipVelocity(vel, p.groundInfo.Normal, p.opts.Overbounce)
	}
	return game.Accelerate(vel, p.wishDir, p.opts.AirSpeed*game.SurfAirSpeedMultiplier, p.opts.AirAcceleration, dt)
}

func (p *Player) moveAir(vel mgl32.Vec3, dt float32) mgl32.Vec3 {
	vel[1] += p.opts.Gravity * dt
	if p.state.Side {
		vel = game.ClipVelocity(vel, p.side.Normal, p.opts.Overbounce)
	}
	return game.Accelerate(vel, p.wishDir, p.opts.AirSpeed, p.opts.AirAcceleration, dt)
}

// groundNormal returns the normal used for slope logic, falling back to up.
func (p *Player) groundNormal() mgl32.Vec3 {
	if p.groundInfo.Hit {
		return p.groundInfo.Normal
	}
	if p.ground.Hit {
		return p.ground.Normal
	}
	return game.Up
}

// HorizontalSpeed returns the length of the horizontal velocity.
func (p *Player) HorizontalSpeed() float32 {
	return game.Vec3HzLen(p.state.Vel)
}
