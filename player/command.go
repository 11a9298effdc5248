package player

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/strafe/game"
	"github.com/oomph-ac/strafe/world"
)

// State returns a copy of the movement state.
func (p *Player) State() MovementState { return p.state }

func (p *Player) Pos() mgl32.Vec3 { return p.state.Pos }
func (p *Player) Vel() mgl32.Vec3 { return p.state.Vel }

// EyePos returns the world position of the camera pivot.
func (p *Player) EyePos() mgl32.Vec3 {
	return p.state.Pos.Add(game.Up.Mul(p.capsule.CameraHeight))
}

func (p *Player) SetVelocity(vel mgl32.Vec3) { p.state.SetVel(vel) }
func (p *Player) AddVelocity(vel mgl32.Vec3) { p.state.SetVel(p.state.Vel.Add(vel)) }

// MoveDirection returns the normalized horizontal direction requested by the move axis.
func (p *Player) MoveDirection() mgl32.Vec3 { return p.wishDir }

// MoveInput returns the move axis of the current tick, clamped to unit length.
func (p *Player) MoveInput() mgl32.Vec2 { return p.moveInput }

// Speed returns the ramped ground speed scalar.
func (p *Player) Speed() float32 { return p.speed }

func (p *Player) Grounded() bool    { return p.state.Grounded }
func (p *Player) WasGrounded() bool { return p.state.WasGrounded }
func (p *Player) Ceiling() bool     { return p.state.Ceiling }
func (p *Player) Side() bool        { return p.state.Side }
func (p *Player) Walkable() bool    { return p.state.Walkable }
func (p *Player) Regime() Regime    { return p.state.Regime }
func (p *Player) Stance() Stance    { return p.state.Stance }
func (p *Player) Capsule() Capsule  { return p.capsule }

func (p *Player) FallTimer() float32   { return p.state.FallTimer }
func (p *Player) GroundTimer() float32 { return p.state.GroundTimer }

// Rotation returns the yaw and pitch of the view in degrees.
func (p *Player) Rotation() (yaw, pitch float32) { return p.state.Yaw, p.state.Pitch }

// SetRotation sets the view rotation, wrapping the yaw and clamping the pitch.
func (p *Player) SetRotation(yaw, pitch float32) {
	p.state.Yaw = game.WrapYaw(yaw)
	p.state.Pitch = game.Clamp(pitch, -p.opts.MaxPitch, p.opts.MaxPitch)
}

// Forward returns the horizontal view direction.
func (p *Player) Forward() mgl32.Vec3 { return game.Forward(p.state.Yaw) }

// LookDirection returns the full view direction including pitch.
func (p *Player) LookDirection() mgl32.Vec3 { return game.DirectionVector(p.state.Yaw, p.state.Pitch) }

// Tilt returns the camera roll in degrees.
func (p *Player) Tilt() float32        { return p.state.Tilt }
func (p *Player) SetTilt(deg float32)  { p.state.Tilt = deg }
func (p *Player) Sensitivity() float32 { return p.sensitivity }
func (p *Player) SetSensitivity(s float32) {
	p.sensitivity = max(s, 0)
}
func (p *Player) FOV() float32 { return p.fov }
func (p *Player) SetFOV(fov float32) {
	p.fov = game.Clamp(fov, 1, 179)
}

// Mask returns the collision mask used by the probes and the mover.
func (p *Player) Mask() world.Mask { return p.mask }

func (p *Player) SetCollisionMask(m world.Mask) { p.mask = m }

// ResetCollisionMask restores the mask the player was created with.
func (p *Player) ResetCollisionMask() { p.mask = p.defaultMask }

// SetDefaultCollisionMask changes the mask restored by ResetCollisionMask and applies it.
func (p *Player) SetDefaultCollisionMask(m world.Mask) {
	p.defaultMask, p.mask = m, m
}

// ToggleNoclip requests the noclip processor to flip its state on its next run.
func (p *Player) ToggleNoclip() { p.noclipToggle = !p.noclipToggle }

// ConsumeNoclipToggle returns and clears a pending noclip toggle request.
func (p *Player) ConsumeNoclipToggle() bool {
	t := p.noclipToggle
	p.noclipToggle = false
	return t
}
