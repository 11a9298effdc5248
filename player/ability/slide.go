package ability

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/strafe/game"
	"github.com/oomph-ac/strafe/input"
	"github.com/oomph-ac/strafe/player"
)

const NameSlide = "slide"

type SlideOpts struct {
	Enabled  bool
	Priority int

	// MinSpeed is the horizontal speed needed to start a slide.
	MinSpeed float32
	// MinEndSpeed is the speed under which the slide stops.
	MinEndSpeed float32
	MaxSpeed    float32

	// DownhillAcceleration is the acceleration on a vertical slope once the slide has lasted
	// RampTime. It scales linearly with the slope angle and the elapsed time up to that point.
	DownhillAcceleration float32
	RampTime             float32
	Deceleration         float32
	UphillDeceleration   float32
	// MinSlopeAngle is the slope angle, in degrees, under which the ground counts as flat.
	MinSlopeAngle float32

	// JumpBoost scales the horizontal velocity when a jump ejects the player out of the slide.
	JumpBoost float32
	Cooldown  float32
}

func DefaultSlideOpts() SlideOpts {
	return SlideOpts{
		Enabled:  true,
		Priority: 20,

		MinSpeed:    3,
		MinEndSpeed: 1,
		MaxSpeed:    12,

		DownhillAcceleration: 14,
		RampTime:             0.5,
		Deceleration:         3,
		UphillDeceleration:   10,
		MinSlopeAngle:        2,

		JumpBoost: 1.15,
		Cooldown:  0.4,
	}
}

// Slide takes over the velocity of a fast grounded player holding crouch. The player is forced
// into the crouch stance and accelerates downhill or decays on flat and uphill ground.
type Slide struct {
	base
	opts SlideOpts

	dir   mgl32.Vec3
	speed float32
}

func NewSlide(p *player.Player, opts SlideOpts) *Slide {
	s := &Slide{base: newBase(p, NameSlide, opts.Priority), opts: opts}
	s.bindCancel(s.Cancel)
	return s
}

// Speed returns the current slide speed.
func (s *Slide) Speed() float32 { return s.speed }

func holdingSlide(p *player.Player) bool {
	return p.Input().Key(input.ActionCrouch) || p.Input().Key(input.ActionSlide)
}

func (s *Slide) OnBeforeMove(p *player.Player) {
	dt := p.Dt()
	if !s.update(dt) {
		return
	}
	if s.phase == PhaseIdle {
		s.tryStart(p)
		return
	}

	switch {
	case !p.Grounded():
		s.stop(p, false)
		return
	case p.Input().KeyDown(input.ActionJump) && p.Enabled(player.CapabilityJump) && !p.Ceiling():
		s.eject(p)
		return
	case !holdingSlide(p):
		s.stop(p, false)
		return
	}

	normal := p.GroundInfo().Normal
	angle := p.GroundInfo().Angle
	if !p.GroundInfo().Hit {
		normal, angle = game.Up, 0
	}

	vel := game.ProjectOnPlane(s.dir.Mul(s.speed), normal)
	downhill, sloped := game.SafeNormalize(game.ProjectOnPlane(game.Up.Mul(-1), normal))
	sloped = sloped && angle >= s.opts.MinSlopeAngle

	if sloped && vel.Dot(downhill) >= 0 {
		ramp := game.Clamp(s.elapsed/max(s.opts.RampTime, game.MinDuration), 0, 1)
		vel = vel.Add(downhill.Mul(s.opts.DownhillAcceleration * (angle / 90) * ramp * dt))
	} else {
		decel := s.opts.Deceleration
		if sloped {
			decel = s.opts.UphillDeceleration
		}
		if dir, ok := game.SafeNormalize(vel); ok {
			vel = dir.Mul(game.MoveTowards(vel.Len(), 0, decel*dt))
		}
	}

	speed := min(vel.Len(), s.opts.MaxSpeed)
	if speed < s.opts.MinEndSpeed {
		s.stop(p, false)
		return
	}
	if dir, ok := game.SafeNormalize(vel); ok {
		s.dir = dir
	}
	s.speed = speed
	p.SetVelocity(s.dir.Mul(speed))
}

func (s *Slide) tryStart(p *player.Player) {
	if !canTakeControl(p) || !p.Grounded() || !holdingSlide(p) {
		return
	}
	speed := p.HorizontalSpeed()
	if speed < s.opts.MinSpeed {
		return
	}
	dir, ok := game.SafeNormalize(game.Horizontal(p.Vel()))
	if !ok {
		return
	}
	s.dir, s.speed = dir, speed

	p.OverrideStance(player.StanceCrouch)
	extra := orderedmap.NewOrderedMap[string, any]()
	extra.Set("speed", game.Round32(speed, 3))
	extra.Set("slope", game.Round32(p.GroundInfo().Angle, 2))
	s.start("ground", []player.Capability{player.CapabilityMovement}, extra)
}

// eject ends the slide with a boosted jump.
func (s *Slide) eject(p *player.Player) {
	vel := game.Horizontal(s.dir.Mul(s.speed)).Mul(s.opts.JumpBoost)
	s.stop(p, false)
	p.SetVelocity(vel)
	p.Jump(false)
}

func (s *Slide) stop(p *player.Player, cancelled bool) {
	p.ClearStanceOverride()
	s.speed = 0
	s.end(cancelled, s.opts.Cooldown)
}

func (s *Slide) Cancel(p *player.Player) {
	if s.Active() {
		s.stop(p, true)
		return
	}
	s.reset()
}
