package ability

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/strafe/game"
	"github.com/oomph-ac/strafe/input"
	"github.com/oomph-ac/strafe/player"
)

const NameClimb = "climb"

type ClimbType uint8

const (
	ClimbDefault ClimbType = iota
	ClimbFast
	// ClimbClimb is the two-phase pull-up used for the tallest ledges.
	ClimbClimb
)

func (t ClimbType) String() string {
	switch t {
	case ClimbDefault:
		return "default"
	case ClimbFast:
		return "fast"
	default:
		return "climb"
	}
}

type ClimbOpts struct {
	Enabled  bool
	Priority int

	MinHeight float32
	MaxHeight float32
	Reach     float32
	// MinSpeed is the horizontal speed the player must carry for two ticks in a row.
	MinSpeed float32
	// FastSpeed is the horizontal speed from which a climb is a fast climb.
	FastSpeed float32
	// PullUpHeight is the ledge height from which climbs use the two-phase pull-up.
	PullUpHeight float32

	DefaultDuration float32
	FastDuration    float32
	RiseDuration    float32
	PullDuration    float32

	Gravity  float32
	Cooldown float32
}

func DefaultClimbOpts() ClimbOpts {
	return ClimbOpts{
		Enabled:  true,
		Priority: 11,

		MinHeight:    1,
		MaxHeight:    2.6,
		Reach:        0.6,
		MinSpeed:     1,
		FastSpeed:    3.5,
		PullUpHeight: 2,

		DefaultDuration: 0.5,
		FastDuration:    0.35,
		RiseDuration:    0.45,
		PullDuration:    0.25,

		Gravity:  -20,
		Cooldown: 0.3,
	}
}

func (o ClimbOpts) classify(height, speed float32) ClimbType {
	switch {
	case height >= o.PullUpHeight:
		return ClimbClimb
	case speed >= o.FastSpeed:
		return ClimbFast
	default:
		return ClimbDefault
	}
}

// Climb carries the player onto a ledge in front of it while the interact key is held. Default and
// fast climbs follow a ballistic arc; pull-ups rise straight up and then move over the edge.
type Climb struct {
	base
	opts ClimbOpts

	climbType ClimbType
	path      arc
	riseEnd   mgl32.Vec3
}

func NewClimb(p *player.Player, opts ClimbOpts) *Climb {
	c := &Climb{base: newBase(p, NameClimb, opts.Priority), opts: opts}
	c.bindCancel(c.Cancel)
	return c
}

func (c *Climb) Type() ClimbType { return c.climbType }

func (c *Climb) duration() float32 {
	switch c.climbType {
	case ClimbDefault:
		return c.opts.DefaultDuration
	case ClimbFast:
		return c.opts.FastDuration
	case ClimbClimb:
		return c.opts.RiseDuration + c.opts.PullDuration
	}
	panic("unreachable")
}

func (c *Climb) OnBeforeMove(p *player.Player) {
	if !c.update(p.Dt()) {
		return
	}
	if c.phase == PhaseIdle {
		c.tryStart(p)
		return
	}

	if c.elapsed >= c.path.duration {
		p.Teleport(c.path.target)
		p.SetVelocity(mgl32.Vec3{})
		c.end(false, c.opts.Cooldown)
		return
	}
	p.SetVelocity(c.velocity())
}

// velocity returns the velocity for the current point of the climb.
func (c *Climb) velocity() mgl32.Vec3 {
	switch c.climbType {
	case ClimbDefault, ClimbFast:
		return c.path.velocityAt(c.elapsed)
	case ClimbClimb:
		rise := max(c.opts.RiseDuration, game.MinDuration)
		if c.elapsed < c.opts.RiseDuration {
			return mgl32.Vec3{0, (c.riseEnd.Y() - c.path.start.Y()) / rise, 0}
		}
		return game.Horizontal(c.path.target.Sub(c.riseEnd)).Mul(1 / max(c.opts.PullDuration, game.MinDuration))
	}
	panic("unreachable")
}

func (c *Climb) tryStart(p *player.Player) {
	if !canTakeControl(p) || p.Grounded() || !p.Input().Key(input.ActionVault) || p.MoveInput().Y() <= 0 {
		return
	}
	speed := p.HorizontalSpeed()
	if speed < c.opts.MinSpeed || game.Vec3HzLen(p.State().LastVel) < c.opts.MinSpeed {
		return
	}
	l, ok := findLedge(p, c.opts.Reach, c.opts.MinHeight, c.opts.MaxHeight)
	if !ok {
		return
	}

	c.climbType = c.opts.classify(l.height, speed)
	start := p.Pos()
	c.path = newArc(start, l.target, c.duration(), c.opts.Gravity)
	c.riseEnd = mgl32.Vec3{start.X(), l.target.Y(), start.Z()}

	extra := orderedmap.NewOrderedMap[string, any]()
	extra.Set("height", game.Round32(l.height, 3))
	extra.Set("speed", game.Round32(speed, 3))
	c.start(c.climbType.String(), []player.Capability{player.CapabilityMovement, player.CapabilityColliders}, extra)
	p.SetVelocity(c.velocity())
}

func (c *Climb) Cancel(*player.Player) {
	if c.Active() {
		c.end(true, 0)
		return
	}
	c.reset()
}
