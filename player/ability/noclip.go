package ability

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/strafe/game"
	"github.com/oomph-ac/strafe/input"
	"github.com/oomph-ac/strafe/player"
	"github.com/oomph-ac/strafe/world"
)

const NameNoclip = "noclip"

type NoclipOpts struct {
	Enabled  bool
	Priority int

	Speed            float32
	SprintMultiplier float32
	// ScrollStep is how much one unit of scroll changes the speed scale.
	ScrollStep float32
	MinScale   float32
	MaxScale   float32
}

func DefaultNoclipOpts() NoclipOpts {
	return NoclipOpts{
		Enabled:          true,
		Priority:         0,
		Speed:            10,
		SprintMultiplier: 3,
		ScrollStep:       0.1,
		MinScale:         0.1,
		MaxScale:         10,
	}
}

// Noclip toggles a free-flying mode in which the player ignores every collider and moves directly
// from raw input along the view.
type Noclip struct {
	base
	opts NoclipOpts

	scale float32
}

func NewNoclip(p *player.Player, opts NoclipOpts) *Noclip {
	n := &Noclip{base: newBase(p, NameNoclip, opts.Priority), opts: opts, scale: 1}
	n.bindCancel(n.Cancel)
	return n
}

// Scale returns the speed scale set with the scroll wheel.
func (n *Noclip) Scale() float32 { return n.scale }

func (n *Noclip) OnBeforeMove(p *player.Player) {
	if !n.update(p.Dt()) {
		return
	}
	toggled := p.ConsumeNoclipToggle() || p.Input().KeyDown(input.ActionNoclip)
	if !n.Active() {
		if toggled {
			n.activate(p)
		}
		return
	}
	if toggled {
		n.deactivate(p, false)
		return
	}

	src := p.Input()
	n.scale = game.Clamp(n.scale+src.Scroll()*n.opts.ScrollStep, n.opts.MinScale, n.opts.MaxScale)
	speed := n.opts.Speed * n.scale
	if src.Key(input.ActionSprint) {
		speed *= n.opts.SprintMultiplier
	}

	move := p.MoveInput()
	var vertical float32
	if src.Key(input.ActionJump) {
		vertical++
	}
	if src.Key(input.ActionCrouch) {
		vertical--
	}
	dir := p.LookDirection().Mul(move.Y()).
		Add(game.Right(p.State().Yaw).Mul(move.X())).
		Add(game.Up.Mul(vertical))
	if dir, ok := game.SafeNormalize(dir); ok {
		p.Teleport(p.Pos().Add(dir.Mul(speed * p.Dt())))
	}
	p.SetVelocity(mgl32.Vec3{})
}

func (n *Noclip) activate(p *player.Player) {
	for _, proc := range p.Processors() {
		if proc.Name() != n.name {
			proc.Cancel(p)
		}
	}
	n.start("toggle", []player.Capability{player.CapabilityMovement, player.CapabilityColliders}, nil)
	p.SetCollisionMask(world.MaskNone)
	p.SetVelocity(mgl32.Vec3{})
}

func (n *Noclip) deactivate(p *player.Player, cancelled bool) {
	p.ResetCollisionMask()
	n.end(cancelled, 0)
}

func (n *Noclip) Cancel(p *player.Player) {
	if n.Active() {
		n.deactivate(p, true)
		return
	}
	n.reset()
}
