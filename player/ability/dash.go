package ability

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/strafe/game"
	"github.com/oomph-ac/strafe/input"
	"github.com/oomph-ac/strafe/player"
)

const NameDash = "dash"

type DashOpts struct {
	Enabled  bool
	Priority int

	// Speed is the velocity added along the move direction, or the view when there is no move input.
	Speed    float32
	Cooldown float32
	// MaxAirDashes is the number of dashes allowed per airtime. Zero disables air dashes.
	MaxAirDashes int
}

func DefaultDashOpts() DashOpts {
	return DashOpts{
		Enabled:      true,
		Priority:     40,
		Speed:        8,
		Cooldown:     1,
		MaxAirDashes: 1,
	}
}

// Dash adds an instant burst of horizontal velocity when the dash key is pressed.
type Dash struct {
	base
	opts DashOpts

	airDashes int
}

func NewDash(p *player.Player, opts DashOpts) *Dash {
	d := &Dash{base: newBase(p, NameDash, opts.Priority), opts: opts}
	d.bindCancel(d.Cancel)
	return d
}

// AirDashes returns the number of dashes used since the player last touched the ground.
func (d *Dash) AirDashes() int { return d.airDashes }

func (d *Dash) OnBeforeMove(p *player.Player) {
	if p.Grounded() {
		d.airDashes = 0
	}
	if !d.update(p.Dt()) {
		return
	}
	switch d.phase {
	case PhaseIdle:
		d.tryStart(p)
	case PhaseActive:
		d.end(false, d.opts.Cooldown)
	}
}

func (d *Dash) tryStart(p *player.Player) {
	if !p.Input().KeyDown(input.ActionDash) || !canTakeControl(p) {
		return
	}
	kind := "ground"
	if !p.Grounded() {
		if d.airDashes >= d.opts.MaxAirDashes {
			return
		}
		d.airDashes++
		kind = "air"
	}

	dir, ok := game.SafeNormalize(game.Horizontal(p.MoveDirection()))
	if !ok {
		dir = p.Forward()
	}
	extra := orderedmap.NewOrderedMap[string, any]()
	extra.Set("speed", game.Round32(d.opts.Speed, 3))
	extra.Set("air_dashes", d.airDashes)
	d.start(kind, nil, extra)
	p.AddVelocity(dir.Mul(d.opts.Speed))
}

func (d *Dash) Cancel(*player.Player) {
	if d.Active() {
		d.end(true, 0)
		return
	}
	d.reset()
}
