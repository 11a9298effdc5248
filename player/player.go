package player

import (
	"io"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/strafe/gate"
	"github.com/oomph-ac/strafe/input"
	"github.com/oomph-ac/strafe/oerror"
	"github.com/oomph-ac/strafe/player/event"
	"github.com/oomph-ac/strafe/world"
	"github.com/sirupsen/logrus"
)

// RunState reports whether the simulation is currently running. A paused game skips every tick.
type RunState interface {
	Running() bool
}

// Player is a kinematic first-person movement controller. It is driven by the host through Tick
// and is not safe for concurrent use.
type Player struct {
	Dbg *Debugger

	log  *logrus.Logger
	opts Opts
	src  input.Source
	run  RunState
	q    world.Query

	// inert is set when the options failed validation. An inert player never moves.
	inert bool

	state   MovementState
	capsule Capsule

	ground     CollisionResult
	groundInfo CollisionResult
	ceiling    CollisionResult
	side       CollisionResult

	mask        world.Mask
	defaultMask world.Mask

	caps           *orderedmap.OrderedMap[Capability, *gate.StackBool]
	processors     []Processor
	pipelineFrozen bool

	events event.Queue

	moveInput mgl32.Vec2
	wishDir   mgl32.Vec3
	speed     float32

	stanceOverride *Stance
	forced         mgl32.Vec3
	noclipToggle   bool

	jumpLock     float32
	jumped       bool
	landed       bool
	snapped      bool
	lastWalkable bool
	peakY        float32
	peakLatched  bool

	contacts     map[world.Collider]struct{}
	lastContacts map[world.Collider]struct{}

	ticks uint64
	time  float32
	dt    float32

	sensitivity float32
	fov         float32
}

// New creates a player at the given position. If the options are invalid or the input source is
// missing, the error is logged once and returned together with a player that stays inert.
func New(log *logrus.Logger, opts Opts, src input.Source, pos mgl32.Vec3) (*Player, error) {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	p := &Player{
		log:          log,
		opts:         opts,
		src:          src,
		mask:         world.MaskAll,
		defaultMask:  world.MaskAll,
		contacts:     make(map[world.Collider]struct{}),
		lastContacts: make(map[world.Collider]struct{}),
		lastWalkable: true,
		sensitivity:  opts.Sensitivity,
		fov:          opts.FOV,
	}
	p.Dbg = NewDebugger(log)
	p.initCapabilities()
	p.capsule = Capsule{Radius: opts.Stand.Radius, Height: opts.Stand.Height, CameraHeight: opts.Stand.CameraHeight}
	p.state.Pos, p.state.LastPos = pos, pos
	p.state.JumpArmed = true

	err := opts.Validate()
	if err == nil && src == nil {
		err = oerror.Newk(oerror.KindConfig, "player has no input source")
	}
	if err != nil {
		p.inert = true
		p.src = input.Nop{}
		p.log.Errorf("player is inert: %v", err)
		return p, err
	}
	return p, nil
}

// Tick advances the simulation by dt seconds against the world query q.
func (p *Player) Tick(dt float32, q world.Query) {
	if p.run != nil && !p.run.Running() {
		return
	}
	p.pipelineFrozen = true

	if p.inert || q == nil {
		p.state.SetVel(mgl32.Vec3{})
		p.forced = mgl32.Vec3{}
		return
	}
	dt = max(min(dt, p.opts.MaxDeltaTime), 0)
	p.q, p.dt, p.jumped = q, dt, false

	p.probe()
	p.updateGroundState(dt)
	p.updateWishDir()

	if p.Enabled(CapabilityMovement) {
		p.updateStance(dt)
		p.integrate(dt)
		p.tryJump()
	} else if p.stanceOverride != nil {
		p.updateStance(dt)
	}

	p.move(p.state.Vel.Mul(dt).Add(p.forced))
	p.forced = mgl32.Vec3{}
	p.snapToGround()
	p.updateContacts()

	p.runBeforeMove()
	p.runBeforeLook()
	p.applyLook()

	p.ticks++
	p.time += dt
}

// applyLook turns the view by the look axis scaled by the sensitivity.
func (p *Player) applyLook() {
	if !p.Enabled(CapabilityLook) {
		return
	}
	look := p.src.Axis(input.ActionLook).Mul(p.sensitivity)
	p.SetRotation(p.state.Yaw+look.X(), p.state.Pitch-look.Y())
}

// updateContacts diffs the colliders touched this tick against the previous tick.
func (p *Player) updateContacts() {
	for _, r := range [...]CollisionResult{p.ground, p.ceiling, p.side} {
		if r.Hit && r.Collider != 0 {
			p.touch(r.Collider)
		}
	}
	for c := range p.contacts {
		if _, ok := p.lastContacts[c]; !ok {
			p.Emit(event.ColliderEnter{Collider: c})
		}
	}
	for c := range p.lastContacts {
		if _, ok := p.contacts[c]; !ok {
			p.Emit(event.ColliderExit{Collider: c})
		}
	}
	p.lastContacts, p.contacts = p.contacts, p.lastContacts
	clear(p.contacts)
}

func (p *Player) touch(c world.Collider) {
	if c != 0 {
		p.contacts[c] = struct{}{}
	}
}

// Emit queues an event for the host.
func (p *Player) Emit(e event.Event) {
	p.events.Push(e)
}

// DrainEvents returns the events produced since the last drain, in emission order.
func (p *Player) DrainEvents() []event.Event {
	return p.events.Drain()
}

// SetRunState sets the run/pause query consulted at the start of every tick.
func (p *Player) SetRunState(r RunState) {
	p.run = r
}

func (p *Player) Log() *logrus.Logger { return p.log }
func (p *Player) Opts() Opts          { return p.opts }
func (p *Player) Input() input.Source { return p.src }
func (p *Player) Inert() bool         { return p.inert }

// Query returns the world query of the current tick.
func (p *Player) Query() world.Query { return p.q }

// Ticks returns the number of ticks simulated.
func (p *Player) Ticks() uint64 { return p.ticks }

// Time returns the simulated time in seconds.
func (p *Player) Time() float32 { return p.time }

// Dt returns the clamped delta time of the current tick.
func (p *Player) Dt() float32 { return p.dt }
