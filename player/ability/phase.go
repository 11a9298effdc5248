package ability

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/strafe/gate"
	"github.com/oomph-ac/strafe/player"
	"github.com/oomph-ac/strafe/player/event"
	"github.com/oomph-ac/strafe/utils"
)

// Phase is the state of an ability's state machine: idle -> triggered -> active -> cooldown -> idle.
type Phase uint8

const (
	PhaseIdle Phase = iota
	// PhaseTriggered lasts for the tick on which the ability starts.
	PhaseTriggered
	PhaseActive
	PhaseCooldown
)

func (ph Phase) String() string {
	switch ph {
	case PhaseIdle:
		return "idle"
	case PhaseTriggered:
		return "triggered"
	case PhaseActive:
		return "active"
	default:
		return "cooldown"
	}
}

// base carries the state every ability shares: its own enable gate, the token it uses to hold
// capabilities of the player, and its phase and timers.
type base struct {
	mPlayer  *player.Player
	name     string
	priority int

	enabled gate.StackBool
	token   gate.Token
	held    []player.Capability

	phase    Phase
	kind     string
	elapsed  float32
	cooldown float32
}

func newBase(p *player.Player, name string, priority int) base {
	return base{
		mPlayer:  p,
		name:     name,
		priority: priority,
		token:    gate.NewToken(),
	}
}

// bindCancel makes disabling the ability's gate terminate whatever the ability is doing.
func (b *base) bindCancel(cancel func(p *player.Player)) {
	b.enabled.Misuse = func(err error) {
		b.mPlayer.Log().Warnf("ability %s: %v", b.name, err)
	}
	b.enabled.OnChange = func(enabled bool) {
		if !enabled {
			cancel(b.mPlayer)
		}
	}
}

func (b *base) Name() string          { return b.name }
func (b *base) Priority() int         { return b.priority }
func (b *base) Phase() Phase          { return b.phase }
func (b *base) Gate() *gate.StackBool { return &b.enabled }

// Active returns true from the tick the ability triggers until it ends.
func (b *base) Active() bool {
	return b.phase == PhaseTriggered || b.phase == PhaseActive
}

func (*base) OnBeforeLook(*player.Player) {}

// update advances the phase timers. It returns false if the ability must not run this tick.
func (b *base) update(dt float32) bool {
	if !b.enabled.Enabled() {
		return false
	}
	switch b.phase {
	case PhaseCooldown:
		b.cooldown -= dt
		if b.cooldown <= 0 {
			b.cooldown, b.phase = 0, PhaseIdle
		}
		return false
	case PhaseTriggered:
		b.phase = PhaseActive
		b.elapsed += dt
	case PhaseActive:
		b.elapsed += dt
	}
	return true
}

// start moves the ability to the triggered phase, holding the given capabilities of the player
// disabled until the ability ends.
func (b *base) start(kind string, hold []player.Capability, extra *orderedmap.OrderedMap[string, any]) {
	b.phase, b.kind, b.elapsed = PhaseTriggered, kind, 0
	b.held = hold
	for _, c := range hold {
		_ = b.mPlayer.Disable(c, b.token)
	}

	if extra == nil {
		extra = orderedmap.NewOrderedMap[string, any]()
	}
	extra.Set("type", kind)
	b.mPlayer.Emit(event.AbilityStart{Ability: b.name, Type: kind})
	b.mPlayer.Dbg.Notify(player.DebugModeAbilities, true, "%s started %s", b.name, utils.OrderedMapToString(extra))
}

// end releases every capability the ability holds and moves it to its cooldown.
func (b *base) end(cancelled bool, cooldown float32) {
	for _, c := range b.held {
		_ = b.mPlayer.Enable(c, b.token)
	}
	b.held = nil

	b.mPlayer.Emit(event.AbilityEnd{Ability: b.name, Type: b.kind, Cancelled: cancelled})
	b.mPlayer.Dbg.Notify(player.DebugModeAbilities, true, "%s ended (type=%s elapsed=%.3f cancelled=%t)", b.name, b.kind, b.elapsed, cancelled)

	b.elapsed = 0
	if cooldown > 0 && !cancelled {
		b.phase, b.cooldown = PhaseCooldown, cooldown
		return
	}
	b.phase, b.cooldown = PhaseIdle, 0
}

// reset returns an ability that is not active to idle.
func (b *base) reset() {
	if !b.Active() {
		b.phase, b.cooldown = PhaseIdle, 0
	}
}

// canTakeControl returns true if no other system holds the base movement of the player.
func canTakeControl(p *player.Player) bool {
	return p.Enabled(player.CapabilityMovement)
}
