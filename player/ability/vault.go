package ability

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/strafe/game"
	"github.com/oomph-ac/strafe/input"
	"github.com/oomph-ac/strafe/player"
)

const NameVault = "vault"

// VaultType is the flavour of a vault, picked from the ledge height and the entry momentum.
type VaultType uint8

const (
	VaultShort VaultType = iota
	VaultStandard
	VaultSpeed
	VaultClimb
)

func (t VaultType) String() string {
	switch t {
	case VaultShort:
		return "short"
	case VaultStandard:
		return "standard"
	case VaultSpeed:
		return "speed"
	default:
		return "climb"
	}
}

type VaultOpts struct {
	Enabled  bool
	Priority int

	MinHeight float32
	MaxHeight float32
	// ShortHeight is the ledge height under which a slow vault is a short hop.
	ShortHeight float32
	// ClimbHeight is the ledge height from which every vault becomes a climb.
	ClimbHeight float32
	// MinSpeed is the horizontal speed the player must carry for two ticks in a row.
	MinSpeed float32
	// SpeedVaultSpeed is the horizontal speed from which a vault is a speed vault.
	SpeedVaultSpeed float32
	Reach           float32

	ShortDuration    float32
	StandardDuration float32
	SpeedDuration    float32
	ClimbDuration    float32

	// Gravity is the gravity the arc is solved for.
	Gravity  float32
	Cooldown float32
}

func DefaultVaultOpts() VaultOpts {
	return VaultOpts{
		Enabled:  true,
		Priority: 10,

		MinHeight:       0.5,
		MaxHeight:       2.25,
		ShortHeight:     0.75,
		ClimbHeight:     1.6,
		MinSpeed:        1,
		SpeedVaultSpeed: 4.5,
		Reach:           0.6,

		ShortDuration:    0.3,
		StandardDuration: 0.425,
		SpeedDuration:    0.35,
		ClimbDuration:    0.6,

		Gravity:  -20,
		Cooldown: 0.25,
	}
}

// classify picks the vault type for a ledge of the given height approached at the given speed.
func (o VaultOpts) classify(height, speed float32) VaultType {
	switch {
	case height >= o.ClimbHeight:
		return VaultClimb
	case speed >= o.SpeedVaultSpeed:
		return VaultSpeed
	case height < o.ShortHeight:
		return VaultShort
	default:
		return VaultStandard
	}
}

func (o VaultOpts) duration(t VaultType) float32 {
	switch t {
	case VaultShort:
		return o.ShortDuration
	case VaultStandard:
		return o.StandardDuration
	case VaultSpeed:
		return o.SpeedDuration
	case VaultClimb:
		return o.ClimbDuration
	}
	panic("unreachable")
}

// exitVelocity blends the horizontal entry velocity into the velocity the player leaves the
// vault with.
func (t VaultType) exitVelocity(entry mgl32.Vec3) mgl32.Vec3 {
	entry = game.Horizontal(entry)
	switch t {
	case VaultShort:
		return entry
	case VaultStandard:
		return entry.Mul(0.8)
	case VaultSpeed:
		return entry.Mul(1.1)
	case VaultClimb:
		return mgl32.Vec3{}
	}
	panic("unreachable")
}

// Vault carries an airborne player moving forward over a ledge in front of it along a ballistic
// arc that lands exactly on the ledge.
type Vault struct {
	base
	opts VaultOpts

	vaultType VaultType
	path      arc
	entry     mgl32.Vec3
}

func NewVault(p *player.Player, opts VaultOpts) *Vault {
	v := &Vault{base: newBase(p, NameVault, opts.Priority), opts: opts}
	v.bindCancel(v.Cancel)
	return v
}

// Type returns the type of the current or last vault.
func (v *Vault) Type() VaultType { return v.vaultType }

// Arc returns the start, target and duration of the current or last vault.
func (v *Vault) Arc() (start, target mgl32.Vec3, duration float32) {
	return v.path.start, v.path.target, v.path.duration
}

// LaunchVelocity returns the velocity the current or last vault started with.
func (v *Vault) LaunchVelocity() mgl32.Vec3 { return v.path.launch }

func (v *Vault) OnBeforeMove(p *player.Player) {
	if !v.update(p.Dt()) {
		return
	}
	if v.phase == PhaseIdle {
		v.tryStart(p)
		return
	}

	if v.elapsed >= v.path.duration {
		p.Teleport(v.path.target)
		p.SetVelocity(v.vaultType.exitVelocity(v.entry))
		v.end(false, v.opts.Cooldown)
		return
	}
	p.SetVelocity(v.path.velocityAt(v.elapsed))
}

func (v *Vault) tryStart(p *player.Player) {
	if !canTakeControl(p) || p.Grounded() || p.MoveInput().Y() <= 0 {
		return
	}
	speed := p.HorizontalSpeed()
	if speed < v.opts.MinSpeed || game.Vec3HzLen(p.State().LastVel) < v.opts.MinSpeed {
		return
	}
	if p.Input().Key(input.ActionVault) {
		// Holding the interact key asks for a climb instead.
		if _, ok := p.Processor(NameClimb); ok {
			return
		}
	}

	l, ok := findLedge(p, v.opts.Reach, v.opts.MinHeight, v.opts.MaxHeight)
	if !ok {
		return
	}

	v.vaultType = v.opts.classify(l.height, speed)
	v.entry = p.Vel()
	v.path = newArc(p.Pos(), l.target, v.opts.duration(v.vaultType), v.opts.Gravity)

	extra := orderedmap.NewOrderedMap[string, any]()
	extra.Set("height", game.Round32(l.height, 3))
	extra.Set("speed", game.Round32(speed, 3))
	extra.Set("collider", l.collider)
	v.start(v.vaultType.String(), []player.Capability{player.CapabilityMovement, player.CapabilityColliders}, extra)
	p.SetVelocity(v.path.launch)
}

func (v *Vault) Cancel(*player.Player) {
	if v.Active() {
		v.end(true, 0)
		return
	}
	v.reset()
}
