package ability

import (
	"github.com/chewxy/math32"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/strafe/game"
	"github.com/oomph-ac/strafe/input"
	"github.com/oomph-ac/strafe/player"
	"github.com/oomph-ac/strafe/utils"
	"github.com/oomph-ac/strafe/world"
)

const (
	NameWallRun = "wallrun"

	wallMemory = 4
)

type WallRunOpts struct {
	Enabled  bool
	Priority int

	// MinHeight is the clearance above the ground needed to start running on a wall.
	MinHeight float32
	MinSpeed  float32
	// CheckDistance is how far beyond the capsule radius walls are probed.
	CheckDistance float32
	// WallAngleTolerance is the max deviation, in degrees, of a wall normal from horizontal.
	WallAngleTolerance float32

	Speed        float32
	Acceleration float32
	Gravity      float32
	MaxDuration  float32
	// Smoothing is the rate at which the run reorients towards a changing wall normal.
	Smoothing  float32
	StickForce float32

	// DebounceTime is how long a wall that was run on stays unavailable.
	DebounceTime float32
	// DebounceSimilarity is the normal dot product from which two walls are considered the same.
	DebounceSimilarity float32

	JumpForward float32
	JumpPush    float32
	JumpUp      float32

	Tilt      float32
	TiltSpeed float32

	// PreferRightWall makes the right wall win when both sides are valid. When false, the closest
	// wall wins.
	PreferRightWall bool
	Cooldown        float32
}

func DefaultWallRunOpts() WallRunOpts {
	return WallRunOpts{
		Enabled:  true,
		Priority: 30,

		MinHeight:          0.8,
		MinSpeed:           2,
		CheckDistance:      0.5,
		WallAngleTolerance: 10,

		Speed:        6,
		Acceleration: 4,
		Gravity:      -3,
		MaxDuration:  1.5,
		Smoothing:    10,
		StickForce:   1,

		DebounceTime:       0.75,
		DebounceSimilarity: 0.9,

		JumpForward: 4,
		JumpPush:    4,
		JumpUp:      6,

		Tilt:      12,
		TiltSpeed: 60,

		PreferRightWall: true,
		Cooldown:        0.2,
	}
}

type wallMark struct {
	normal mgl32.Vec3
	at     float32
}

// WallRun lets an airborne player moving forward run along a near-vertical wall beside it.
type WallRun struct {
	base
	opts WallRunOpts

	recent *utils.CircularQueue[wallMark]

	normal  mgl32.Vec3
	tangent mgl32.Vec3
	side    float32
	speed   float32
	vy      float32
}

func NewWallRun(p *player.Player, opts WallRunOpts) *WallRun {
	w := &WallRun{
		base:   newBase(p, NameWallRun, opts.Priority),
		opts:   opts,
		recent: utils.NewCircularQueue[wallMark](wallMemory),
	}
	w.bindCancel(w.Cancel)
	return w
}

// Normal returns the normal of the wall currently being run on.
func (w *WallRun) Normal() mgl32.Vec3 { return w.normal }

func (w *WallRun) OnBeforeMove(p *player.Player) {
	dt := p.Dt()
	if !w.update(dt) {
		return
	}
	if w.phase == PhaseIdle {
		w.tryStart(p)
		return
	}

	switch {
	case p.Input().KeyDown(input.ActionJump) && p.Enabled(player.CapabilityJump):
		w.eject(p)
		return
	case p.Grounded(), p.MoveInput().Y() <= 0:
		w.stop(p, false)
		return
	case w.elapsed >= w.opts.MaxDuration:
		w.stop(p, false)
		return
	}

	hit, ok := w.probe(p, w.normal.Mul(-1))
	if !ok {
		w.stop(p, false)
		return
	}
	normal, ok := game.SafeNormalize(game.LerpVec3(w.normal, hit.Normal, w.opts.Smoothing*dt))
	if !ok {
		normal = hit.Normal
	}
	w.normal = normal
	if !w.updateTangent(p) {
		w.stop(p, false)
		return
	}

	w.speed = game.MoveTowards(w.speed, w.opts.Speed, w.opts.Acceleration*dt)
	w.vy += w.opts.Gravity * dt
	p.SetVelocity(w.velocity())
}

func (w *WallRun) OnBeforeLook(p *player.Player) {
	target := float32(0)
	if w.Active() {
		target = -w.side * w.opts.Tilt
	}
	p.SetTilt(game.MoveTowards(p.Tilt(), target, w.opts.TiltSpeed*p.Dt()))
}

func (w *WallRun) velocity() mgl32.Vec3 {
	return w.tangent.Mul(w.speed).Add(game.Up.Mul(w.vy)).Sub(w.normal.Mul(w.opts.StickForce))
}

// updateTangent aligns the run direction with the view projected onto the wall.
func (w *WallRun) updateTangent(p *player.Player) bool {
	tangent, ok := game.SafeNormalize(game.Horizontal(game.ProjectOnPlane(p.Forward(), w.normal)))
	if ok {
		w.tangent = tangent
	}
	return ok
}

// probe casts a ray from the centre of the capsule and reports near-vertical walls.
func (w *WallRun) probe(p *player.Player, dir mgl32.Vec3) (world.Hit, bool) {
	q := p.Query()
	if q == nil || p.Mask() == world.MaskNone {
		return world.Hit{}, false
	}
	capsule := p.Capsule()
	center := p.Pos().Add(game.Up.Mul(capsule.Height * 0.5))
	hit, ok := q.Raycast(center, dir, capsule.Radius+w.opts.CheckDistance, p.Mask())
	if !ok || math32.Abs(game.Angle(hit.Normal, game.Up)-90) > w.opts.WallAngleTolerance {
		return world.Hit{}, false
	}
	return hit, true
}

// debounced returns true if a wall with a similar normal was run on recently.
func (w *WallRun) debounced(now float32, normal mgl32.Vec3) bool {
	for m := range w.recent.Iter() {
		if now-m.at < w.opts.DebounceTime && m.normal.Dot(normal) >= w.opts.DebounceSimilarity {
			return true
		}
	}
	return false
}

// pickWall probes both sides of the player and returns the wall to run on and its side, +1 for
// right and -1 for left.
func (w *WallRun) pickWall(p *player.Player) (world.Hit, float32, bool) {
	right := game.Right(p.State().Yaw)
	now := p.Time()

	rHit, rOk := w.probe(p, right)
	rOk = rOk && !w.debounced(now, rHit.Normal)
	lHit, lOk := w.probe(p, right.Mul(-1))
	lOk = lOk && !w.debounced(now, lHit.Normal)

	switch {
	case rOk && lOk:
		if w.opts.PreferRightWall || rHit.Distance <= lHit.Distance {
			return rHit, 1, true
		}
		return lHit, -1, true
	case rOk:
		return rHit, 1, true
	case lOk:
		return lHit, -1, true
	}
	return world.Hit{}, 0, false
}

func (w *WallRun) tryStart(p *player.Player) {
	if !canTakeControl(p) || p.Grounded() || p.MoveInput().Y() <= 0 {
		return
	}
	speed := p.HorizontalSpeed()
	if speed < w.opts.MinSpeed {
		return
	}
	if q := p.Query(); q == nil {
		return
	} else if _, near := q.Raycast(p.Pos(), game.Up.Mul(-1), w.opts.MinHeight, p.Mask()); near {
		return
	}

	hit, side, ok := w.pickWall(p)
	if !ok {
		return
	}
	w.normal, w.side = hit.Normal, side
	if !w.updateTangent(p) {
		return
	}
	w.speed = speed
	w.vy = max(p.Vel().Y(), 0)

	sideName := "right"
	if side < 0 {
		sideName = "left"
	}
	extra := orderedmap.NewOrderedMap[string, any]()
	extra.Set("speed", game.Round32(speed, 3))
	extra.Set("distance", game.Round32(hit.Distance, 3))
	extra.Set("collider", hit.Collider)
	w.start(sideName, []player.Capability{player.CapabilityMovement}, extra)
	p.SetVelocity(w.velocity())
}

// eject ends the run with a jump away from the wall.
func (w *WallRun) eject(p *player.Player) {
	vel := w.tangent.Mul(max(w.speed, w.opts.JumpForward)).
		Add(w.normal.Mul(w.opts.JumpPush)).
		Add(game.Up.Mul(w.opts.JumpUp))
	w.stop(p, false)
	p.LaunchJump(vel)
}

func (w *WallRun) stop(p *player.Player, cancelled bool) {
	w.recent.Append(wallMark{normal: w.normal, at: p.Time()})
	w.speed, w.vy = 0, 0
	w.end(cancelled, w.opts.Cooldown)
}

func (w *WallRun) Cancel(p *player.Player) {
	if w.Active() {
		w.stop(p, true)
		return
	}
	w.reset()
}
