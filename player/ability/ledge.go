package ability

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/strafe/game"
	"github.com/oomph-ac/strafe/player"
	"github.com/oomph-ac/strafe/world"
)

const (
	// ledgeProbeMargin is added above the highest reachable ledge so the downward probe starts
	// clear of it.
	ledgeProbeMargin = 0.05
	// ledgeInset is how far past the ledge edge, beyond the capsule radius, the player is placed.
	ledgeInset = 0.05
)

// ledge is a surface in front of the player that it can be carried onto.
type ledge struct {
	// target is where the bottom of the capsule ends up.
	target   mgl32.Vec3
	normal   mgl32.Vec3
	height   float32
	collider world.Collider
}

// findLedge looks for a near-flat surface in front of the player whose height above its feet is
// within [minHeight, maxHeight] and which has room for the capsule. A miss is the normal outcome
// of most ticks.
func findLedge(p *player.Player, reach, minHeight, maxHeight float32) (ledge, bool) {
	q := p.Query()
	if q == nil || p.Mask() == world.MaskNone {
		return ledge{}, false
	}
	pos, capsule, fwd := p.Pos(), p.Capsule(), p.Forward()
	opts := p.Opts()

	// Something must block the way just under the lowest ledge height.
	knee := pos.Add(game.Up.Mul(minHeight - ledgeProbeMargin))
	wall, ok := q.Raycast(knee, fwd, capsule.Radius+reach, p.Mask())
	if !ok {
		return ledge{}, false
	}

	inset := wall.Distance + capsule.Radius + ledgeInset
	top := pos.Add(fwd.Mul(inset)).Add(game.Up.Mul(maxHeight + ledgeProbeMargin))
	hit, ok := q.Raycast(top, game.Up.Mul(-1), maxHeight-minHeight+ledgeProbeMargin, p.Mask())
	if !ok || game.Angle(hit.Normal, game.Up) > game.LedgeNormalTolerance {
		return ledge{}, false
	}

	height := hit.Point.Y() - pos.Y()
	if height < minHeight || height > maxHeight {
		return ledge{}, false
	}

	target := hit.Point.Add(game.Up.Mul(opts.SkinWidth))
	feet := target.Add(game.Up.Mul(capsule.Radius + opts.SkinWidth))
	head := target.Add(game.Up.Mul(max(capsule.Height-capsule.Radius, capsule.Radius)))
	if len(q.SphereOverlap(feet, capsule.Radius, p.Mask())) > 0 || len(q.SphereOverlap(head, capsule.Radius, p.Mask())) > 0 {
		return ledge{}, false
	}
	return ledge{target: target, normal: hit.Normal, height: height, collider: hit.Collider}, true
}

// arc is a ballistic path that carries the player from start to target in exactly duration
// seconds under gravity.
type arc struct {
	start, target mgl32.Vec3
	launch        mgl32.Vec3
	duration      float32
	gravity       float32
}

func newArc(start, target mgl32.Vec3, duration, gravity float32) arc {
	duration = max(duration, game.MinDuration)
	return arc{
		start:    start,
		target:   target,
		launch:   game.ArcVelocity(start, target, duration, gravity),
		duration: duration,
		gravity:  gravity,
	}
}

// velocityAt returns the velocity along the arc t seconds after launch.
func (a arc) velocityAt(t float32) mgl32.Vec3 {
	v := a.launch
	v[1] += a.gravity * t
	return v
}

// positionAt returns the closed-form position along the arc t seconds after launch.
func (a arc) positionAt(t float32) mgl32.Vec3 {
	return a.start.Add(a.launch.Mul(t)).Add(game.Up.Mul(0.5 * a.gravity * t * t))
}
