package player

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/strafe/game"
	"github.com/oomph-ac/strafe/world"
)

// groundInfoRadiusScale shrinks the sphere of the long ground cast so that the slope it reports is
// the one under the centre of the capsule, not the one under its rim.
const groundInfoRadiusScale = 0.5

func (p *Player) center() mgl32.Vec3 {
	return p.state.Pos.Add(game.Up.Mul(p.capsule.Height * 0.5))
}

func (p *Player) bottomSphere() mgl32.Vec3 {
	return p.state.Pos.Add(game.Up.Mul(p.capsule.Radius))
}

func (p *Player) topSphere() mgl32.Vec3 {
	return p.state.Pos.Add(game.Up.Mul(p.capsule.Height - p.capsule.Radius))
}

func resultFromHit(hit world.Hit) CollisionResult {
	return CollisionResult{
		Hit:      true,
		Normal:   hit.Normal,
		Point:    hit.Point,
		Distance: hit.Distance,
		Angle:    game.Angle(hit.Normal, game.Up),
		Collider: hit.Collider,
	}
}

// probe recomputes the ground, ceiling and side contacts of the player from its current position.
func (p *Player) probe() {
	p.ground, p.groundInfo, p.ceiling, p.side = CollisionResult{}, CollisionResult{}, CollisionResult{}, CollisionResult{}
	if p.q == nil || p.mask == world.MaskNone {
		return
	}

	p.probeGround()
	p.probeCeiling()
	p.probeSides()

	p.Dbg.Notify(DebugModeProbe, p.ground.Hit, "ground: dist=%.4f angle=%.2f collider=%d", p.ground.Distance, p.ground.Angle, p.ground.Collider)
	p.Dbg.Notify(DebugModeProbe, p.groundInfo.Hit, "ground info: dist=%.4f angle=%.2f normal=%v", p.groundInfo.Distance, p.groundInfo.Angle, p.groundInfo.Normal)
	p.Dbg.Notify(DebugModeProbe, p.ceiling.Hit, "ceiling: collider=%d", p.ceiling.Collider)
	p.Dbg.Notify(DebugModeProbe, p.side.Hit, "side: dist=%.4f angle=%.2f normal=%v", p.side.Distance, p.side.Angle, p.side.Normal)
}

func (p *Player) probeGround() {
	r := p.capsule.Radius
	origin := p.center()
	down := game.Up.Mul(-1)

	groundDist := p.capsule.Height*0.5 - r + p.opts.GroundOffset
	if hit, ok := p.q.SphereCast(origin, r, down, groundDist, p.mask); ok {
		p.ground = resultFromHit(hit)
	}

	infoRadius := r * groundInfoRadiusScale
	infoDist := (p.capsule.Height*0.5 - infoRadius + p.opts.GroundOffset) * game.GroundInfoRangeMultiplier
	if hit, ok := p.q.SphereCast(origin, infoRadius, down, infoDist, p.mask); ok {
		p.groundInfo = resultFromHit(hit)
	} else if p.ground.Hit {
		// Standing on an edge: the thin cast slipped past, so the rim contact is all there is.
		p.groundInfo = p.ground
	}
}

func (p *Player) probeCeiling() {
	p.ceiling = p.overlapAt(p.topSphere().Add(game.Up.Mul(p.opts.CeilingOffset)))
}

func (p *Player) overlapAt(center mgl32.Vec3) CollisionResult {
	hits := p.q.SphereOverlap(center, p.capsule.Radius, p.mask)
	if len(hits) == 0 {
		return CollisionResult{}
	}
	return CollisionResult{Hit: true, Point: center, Normal: game.Up.Mul(-1), Angle: 180, Collider: hits[0]}
}

// standBlocked returns true if there is no room above the player to grow to standing height.
func (p *Player) standBlocked() bool {
	if p.q == nil || p.mask == world.MaskNone {
		return false
	}
	head := p.state.Pos.Add(game.Up.Mul(p.opts.Stand.Height - p.capsule.Radius + p.opts.CeilingOffset))
	return len(p.q.SphereOverlap(head, p.capsule.Radius, p.mask)) > 0
}

// probeSides casts the capsule along the four horizontal axes of the view. Only hits at least as
// steep as the slope limit count as walls; the closest one wins. While grounded, obstacles lower
// than the step offset are left to the step-up logic of the mover.
func (p *Player) probeSides() {
	forward, right := game.Forward(p.state.Yaw), game.Right(p.state.Yaw)
	dirs := [4]mgl32.Vec3{forward, forward.Mul(-1), right, right.Mul(-1)}

	dist := p.opts.SkinWidth + p.opts.SidesOffset
	p1, p2 := p.bottomSphere(), p.topSphere()
	for _, dir := range dirs {
		hit, ok := p.q.CapsuleCast(p1, p2, p.capsule.Radius, dir, dist, p.mask)
		if !ok {
			continue
		}
		res := resultFromHit(hit)
		if res.Angle < p.opts.SlopeLimit {
			continue
		}
		if p.ground.Hit && p.belowStep(dir, p.capsule.Radius+dist) {
			continue
		}
		if !p.side.Hit || res.Distance < p.side.Distance {
			p.side = res
		}
	}
}

// belowStep returns true if nothing blocks the player along dir just above the step offset.
func (p *Player) belowStep(dir mgl32.Vec3, dist float32) bool {
	origin := p.state.Pos.Add(game.Up.Mul(p.opts.StepOffset + p.opts.SkinWidth))
	_, blocked := p.q.Raycast(origin, dir, dist+p.opts.SkinWidth, p.mask)
	return !blocked
}

// Ground returns the result of the short ground cast.
func (p *Player) Ground() CollisionResult { return p.ground }

// GroundInfo returns the result of the long ground cast used for slope logic.
func (p *Player) GroundInfo() CollisionResult { return p.groundInfo }

func (p *Player) CeilingHit() CollisionResult { return p.ceiling }

func (p *Player) SideHit() CollisionResult { return p.side }
