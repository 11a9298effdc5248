package player

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/strafe/game"
	"github.com/oomph-ac/strafe/player/event"
	"github.com/oomph-ac/strafe/world"
)

const (
	maxSlideIterations = 4
	// minApproachCos bounds the skin back-off for casts that graze a surface.
	minApproachCos = 0.2
)

// castCapsule sweeps the current capsule placed with its bottom at pos.
func (p *Player) castCapsule(pos, dir mgl32.Vec3, dist float32) (world.Hit, bool) {
	r := p.capsule.Radius
	p1 := pos.Add(game.Up.Mul(r))
	p2 := pos.Add(game.Up.Mul(math32.Max(p.capsule.Height-r, r)))
	return p.q.CapsuleCast(p1, p2, r, dir, dist, p.mask)
}

// travelTo returns how far along dir the capsule may advance before it gets closer to the hit
// surface than the skin width.
func (p *Player) travelTo(hit world.Hit, dir mgl32.Vec3) float32 {
	approach := math32.Max(-dir.Dot(hit.Normal), minApproachCos)
	return math32.Max(hit.Distance-p.opts.SkinWidth/approach, 0)
}

// move applies the displacement with collide-and-slide against the world. Surfaces too steep to
// walk on also remove the matching velocity component; walkable surfaces are left to landing.
func (p *Player) move(delta mgl32.Vec3) {
	if delta.Len() < game.MinDirectionLength {
		return
	}
	if !p.Enabled(CapabilityColliders) || p.q == nil || p.mask == world.MaskNone {
		p.state.SetPos(p.state.Pos.Add(delta))
		return
	}

	pos := p.state.Pos
	stepped := false
	for i := 0; i < maxSlideIterations; i++ {
		dir, ok := game.SafeNormalize(delta)
		if !ok {
			break
		}
		dist := delta.Len()

		hit, ok := p.castCapsule(pos, dir, dist+p.opts.SkinWidth)
		if !ok {
			pos = pos.Add(delta)
			break
		}

		travel := math32.Min(p.travelTo(hit, dir), dist)
		pos = pos.Add(dir.Mul(travel))
		delta = dir.Mul(dist - travel)
		p.touch(hit.Collider)

		angle := game.Angle(hit.Normal, game.Up)
		if angle >= p.opts.SlopeLimit && !stepped && p.state.Grounded {
			if stepPos, rest, ok := p.tryStep(pos, delta); ok {
				pos, delta, stepped = stepPos, rest, true
				continue
			}
		}

		delta = game.ProjectOnPlane(delta, hit.Normal)
		if angle >= p.opts.SlopeLimit {
			p.state.Vel = game.ClipVelocity(p.state.Vel, hit.Normal, 1)
		}
	}
	p.state.SetPos(pos)
}

// tryStep attempts to climb an obstacle no taller than the step offset: the capsule is lifted,
// carried forward by the horizontal part of the remaining displacement and lowered back onto the
// obstacle. It returns the new position and the displacement that is left.
func (p *Player) tryStep(pos, delta mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3, bool) {
	horizontal := game.Horizontal(delta)
	dir, ok := game.SafeNormalize(horizontal)
	if !ok || p.opts.StepOffset <= 0 {
		return pos, delta, false
	}
	skin := p.opts.SkinWidth

	lift := p.opts.StepOffset
	if hit, ok := p.castCapsule(pos, game.Up, lift+skin); ok {
		lift = p.travelTo(hit, game.Up)
	}
	if lift <= skin {
		return pos, delta, false
	}
	raised := pos.Add(game.Up.Mul(lift))

	forward := horizontal.Len()
	if hit, ok := p.castCapsule(raised, dir, forward+skin); ok {
		forward = math32.Min(p.travelTo(hit, dir), forward)
	}
	if forward < game.MinDirectionLength {
		return pos, delta, false
	}
	carried := raised.Add(dir.Mul(forward))

	down := game.Up.Mul(-1)
	hit, ok := p.castCapsule(carried, down, lift+skin)
	if !ok || game.Angle(hit.Normal, game.Up) >= p.opts.SlopeLimit {
		return pos, delta, false
	}
	final := carried.Add(down.Mul(p.travelTo(hit, down)))
	height := final.Y() - pos.Y()
	if height <= skin {
		return pos, delta, false
	}

	p.touch(hit.Collider)
	p.Emit(event.Step{Height: height, Collider: hit.Collider, Point: hit.Point, Normal: hit.Normal})
	p.Dbg.Notify(DebugModeIntegrator, true, "stepped up %.4f onto collider %d", height, hit.Collider)
	return final, dir.Mul(horizontal.Len() - forward), true
}

// snapToGround keeps a grounded player in contact with the ground after the displacement, so it
// does not hover at the edge of the ground probe range.
func (p *Player) snapToGround() {
	if !p.state.Grounded || p.jumped || p.state.Vel.Y() > 0 {
		return
	}
	if !p.Enabled(CapabilityColliders) || p.q == nil || p.mask == world.MaskNone {
		return
	}
	down := game.Up.Mul(-1)
	hit, ok := p.castCapsule(p.state.Pos, down, p.opts.GroundOffset+p.opts.SkinWidth)
	if !ok || game.Angle(hit.Normal, game.Up) >= p.opts.SlopeLimit {
		return
	}
	if d := p.travelTo(hit, down); d > 0 {
		p.state.Pos = p.state.Pos.Add(down.Mul(d))
	}
}

// ForceMove queues a displacement that is applied with collisions on the next movement pass.
func (p *Player) ForceMove(delta mgl32.Vec3) {
	p.forced = p.forced.Add(delta)
}

// Teleport places the player at pos without collision checks.
func (p *Player) Teleport(pos mgl32.Vec3) {
	p.state.SetPos(pos)
	p.state.LastPos = pos
}
