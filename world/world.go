package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/strafe/game"
)

type body struct {
	id    Collider
	layer Mask
	shape shape
}

// World is a reference Query implementation over static boxes and ramps. It is not safe for
// concurrent use, matching the single-threaded tick it serves.
type World struct {
	bodies []body
	lastID Collider
}

// New returns an empty world.
func New() *World {
	return &World{}
}

// AddBox adds a solid axis aligned box on the given layer.
func (w *World) AddBox(bb cube.BBox, layer Mask) Collider {
	return w.add(layer, box{bb: bb})
}

// AddRamp adds a sloped surface. The plane passes through point with the given normal and only
// collides inside bounds. A zero-length normal yields a flat floor.
func (w *World) AddRamp(bounds cube.BBox, normal, point mgl32.Vec3, layer Mask) Collider {
	n, ok := game.SafeNormalize(normal)
	if !ok {
		n = game.Up
	}
	return w.add(layer, ramp{bounds: bounds, normal: n, point: point})
}

// Remove removes the collider from the world and returns true if it existed.
func (w *World) Remove(c Collider) bool {
	for i, b := range w.bodies {
		if b.id == c {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of colliders in the world.
func (w *World) Len() int {
	return len(w.bodies)
}

func (w *World) add(layer Mask, s shape) Collider {
	w.lastID++
	w.bodies = append(w.bodies, body{id: w.lastID, layer: layer, shape: s})
	return w.lastID
}

func (w *World) SphereCast(origin mgl32.Vec3, radius float32, dir mgl32.Vec3, maxDist float32, mask Mask) (Hit, bool) {
	return w.sweep(origin, radius, mgl32.Vec3{}, dir, maxDist, mask)
}

func (w *World) CapsuleCast(p1, p2 mgl32.Vec3, radius float32, dir mgl32.Vec3, maxDist float32, mask Mask) (Hit, bool) {
	spine := p2.Sub(p1).Mul(0.5)
	ext := mgl32.Vec3{abs(spine.X()), abs(spine.Y()), abs(spine.Z())}
	return w.sweep(p1.Add(spine), radius, ext, dir, maxDist, mask)
}

func (w *World) sweep(origin mgl32.Vec3, radius float32, ext, dir mgl32.Vec3, maxDist float32, mask Mask) (Hit, bool) {
	dir, ok := game.SafeNormalize(dir)
	if !ok || maxDist <= 0 {
		return Hit{}, false
	}

	var (
		best  Hit
		found bool
	)
	for _, b := range w.bodies {
		if b.layer&mask == 0 {
			continue
		}
		t, normal, ok := b.shape.sweep(origin, dir, maxDist, radius, ext)
		if !ok || (found && t >= best.Distance) {
			continue
		}

		reach := radius + ext.X()*abs(normal.X()) + ext.Y()*abs(normal.Y()) + ext.Z()*abs(normal.Z())
		best = Hit{
			Collider: b.id,
			Point:    origin.Add(dir.Mul(t)).Sub(normal.Mul(reach)),
			Normal:   normal,
			Distance: t,
		}
		found = true
	}
	return best, found
}

func (w *World) SphereOverlap(center mgl32.Vec3, radius float32, mask Mask) []Collider {
	var hits []Collider
	for _, b := range w.bodies {
		if b.layer&mask != 0 && b.shape.overlaps(center, radius) {
			hits = append(hits, b.id)
		}
	}
	return hits
}

func (w *World) Raycast(origin, dir mgl32.Vec3, maxDist float32, mask Mask) (Hit, bool) {
	dir, ok := game.SafeNormalize(dir)
	if !ok || maxDist <= 0 {
		return Hit{}, false
	}

	var (
		best  Hit
		found bool
	)
	for _, b := range w.bodies {
		if b.layer&mask == 0 {
			continue
		}
		t, normal, ok := b.shape.raycast(origin, dir, maxDist)
		if !ok || (found && t >= best.Distance) {
			continue
		}
		best = Hit{Collider: b.id, Point: origin.Add(dir.Mul(t)), Normal: normal, Distance: t}
		found = true
	}
	return best, found
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
