package world

import "github.com/go-gl/mathgl/mgl32"

// Collider is an opaque handle to a collider in a world. The zero Collider is never assigned.
type Collider uint32

// Mask is a layer bitmask. A collider is considered by a query when its layer shares a bit with
// the query's mask.
type Mask uint32

const (
	MaskNone Mask = 0
	MaskAll  Mask = ^Mask(0)
)

const (
	LayerDefault Mask = 1 << iota
	LayerStatic
	LayerDynamic
)

// Hit describes the first contact found by a cast.
type Hit struct {
	Collider Collider
	// Point is the contact point on the collider surface.
	Point mgl32.Vec3
	// Normal is the unit surface normal at the contact point, facing the caster.
	Normal mgl32.Vec3
	// Distance is how far the cast moved before making contact.
	Distance float32
}

// Query is the only surface through which the simulation sees the world. Casts ignore colliders
// that already overlap the cast shape at its origin.
type Query interface {
	// SphereCast sweeps a sphere from origin along dir for at most maxDist.
	SphereCast(origin mgl32.Vec3, radius float32, dir mgl32.Vec3, maxDist float32, mask Mask) (Hit, bool)
	// CapsuleCast sweeps the capsule spanned by the sphere centres p1 and p2 along dir.
	CapsuleCast(p1, p2 mgl32.Vec3, radius float32, dir mgl32.Vec3, maxDist float32, mask Mask) (Hit, bool)
	// SphereOverlap returns every collider intersecting the sphere.
	SphereOverlap(center mgl32.Vec3, radius float32, mask Mask) []Collider
	// Raycast casts an infinitely thin ray from origin along dir.
	Raycast(origin, dir mgl32.Vec3, maxDist float32, mask Mask) (Hit, bool)
}
