package world

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	parallelEpsilon = float32(1e-8)
	faceEpsilon     = float32(1e-4)
)

// shape is a static collision primitive. ext is the half extent of the swept segment, which is
// zero for spheres and half the capsule spine for capsules.
type shape interface {
	sweep(origin, dir mgl32.Vec3, maxDist, radius float32, ext mgl32.Vec3) (float32, mgl32.Vec3, bool)
	raycast(origin, dir mgl32.Vec3, maxDist float32) (float32, mgl32.Vec3, bool)
	overlaps(center mgl32.Vec3, radius float32) bool
}

// box is an axis aligned solid box.
type box struct {
	bb cube.BBox
}

// sweep intersects the ray against the box grown by the swept shape's extent. The grown box has
// square edges, so contacts near box edges are slightly conservative.
func (b box) sweep(origin, dir mgl32.Vec3, maxDist, radius float32, ext mgl32.Vec3) (float32, mgl32.Vec3, bool) {
	grow := ext.Add(mgl32.Vec3{radius, radius, radius})
	min, max := b.bb.Min().Sub(grow), b.bb.Max().Add(grow)

	tNear, tFar := float32(-math32.MaxFloat32), float32(math32.MaxFloat32)
	axis, sign := -1, float32(0)
	for i := 0; i < 3; i++ {
		if math32.Abs(dir[i]) < parallelEpsilon {
			if origin[i] < min[i] || origin[i] > max[i] {
				return 0, mgl32.Vec3{}, false
			}
			continue
		}

		inv := 1 / dir[i]
		t1, t2 := (min[i]-origin[i])*inv, (max[i]-origin[i])*inv
		n := float32(-1)
		if t1 > t2 {
			t1, t2 = t2, t1
			n = 1
		}
		if t1 > tNear {
			tNear, axis, sign = t1, i, n
		}
		tFar = math32.Min(tFar, t2)
		if tNear > tFar {
			return 0, mgl32.Vec3{}, false
		}
	}
	if axis < 0 || tNear < 0 || tNear > maxDist {
		return 0, mgl32.Vec3{}, false
	}

	var normal mgl32.Vec3
	normal[axis] = sign
	return tNear, normal, true
}

func (b box) raycast(origin, dir mgl32.Vec3, maxDist float32) (float32, mgl32.Vec3, bool) {
	if b.bb.Vec3Within(origin) {
		return 0, mgl32.Vec3{}, false
	}
	result, ok := trace.BBoxIntercept(b.bb, origin, origin.Add(dir.Mul(maxDist)))
	if !ok {
		return 0, mgl32.Vec3{}, false
	}

	pos := result.Position()
	return pos.Sub(origin).Len(), b.faceNormal(pos), true
}

// faceNormal returns the outward normal of the face that pos lies on.
func (b box) faceNormal(pos mgl32.Vec3) mgl32.Vec3 {
	min, max := b.bb.Min(), b.bb.Max()
	best, axis, sign := float32(math32.MaxFloat32), 1, float32(1)
	for i := 0; i < 3; i++ {
		if d := math32.Abs(pos[i] - min[i]); d < best {
			best, axis, sign = d, i, -1
		}
		if d := math32.Abs(pos[i] - max[i]); d < best {
			best, axis, sign = d, i, 1
		}
	}
	var normal mgl32.Vec3
	normal[axis] = sign
	return normal
}

func (b box) overlaps(center mgl32.Vec3, radius float32) bool {
	min, max := b.bb.Min(), b.bb.Max()
	var closest mgl32.Vec3
	for i := 0; i < 3; i++ {
		closest[i] = math32.Max(min[i], math32.Min(center[i], max[i]))
	}
	return closest.Sub(center).LenSqr() < radius*radius
}

// ramp is a walkable or steep plane clipped to a bounding region. Only its top surface collides;
// the sides of the bounding region are open.
type ramp struct {
	bounds cube.BBox
	normal mgl32.Vec3
	point  mgl32.Vec3
}

// support returns how far the swept shape reaches along the ramp normal from its centre.
func (r ramp) support(radius float32, ext mgl32.Vec3) float32 {
	return radius +
		ext.X()*math32.Abs(r.normal.X()) +
		ext.Y()*math32.Abs(r.normal.Y()) +
		ext.Z()*math32.Abs(r.normal.Z())
}

func (r ramp) sweep(origin, dir mgl32.Vec3, maxDist, radius float32, ext mgl32.Vec3) (float32, mgl32.Vec3, bool) {
	s := r.support(radius, ext)
	dist := origin.Sub(r.point).Dot(r.normal)
	approach := dir.Dot(r.normal)
	if dist < s || approach >= -parallelEpsilon {
		return 0, mgl32.Vec3{}, false
	}

	t := (s - dist) / approach
	if t < 0 || t > maxDist {
		return 0, mgl32.Vec3{}, false
	}
	contact := origin.Add(dir.Mul(t)).Sub(r.normal.Mul(s))
	if !r.bounds.Grow(faceEpsilon).Vec3Within(contact) {
		return 0, mgl32.Vec3{}, false
	}
	return t, r.normal, true
}

func (r ramp) raycast(origin, dir mgl32.Vec3, maxDist float32) (float32, mgl32.Vec3, bool) {
	return r.sweep(origin, dir, maxDist, 0, mgl32.Vec3{})
}

func (r ramp) overlaps(center mgl32.Vec3, radius float32) bool {
	dist := center.Sub(r.point).Dot(r.normal)
	if math32.Abs(dist) >= radius {
		return false
	}
	foot := center.Sub(r.normal.Mul(dist))
	return r.bounds.Grow(radius).Vec3Within(foot)
}
