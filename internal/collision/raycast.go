package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/rigidsim/internal/phys"
	"github.com/san-kum/rigidsim/internal/world"
)

// Below this, a ray direction component is treated as parallel to the slab.
const parallelEpsilon = 1e-6

// Ray is origin + unit direction, limited to MaxDist.
type Ray struct {
	Origin  mgl64.Vec3
	Dir     mgl64.Vec3
	MaxDist float64
}

// NewRay builds a ray from two endpoints. ok is false for a degenerate
// (zero-length) segment.
func NewRay(from, to mgl64.Vec3) (Ray, bool) {
	d := to.Sub(from)
	length := d.Len()
	if length < parallelEpsilon {
		return Ray{}, false
	}
	return Ray{
		Origin:  from,
		Dir:     d.Mul(1 / length),
		MaxDist: length,
	}, true
}

// Raycast finds the globally nearest slab-test hit within r.MaxDist.
func (m *BruteForce) Raycast(items []world.Item, r Ray) (Hit, bool) {
	best := Hit{ID: phys.NoBody}
	found := false
	for _, it := range items {
		t, ok := slab(it.Body.AABB(), r)
		if !ok || t > r.MaxDist {
			continue
		}
		if !found || t < best.Distance {
			best.ID = it.ID
			best.Distance = t
			found = true
		}
	}
	if !found {
		return best, false
	}
	best.Point = r.Origin.Add(r.Dir.Mul(best.Distance))
	if b, ok := findItem(items, best.ID); ok {
		best.Normal = faceNormal(b.Body.AABB(), best.Point)
	}
	return best, true
}

// slab intersects the ray's parameter interval against the box's min/max
// planes on each axis. A near-parallel ray fails outright when its origin
// lies outside that axis' slab.
func slab(box phys.AABB, r Ray) (float64, bool) {
	tmin, tmax := 0.0, r.MaxDist
	for i := 0; i < 3; i++ {
		if math.Abs(r.Dir[i]) < parallelEpsilon {
			if r.Origin[i] < box.Min[i] || r.Origin[i] > box.Max[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / r.Dir[i]
		t1 := (box.Min[i] - r.Origin[i]) * inv
		t2 := (box.Max[i] - r.Origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}

// faceNormal picks the axis-aligned normal of the box face closest to p.
func faceNormal(box phys.AABB, p mgl64.Vec3) mgl64.Vec3 {
	best := math.Inf(1)
	var n mgl64.Vec3
	for i := 0; i < 3; i++ {
		if d := math.Abs(p[i] - box.Min[i]); d < best {
			best = d
			n = mgl64.Vec3{}
			n[i] = -1
		}
		if d := math.Abs(p[i] - box.Max[i]); d < best {
			best = d
			n = mgl64.Vec3{}
			n[i] = 1
		}
	}
	return n
}

func findItem(items []world.Item, id phys.ID) (world.Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return world.Item{}, false
}
