package phys

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB is an axis-aligned bounding box in world coordinates.
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

func FromCenter(center, half mgl64.Vec3) AABB {
	return AABB{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

func (a AABB) Center() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

func (a AABB) Size() mgl64.Vec3 {
	return a.Max.Sub(a.Min)
}

// Intersects reports interval overlap on all three axes.
func (a AABB) Intersects(b AABB) bool {
	return a.Min[0] <= b.Max[0] && a.Max[0] >= b.Min[0] &&
		a.Min[1] <= b.Max[1] && a.Max[1] >= b.Min[1] &&
		a.Min[2] <= b.Max[2] && a.Max[2] >= b.Min[2]
}

// Penetration returns the smallest per-axis overlap between a and b and
// the axis (0=X, 1=Y, 2=Z) it occurs on. ok is false when the boxes do
// not overlap.
func (a AABB) Penetration(b AABB) (depth float64, axis int, ok bool) {
	depth = math.Inf(1)
	axis = -1
	for i := 0; i < 3; i++ {
		d := math.Min(a.Max[i]-b.Min[i], b.Max[i]-a.Min[i])
		if d < 0 {
			return 0, -1, false
		}
		if d < depth {
			depth = d
			axis = i
		}
	}
	return depth, axis, true
}
