package collision

import "github.com/go-gl/mathgl/mgl64"

// NarrowPhase recomputes both AABBs and turns an overlapping candidate
// pair into a contact. The axis with minimum penetration is the separation
// axis; the normal's sign pushes A away from B, with ties pushing A
// negative. Returns false when the boxes no longer overlap (stale
// broad-phase data).
func (m *BruteForce) NarrowPhase(p Pair) (Contact, bool) {
	boxA := p.A.Body.AABB()
	boxB := p.B.Body.AABB()

	depth, axis, ok := boxA.Penetration(boxB)
	if !ok {
		return Contact{}, false
	}

	var normal mgl64.Vec3
	if boxA.Center()[axis] <= boxB.Center()[axis] {
		normal[axis] = -1
	} else {
		normal[axis] = 1
	}

	return Contact{
		A:      p.A,
		B:      p.B,
		Point:  boxA.Center().Add(boxB.Center()).Mul(0.5),
		Normal: normal,
		Depth:  depth,
	}, true
}
