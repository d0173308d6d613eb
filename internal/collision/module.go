package collision

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/rigidsim/internal/phys"
	"github.com/san-kum/rigidsim/internal/world"
)

// Pair is an unordered candidate pair surfaced by broad-phase. It never
// contains two static bodies.
type Pair struct {
	A world.Item
	B world.Item
}

// Contact is a confirmed narrow-phase result. Normal is unit length and
// points the direction A moves to separate from B.
type Contact struct {
	A      world.Item
	B      world.Item
	Point  mgl64.Vec3
	Normal mgl64.Vec3
	Depth  float64
}

// Hit is the nearest raycast intersection.
type Hit struct {
	ID       phys.ID
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
}

// Module is the collision strategy: candidate pairing, contact generation,
// impulse resolution, and ray queries.
type Module interface {
	BroadPhase(items []world.Item) []Pair
	NarrowPhase(p Pair) (Contact, bool)
	Resolve(c Contact)
	Raycast(items []world.Item, r Ray) (Hit, bool)
}

// BruteForce tests every unordered pair against AABB overlap. O(n^2) over
// the body count; adequate for the scene sizes this engine targets, and a
// known ceiling beyond them.
type BruteForce struct{}

func NewBruteForce() *BruteForce {
	return &BruteForce{}
}
