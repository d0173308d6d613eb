package collision

import "github.com/san-kum/rigidsim/internal/world"

// BroadPhase proposes candidate pairs: static-static pairs are skipped,
// filtered-out pairs are skipped, and both AABBs must overlap on all three
// axes.
func (m *BruteForce) BroadPhase(items []world.Item) []Pair {
	var pairs []Pair
	for i := 0; i < len(items); i++ {
		a := items[i]
		boxA := a.Body.AABB()
		for j := i + 1; j < len(items); j++ {
			b := items[j]
			if a.Body.Static && b.Body.Static {
				continue
			}
			if !a.Body.Filter.ShouldCollide(b.Body.Filter) {
				continue
			}
			if !boxA.Intersects(b.Body.AABB()) {
				continue
			}
			pairs = append(pairs, Pair{A: a, B: b})
		}
	}
	return pairs
}
