package collision

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/rigidsim/internal/phys"
)

func TestNewRay(t *testing.T) {
	r, ok := NewRay(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 3, 4})
	if !ok {
		t.Fatal("expected valid ray")
	}
	if math.Abs(r.MaxDist-5) > 1e-12 {
		t.Errorf("max dist = %f, want 5", r.MaxDist)
	}
	if r.Dir.Sub(mgl64.Vec3{0, 0.6, 0.8}).Len() > 1e-12 {
		t.Errorf("dir = %v, want (0, 0.6, 0.8)", r.Dir)
	}

	if _, ok := NewRay(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{1, 1, 1}); ok {
		t.Error("degenerate segment produced a ray")
	}
}

func TestRaycastExactness(t *testing.T) {
	m := NewBruteForce()
	items := makeItems(t, phys.Config{
		Static:      true,
		HalfExtents: mgl64.Vec3{1, 1, 1},
	})

	r := Ray{Origin: mgl64.Vec3{-5, 0, 0}, Dir: mgl64.Vec3{1, 0, 0}, MaxDist: 100}
	hit, ok := m.Raycast(items, r)
	if !ok {
		t.Fatal("expected hit")
	}
	if hit.ID != 1 {
		t.Errorf("hit id = %d, want 1", hit.ID)
	}
	if math.Abs(hit.Distance-4.0) > 1e-12 {
		t.Errorf("distance = %f, want 4.0", hit.Distance)
	}
	if hit.Point.Sub(mgl64.Vec3{-1, 0, 0}).Len() > 1e-12 {
		t.Errorf("point = %v, want (-1, 0, 0)", hit.Point)
	}
	if hit.Normal != (mgl64.Vec3{-1, 0, 0}) {
		t.Errorf("normal = %v, want (-1, 0, 0)", hit.Normal)
	}
}

func TestRaycastNearestWins(t *testing.T) {
	m := NewBruteForce()
	items := makeItems(t,
		phys.Config{Static: true, Position: mgl64.Vec3{10, 0, 0}},
		phys.Config{Static: true, Position: mgl64.Vec3{5, 0, 0}},
	)

	r := Ray{Origin: mgl64.Vec3{0, 0, 0}, Dir: mgl64.Vec3{1, 0, 0}, MaxDist: 100}
	hit, ok := m.Raycast(items, r)
	if !ok {
		t.Fatal("expected hit")
	}
	if hit.ID != 2 {
		t.Errorf("hit id = %d, want nearest body 2", hit.ID)
	}
	if math.Abs(hit.Distance-4.5) > 1e-12 {
		t.Errorf("distance = %f, want 4.5", hit.Distance)
	}
}

func TestRaycastMaxDistance(t *testing.T) {
	m := NewBruteForce()
	items := makeItems(t, phys.Config{Static: true, Position: mgl64.Vec3{50, 0, 0}})

	r := Ray{Origin: mgl64.Vec3{0, 0, 0}, Dir: mgl64.Vec3{1, 0, 0}, MaxDist: 10}
	if _, ok := m.Raycast(items, r); ok {
		t.Error("hit beyond max distance")
	}
}

func TestRaycastBehindOrigin(t *testing.T) {
	m := NewBruteForce()
	items := makeItems(t, phys.Config{Static: true, Position: mgl64.Vec3{-5, 0, 0}})

	r := Ray{Origin: mgl64.Vec3{0, 0, 0}, Dir: mgl64.Vec3{1, 0, 0}, MaxDist: 100}
	if _, ok := m.Raycast(items, r); ok {
		t.Error("hit a box behind the ray origin")
	}
}

func TestRaycastParallelSlab(t *testing.T) {
	m := NewBruteForce()
	items := makeItems(t, phys.Config{Static: true})

	// Parallel to the Y slab, origin outside it: must miss.
	r := Ray{Origin: mgl64.Vec3{-5, 2, 0}, Dir: mgl64.Vec3{1, 0, 0}, MaxDist: 100}
	if _, ok := m.Raycast(items, r); ok {
		t.Error("parallel ray outside the slab hit the box")
	}

	// Parallel but inside the slab: passes straight through.
	r = Ray{Origin: mgl64.Vec3{-5, 0.2, 0}, Dir: mgl64.Vec3{1, 0, 0}, MaxDist: 100}
	hit, ok := m.Raycast(items, r)
	if !ok {
		t.Fatal("parallel ray inside the slab missed")
	}
	if math.Abs(hit.Distance-4.5) > 1e-12 {
		t.Errorf("distance = %f, want 4.5", hit.Distance)
	}
}

func TestRaycastOriginInside(t *testing.T) {
	m := NewBruteForce()
	items := makeItems(t, phys.Config{Static: true})

	r := Ray{Origin: mgl64.Vec3{0, 0, 0}, Dir: mgl64.Vec3{1, 0, 0}, MaxDist: 100}
	hit, ok := m.Raycast(items, r)
	if !ok {
		t.Fatal("ray starting inside the box missed")
	}
	if hit.Distance != 0 {
		t.Errorf("distance = %f, want 0", hit.Distance)
	}
}
