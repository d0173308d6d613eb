package forces

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/rigidsim/internal/phys"
	"github.com/san-kum/rigidsim/internal/world"
)

func makeItems(t *testing.T, cfgs ...phys.Config) []world.Item {
	t.Helper()
	w := world.New()
	for i, cfg := range cfgs {
		if _, err := w.AddBody(phys.ID(i+1), cfg); err != nil {
			t.Fatalf("add body %d: %v", i, err)
		}
	}
	items, err := w.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	return items
}

func TestConstantGravityForce(t *testing.T) {
	g := NewConstantGravity(mgl64.Vec3{0, -9.81, 0})
	items := makeItems(t,
		phys.Config{Mass: 2, UseGravity: true},
		phys.Config{Mass: 1, UseGravity: false},
		phys.Config{Static: true, UseGravity: true},
	)

	g.Apply(items, 1.0/60)

	if got := items[0].Body.Force(); math.Abs(got.Y()+19.62) > 1e-12 {
		t.Errorf("eligible body force = %v, want (0, -19.62, 0)", got)
	}
	if got := items[1].Body.Force(); got != (mgl64.Vec3{}) {
		t.Errorf("gravity-disabled body got force %v", got)
	}
	if got := items[2].Body.Force(); got != (mgl64.Vec3{}) {
		t.Errorf("static body got force %v", got)
	}
}

func TestConstantGravitySetVector(t *testing.T) {
	g := NewConstantGravity(mgl64.Vec3{})
	g.SetVector(mgl64.Vec3{0, 0, -3})

	if g.Vector() != (mgl64.Vec3{0, 0, -3}) {
		t.Errorf("vector = %v", g.Vector())
	}

	items := makeItems(t, phys.Config{Mass: 2, UseGravity: true})
	g.Apply(items, 0.1)
	if got := items[0].Body.Force(); got != (mgl64.Vec3{0, 0, -6}) {
		t.Errorf("force = %v, want (0, 0, -6)", got)
	}
}

func TestNoGravityMatchesAbsence(t *testing.T) {
	items := makeItems(t, phys.Config{Mass: 1, UseGravity: true, Velocity: mgl64.Vec3{1, 2, 3}})

	NoGravity{}.Apply(items, 0.1)

	b := items[0].Body
	if b.Force() != (mgl64.Vec3{}) {
		t.Errorf("no-op gravity accumulated force %v", b.Force())
	}
	if b.Velocity != (mgl64.Vec3{1, 2, 3}) {
		t.Errorf("no-op gravity changed velocity to %v", b.Velocity)
	}
}

func TestLinearFluidDrag(t *testing.T) {
	f := NewLinearFluid(1.0, 0.5, 0, mgl64.Vec3{0, -9.81, 0})
	items := makeItems(t,
		phys.Config{Mass: 1, UseGravity: true, Position: mgl64.Vec3{0, -1, 0}, Velocity: mgl64.Vec3{2, 0, 0}},
		phys.Config{Mass: 1, UseGravity: true, Position: mgl64.Vec3{0, 5, 0}, Velocity: mgl64.Vec3{2, 0, 0}},
	)

	f.ApplyDrag(items, 0.1)

	if got := items[0].Body.Force(); got != (mgl64.Vec3{-1, 0, 0}) {
		t.Errorf("submerged drag = %v, want (-1, 0, 0)", got)
	}
	if got := items[1].Body.Force(); got != (mgl64.Vec3{}) {
		t.Errorf("dry body got drag %v", got)
	}
}

func TestLinearFluidBuoyancy(t *testing.T) {
	f := NewLinearFluid(2.0, 0, 0, mgl64.Vec3{0, -10, 0})
	items := makeItems(t,
		phys.Config{Mass: 1, UseGravity: true, Position: mgl64.Vec3{0, -1, 0}, HalfExtents: mgl64.Vec3{0.5, 0.5, 0.5}},
	)

	f.ApplyBuoyancy(items, 0.1)

	// Displaced volume 1 m^3, density 2: force opposes gravity at 20 N.
	if got := items[0].Body.Force(); math.Abs(got.Y()-20) > 1e-12 {
		t.Errorf("buoyancy = %v, want (0, 20, 0)", got)
	}
}

func TestLinearFluidEligibility(t *testing.T) {
	f := NewLinearFluid(1.0, 0.5, 0, mgl64.Vec3{0, -9.81, 0})
	items := makeItems(t,
		phys.Config{Mass: 1, UseGravity: false, Position: mgl64.Vec3{0, -2, 0}, Velocity: mgl64.Vec3{3, 0, 0}, HalfExtents: mgl64.Vec3{0.5, 0.5, 0.5}},
		phys.Config{Static: true, UseGravity: true, Position: mgl64.Vec3{0, -2, 0}, Velocity: mgl64.Vec3{3, 0, 0}, HalfExtents: mgl64.Vec3{0.5, 0.5, 0.5}},
	)

	f.ApplyDrag(items, 0.1)
	f.ApplyBuoyancy(items, 0.1)

	// Same exemptions as gravity, even fully submerged.
	if got := items[0].Body.Force(); got != (mgl64.Vec3{}) {
		t.Errorf("gravity-disabled body accumulated fluid force %v, want zero", got)
	}
	if got := items[1].Body.Force(); got != (mgl64.Vec3{}) {
		t.Errorf("static body accumulated fluid force %v, want zero", got)
	}
}

func TestNoFluid(t *testing.T) {
	items := makeItems(t, phys.Config{Mass: 1, Position: mgl64.Vec3{0, -5, 0}, Velocity: mgl64.Vec3{3, 0, 0}})

	NoFluid{}.ApplyDrag(items, 0.1)
	NoFluid{}.ApplyBuoyancy(items, 0.1)

	if got := items[0].Body.Force(); got != (mgl64.Vec3{}) {
		t.Errorf("no-op fluid accumulated force %v", got)
	}
}
