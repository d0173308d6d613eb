package forces

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/rigidsim/internal/world"
)

// LinearFluid models a fluid filling the half-space below SurfaceY:
// submerged bodies get linear drag F = -c*v and a buoyant force opposing
// the configured gravity vector, proportional to the full AABB volume.
// Eligibility matches gravity: static and UseGravity=false bodies are
// exempt from both passes.
type LinearFluid struct {
	Density  float64
	Drag     float64
	SurfaceY float64
	Gravity  mgl64.Vec3
}

func NewLinearFluid(density, drag, surfaceY float64, gravity mgl64.Vec3) *LinearFluid {
	return &LinearFluid{
		Density:  density,
		Drag:     drag,
		SurfaceY: surfaceY,
		Gravity:  gravity,
	}
}

func (f *LinearFluid) ApplyDrag(items []world.Item, dt float64) {
	for _, it := range items {
		b := it.Body
		if b.Static || !b.UseGravity || b.Position.Y() > f.SurfaceY {
			continue
		}
		b.AddForce(b.Velocity.Mul(-f.Drag))
	}
}

func (f *LinearFluid) ApplyBuoyancy(items []world.Item, dt float64) {
	for _, it := range items {
		b := it.Body
		if b.Static || !b.UseGravity || b.Position.Y() > f.SurfaceY {
			continue
		}
		h := b.HalfExtents
		volume := 8 * h.X() * h.Y() * h.Z()
		b.AddForce(f.Gravity.Mul(-f.Density * volume))
	}
}

// NoFluid is the dry variant; both passes are no-ops.
type NoFluid struct{}

func (NoFluid) ApplyDrag([]world.Item, float64)     {}
func (NoFluid) ApplyBuoyancy([]world.Item, float64) {}
