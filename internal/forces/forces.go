package forces

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/rigidsim/internal/world"
)

// Gravity applies continuous acceleration to eligible bodies each step.
type Gravity interface {
	Apply(items []world.Item, dt float64)
}

// Fluid applies drag and buoyancy to submerged bodies each step. A nil-like
// NoFluid variant exists so omitting the module and using the no-op are
// indistinguishable.
type Fluid interface {
	ApplyDrag(items []world.Item, dt float64)
	ApplyBuoyancy(items []world.Item, dt float64)
}

// Tunable is satisfied by gravity strategies whose acceleration vector can
// be changed at runtime. Other strategies ignore SetGravity at the engine
// level.
type Tunable interface {
	SetVector(g mgl64.Vec3)
	Vector() mgl64.Vec3
}
