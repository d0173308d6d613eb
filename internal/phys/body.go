package phys

import "github.com/go-gl/mathgl/mgl64"

// ID identifies a body in the world. Handles are issued by the engine,
// never by this package, and are not reused within a run.
type ID int64

// NoBody is the sentinel handle returned when no body was created or found.
const NoBody ID = -1

const DefaultHalfExtent = 0.5

// Filter is a 32-bit group/mask pair for selective collision.
// Two bodies collide when each body's group intersects the other's mask.
type Filter struct {
	Group uint32
	Mask  uint32
}

func DefaultFilter() Filter {
	return Filter{Group: 1, Mask: 0xFFFFFFFF}
}

func (f Filter) ShouldCollide(o Filter) bool {
	return f.Group&o.Mask != 0 && o.Group&f.Mask != 0
}

// Config describes a body at creation time. Zero values are replaced by
// NewBody: mass 1, half extents DefaultHalfExtent.
type Config struct {
	Mass        float64
	Position    mgl64.Vec3
	Velocity    mgl64.Vec3
	HalfExtents mgl64.Vec3
	Static      bool
	UseGravity  bool
	Restitution float64
	Friction    float64
	Filter      Filter
}

// Body is the mutable physical state of one simulated object. A body is
// owned by the world once added; only the step pipeline mutates it during
// an update.
type Body struct {
	Position    mgl64.Vec3
	Velocity    mgl64.Vec3
	Rotation    mgl64.Quat
	HalfExtents mgl64.Vec3
	Mass        float64
	Static      bool
	UseGravity  bool
	Restitution float64 // 0 = inelastic, 1 = perfect bounce
	Friction    float64 // stored for future tangential resolution
	Filter      Filter

	force mgl64.Vec3 // accumulated this step, cleared after integration
}

func NewBody(cfg Config) *Body {
	if cfg.Mass <= 0 {
		cfg.Mass = 1
	}
	for i := 0; i < 3; i++ {
		if cfg.HalfExtents[i] <= 0 {
			cfg.HalfExtents[i] = DefaultHalfExtent
		}
	}
	if cfg.Filter == (Filter{}) {
		cfg.Filter = DefaultFilter()
	}
	return &Body{
		Position:    cfg.Position,
		Velocity:    cfg.Velocity,
		Rotation:    mgl64.QuatIdent(),
		HalfExtents: cfg.HalfExtents,
		Mass:        cfg.Mass,
		Static:      cfg.Static,
		UseGravity:  cfg.UseGravity,
		Restitution: clamp01(cfg.Restitution),
		Friction:    clamp01(cfg.Friction),
		Filter:      cfg.Filter,
	}
}

// AddForce accumulates f into the body's force for this step. Forces on
// static bodies are dropped: infinite mass absorbs them.
func (b *Body) AddForce(f mgl64.Vec3) {
	if b.Static {
		return
	}
	b.force = b.force.Add(f)
}

// AddImpulse applies an instantaneous momentum change, v += j/m.
func (b *Body) AddImpulse(j mgl64.Vec3) {
	if b.Static {
		return
	}
	b.Velocity = b.Velocity.Add(j.Mul(1 / b.Mass))
}

func (b *Body) Force() mgl64.Vec3 { return b.force }

func (b *Body) ClearForces() { b.force = mgl64.Vec3{} }

// InvMass is 1/m, or 0 for static bodies so they drop out of impulse math.
func (b *Body) InvMass() float64 {
	if b.Static {
		return 0
	}
	return 1 / b.Mass
}

// Integrate advances velocity then position by one semi-implicit Euler
// step and clears the accumulated force. Static bodies are untouched.
func (b *Body) Integrate(dt float64) {
	if b.Static {
		return
	}
	accel := b.force.Mul(1 / b.Mass)
	b.Velocity = b.Velocity.Add(accel.Mul(dt))
	b.Position = b.Position.Add(b.Velocity.Mul(dt))
	b.ClearForces()
}

// AABB is the body's bounding box at its current position.
func (b *Body) AABB() AABB {
	return FromCenter(b.Position, b.HalfExtents)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
