package forces

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/rigidsim/internal/world"
)

// ConstantGravity accumulates F = m*g on every non-static body that opted
// in. The vector is caller-configured; nothing here assumes Y-up or Z-up.
type ConstantGravity struct {
	mu sync.RWMutex
	g  mgl64.Vec3
}

func NewConstantGravity(g mgl64.Vec3) *ConstantGravity {
	return &ConstantGravity{g: g}
}

func (c *ConstantGravity) SetVector(g mgl64.Vec3) {
	c.mu.Lock()
	c.g = g
	c.mu.Unlock()
}

func (c *ConstantGravity) Vector() mgl64.Vec3 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.g
}

func (c *ConstantGravity) Apply(items []world.Item, dt float64) {
	g := c.Vector()
	for _, it := range items {
		b := it.Body
		if b.Static || !b.UseGravity {
			continue
		}
		b.AddForce(g.Mul(b.Mass))
	}
}

// NoGravity is the vacuum variant. It must behave bit-identically to not
// installing a gravity module at all.
type NoGravity struct{}

func (NoGravity) Apply([]world.Item, float64) {}
