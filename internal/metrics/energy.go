package metrics

import (
	"github.com/san-kum/rigidsim/internal/collision"
	"github.com/san-kum/rigidsim/internal/world"
)

// Kinetic tracks total kinetic energy, 0.5*m*v^2 summed over dynamic
// bodies. Value reports the most recent step.
type Kinetic struct {
	current float64
	peak    float64
}

func NewKinetic() *Kinetic {
	return &Kinetic{}
}

func (k *Kinetic) Name() string { return "kinetic_energy" }

func (k *Kinetic) Observe(items []world.Item, contacts []collision.Contact, t float64) {
	total := 0.0
	for _, it := range items {
		b := it.Body
		if b.Static {
			continue
		}
		v := b.Velocity.Len()
		total += 0.5 * b.Mass * v * v
	}
	k.current = total
	if total > k.peak {
		k.peak = total
	}
}

func (k *Kinetic) Value() float64 { return k.current }
func (k *Kinetic) Peak() float64  { return k.peak }

func (k *Kinetic) Reset() {
	k.current = 0
	k.peak = 0
}
