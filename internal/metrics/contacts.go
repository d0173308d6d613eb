package metrics

import (
	"github.com/san-kum/rigidsim/internal/collision"
	"github.com/san-kum/rigidsim/internal/world"
)

// Contacts counts confirmed contacts across the whole run.
type Contacts struct {
	total int
}

func NewContacts() *Contacts { return &Contacts{} }

func (c *Contacts) Name() string { return "contacts" }

func (c *Contacts) Observe(items []world.Item, contacts []collision.Contact, t float64) {
	c.total += len(contacts)
}

func (c *Contacts) Value() float64 { return float64(c.total) }
func (c *Contacts) Reset()         { c.total = 0 }

// MaxPenetration records the deepest overlap the narrow phase ever saw.
// Large values flag tunneling-prone scenes or too-coarse timesteps.
type MaxPenetration struct {
	max float64
}

func NewMaxPenetration() *MaxPenetration { return &MaxPenetration{} }

func (m *MaxPenetration) Name() string { return "max_penetration" }

func (m *MaxPenetration) Observe(items []world.Item, contacts []collision.Contact, t float64) {
	for _, c := range contacts {
		if c.Depth > m.max {
			m.max = c.Depth
		}
	}
}

func (m *MaxPenetration) Value() float64 { return m.max }
func (m *MaxPenetration) Reset()         { m.max = 0 }
