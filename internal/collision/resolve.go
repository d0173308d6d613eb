package collision

// Resolve applies positional correction and a restitution impulse for one
// contact. Contacts are processed independently; there is no iteration to
// convergence, which under-resolves deep multi-body stacks.
func (m *BruteForce) Resolve(c Contact) {
	a, b := c.A.Body, c.B.Body

	invA := a.InvMass()
	invB := b.InvMass()
	invSum := invA + invB
	if invSum == 0 {
		return
	}

	// Positional correction: split the depth evenly along the normal, a
	// static side absorbs nothing so the other takes all of it.
	corr := c.Normal.Mul(c.Depth)
	switch {
	case a.Static:
		b.Position = b.Position.Sub(corr)
	case b.Static:
		a.Position = a.Position.Add(corr)
	default:
		half := corr.Mul(0.5)
		a.Position = a.Position.Add(half)
		b.Position = b.Position.Sub(half)
	}

	// Already separating: no impulse, prevents jitter on resting contacts.
	vn := a.Velocity.Sub(b.Velocity).Dot(c.Normal)
	if vn > 0 {
		return
	}

	e := (a.Restitution + b.Restitution) / 2
	j := -(1 + e) * vn / invSum

	a.Velocity = a.Velocity.Add(c.Normal.Mul(j * invA))
	b.Velocity = b.Velocity.Sub(c.Normal.Mul(j * invB))
}
