package engine

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/rigidsim/internal/collision"
	"github.com/san-kum/rigidsim/internal/phys"
)

// Noop satisfies Service with fixed sentinel values and no state. It is
// the headless/testing fallback: every Add returns NoBody, every query a
// safe default, and nothing ever errors.
type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) Initialize() error    { return nil }
func (Noop) Update(float64) error { return nil }
func (Noop) Shutdown() error      { return nil }

func (Noop) AddStaticBox(mgl64.Vec3, mgl64.Vec3) (phys.ID, error) {
	return phys.NoBody, nil
}

func (Noop) AddDynamicBox(mgl64.Vec3, mgl64.Vec3, float64) (phys.ID, error) {
	return phys.NoBody, nil
}

func (Noop) AddDynamicSphere(mgl64.Vec3, float64, float64) (phys.ID, error) {
	return phys.NoBody, nil
}

func (Noop) AddCapsule(mgl64.Vec3, float64, float64, float64, bool) (phys.ID, error) {
	return phys.NoBody, nil
}

func (Noop) AddBody(phys.Config) (phys.ID, error) { return phys.NoBody, nil }
func (Noop) RemoveBody(phys.ID) error             { return nil }

func (Noop) SetGravity(mgl64.Vec3) error                      { return nil }
func (Noop) ApplyForce(phys.ID, mgl64.Vec3) error             { return nil }
func (Noop) ApplyImpulse(phys.ID, mgl64.Vec3) error           { return nil }
func (Noop) SetVelocity(phys.ID, mgl64.Vec3) error            { return nil }
func (Noop) GetVelocity(phys.ID) (mgl64.Vec3, error)          { return mgl64.Vec3{}, nil }
func (Noop) SetPosition(phys.ID, mgl64.Vec3) error            { return nil }
func (Noop) GetPosition(phys.ID) (mgl64.Vec3, error)          { return mgl64.Vec3{}, nil }
func (Noop) SetRotation(phys.ID, mgl64.Quat) error            { return nil }
func (Noop) GetRotation(phys.ID) (mgl64.Quat, error)          { return mgl64.QuatIdent(), nil }
func (Noop) SetCollisionFilter(phys.ID, uint32, uint32) error { return nil }

func (Noop) Raycast(mgl64.Vec3, mgl64.Vec3) (collision.Hit, bool, error) {
	return collision.Hit{ID: phys.NoBody}, false, nil
}
