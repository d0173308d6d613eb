package engine

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/rigidsim/internal/collision"
	"github.com/san-kum/rigidsim/internal/phys"
)

// Service is the physics contract consumed by the game-loop driver and by
// gameplay code. Engine is the real implementation; Noop is the headless
// fallback returning safe defaults instead of erroring.
type Service interface {
	Initialize() error
	Update(dt float64) error
	Shutdown() error

	AddStaticBox(pos, size mgl64.Vec3) (phys.ID, error)
	AddDynamicBox(pos, size mgl64.Vec3, mass float64) (phys.ID, error)
	AddDynamicSphere(pos mgl64.Vec3, radius, mass float64) (phys.ID, error)
	AddCapsule(pos mgl64.Vec3, radius, height, mass float64, static bool) (phys.ID, error)
	AddBody(cfg phys.Config) (phys.ID, error)
	RemoveBody(id phys.ID) error

	SetGravity(g mgl64.Vec3) error
	ApplyForce(id phys.ID, f mgl64.Vec3) error
	ApplyImpulse(id phys.ID, j mgl64.Vec3) error
	SetVelocity(id phys.ID, v mgl64.Vec3) error
	GetVelocity(id phys.ID) (mgl64.Vec3, error)
	SetPosition(id phys.ID, p mgl64.Vec3) error
	GetPosition(id phys.ID) (mgl64.Vec3, error)
	SetRotation(id phys.ID, q mgl64.Quat) error
	GetRotation(id phys.ID) (mgl64.Quat, error)
	SetCollisionFilter(id phys.ID, group, mask uint32) error

	Raycast(from, to mgl64.Vec3) (collision.Hit, bool, error)
}
