package engine

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/rigidsim/internal/collision"
	"github.com/san-kum/rigidsim/internal/forces"
	"github.com/san-kum/rigidsim/internal/phys"
	"github.com/san-kum/rigidsim/internal/world"
)

var (
	ErrDisposed       = errors.New("engine disposed")
	ErrNotInitialized = errors.New("engine not initialized")
)

// Metric observes the world once per step and reduces it to one number,
// reported at the end of a run.
type Metric interface {
	Name() string
	Observe(items []world.Item, contacts []collision.Contact, t float64)
	Value() float64
	Reset()
}

// Observer receives the post-resolution state of every step.
type Observer interface {
	OnStep(step int, t float64, items []world.Item, contacts []collision.Contact)
}

// Engine composes the force modules, the collision module, and the body
// registry, and drives the fixed-step pipeline. A single Update call runs
// to completion; it is not safe to call Update concurrently with itself,
// but bodies may be added and removed from other goroutines between steps.
type Engine struct {
	w        *world.World
	gravity  forces.Gravity
	fluid    forces.Fluid
	collider collision.Module

	metrics   []Metric
	observers []Observer

	nextID   atomic.Int64
	step     int
	time     float64
	ready    bool
	disposed atomic.Bool
}

// New builds an engine from strategy modules. Nil arguments select the
// no-op gravity/fluid variants and the brute-force collider.
func New(gravity forces.Gravity, fluid forces.Fluid, collider collision.Module) *Engine {
	if gravity == nil {
		gravity = forces.NoGravity{}
	}
	if fluid == nil {
		fluid = forces.NoFluid{}
	}
	if collider == nil {
		collider = collision.NewBruteForce()
	}
	return &Engine{
		gravity:  gravity,
		fluid:    fluid,
		collider: collider,
	}
}

func (e *Engine) AddMetric(m Metric)     { e.metrics = append(e.metrics, m) }
func (e *Engine) AddObserver(o Observer) { e.observers = append(e.observers, o) }

// Initialize prepares a fresh world. It is also the only call permitted
// after Shutdown: it clears the disposed state and starts over.
func (e *Engine) Initialize() error {
	e.w = world.New()
	e.step = 0
	e.time = 0
	e.ready = true
	e.disposed.Store(false)
	for _, m := range e.metrics {
		m.Reset()
	}
	return nil
}

// Update advances the simulation by dt seconds: force accumulation,
// integration, broad-phase, narrow-phase, resolution, in that order. Each
// phase works from its own registry snapshot so concurrent add/remove
// never tears an in-progress pass.
func (e *Engine) Update(dt float64) error {
	if e.disposed.Load() {
		return ErrDisposed
	}
	if !e.ready {
		return ErrNotInitialized
	}
	if dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", dt)
	}

	items, err := e.w.Snapshot()
	if err != nil {
		return err
	}
	e.gravity.Apply(items, dt)
	e.fluid.ApplyDrag(items, dt)
	e.fluid.ApplyBuoyancy(items, dt)

	items, err = e.w.Snapshot()
	if err != nil {
		return err
	}
	for _, it := range items {
		it.Body.Integrate(dt)
	}

	items, err = e.w.Snapshot()
	if err != nil {
		return err
	}
	pairs := e.collider.BroadPhase(items)
	contacts := make([]collision.Contact, 0, len(pairs))
	for _, p := range pairs {
		if c, ok := e.collider.NarrowPhase(p); ok {
			contacts = append(contacts, c)
		}
	}
	for _, c := range contacts {
		e.collider.Resolve(c)
	}

	e.step++
	e.time += dt
	for _, m := range e.metrics {
		m.Observe(items, contacts, e.time)
	}
	for _, o := range e.observers {
		o.OnStep(e.step, e.time, items, contacts)
	}
	return nil
}

// Shutdown releases all bodies. One-way: everything but Initialize fails
// with ErrDisposed afterwards.
func (e *Engine) Shutdown() error {
	if e.disposed.Swap(true) {
		return ErrDisposed
	}
	e.ready = false
	if e.w != nil {
		return e.w.Close()
	}
	return nil
}

func (e *Engine) Step() int     { return e.step }
func (e *Engine) Time() float64 { return e.time }

func (e *Engine) BodyCount() int {
	if e.w == nil {
		return 0
	}
	return e.w.Len()
}

// Snapshot exposes the current body set to observers outside a step.
func (e *Engine) Snapshot() ([]world.Item, error) {
	if err := e.guard(); err != nil {
		return nil, err
	}
	return e.w.Snapshot()
}

// MetricValues collects every registered metric's current value.
func (e *Engine) MetricValues() map[string]float64 {
	out := make(map[string]float64, len(e.metrics))
	for _, m := range e.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

func (e *Engine) AddBody(cfg phys.Config) (phys.ID, error) {
	if err := e.guard(); err != nil {
		return phys.NoBody, err
	}
	id := phys.ID(e.nextID.Add(1))
	if _, err := e.w.AddBody(id, cfg); err != nil {
		return phys.NoBody, err
	}
	return id, nil
}

func (e *Engine) AddStaticBox(pos, size mgl64.Vec3) (phys.ID, error) {
	return e.AddBody(phys.Config{
		Position:    pos,
		HalfExtents: size.Mul(0.5),
		Static:      true,
	})
}

func (e *Engine) AddDynamicBox(pos, size mgl64.Vec3, mass float64) (phys.ID, error) {
	return e.AddBody(phys.Config{
		Position:    pos,
		HalfExtents: size.Mul(0.5),
		Mass:        mass,
		UseGravity:  true,
		Restitution: 0.5,
		Friction:    0.5,
	})
}

func (e *Engine) AddDynamicSphere(pos mgl64.Vec3, radius, mass float64) (phys.ID, error) {
	return e.AddBody(phys.Config{
		Position:    pos,
		HalfExtents: mgl64.Vec3{radius, radius, radius},
		Mass:        mass,
		UseGravity:  true,
		Restitution: 0.5,
		Friction:    0.5,
	})
}

// AddCapsule stores the capsule as its bounding box; the collision module
// works on AABBs only.
func (e *Engine) AddCapsule(pos mgl64.Vec3, radius, height, mass float64, static bool) (phys.ID, error) {
	return e.AddBody(phys.Config{
		Position:    pos,
		HalfExtents: mgl64.Vec3{radius, height / 2, radius},
		Mass:        mass,
		Static:      static,
		UseGravity:  !static,
		Restitution: 0.5,
		Friction:    0.5,
	})
}

func (e *Engine) RemoveBody(id phys.ID) error {
	if err := e.guard(); err != nil {
		return err
	}
	return e.w.RemoveBody(id)
}

// SetGravity retargets the gravity vector. Only tunable strategies honor
// it; against any other strategy this is a documented no-op.
func (e *Engine) SetGravity(g mgl64.Vec3) error {
	if err := e.guard(); err != nil {
		return err
	}
	if t, ok := e.gravity.(forces.Tunable); ok {
		t.SetVector(g)
	}
	return nil
}

func (e *Engine) ApplyForce(id phys.ID, f mgl64.Vec3) error {
	if err := e.guard(); err != nil {
		return err
	}
	if b, ok := e.w.GetBody(id); ok {
		b.AddForce(f)
	}
	return nil
}

func (e *Engine) ApplyImpulse(id phys.ID, j mgl64.Vec3) error {
	if err := e.guard(); err != nil {
		return err
	}
	if b, ok := e.w.GetBody(id); ok {
		b.AddImpulse(j)
	}
	return nil
}

func (e *Engine) SetVelocity(id phys.ID, v mgl64.Vec3) error {
	if err := e.guard(); err != nil {
		return err
	}
	if b, ok := e.w.GetBody(id); ok && !b.Static {
		b.Velocity = v
	}
	return nil
}

func (e *Engine) GetVelocity(id phys.ID) (mgl64.Vec3, error) {
	if err := e.guard(); err != nil {
		return mgl64.Vec3{}, err
	}
	if b, ok := e.w.GetBody(id); ok {
		return b.Velocity, nil
	}
	return mgl64.Vec3{}, nil
}

func (e *Engine) SetPosition(id phys.ID, p mgl64.Vec3) error {
	if err := e.guard(); err != nil {
		return err
	}
	if b, ok := e.w.GetBody(id); ok {
		b.Position = p
	}
	return nil
}

func (e *Engine) GetPosition(id phys.ID) (mgl64.Vec3, error) {
	if err := e.guard(); err != nil {
		return mgl64.Vec3{}, err
	}
	if b, ok := e.w.GetBody(id); ok {
		return b.Position, nil
	}
	return mgl64.Vec3{}, nil
}

func (e *Engine) SetRotation(id phys.ID, q mgl64.Quat) error {
	if err := e.guard(); err != nil {
		return err
	}
	if b, ok := e.w.GetBody(id); ok {
		b.Rotation = q
	}
	return nil
}

// GetRotation returns the stored orientation; rotation is never integrated,
// so an untouched body reports identity.
func (e *Engine) GetRotation(id phys.ID) (mgl64.Quat, error) {
	if err := e.guard(); err != nil {
		return mgl64.QuatIdent(), err
	}
	if b, ok := e.w.GetBody(id); ok {
		return b.Rotation, nil
	}
	return mgl64.QuatIdent(), nil
}

func (e *Engine) SetCollisionFilter(id phys.ID, group, mask uint32) error {
	if err := e.guard(); err != nil {
		return err
	}
	if b, ok := e.w.GetBody(id); ok {
		b.Filter = phys.Filter{Group: group, Mask: mask}
	}
	return nil
}

// Raycast normalizes the two endpoints into origin+direction+max distance
// and returns the nearest hit. A degenerate segment misses.
func (e *Engine) Raycast(from, to mgl64.Vec3) (collision.Hit, bool, error) {
	miss := collision.Hit{ID: phys.NoBody}
	if err := e.guard(); err != nil {
		return miss, false, err
	}
	ray, ok := collision.NewRay(from, to)
	if !ok {
		return miss, false, nil
	}
	items, err := e.w.Snapshot()
	if err != nil {
		return miss, false, err
	}
	hit, found := e.collider.Raycast(items, ray)
	return hit, found, nil
}

func (e *Engine) guard() error {
	if e.disposed.Load() {
		return ErrDisposed
	}
	if !e.ready {
		return ErrNotInitialized
	}
	return nil
}
