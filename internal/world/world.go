package world

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/san-kum/rigidsim/internal/phys"
)

var (
	ErrDisposed      = errors.New("world disposed")
	ErrDuplicateBody = errors.New("duplicate body")
)

// Item pairs a handle with its body inside a snapshot.
type Item struct {
	ID   phys.ID
	Body *phys.Body
}

// World is the registry owning all bodies, keyed by entity handle.
// Single-entry add/remove/lookup go through a concurrent map so game logic
// can spawn and despawn between steps; bulk operations (snapshot, clear)
// are serialized by a mutex.
type World struct {
	mu       sync.Mutex
	bodies   sync.Map // phys.ID -> *phys.Body
	count    atomic.Int64
	disposed atomic.Bool
}

func New() *World {
	return &World{}
}

// AddBody creates a body from cfg under the given handle. Adding a handle
// that already has a body is an error, not a silent overwrite.
func (w *World) AddBody(id phys.ID, cfg phys.Config) (*phys.Body, error) {
	if w.disposed.Load() {
		return nil, ErrDisposed
	}
	b := phys.NewBody(cfg)
	if _, loaded := w.bodies.LoadOrStore(id, b); loaded {
		return nil, fmt.Errorf("entity %d: %w", id, ErrDuplicateBody)
	}
	w.count.Add(1)
	return b, nil
}

// RemoveBody deletes the handle's body. Removing an absent handle is not
// an error.
func (w *World) RemoveBody(id phys.ID) error {
	if w.disposed.Load() {
		return ErrDisposed
	}
	if _, loaded := w.bodies.LoadAndDelete(id); loaded {
		w.count.Add(-1)
	}
	return nil
}

func (w *World) GetBody(id phys.ID) (*phys.Body, bool) {
	if w.disposed.Load() {
		return nil, false
	}
	v, ok := w.bodies.Load(id)
	if !ok {
		return nil, false
	}
	return v.(*phys.Body), true
}

func (w *World) Len() int {
	return int(w.count.Load())
}

// Snapshot copies the current body set, sorted by handle so a fixed-step
// run is deterministic. Later add/remove do not invalidate the copy.
func (w *World) Snapshot() ([]Item, error) {
	if w.disposed.Load() {
		return nil, ErrDisposed
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	items := make([]Item, 0, w.count.Load())
	w.bodies.Range(func(k, v any) bool {
		items = append(items, Item{ID: k.(phys.ID), Body: v.(*phys.Body)})
		return true
	})
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// Clear removes every body but leaves the world usable.
func (w *World) Clear() error {
	if w.disposed.Load() {
		return ErrDisposed
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	w.bodies.Range(func(k, _ any) bool {
		w.bodies.Delete(k)
		return true
	})
	w.count.Store(0)
	return nil
}

// Close releases all bodies and marks the world disposed. Every operation
// afterwards, Close included, fails with ErrDisposed.
func (w *World) Close() error {
	if w.disposed.Swap(true) {
		return ErrDisposed
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	w.bodies.Range(func(k, _ any) bool {
		w.bodies.Delete(k)
		return true
	})
	w.count.Store(0)
	return nil
}
