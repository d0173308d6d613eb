package config

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/rigidsim/internal/collision"
	"github.com/san-kum/rigidsim/internal/engine"
	"github.com/san-kum/rigidsim/internal/forces"
	"github.com/san-kum/rigidsim/internal/phys"
)

const (
	DefaultDt      = 1.0 / 60.0
	DefaultSteps   = 600
	DefaultGravity = -9.81
)

type Scenario struct {
	Name    string       `yaml:"name"`
	Gravity [3]float64   `yaml:"gravity"`
	Dt      float64      `yaml:"dt"`
	Steps   int          `yaml:"steps"`
	Fluid   *FluidConfig `yaml:"fluid,omitempty"`
	Bodies  []BodyConfig `yaml:"bodies"`
}

type FluidConfig struct {
	Density  float64 `yaml:"density"`
	Drag     float64 `yaml:"drag"`
	SurfaceY float64 `yaml:"surface_y"`
}

type BodyConfig struct {
	Name        string     `yaml:"name"`
	Kind        string     `yaml:"kind"` // box, sphere, capsule
	Static      bool       `yaml:"static"`
	Mass        float64    `yaml:"mass"`
	Position    [3]float64 `yaml:"position"`
	Velocity    [3]float64 `yaml:"velocity"`
	Size        [3]float64 `yaml:"size"`   // box full extents
	Radius      float64    `yaml:"radius"` // sphere, capsule
	Height      float64    `yaml:"height"` // capsule
	Restitution float64    `yaml:"restitution"`
	Friction    float64    `yaml:"friction"`
	NoGravity   bool       `yaml:"no_gravity"`
	Group       uint32     `yaml:"group"`
	Mask        uint32     `yaml:"mask"`
}

func DefaultScenario() *Scenario {
	return &Scenario{
		Name:    "drop",
		Gravity: [3]float64{0, DefaultGravity, 0},
		Dt:      DefaultDt,
		Steps:   DefaultSteps,
	}
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := DefaultScenario()
	s.Bodies = nil
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, s.Validate()
}

func Save(path string, s *Scenario) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (s *Scenario) Validate() error {
	if s.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", s.Dt)
	}
	if s.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", s.Steps)
	}
	for i, b := range s.Bodies {
		switch b.Kind {
		case "box", "sphere", "capsule":
		case "":
			return fmt.Errorf("body %d: missing kind", i)
		default:
			return fmt.Errorf("body %d: unknown kind %q", i, b.Kind)
		}
		if !b.Static && b.Mass <= 0 {
			return fmt.Errorf("body %d: dynamic body needs positive mass, got %f", i, b.Mass)
		}
	}
	return nil
}

func vec3(v [3]float64) mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}

// Build wires a scenario into a ready engine: constant gravity from the
// configured vector, the optional fluid, the brute-force collider, and one
// body per entry. Returned IDs follow the body list order.
func (s *Scenario) Build() (*engine.Engine, []phys.ID, error) {
	if err := s.Validate(); err != nil {
		return nil, nil, err
	}
	gravity := forces.NewConstantGravity(vec3(s.Gravity))
	var fluid forces.Fluid = forces.NoFluid{}
	if s.Fluid != nil {
		fluid = forces.NewLinearFluid(s.Fluid.Density, s.Fluid.Drag, s.Fluid.SurfaceY, vec3(s.Gravity))
	}

	eng := engine.New(gravity, fluid, collision.NewBruteForce())
	if err := eng.Initialize(); err != nil {
		return nil, nil, err
	}

	ids := make([]phys.ID, 0, len(s.Bodies))
	for i, b := range s.Bodies {
		cfg := phys.Config{
			Mass:        b.Mass,
			Position:    vec3(b.Position),
			Velocity:    vec3(b.Velocity),
			Static:      b.Static,
			UseGravity:  !b.Static && !b.NoGravity,
			Restitution: b.Restitution,
			Friction:    b.Friction,
		}
		switch b.Kind {
		case "box":
			cfg.HalfExtents = vec3(b.Size).Mul(0.5)
		case "sphere":
			cfg.HalfExtents = mgl64.Vec3{b.Radius, b.Radius, b.Radius}
		case "capsule":
			cfg.HalfExtents = mgl64.Vec3{b.Radius, b.Height / 2, b.Radius}
		}
		if b.Group != 0 || b.Mask != 0 {
			cfg.Filter = phys.Filter{Group: b.Group, Mask: b.Mask}
		}
		id, err := eng.AddBody(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("body %d: %w", i, err)
		}
		ids = append(ids, id)
	}
	return eng, ids, nil
}
