package config

var Presets = map[string]*Scenario{
	"drop": {
		Name: "drop", Gravity: [3]float64{0, -9.81, 0}, Dt: 1.0 / 60.0, Steps: 600,
		Bodies: []BodyConfig{
			{Name: "floor", Kind: "box", Static: true, Position: [3]float64{0, -0.5, 0}, Size: [3]float64{20, 1, 20}},
			{Name: "ball", Kind: "sphere", Mass: 1, Radius: 0.5, Position: [3]float64{0, 10, 0}, Restitution: 0.3},
		},
	},
	"bounce": {
		Name: "bounce", Gravity: [3]float64{0, -9.81, 0}, Dt: 1.0 / 120.0, Steps: 2400,
		Bodies: []BodyConfig{
			{Name: "floor", Kind: "box", Static: true, Position: [3]float64{0, -0.5, 0}, Size: [3]float64{20, 1, 20}},
			{Name: "superball", Kind: "sphere", Mass: 0.2, Radius: 0.4, Position: [3]float64{0, 6, 0}, Restitution: 0.95},
		},
	},
	"billiards": {
		Name: "billiards", Gravity: [3]float64{0, 0, 0}, Dt: 1.0 / 120.0, Steps: 1200,
		Bodies: []BodyConfig{
			{Name: "cue", Kind: "sphere", Mass: 1, Radius: 0.5, Position: [3]float64{-4, 0, 0}, Velocity: [3]float64{3, 0, 0}, Restitution: 1, NoGravity: true},
			{Name: "object", Kind: "sphere", Mass: 1, Radius: 0.5, Position: [3]float64{4, 0, 0}, Velocity: [3]float64{-3, 0, 0}, Restitution: 1, NoGravity: true},
		},
	},
	"stack": {
		Name: "stack", Gravity: [3]float64{0, -9.81, 0}, Dt: 1.0 / 120.0, Steps: 1200,
		Bodies: []BodyConfig{
			{Name: "floor", Kind: "box", Static: true, Position: [3]float64{0, -0.5, 0}, Size: [3]float64{20, 1, 20}},
			{Name: "crate0", Kind: "box", Mass: 4, Size: [3]float64{1, 1, 1}, Position: [3]float64{0, 0.5, 0}, Restitution: 0.1},
			{Name: "crate1", Kind: "box", Mass: 4, Size: [3]float64{1, 1, 1}, Position: [3]float64{0, 1.6, 0}, Restitution: 0.1},
			{Name: "crate2", Kind: "box", Mass: 4, Size: [3]float64{1, 1, 1}, Position: [3]float64{0, 2.7, 0}, Restitution: 0.1},
		},
	},
	"rain": {
		Name: "rain", Gravity: [3]float64{0, -9.81, 0}, Dt: 1.0 / 60.0, Steps: 900,
		Fluid:  &FluidConfig{Density: 1.2, Drag: 0.4, SurfaceY: 0},
		Bodies: rainBodies(),
	},
}

func rainBodies() []BodyConfig {
	bodies := []BodyConfig{
		{Name: "floor", Kind: "box", Static: true, Position: [3]float64{0, -6.5, 0}, Size: [3]float64{40, 1, 40}},
	}
	for i := 0; i < 12; i++ {
		x := float64(i%4)*2 - 3
		z := float64(i/4)*2 - 2
		y := 8 + float64(i%3)*1.5
		bodies = append(bodies, BodyConfig{
			Name: "drop", Kind: "sphere", Mass: 0.5, Radius: 0.3,
			Position: [3]float64{x, y, z}, Restitution: 0.2,
		})
	}
	return bodies
}
