package fireworks

import "voxel-fireworks/math"

// Config holds the initialisation-time constants of a Manager.
type Config struct {
	// MaxParticles is the particle store capacity. Explosion particles
	// beyond it are dropped.
	MaxParticles int
	// MaxRockets caps the number of rockets in flight at once.
	MaxRockets int

	// RocketSpeed is the constant climb rate of every rocket, units/second.
	RocketSpeed float32
	// MinTargetHeight and MaxTargetHeight bound the random explosion
	// height assigned by Launch, [Min, Max).
	MinTargetHeight, MaxTargetHeight float32
	// RocketSize is the box drawn for an ascending rocket.
	RocketSize math.Vec3

	Gravity float32

	// Brightness multiplies particle colours at projection time.
	Brightness float32
	// RocketBrightness multiplies rocket colours at projection time.
	RocketBrightness float32

	Shape ShapeGenerator
}

func DefaultConfig() Config {
	return Config{
		MaxParticles:     2000,
		MaxRockets:       64,
		RocketSpeed:      15,
		MinTargetHeight:  8,
		MaxTargetHeight:  15,
		RocketSize:       math.Vec3{X: 0.4, Y: 0.8, Z: 0.4},
		Gravity:          Gravity,
		Brightness:       10,
		RocketBrightness: 4,
		Shape:            DefaultShapeGenerator(),
	}
}
