package fireworks

import (
	"voxel-fireworks/core"
	"voxel-fireworks/math"
)

// Particle is one firework spark.
type Particle struct {
	Position math.Vec3 // world space, metres
	Velocity math.Vec3 // metres per second
	Color    core.Color
	Scale    float32 // visual size at birth
	Life     float32 // 1 at birth, dead at <= 0
	Decay    float32 // life lost per second
}

// Alive reports whether p is still above the ground with life left.
func (p Particle) Alive() bool {
	return alive(p.Life, p.Position.Y)
}

func alive(life, y float32) bool {
	return life > 0 && y > 0
}
