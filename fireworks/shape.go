package fireworks

import (
	stdmath "math"

	"voxel-fireworks/core"
	"voxel-fireworks/math"
)

// Shape is the velocity distribution of one explosion.
type Shape int

const (
	ShapeBurst  Shape = iota // independent uniform components, a loose cube
	ShapeRing                // flat ring on the XZ plane
	ShapeSphere              // uniform directions on the unit sphere
)

func (s Shape) String() string {
	switch s {
	case ShapeBurst:
		return "burst"
	case ShapeRing:
		return "ring"
	case ShapeSphere:
		return "sphere"
	}
	return "unknown"
}

// ShapeFor maps the shape-selecting draw r to a Shape.
func ShapeFor(r float64) Shape {
	switch {
	case r > 0.7:
		return ShapeSphere
	case r > 0.4:
		return ShapeRing
	default:
		return ShapeBurst
	}
}

// DefaultCount asks Generate to draw the particle count itself.
const DefaultCount = -1

// ShapeGenerator produces the initial state of one explosion's particles.
// The zero value is not useful; start from DefaultShapeGenerator.
type ShapeGenerator struct {
	// MinCount and MaxCount bound the drawn particle count, [MinCount, MaxCount).
	MinCount, MaxCount int
	// TintChance is the per-particle probability of a hue-shifted colour.
	TintChance float64
	// TintTurns is the hue shift applied to tinted particles, in turns.
	TintTurns float64
}

func DefaultShapeGenerator() ShapeGenerator {
	return ShapeGenerator{
		MinCount:   50,
		MaxCount:   100,
		TintChance: 0.2,
		TintTurns:  0.1,
	}
}

// Generate appends one explosion centred on center to dst[:0] and returns
// it. A negative count draws the count from [MinCount, MaxCount); any other
// value is honoured exactly.
//
// Draws are taken from rng in a fixed order (count, shape, then per
// particle: velocity, tint, scale, decay) so a fixed sequence reproduces
// the burst bit for bit.
func (g ShapeGenerator) Generate(dst []Particle, center math.Vec3, base core.Color, count int, rng Rand) []Particle {
	if count < 0 {
		span := float64(g.MaxCount - g.MinCount)
		count = int(stdmath.Floor(float64(g.MinCount) + rng.Float64()*span))
	}
	shape := ShapeFor(rng.Float64())

	var tinted core.Color
	haveTint := false

	dst = dst[:0]
	for i := 0; i < count; i++ {
		p := Particle{
			Position: center,
			Velocity: velocityFor(shape, rng),
			Color:    base,
			Life:     1,
		}
		if rng.Float64() < g.TintChance {
			if !haveTint {
				tinted = base.OffsetHue(g.TintTurns)
				haveTint = true
			}
			p.Color = tinted
		}
		p.Scale = float32(0.3 + rng.Float64()*0.3)
		p.Decay = float32(0.5 + rng.Float64()*0.5)
		dst = append(dst, p)
	}
	return dst
}

func velocityFor(shape Shape, rng Rand) math.Vec3 {
	switch shape {
	case ShapeSphere:
		theta := rng.Float64() * 2 * stdmath.Pi
		phi := stdmath.Acos(2*rng.Float64() - 1)
		speed := (5 + rng.Float64()*5) * (0.8 + rng.Float64()*0.4)
		sinPhi := stdmath.Sin(phi)
		return math.Vec3{
			X: float32(sinPhi * stdmath.Cos(theta) * speed),
			Y: float32(sinPhi * stdmath.Sin(theta) * speed),
			Z: float32(stdmath.Cos(phi) * speed),
		}
	case ShapeRing:
		angle := rng.Float64() * 2 * stdmath.Pi
		speed := (5 + rng.Float64()*5) * (0.9 + rng.Float64()*0.2)
		jitter := (rng.Float64() - 0.5) * 0.2
		return math.Vec3{
			X: float32(stdmath.Cos(angle) * speed),
			Y: float32(jitter * speed),
			Z: float32(stdmath.Sin(angle) * speed),
		}
	default:
		return math.Vec3{
			X: float32((rng.Float64() - 0.5) * 10),
			Y: float32((rng.Float64() - 0.5) * 10),
			Z: float32((rng.Float64() - 0.5) * 10),
		}
	}
}
