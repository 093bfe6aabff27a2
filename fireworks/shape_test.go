package fireworks

import (
	"math"
	"testing"

	"voxel-fireworks/core"
	vmath "voxel-fireworks/math"
)

func constRand(v float64) RandFunc {
	return func() float64 { return v }
}

func TestGenerateDefaultCount(t *testing.T) {
	g := DefaultShapeGenerator()
	center := vmath.NewVec3(1, 2, 3)
	red := core.MustParseColor("#ff0000")

	parts := g.Generate(nil, center, red, DefaultCount, constRand(0.5))

	// 50 + 0.5 * 50
	if len(parts) != 75 {
		t.Fatalf("Generate: expected 75 particles, got %d", len(parts))
	}
	for i, p := range parts {
		if p.Position != center {
			t.Errorf("particle %d: expected position %v, got %v", i, center, p.Position)
		}
		if p.Color != red {
			t.Errorf("particle %d: expected colour %v, got %v", i, red, p.Color)
		}
		if p.Life != 1 {
			t.Errorf("particle %d: expected life 1, got %v", i, p.Life)
		}
	}

	if n := len(g.Generate(nil, center, red, DefaultCount, constRand(0))); n != 50 {
		t.Errorf("Generate with rand 0: expected 50 particles, got %d", n)
	}
}

func TestGenerateCountOverride(t *testing.T) {
	g := DefaultShapeGenerator()
	for _, count := range []int{0, 1, 5, 250} {
		parts := g.Generate(nil, vmath.Vec3Zero, core.ColorWhite, count, constRand(0))
		if len(parts) != count {
			t.Errorf("Generate(count=%d): got %d particles", count, len(parts))
		}
	}
}

func TestShapeFor(t *testing.T) {
	tests := []struct {
		r    float64
		want Shape
	}{
		{0.8, ShapeSphere},
		{0.71, ShapeSphere},
		{0.7, ShapeRing},
		{0.5, ShapeRing},
		{0.4, ShapeBurst},
		{0.2, ShapeBurst},
		{0, ShapeBurst},
	}
	for _, tt := range tests {
		if got := ShapeFor(tt.r); got != tt.want {
			t.Errorf("ShapeFor(%v): expected %v, got %v", tt.r, tt.want, got)
		}
	}
}

func TestGenerateSphere(t *testing.T) {
	g := DefaultShapeGenerator()
	parts := g.Generate(nil, vmath.Vec3Zero, core.ColorWhite, 10, Sequence(0.8, 0.5))

	if len(parts) != 10 {
		t.Fatalf("expected 10 particles, got %d", len(parts))
	}
	// theta = pi, phi = pi/2, speed = 7.5 * 1.0
	for i, p := range parts {
		if p.Velocity.Length() <= 0 {
			t.Errorf("particle %d: expected non-zero velocity", i)
		}
		if math.Abs(float64(p.Velocity.Length())-7.5) > 1e-4 {
			t.Errorf("particle %d: expected speed 7.5, got %v", i, p.Velocity.Length())
		}
		if math.Abs(float64(p.Velocity.X)+7.5) > 1e-4 {
			t.Errorf("particle %d: expected vx -7.5, got %v", i, p.Velocity.X)
		}
	}
}

func TestGenerateRing(t *testing.T) {
	g := DefaultShapeGenerator()
	parts := g.Generate(nil, vmath.Vec3Zero, core.ColorWhite, 10, Sequence(0.5, 0.5))

	for i, p := range parts {
		if p.Velocity.Y != 0 {
			t.Errorf("particle %d: ring with centred jitter should be flat, vy = %v", i, p.Velocity.Y)
		}
		if math.Abs(float64(p.Velocity.Length())-7.5) > 1e-4 {
			t.Errorf("particle %d: expected speed 7.5, got %v", i, p.Velocity.Length())
		}
	}

	// Jitter stays within +-0.1 of the horizontal speed.
	rng := NewRand(7)
	first := true
	src := RandFunc(func() float64 {
		if first {
			first = false
			return 0.6
		}
		return rng.Float64()
	})
	for _, p := range g.Generate(nil, vmath.Vec3Zero, core.ColorWhite, 200, src) {
		horiz := math.Hypot(float64(p.Velocity.X), float64(p.Velocity.Z))
		if math.Abs(float64(p.Velocity.Y)) > 0.1*horiz+1e-4 {
			t.Errorf("ring jitter too large: vy %v, horizontal %v", p.Velocity.Y, horiz)
		}
	}
}

func TestGenerateBurst(t *testing.T) {
	g := DefaultShapeGenerator()
	// shape, vx, vy, vz, tint, scale, decay
	rng := Sequence(0.2, 0.0, 0.5, 0.9, 0.5, 0.5, 0.5)
	parts := g.Generate(nil, vmath.Vec3Zero, core.ColorWhite, 1, rng)

	p := parts[0]
	want := vmath.NewVec3(-5, 0, 4)
	if math.Abs(float64(p.Velocity.X-want.X)) > 1e-5 ||
		math.Abs(float64(p.Velocity.Y-want.Y)) > 1e-5 ||
		math.Abs(float64(p.Velocity.Z-want.Z)) > 1e-5 {
		t.Errorf("burst velocity: expected %v, got %v", want, p.Velocity)
	}
	if math.Abs(float64(p.Scale)-0.45) > 1e-6 {
		t.Errorf("scale: expected 0.45, got %v", p.Scale)
	}
	if math.Abs(float64(p.Decay)-0.75) > 1e-6 {
		t.Errorf("decay: expected 0.75, got %v", p.Decay)
	}
}

func TestGenerateTint(t *testing.T) {
	g := DefaultShapeGenerator()
	// shape, 4 ring draws, tint hit, scale, decay
	rng := Sequence(0.5, 0.5, 0.5, 0.5, 0.5, 0.1, 0.5, 0.5)
	parts := g.Generate(nil, vmath.Vec3Zero, core.ColorRed, 1, rng)

	want := core.ColorRed.OffsetHue(0.1)
	if parts[0].Color != want {
		t.Errorf("tinted colour: expected %v, got %v", want, parts[0].Color)
	}
	if parts[0].Color == core.ColorRed {
		t.Error("tinted colour should differ from the base colour")
	}
}

func TestGenerateRanges(t *testing.T) {
	g := DefaultShapeGenerator()
	rng := NewRand(99)
	for n := 0; n < 50; n++ {
		parts := g.Generate(nil, vmath.NewVec3(0, 10, 0), core.ColorWhite, DefaultCount, rng)
		if len(parts) < 50 || len(parts) >= 100 {
			t.Fatalf("count %d outside [50,100)", len(parts))
		}
		for _, p := range parts {
			if p.Scale < 0.3 || p.Scale > 0.6 {
				t.Fatalf("scale %v outside [0.3,0.6]", p.Scale)
			}
			if p.Decay < 0.5 || p.Decay > 1.0 {
				t.Fatalf("decay %v outside [0.5,1.0]", p.Decay)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	g := DefaultShapeGenerator()
	center := vmath.NewVec3(4, 12, -3)
	blue := core.MustParseColor("#0000ff")

	a := g.Generate(nil, center, blue, DefaultCount, NewRand(2024))
	b := g.Generate(nil, center, blue, DefaultCount, NewRand(2024))

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("particle %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateReusesDst(t *testing.T) {
	g := DefaultShapeGenerator()
	dst := make([]Particle, 3, 128)

	out := g.Generate(dst, vmath.Vec3Zero, core.ColorWhite, 10, constRand(0.5))
	if len(out) != 10 {
		t.Fatalf("expected 10 particles, got %d", len(out))
	}
	if &out[0] != &dst[:1][0] {
		t.Error("Generate should write into the caller's backing array")
	}
}

func BenchmarkGenerate(b *testing.B) {
	g := DefaultShapeGenerator()
	rng := NewRand(1)
	dst := make([]Particle, 0, 128)
	for i := 0; i < b.N; i++ {
		dst = g.Generate(dst, vmath.Vec3Zero, core.ColorRed, DefaultCount, rng)
	}
}
