package core

import (
	"voxel-fireworks/math"
)

// Color is a linear RGB colour. A is only used by the window clear colour.
type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
	ColorRed   = Color{1, 0, 0, 1}
)

// Scale multiplies the RGB channels by s. Results above 1 are kept; the
// renderer tone-maps them.
func (c Color) Scale(s float32) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A}
}

type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
}
