package village

import (
	stdmath "math"

	"voxel-fireworks/math"
)

// House is a box-bodied cottage with a stepped roof and a chimney. Position
// is the centre of its footprint at ground level.
type House struct {
	Position math.Vec3
	Rotation float32 // radians about +Y
	Width    float32
	Height   float32
	Depth    float32
}

// chimneyTop is the launch point relative to the house origin before rotation.
func (h House) chimneyTop() math.Vec3 {
	return math.Vec3{X: h.Width / 4, Y: h.Height + 2, Z: h.Depth / 4}
}

// Chimney returns the rocket launch point on top of the chimney, in the
// village's local space.
func (h House) Chimney() math.Vec3 {
	return h.Position.Add(h.chimneyTop().RotateY(h.Rotation))
}

// Layout places everything static in the village.
type Layout struct {
	// Offset moves the whole village, rockets included.
	Offset math.Vec3

	Houses       []House
	StreetLights []math.Vec3
	Trees        []math.Vec3

	// GroundExtent is the half-size of the ground grid; cells are 2x2 voxels.
	GroundExtent int
}

func DefaultLayout() Layout {
	return Layout{
		Offset: math.Vec3{Y: -2},
		Houses: []House{
			{Position: math.NewVec3(-8, 0, -8), Rotation: stdmath.Pi / 4, Width: 5, Height: 4, Depth: 5},
			{Position: math.NewVec3(8, 0, -8), Rotation: -stdmath.Pi / 4, Width: 4, Height: 3, Depth: 6},
			{Position: math.NewVec3(-8, 0, 8), Rotation: stdmath.Pi * 0.75, Width: 3, Height: 5, Depth: 3},
			{Position: math.NewVec3(8, 0, 8), Rotation: -stdmath.Pi * 0.75, Width: 6, Height: 3, Depth: 4},
			{Position: math.NewVec3(0, 0, -12), Width: 4, Height: 3, Depth: 4},
		},
		StreetLights: []math.Vec3{
			math.NewVec3(0, 0, 0),
			math.NewVec3(-10, 0, 0),
			math.NewVec3(10, 0, 0),
			math.NewVec3(0, 0, 10),
			math.NewVec3(0, 0, -5),
		},
		Trees: []math.Vec3{
			math.NewVec3(-5, 0, 5),
			math.NewVec3(5, 0, 5),
			math.NewVec3(-5, 0, -5),
			math.NewVec3(5, 0, -5),
			math.NewVec3(-12, 0, 0),
			math.NewVec3(12, 0, 0),
		},
		GroundExtent: 30,
	}
}

// LaunchPoints returns every chimney top in world space.
func (l Layout) LaunchPoints() []math.Vec3 {
	points := make([]math.Vec3, len(l.Houses))
	for i, h := range l.Houses {
		points[i] = h.Chimney().Add(l.Offset)
	}
	return points
}
