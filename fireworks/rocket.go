package fireworks

import (
	"voxel-fireworks/core"
	"voxel-fireworks/math"
)

// RocketID identifies one launch for the lifetime of its Manager.
type RocketID uint64

// Rocket is one ascending launch. It has two states, ascending and
// exploded; an exploded rocket is removed by its Manager in the same
// update that detects the explosion.
type Rocket struct {
	ID           RocketID
	Position     math.Vec3
	Color        core.Color
	TargetHeight float32
}

// StepRocket advances a rocket's height by speed*delta and reports whether
// it reached targetHeight. Reaching the target exactly counts.
func StepRocket(currentY, speed, delta, targetHeight float32) (newY float32, exploded bool) {
	// float32() rounds the product, so no FMA: newY is bit-exact everywhere.
	newY = currentY + float32(speed*delta)
	return newY, newY >= targetHeight
}

// Step moves r and reports whether it exploded this frame.
func (r *Rocket) Step(speed, delta float32) bool {
	y, exploded := StepRocket(r.Position.Y, speed, delta, r.TargetHeight)
	r.Position.Y = y
	return exploded
}
