package fireworks

import (
	"voxel-fireworks/core"
	"voxel-fireworks/math"
)

const (
	// TransformStride is the number of float32 per instance transform.
	TransformStride = 16
	// ColorStride is the number of float32 per instance colour.
	ColorStride = 3
)

// Range is a span of instance slots [Offset, Offset+Count).
type Range struct {
	Offset, Count int
}

// InstanceBuffers is the CPU side of an instanced draw: one column-major
// transform and one RGB colour per instance, the number of instances to
// draw, and the slot range written since the renderer last uploaded.
type InstanceBuffers struct {
	Transforms []float32
	Colors     []float32

	// Brightness multiplies every colour written through Set. Values above
	// 1 are intentional; the renderer tone-maps them into a glow.
	Brightness float32

	count int
	dirty Range
}

func NewInstanceBuffers(capacity int, brightness float32) *InstanceBuffers {
	if capacity < 0 {
		capacity = 0
	}
	return &InstanceBuffers{
		Transforms: make([]float32, capacity*TransformStride),
		Colors:     make([]float32, capacity*ColorStride),
		Brightness: brightness,
	}
}

func (b *InstanceBuffers) Cap() int { return len(b.Colors) / ColorStride }

// Count is the number of instances to draw. Slots past it are stale.
func (b *InstanceBuffers) Count() int { return b.count }

// Set writes slot i as an axis-aligned box of the given size centred on
// position, coloured color*Brightness.
func (b *InstanceBuffers) Set(i int, position, size math.Vec3, color core.Color) {
	b.SetTransform(i, math.Mat4ScaleTranslation(size, position), color)
}

// SetTransform writes an arbitrary model matrix for slot i.
func (b *InstanceBuffers) SetTransform(i int, m math.Mat4, color core.Color) {
	m.Flatten(b.Transforms[i*TransformStride : (i+1)*TransformStride])
	c := b.Colors[i*ColorStride : (i+1)*ColorStride]
	c[0] = color.R * b.Brightness
	c[1] = color.G * b.Brightness
	c[2] = color.B * b.Brightness
}

// Commit publishes count instances and marks [0, count) for upload. The
// range grows until the renderer calls ClearDirty, so two commits between
// uploads are never lost.
func (b *InstanceBuffers) Commit(count int) {
	if count > b.Cap() {
		count = b.Cap()
	}
	b.count = count
	if count > b.dirty.Offset+b.dirty.Count {
		b.dirty = Range{Offset: 0, Count: count}
	}
}

// Dirty returns the slot range that must be re-uploaded, if any.
func (b *InstanceBuffers) Dirty() (Range, bool) {
	return b.dirty, b.dirty.Count > 0
}

// ClearDirty is called by the renderer once the dirty range is on the GPU.
func (b *InstanceBuffers) ClearDirty() {
	b.dirty = Range{}
}

// TransformAt decodes slot i back into a matrix.
func (b *InstanceBuffers) TransformAt(i int) math.Mat4 {
	var m math.Mat4
	src := b.Transforms[i*TransformStride : (i+1)*TransformStride]
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			m[col][row] = src[col*4+row]
		}
	}
	return m
}

// ColorAt returns the colour stored in slot i, brightness included.
func (b *InstanceBuffers) ColorAt(i int) core.Color {
	c := b.Colors[i*ColorStride : (i+1)*ColorStride]
	return core.Color{R: c[0], G: c[1], B: c[2], A: 1}
}

// projectParticle writes the "shrink as it dies" transform for one spark:
// uniform scale Scale*Life at Position.
func (b *InstanceBuffers) projectParticle(i int, pos math.Vec3, scale, life float32, color core.Color) {
	b.Set(i, pos, math.Splat(scale*life), color)
}

// Project writes every live particle of s into b without advancing the
// simulation and commits the live count.
func Project(s *Store, b *InstanceBuffers) {
	n := s.Len()
	if n > b.Cap() {
		n = b.Cap()
	}
	for i := 0; i < n; i++ {
		b.projectParticle(i, s.pos[i], s.scale[i], s.life[i], s.color[i])
	}
	b.Commit(n)
}
