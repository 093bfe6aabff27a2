package village

import (
	"voxel-fireworks/core"
	"voxel-fireworks/fireworks"
	"voxel-fireworks/math"
)

// GlowBrightness multiplies lit windows and lamp heads so they bloom past 1.
const GlowBrightness = 2

// voxel is one box of the static scene, already in world space.
type voxel struct {
	transform math.Mat4
	color     core.Color
}

// Static holds the village geometry as two instance sets: plain lit
// surfaces and self-lit ones. Both are written once and never change.
type Static struct {
	Solid *fireworks.InstanceBuffers
	Glow  *fireworks.InstanceBuffers
}

// builder collects voxels under a current group transform.
type builder struct {
	solid, glow []voxel
	group       math.Mat4
}

func (b *builder) add(pos, size math.Vec3, color core.Color, glow bool) {
	v := voxel{
		transform: math.Mat4ScaleTranslation(size, pos).Mul(b.group),
		color:     color,
	}
	if glow {
		b.glow = append(b.glow, v)
	} else {
		b.solid = append(b.solid, v)
	}
}

// Build lays out every house, tree, street light and ground cell of l.
// rng decides which windows are lit and where snow and bumps fall.
func Build(l Layout, rng fireworks.Rand) *Static {
	if rng == nil {
		rng = fireworks.NewRand(1)
	}
	b := &builder{}

	for _, h := range l.Houses {
		b.group = math.Mat4RotationY(h.Rotation).Mul(math.Mat4Translation(h.Position.Add(l.Offset)))
		b.house(h, rng)
	}

	for _, p := range l.Trees {
		b.group = math.Mat4Translation(p.Add(l.Offset))
		b.tree()
	}

	for _, p := range l.StreetLights {
		b.group = math.Mat4Translation(p.Add(l.Offset))
		b.streetLight()
	}

	b.group = math.Mat4Translation(l.Offset)
	b.ground(l.GroundExtent, rng)

	return &Static{
		Solid: pack(b.solid, 1),
		Glow:  pack(b.glow, GlowBrightness),
	}
}

func pack(voxels []voxel, brightness float32) *fireworks.InstanceBuffers {
	buf := fireworks.NewInstanceBuffers(len(voxels), brightness)
	for i, v := range voxels {
		buf.SetTransform(i, v.transform, v.color)
	}
	buf.Commit(len(voxels))
	return buf
}

func (b *builder) house(h House, rng fireworks.Rand) {
	w, ht, d := h.Width, h.Height, h.Depth

	b.add(math.NewVec3(0, ht/2, 0), math.NewVec3(w, ht, d), colorWood, false)

	// Roof tiers
	b.add(math.NewVec3(0, ht+0.5, 0), math.NewVec3(w+0.6, 1, d+0.6), colorRoof, false)
	b.add(math.NewVec3(0, ht+1.5, 0), math.NewVec3(w*0.7, 1, d*0.7), colorRoof, false)
	b.add(math.NewVec3(0, ht+2.25, 0), math.NewVec3(w*0.4, 0.5, d*0.4), colorRoof, false)

	b.add(math.NewVec3(w/4, ht+1.5, d/4), math.NewVec3(1, 2, 1), colorStone, false)
	b.add(math.NewVec3(0, 1, d/2+0.05), math.NewVec3(w*0.25, 2, 0.1), colorDoor, false)

	windows := [3]struct{ pos, size math.Vec3 }{
		{math.NewVec3(-w/4, ht*0.6, d/2+0.05), math.NewVec3(w*0.2, ht*0.25, 0.1)},
		{math.NewVec3(w/4, ht*0.6, d/2+0.05), math.NewVec3(w*0.2, ht*0.25, 0.1)},
		{math.NewVec3(-w/2-0.05, ht*0.6, 0), math.NewVec3(0.1, ht*0.25, d*0.2)},
	}
	for _, win := range windows {
		if rng.Float64() > 0.3 {
			b.add(win.pos, win.size, colorWindowLit, true)
		} else {
			b.add(win.pos, win.size, colorWindowDark, false)
		}
	}
}

func (b *builder) tree() {
	b.add(math.NewVec3(0, 0, 0), math.Vec3One, colorWood, false)
	b.add(math.NewVec3(0, 1, 0), math.Vec3One, colorWood, false)

	for _, p := range []math.Vec3{
		{X: 0, Y: 2, Z: 0},
		{X: 1, Y: 2, Z: 0},
		{X: -1, Y: 2, Z: 0},
		{X: 0, Y: 2, Z: 1},
		{X: 0, Y: 2, Z: -1},
		{X: 0, Y: 3, Z: 0},
	} {
		b.add(p, math.Vec3One, colorLeaves, false)
	}
}

func (b *builder) streetLight() {
	for y := 0; y < 4; y++ {
		b.add(math.NewVec3(0, float32(y), 0), math.Vec3One, colorStone, false)
	}
	b.add(math.NewVec3(0, 4, 0), math.Vec3One, colorLamp, true)
}

// ground tiles [-extent, extent] in steps of two with 2x2x2 voxels whose
// tops sit at y=0, occasionally raised by one.
func (b *builder) ground(extent int, rng fireworks.Rand) {
	for x := -extent; x <= extent; x += 2 {
		for z := -extent; z <= extent; z += 2 {
			color := colorGround
			if rng.Float64() > 0.8 {
				color = colorSnow
			}
			var bump float32
			if rng.Float64() > 0.85 {
				bump = 1
			}
			b.add(math.NewVec3(float32(x), bump-1, float32(z)), math.Splat(2), color, false)
		}
	}
}
