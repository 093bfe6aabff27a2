package scene

import (
	"voxel-fireworks/core"
	"voxel-fireworks/math"
)

// Mesh holds CPU-side vertex/index data.
// GPU upload is managed by the renderer backend.
type Mesh struct {
	Name     string
	Vertices []core.Vertex
	Indices  []uint32
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max math.Vec3
}

func (b AABB) Size() math.Vec3   { return b.Max.Sub(b.Min) }
func (b AABB) Center() math.Vec3 { return b.Min.Add(b.Max).Mul(0.5) }

func NewMesh(name string, vertices []core.Vertex, indices []uint32) *Mesh {
	return &Mesh{Name: name, Vertices: vertices, Indices: indices}
}

// Bounds returns the tight box around the vertex positions. An empty mesh
// has a zero box.
func (m *Mesh) Bounds() AABB {
	if len(m.Vertices) == 0 {
		return AABB{}
	}
	lo := m.Vertices[0].Position
	hi := lo
	for _, v := range m.Vertices[1:] {
		p := v.Position
		lo = math.Vec3{X: min(lo.X, p.X), Y: min(lo.Y, p.Y), Z: min(lo.Z, p.Z)}
		hi = math.Vec3{X: max(hi.X, p.X), Y: max(hi.Y, p.Y), Z: max(hi.Z, p.Z)}
	}
	return AABB{Min: lo, Max: hi}
}

// FitUnit recentres m on the origin and scales it uniformly so its largest
// extent is 1. Instance transforms assume this unit footprint.
func (m *Mesh) FitUnit() {
	b := m.Bounds()
	size := b.Size()
	extent := max(size.X, size.Y, size.Z)
	if extent <= 0 {
		return
	}
	c := b.Center()
	s := 1 / extent
	for i := range m.Vertices {
		m.Vertices[i].Position = m.Vertices[i].Position.Sub(c).Mul(s)
	}
}

// cubeFaces lists each face as normal, u, v with u x v = normal, so the
// vertex order below is counter-clockwise seen from outside.
var cubeFaces = [6][3]math.Vec3{
	{{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}},
	{{X: 0, Y: 0, Z: -1}, {X: -1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}},
	{{X: 0, Y: 1, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 0, Z: -1}},
	{{X: 0, Y: -1, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 1}},
	{{X: 1, Y: 0, Z: 0}, {X: 0, Y: 0, Z: -1}, {X: 0, Y: 1, Z: 0}},
	{{X: -1, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 1}, {X: 0, Y: 1, Z: 0}},
}

// CreateCube returns an axis-aligned cube of the given edge length centred
// on the origin, with per-face normals.
func CreateCube(size float32) *Mesh {
	s := size / 2
	vertices := make([]core.Vertex, 0, 24)
	indices := make([]uint32, 0, 36)

	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for _, f := range cubeFaces {
		n, u, v := f[0], f[1], f[2]
		base := uint32(len(vertices))
		for _, c := range corners {
			p := n.Add(u.Mul(c[0])).Add(v.Mul(c[1])).Mul(s)
			vertices = append(vertices, core.Vertex{Position: p, Normal: n})
		}
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}

	return NewMesh("Cube", vertices, indices)
}

// computeFlatNormals gives every vertex the normal of the last triangle
// that references it. Used for meshes that ship without normals.
func computeFlatNormals(vertices []core.Vertex, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		if int(max(a, b, c)) >= len(vertices) {
			continue
		}
		e1 := vertices[b].Position.Sub(vertices[a].Position)
		e2 := vertices[c].Position.Sub(vertices[a].Position)
		n := e1.Cross(e2).Normalize()
		vertices[a].Normal = n
		vertices[b].Normal = n
		vertices[c].Normal = n
	}
}
