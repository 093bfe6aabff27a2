package scene

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"voxel-fireworks/core"
	"voxel-fireworks/math"
)

// LoadMeshGLTF opens a .glb or .gltf file and returns the first primitive of
// its first mesh, recentred and scaled to a unit box so it can replace the
// particle cube. Missing normals are computed flat; a primitive without
// indices is drawn as a plain triangle list.
func LoadMeshGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	for mi, gm := range doc.Meshes {
		if len(gm.Primitives) == 0 {
			continue
		}
		m, err := loadGLTFPrimitive(doc, gm.Name, *gm.Primitives[0])
		if err != nil {
			return nil, fmt.Errorf("gltf %q mesh %d: %w", path, mi, err)
		}
		m.FitUnit()
		fmt.Printf("[Scene] Loaded mesh %q: %d vertices, %d indices\n", m.Name, len(m.Vertices), len(m.Indices))
		return m, nil
	}
	return nil, fmt.Errorf("gltf %q: no mesh primitives", path)
}

func loadGLTFPrimitive(doc *gltf.Document, name string, prim gltf.Primitive) (*Mesh, error) {
	if name == "" {
		name = "gltf_mesh"
	}
	if prim.Mode != gltf.PrimitiveTriangles {
		return nil, fmt.Errorf("primitive mode %v: only triangles are supported", prim.Mode)
	}

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
		if err != nil {
			return nil, fmt.Errorf("normals: %w", err)
		}
	}

	verts := make([]core.Vertex, len(positions))
	for i, p := range positions {
		verts[i].Position = math.Vec3{X: p[0], Y: p[1], Z: p[2]}
		if i < len(normals) {
			n := normals[i]
			verts[i].Normal = math.Vec3{X: n[0], Y: n[1], Z: n[2]}
		}
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(verts))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	if len(normals) == 0 {
		computeFlatNormals(verts, indices)
	}

	return NewMesh(name, verts, indices), nil
}
