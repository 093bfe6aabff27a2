package opengl

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"voxel-fireworks/core"
	"voxel-fireworks/fireworks"
	"voxel-fireworks/scene"
)

// BlendMode selects how an InstanceSet is shaded and composited.
type BlendMode int

const (
	Solid    BlendMode = iota // lit, opaque
	Emissive                  // unlit, opaque
	Additive                  // unlit, additive, no depth write
)

// InstanceSet is the GPU mirror of one fireworks.InstanceBuffers drawn with
// one mesh. The instance VBOs are sized to the buffers' capacity once; each
// frame only the dirty slot range is re-uploaded.
type InstanceSet struct {
	Mode BlendMode

	buf *fireworks.InstanceBuffers
	r   *Renderer

	vao          uint32
	vbo          uint32
	ebo          uint32
	transformVBO uint32
	colorVBO     uint32
	indexCount   int32
}

// NewInstanceSet uploads mesh and allocates instance storage for buf.
func (r *Renderer) NewInstanceSet(mesh *scene.Mesh, buf *fireworks.InstanceBuffers, mode BlendMode) (*InstanceSet, error) {
	if len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return nil, fmt.Errorf("instance set: mesh %q has no geometry", mesh.Name)
	}

	s := &InstanceSet{
		Mode:       mode,
		buf:        buf,
		r:          r,
		indexCount: int32(len(mesh.Indices)),
	}

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)

	stride := int32(unsafe.Sizeof(core.Vertex{}))
	var v core.Vertex

	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*int(stride), gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(attrPosition)
	gl.VertexAttribPointer(attrPosition, 3, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.Position))))
	gl.EnableVertexAttribArray(attrNormal)
	gl.VertexAttribPointer(attrNormal, 3, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.Normal))))

	gl.GenBuffers(1, &s.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, s.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	capacity := buf.Cap()

	// Transform columns at locations 2-5
	const transformStride = int32(fireworks.TransformStride * 4)
	gl.GenBuffers(1, &s.transformVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.transformVBO)
	gl.BufferData(gl.ARRAY_BUFFER, max(capacity, 1)*int(transformStride), nil, gl.DYNAMIC_DRAW)
	for i := uint32(0); i < 4; i++ {
		gl.EnableVertexAttribArray(attrTransform + i)
		gl.VertexAttribPointer(attrTransform+i, 4, gl.FLOAT, false, transformStride, gl.PtrOffset(int(i)*16))
		gl.VertexAttribDivisor(attrTransform+i, 1)
	}

	const colorStride = int32(fireworks.ColorStride * 4)
	gl.GenBuffers(1, &s.colorVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.colorVBO)
	gl.BufferData(gl.ARRAY_BUFFER, max(capacity, 1)*int(colorStride), nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(attrColor)
	gl.VertexAttribPointer(attrColor, 3, gl.FLOAT, false, colorStride, gl.PtrOffset(0))
	gl.VertexAttribDivisor(attrColor, 1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.sets[s] = struct{}{}
	return s, nil
}

// span converts a slot range into a float offset and length for a buffer
// with the given per-instance stride, clipped to capacity.
func span(rng fireworks.Range, stride, capacity int) (offset, length int) {
	end := min(rng.Offset+rng.Count, capacity)
	if rng.Offset >= end {
		return 0, 0
	}
	return rng.Offset * stride, (end - rng.Offset) * stride
}

func (s *InstanceSet) sync() {
	rng, ok := s.buf.Dirty()
	if !ok {
		return
	}
	capacity := s.buf.Cap()

	if off, n := span(rng, fireworks.TransformStride, capacity); n > 0 {
		gl.BindBuffer(gl.ARRAY_BUFFER, s.transformVBO)
		gl.BufferSubData(gl.ARRAY_BUFFER, off*4, n*4, gl.Ptr(&s.buf.Transforms[off]))
	}
	if off, n := span(rng, fireworks.ColorStride, capacity); n > 0 {
		gl.BindBuffer(gl.ARRAY_BUFFER, s.colorVBO)
		gl.BufferSubData(gl.ARRAY_BUFFER, off*4, n*4, gl.Ptr(&s.buf.Colors[off]))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	s.buf.ClearDirty()
}

// Destroy frees the set's GPU buffers. The renderer forgets it.
func (s *InstanceSet) Destroy() {
	gl.DeleteVertexArrays(1, &s.vao)
	buffers := []uint32{s.vbo, s.ebo, s.transformVBO, s.colorVBO}
	gl.DeleteBuffers(int32(len(buffers)), &buffers[0])
	delete(s.r.sets, s)
}
