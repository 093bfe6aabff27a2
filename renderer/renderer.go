package renderer

import (
	"fmt"

	"voxel-fireworks/core"
	"voxel-fireworks/fireworks"
	"voxel-fireworks/internal/opengl"
	"voxel-fireworks/scene"
)

// BlendMode selects how a layer is shaded and composited.
type BlendMode = opengl.BlendMode

const (
	Solid    = opengl.Solid
	Emissive = opengl.Emissive
	Additive = opengl.Additive
)

// layer is one instance buffer drawn with one mesh.
type layer struct {
	name string
	buf  *fireworks.InstanceBuffers
	set  *opengl.InstanceSet
}

// RenderEngine is the high-level renderer that drives the OpenGL backend.
// Layers are drawn in the order they were added, so opaque layers go first.
type RenderEngine struct {
	gl     *opengl.Renderer
	window *core.Window
	layers []layer

	width, height int

	// Per-frame stats (populated during Render)
	lastDrawCalls int
	lastInstances int
}

func NewRenderEngine(window *core.Window) (*RenderEngine, error) {
	glRenderer, err := opengl.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenGL renderer: %w", err)
	}

	w, h := window.GetFramebufferSize()
	glRenderer.SetViewport(w, h)

	fmt.Println("[Render] engine initialized (OpenGL)")
	return &RenderEngine{
		gl:     glRenderer,
		window: window,
		width:  w,
		height: h,
	}, nil
}

// AddLayer registers buf to be drawn with mesh every frame.
func (re *RenderEngine) AddLayer(name string, mesh *scene.Mesh, buf *fireworks.InstanceBuffers, mode BlendMode) error {
	set, err := re.gl.NewInstanceSet(mesh, buf, mode)
	if err != nil {
		return fmt.Errorf("layer %q: %w", name, err)
	}
	re.layers = append(re.layers, layer{name: name, buf: buf, set: set})
	fmt.Printf("[Render] layer %q: %d slots, %d indices per instance\n", name, buf.Cap(), len(mesh.Indices))
	return nil
}

// SetExposure sets the tone-mapping exposure (default 1.0).
func (re *RenderEngine) SetExposure(exp float32) {
	re.gl.Exposure = exp
}

// SetFog sets the exponential fog density; 0 disables fog.
func (re *RenderEngine) SetFog(density float32) {
	re.gl.FogDensity = density
}

// Render follows framebuffer resizes, then clears to sky and draws every
// layer from camera's point of view.
func (re *RenderEngine) Render(sky core.Color, camera *scene.OrbitCamera) {
	if w, h := re.window.GetFramebufferSize(); w != re.width || h != re.height {
		re.width, re.height = w, h
		re.gl.SetViewport(w, h)
		camera.UpdateAspectRatio(w, h)
	}

	re.gl.BeginFrame(sky, camera.ViewProjectionMatrix(), camera.Position())

	re.lastDrawCalls, re.lastInstances = 0, 0
	for _, l := range re.layers {
		re.gl.Draw(l.set)
		if n := l.buf.Count(); n > 0 {
			re.lastDrawCalls++
			re.lastInstances += n
		}
	}
}

// Present shows the frame drawn by Render.
func (re *RenderEngine) Present() {
	re.window.SwapBuffers()
}

// Stats returns the draw calls and instances of the last Render.
func (re *RenderEngine) Stats() (drawCalls, instances int) {
	return re.lastDrawCalls, re.lastInstances
}

func (re *RenderEngine) Destroy() {
	re.gl.Destroy()
}
