package opengl

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"voxel-fireworks/core"
	"voxel-fireworks/math"
)

// Attribute locations shared by the voxel shader and every InstanceSet.
const (
	attrPosition  = 0
	attrNormal    = 1
	attrTransform = 2 // four vec4 columns, 2..5
	attrColor     = 6
)

const voxelVertSrc = `
#version 410 core
layout(location = 0) in vec3 inPos;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in mat4 inModel;
layout(location = 6) in vec3 inColor;

uniform mat4 viewProj;

out vec3 fragWorldPos;
out vec3 fragNormal;
out vec3 fragColor;

void main() {
    vec4 world   = inModel * vec4(inPos, 1.0);
    fragWorldPos = world.xyz;
    fragNormal   = mat3(inModel) * inNormal;
    fragColor    = inColor;
    gl_Position  = viewProj * world;
}
` + "\x00"

// Solid voxels get one directional moon light plus ambient; unlit voxels
// emit their colour as is. Both pass through exposure tone mapping so
// colours above 1 read as glow.
const voxelFragSrc = `
#version 410 core
in vec3 fragWorldPos;
in vec3 fragNormal;
in vec3 fragColor;

uniform bool  unlit;
uniform vec3  lightDir;
uniform vec3  lightColor;
uniform vec3  ambientColor;
uniform vec3  cameraPos;
uniform vec3  fogColor;
uniform float fogDensity;
uniform float exposure;

out vec4 outColor;

void main() {
    vec3 color = fragColor;
    if (!unlit) {
        vec3 N = normalize(fragNormal);
        float diff = max(dot(N, -lightDir), 0.0);
        color *= ambientColor + lightColor * diff;
    }

    if (fogDensity > 0.0) {
        float fogF = clamp(exp(-fogDensity * length(fragWorldPos - cameraPos)), 0.0, 1.0);
        color = mix(fogColor, color, fogF);
    }

    color = vec3(1.0) - exp(-color * exposure);
    outColor = vec4(pow(color, vec3(1.0 / 2.2)), 1.0);
}
` + "\x00"

// Renderer is the OpenGL backend: one instanced voxel shader and the
// frame-wide uniforms it reads.
type Renderer struct {
	program uint32

	viewProjLoc     int32
	unlitLoc        int32
	lightDirLoc     int32
	lightColorLoc   int32
	ambientColorLoc int32
	cameraPosLoc    int32
	fogColorLoc     int32
	fogDensityLoc   int32
	exposureLoc     int32

	LightDir     math.Vec3
	LightColor   core.Color
	AmbientColor core.Color
	FogDensity   float32
	Exposure     float32

	sets map[*InstanceSet]struct{}
}

// NewRenderer initialises OpenGL.
// Must be called after the GLFW window context is made current.
func NewRenderer() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	fmt.Printf("[OpenGL] version: %s\n", gl.GoStr(gl.GetString(gl.VERSION)))

	prog, err := newProgram(voxelVertSrc, voxelFragSrc)
	if err != nil {
		return nil, fmt.Errorf("voxel shader: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.MULTISAMPLE)

	return &Renderer{
		program:         prog,
		viewProjLoc:     uniform(prog, "viewProj"),
		unlitLoc:        uniform(prog, "unlit"),
		lightDirLoc:     uniform(prog, "lightDir"),
		lightColorLoc:   uniform(prog, "lightColor"),
		ambientColorLoc: uniform(prog, "ambientColor"),
		cameraPosLoc:    uniform(prog, "cameraPos"),
		fogColorLoc:     uniform(prog, "fogColor"),
		fogDensityLoc:   uniform(prog, "fogDensity"),
		exposureLoc:     uniform(prog, "exposure"),

		LightDir:     math.NewVec3(-0.4, -1, -0.3).Normalize(),
		LightColor:   core.Color{R: 0.35, G: 0.4, B: 0.6, A: 1},
		AmbientColor: core.Color{R: 0.12, G: 0.12, B: 0.2, A: 1},
		FogDensity:   0.015,
		Exposure:     1,

		sets: make(map[*InstanceSet]struct{}),
	}, nil
}

func (r *Renderer) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// BeginFrame clears to sky and loads the per-frame uniforms. Fog fades
// towards the sky colour.
func (r *Renderer) BeginFrame(sky core.Color, viewProj math.Mat4, cameraPos math.Vec3) {
	gl.ClearColor(sky.R, sky.G, sky.B, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.viewProjLoc, 1, false, (*float32)(unsafe.Pointer(&viewProj[0][0])))
	gl.Uniform3f(r.lightDirLoc, r.LightDir.X, r.LightDir.Y, r.LightDir.Z)
	gl.Uniform3f(r.lightColorLoc, r.LightColor.R, r.LightColor.G, r.LightColor.B)
	gl.Uniform3f(r.ambientColorLoc, r.AmbientColor.R, r.AmbientColor.G, r.AmbientColor.B)
	gl.Uniform3f(r.cameraPosLoc, cameraPos.X, cameraPos.Y, cameraPos.Z)
	gl.Uniform3f(r.fogColorLoc, sky.R, sky.G, sky.B)
	gl.Uniform1f(r.fogDensityLoc, r.FogDensity)
	gl.Uniform1f(r.exposureLoc, r.Exposure)
}

// Draw uploads whatever part of set's buffers changed since the last call
// and draws its live instances.
func (r *Renderer) Draw(set *InstanceSet) {
	set.sync()

	n := set.buf.Count()
	if n == 0 {
		return
	}

	gl.UseProgram(r.program)
	if set.Mode == Solid {
		gl.Uniform1i(r.unlitLoc, 0)
	} else {
		gl.Uniform1i(r.unlitLoc, 1)
	}

	if set.Mode == Additive {
		// Read depth but do not write it; overlapping sparks add up.
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.ONE, gl.ONE)
		gl.DepthMask(false)
	}

	gl.BindVertexArray(set.vao)
	gl.DrawElementsInstanced(gl.TRIANGLES, set.indexCount, gl.UNSIGNED_INT, nil, int32(n))
	gl.BindVertexArray(0)

	if set.Mode == Additive {
		gl.DepthMask(true)
		gl.Disable(gl.BLEND)
	}
}

func (r *Renderer) Destroy() {
	for set := range r.sets {
		set.Destroy()
	}
	gl.DeleteProgram(r.program)
}
