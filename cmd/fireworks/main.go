package main

import (
	"flag"
	"fmt"
	stdmath "math"
	"time"

	"voxel-fireworks/core"
	"voxel-fireworks/fireworks"
	"voxel-fireworks/math"
	"voxel-fireworks/renderer"
	"voxel-fireworks/scene"
	"voxel-fireworks/village"
)

var (
	seedFlag         = flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed for launches, bursts and the village layout")
	maxParticlesFlag = flag.Int("max-particles", fireworks.DefaultConfig().MaxParticles, "particle budget; bursts beyond it are truncated")
	meshFlag         = flag.String("mesh", "", "optional .glb/.gltf mesh used for sparks instead of a cube")
	vsyncFlag        = flag.Bool("vsync", true, "synchronise frames with the display")
)

// maxFrameDelta caps the step fed to the simulation after a stall.
const maxFrameDelta = 0.1

func main() {
	flag.Parse()
	seed := *seedFlag
	fmt.Printf("[Fireworks] seed %d\n", seed)

	windowConfig := core.DefaultWindowConfig()
	windowConfig.VSync = *vsyncFlag

	window, err := core.NewWindow(windowConfig)
	if err != nil {
		fmt.Printf("Failed to create window: %v\n", err)
		return
	}
	defer window.Destroy()

	engine, err := renderer.NewRenderEngine(window)
	if err != nil {
		fmt.Printf("Failed to create render engine: %v\n", err)
		return
	}
	defer engine.Destroy()

	cube := scene.CreateCube(1)
	sparkMesh := cube
	if *meshFlag != "" {
		m, err := scene.LoadMeshGLTF(*meshFlag)
		if err != nil {
			fmt.Printf("[Scene] %v (using cubes)\n", err)
		} else {
			sparkMesh = m
		}
	}

	// Simulation
	cfg := fireworks.DefaultConfig()
	cfg.MaxParticles = max(*maxParticlesFlag, 0)
	manager := fireworks.NewManager(cfg, fireworks.NewRand(seed))

	layout := village.DefaultLayout()
	static := village.Build(layout, fireworks.NewRand(seed+1))
	fire := village.NewFireControl(village.DefaultFireControlConfig(), layout.LaunchPoints(), manager, fireworks.NewRand(seed+2))

	launched, exploded := 0, 0
	manager.OnRemoveRocket(func(fireworks.RocketID) { exploded++ })

	// Opaque layers first; additive sparks last so they blend over everything.
	for _, l := range []struct {
		name string
		mesh *scene.Mesh
		buf  *fireworks.InstanceBuffers
		mode renderer.BlendMode
	}{
		{"village", cube, static.Solid, renderer.Solid},
		{"lights", cube, static.Glow, renderer.Emissive},
		{"rockets", cube, manager.RocketInstances(), renderer.Emissive},
		{"sparks", sparkMesh, manager.Particles(), renderer.Additive},
	} {
		if err := engine.AddLayer(l.name, l.mesh, l.buf, l.mode); err != nil {
			fmt.Printf("Failed to create layer: %v\n", err)
			return
		}
	}

	width, height := window.GetFramebufferSize()
	camera := scene.NewOrbitCamera(math.NewVec3(20, 15, 20), math.Vec3Zero, 45*stdmath.Pi/180, float32(width)/float32(max(height, 1)))

	window.SetScrollCallback(func(_, yoff float64) {
		camera.Zoom(float32(-yoff) * 2)
	})

	launchRng := fireworks.NewRand(seed + 3)
	points := fire.Points()

	clock := newFrameClock(time.Now(), maxFrameDelta)
	var (
		report                 stats
		paused                 bool
		spaceDown, pDown       bool
		rDown                  bool
		dragging               bool
		lastMouseX, lastMouseY float64
	)

	fmt.Println("[Fireworks] Space: launch | drag: orbit | scroll: zoom | P: pause | R: reset | Esc: quit")

	for !window.ShouldClose() {
		window.PollEvents()
		dt := clock.Tick(time.Now())

		if window.IsKeyPressed(core.KeyEscape) {
			window.Close()
		}

		// Edge-triggered keys
		spaceNow := window.IsKeyPressed(core.KeySpace)
		if spaceNow && !spaceDown && len(points) > 0 {
			i := min(int(launchRng.Float64()*float64(len(points))), len(points)-1)
			c := min(int(launchRng.Float64()*float64(len(village.FireworkPalette))), len(village.FireworkPalette)-1)
			if _, ok := manager.Launch(points[i], village.FireworkPalette[c]); ok {
				launched++
			}
		}
		spaceDown = spaceNow

		pNow := window.IsKeyPressed(core.KeyP)
		if pNow && !pDown {
			paused = !paused
			fmt.Printf("[Fireworks] %s\n", map[bool]string{true: "PAUSED", false: "RUNNING"}[paused])
		}
		pDown = pNow

		rNow := window.IsKeyPressed(core.KeyR)
		if rNow && !rDown {
			manager.Reset()
			fmt.Println("[Fireworks] Reset")
		}
		rDown = rNow

		// Orbit by left-drag
		if window.IsMouseButtonPressed(core.MouseButtonLeft) {
			x, y := window.GetCursorPos()
			if dragging {
				camera.Orbit(float32(lastMouseX-x)*0.005, float32(y-lastMouseY)*0.005)
			}
			lastMouseX, lastMouseY = x, y
			dragging = true
		} else {
			dragging = false
		}

		if !paused {
			fire.Update(dt)
			manager.Update(dt)
		}
		camera.Update(dt)

		engine.Render(village.SkyColor, camera)
		engine.Present()

		if fps, ok := report.frame(dt, 2); ok {
			calls, instances := engine.Stats()
			fmt.Printf("[Fireworks] FPS: %.1f | rockets %d | particles %d/%d | launched %d exploded %d | draws %d instances %d\n",
				fps, len(manager.Rockets()), manager.ParticleCount(), cfg.MaxParticles,
				fire.Fired()+launched, exploded, calls, instances)
		}
	}
}
