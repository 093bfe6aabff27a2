package scene

import (
	stdmath "math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"voxel-fireworks/math"
)

// OrbitCamera circles a target point. Left to itself it drifts slowly
// around the village; user input pauses the drift, which then eases back
// in after IdleResume seconds.
type OrbitCamera struct {
	Target   math.Vec3
	Distance float32
	Yaw      float32 // radians about +Y, 0 looks down -Z from +Z
	Pitch    float32 // radians above the horizon

	FOV         float32
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32

	MinDistance, MaxDistance float32
	MinPitch, MaxPitch       float32

	// AutoRotateSpeed is the idle drift in radians per second.
	AutoRotateSpeed float32
	// IdleResume is how long after the last input the drift restarts.
	IdleResume float32

	idle      float32
	spin      float32
	spinTween *gween.Tween
	zoomTween *gween.Tween
}

// NewOrbitCamera places the camera at eye looking at target.
func NewOrbitCamera(eye, target math.Vec3, fov, aspectRatio float32) *OrbitCamera {
	offset := eye.Sub(target)
	distance := offset.Length()
	c := &OrbitCamera{
		Target:      target,
		Distance:    distance,
		Yaw:         float32(stdmath.Atan2(float64(offset.X), float64(offset.Z))),
		FOV:         fov,
		AspectRatio: aspectRatio,
		NearPlane:   0.1,
		FarPlane:    500,
		MinDistance: 10,
		MaxDistance: 60,
		MinPitch:    0.1,
		MaxPitch:    1.45,
		// One revolution every 200 s.
		AutoRotateSpeed: 2 * stdmath.Pi / 200,
		IdleResume:      3,
		spin:            1,
	}
	if distance > 0 {
		c.Pitch = float32(stdmath.Asin(float64(offset.Y / distance)))
	}
	c.clamp()
	return c
}

func (c *OrbitCamera) clamp() {
	c.Pitch = min(max(c.Pitch, c.MinPitch), c.MaxPitch)
	c.Distance = min(max(c.Distance, c.MinDistance), c.MaxDistance)
}

// Position is the eye point derived from the spherical coordinates.
func (c *OrbitCamera) Position() math.Vec3 {
	cosPitch := float32(stdmath.Cos(float64(c.Pitch)))
	sinPitch := float32(stdmath.Sin(float64(c.Pitch)))
	cosYaw := float32(stdmath.Cos(float64(c.Yaw)))
	sinYaw := float32(stdmath.Sin(float64(c.Yaw)))

	return c.Target.Add(math.Vec3{
		X: c.Distance * cosPitch * sinYaw,
		Y: c.Distance * sinPitch,
		Z: c.Distance * cosPitch * cosYaw,
	})
}

func (c *OrbitCamera) UpdateAspectRatio(width, height int) {
	if height > 0 {
		c.AspectRatio = float32(width) / float32(height)
	}
}

func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.Mat4LookAt(c.Position(), c.Target, math.Vec3Up)
}

func (c *OrbitCamera) ProjectionMatrix() math.Mat4 {
	return math.Mat4Perspective(c.FOV, c.AspectRatio, c.NearPlane, c.FarPlane)
}

// ViewProjectionMatrix maps world space to clip space.
func (c *OrbitCamera) ViewProjectionMatrix() math.Mat4 {
	return c.ViewMatrix().Mul(c.ProjectionMatrix())
}

// Orbit turns the camera by user input and pauses the idle drift.
func (c *OrbitCamera) Orbit(deltaYaw, deltaPitch float32) {
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch
	c.clamp()
	c.interrupt()
}

// Zoom moves the camera towards (negative) or away from the target over a
// short eased animation.
func (c *OrbitCamera) Zoom(delta float32) {
	to := min(max(c.Distance+delta, c.MinDistance), c.MaxDistance)
	c.zoomTween = gween.New(c.Distance, to, 0.25, ease.OutCubic)
	c.interrupt()
}

func (c *OrbitCamera) interrupt() {
	c.idle = 0
	c.spin = 0
	c.spinTween = nil
}

// Update advances the zoom animation and the idle drift by dt seconds.
func (c *OrbitCamera) Update(dt float32) {
	if c.zoomTween != nil {
		d, done := c.zoomTween.Update(dt)
		c.Distance = d
		if done {
			c.zoomTween = nil
		}
	}

	if c.spin < 1 {
		c.idle += dt
		if c.idle >= c.IdleResume && c.spinTween == nil {
			c.spinTween = gween.New(0, 1, 2, ease.InOutQuad)
		}
		if c.spinTween != nil {
			s, done := c.spinTween.Update(dt)
			c.spin = s
			if done {
				c.spin = 1
				c.spinTween = nil
			}
		}
	}

	c.Yaw += c.AutoRotateSpeed * c.spin * dt
	if c.Yaw > 2*stdmath.Pi {
		c.Yaw -= 2 * stdmath.Pi
	}
}

// Drifting reports whether the idle drift is at full speed.
func (c *OrbitCamera) Drifting() bool { return c.spin >= 1 }
