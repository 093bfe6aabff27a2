package main

import "time"

// frameClock measures the time between frames. A single long frame (window
// drag, breakpoint, GC pause) is clamped so the simulation never jumps.
type frameClock struct {
	last     time.Time
	maxDelta float32
}

func newFrameClock(now time.Time, maxDelta float32) *frameClock {
	return &frameClock{last: now, maxDelta: maxDelta}
}

// Tick returns the seconds since the previous tick, in [0, maxDelta].
func (c *frameClock) Tick(now time.Time) float32 {
	d := float32(now.Sub(c.last).Seconds())
	c.last = now
	if d < 0 {
		return 0
	}
	return min(d, c.maxDelta)
}

// stats accumulates frames between periodic console reports.
type stats struct {
	frames  int
	elapsed float32
}

// frame records one frame of dt seconds and reports the average FPS once
// at least every seconds have passed.
func (s *stats) frame(dt, every float32) (fps float32, report bool) {
	s.frames++
	s.elapsed += dt
	if s.elapsed < every {
		return 0, false
	}
	fps = float32(s.frames) / s.elapsed
	s.frames, s.elapsed = 0, 0
	return fps, true
}
