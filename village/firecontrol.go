package village

import (
	stdmath "math"

	"voxel-fireworks/fireworks"
	"voxel-fireworks/math"
)

// Launcher accepts rocket launches. *fireworks.Manager satisfies it.
type Launcher interface {
	Launch(start math.Vec3, color string) (fireworks.RocketID, bool)
}

type FireControlConfig struct {
	// MinDelay and MaxDelay bound the seconds between two shots of one
	// house, [MinDelay, MaxDelay).
	MinDelay, MaxDelay float32
	Palette            []string
}

func DefaultFireControlConfig() FireControlConfig {
	return FireControlConfig{
		MinDelay: 5,
		MaxDelay: 15,
		Palette:  FireworkPalette,
	}
}

// FireControl gives every chimney its own countdown. When a countdown runs
// out the chimney fires a rocket of a random palette colour and draws a
// new delay. Time only advances through Update, so a paused host pauses
// the village too.
type FireControl struct {
	cfg      FireControlConfig
	points   []math.Vec3
	timers   []float32
	launcher Launcher
	rng      fireworks.Rand

	fired    int
	rejected int
}

// NewFireControl schedules the first shot of every launch point. rng may be
// nil for a seeded default source.
func NewFireControl(cfg FireControlConfig, points []math.Vec3, launcher Launcher, rng fireworks.Rand) *FireControl {
	if rng == nil {
		rng = fireworks.NewRand(1)
	}
	f := &FireControl{
		cfg:      cfg,
		points:   points,
		timers:   make([]float32, len(points)),
		launcher: launcher,
		rng:      rng,
	}
	for i := range f.timers {
		f.timers[i] = f.nextDelay()
	}
	return f
}

// minDelay keeps Update from spinning on a zero-delay configuration.
const minDelay = 0.05

func (f *FireControl) nextDelay() float32 {
	span := float64(f.cfg.MaxDelay - f.cfg.MinDelay)
	d := f.cfg.MinDelay + float32(f.rng.Float64()*span)
	if d < minDelay {
		d = minDelay
	}
	return d
}

func (f *FireControl) pickColor() string {
	if len(f.cfg.Palette) == 0 {
		return "#ffffff"
	}
	i := int(stdmath.Floor(f.rng.Float64() * float64(len(f.cfg.Palette))))
	if i >= len(f.cfg.Palette) {
		i = len(f.cfg.Palette) - 1
	}
	return f.cfg.Palette[i]
}

// Update advances every countdown by delta seconds and fires the chimneys
// whose countdown expired, more than once if delta spans several delays.
// It returns the number of launches attempted.
func (f *FireControl) Update(delta float32) int {
	shots := 0
	for i := range f.timers {
		f.timers[i] -= delta
		for f.timers[i] <= 0 {
			f.fire(i)
			shots++
			f.timers[i] += f.nextDelay()
		}
	}
	return shots
}

// FireNow launches from point i immediately without touching its countdown.
func (f *FireControl) FireNow(i int) {
	f.fire(i)
}

func (f *FireControl) fire(i int) {
	if _, ok := f.launcher.Launch(f.points[i], f.pickColor()); ok {
		f.fired++
	} else {
		f.rejected++
	}
}

// Fired is the number of accepted launches so far.
func (f *FireControl) Fired() int { return f.fired }

// Rejected counts launches the launcher refused because the sky was full.
func (f *FireControl) Rejected() int { return f.rejected }

// Points returns the launch points, one per chimney.
func (f *FireControl) Points() []math.Vec3 { return f.points }
