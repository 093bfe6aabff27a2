package village

import (
	stdmath "math"
	"testing"

	"voxel-fireworks/core"
	"voxel-fireworks/fireworks"
	"voxel-fireworks/math"
)

func near(a, b float32) bool {
	return stdmath.Abs(float64(a-b)) < 1e-5
}

func nearVec(a, b math.Vec3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

func constRand(v float64) fireworks.RandFunc {
	return func() float64 { return v }
}

type launch struct {
	start math.Vec3
	color string
}

type recordingLauncher struct {
	launches []launch
	limit    int
}

func (l *recordingLauncher) Launch(start math.Vec3, color string) (fireworks.RocketID, bool) {
	if l.limit > 0 && len(l.launches) >= l.limit {
		return 0, false
	}
	l.launches = append(l.launches, launch{start, color})
	return fireworks.RocketID(len(l.launches)), true
}

func TestHouseChimney(t *testing.T) {
	tests := []struct {
		name  string
		house House
		want  math.Vec3
	}{
		{
			name:  "unrotated",
			house: House{Position: math.NewVec3(0, 0, -12), Width: 4, Height: 3, Depth: 4},
			want:  math.NewVec3(1, 5, -11),
		},
		{
			name:  "quarter turn",
			house: House{Position: math.NewVec3(-8, 0, -8), Rotation: stdmath.Pi / 4, Width: 5, Height: 4, Depth: 5},
			want:  math.NewVec3(-8+1.25*stdmath.Sqrt2, 6, -8),
		},
		{
			name:  "half turn",
			house: House{Position: math.NewVec3(2, 1, 2), Rotation: stdmath.Pi, Width: 4, Height: 3, Depth: 8},
			want:  math.NewVec3(1, 6, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.house.Chimney(); !nearVec(got, tt.want) {
				t.Errorf("Chimney: expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestLayoutLaunchPoints(t *testing.T) {
	l := DefaultLayout()
	points := l.LaunchPoints()
	if len(points) != 5 {
		t.Fatalf("expected 5 launch points, got %d", len(points))
	}
	if want := math.NewVec3(1, 3, -11); !nearVec(points[4], want) {
		t.Errorf("house 5 launch point: expected %v, got %v", want, points[4])
	}
}

func TestFireControlSchedule(t *testing.T) {
	l := &recordingLauncher{}
	points := DefaultLayout().LaunchPoints()
	// 0.5 gives a 10 s delay and palette entry 4.
	fc := NewFireControl(DefaultFireControlConfig(), points, l, constRand(0.5))

	if n := fc.Update(9.9); n != 0 || len(l.launches) != 0 {
		t.Fatalf("nothing should fire before 10 s, got %d launches", len(l.launches))
	}
	if n := fc.Update(0.2); n != 5 {
		t.Fatalf("expected every house to fire once, got %d", n)
	}

	for i, got := range l.launches {
		if got.start != points[i] {
			t.Errorf("launch %d: expected start %v, got %v", i, points[i], got.start)
		}
		if got.color != "#ff00ff" {
			t.Errorf("launch %d: expected colour #ff00ff, got %s", i, got.color)
		}
	}
	if fc.Fired() != 5 {
		t.Errorf("Fired: expected 5, got %d", fc.Fired())
	}
}

func TestFireControlLongFrame(t *testing.T) {
	l := &recordingLauncher{}
	fc := NewFireControl(DefaultFireControlConfig(), []math.Vec3{math.Vec3Zero}, l, constRand(0.5))

	// 25 s covers the shots at 10 s and 20 s.
	if n := fc.Update(25); n != 2 {
		t.Errorf("expected 2 shots in a 25 s frame, got %d", n)
	}
	if n := fc.Update(4.9); n != 0 {
		t.Errorf("next shot is due at 30 s, got %d shots at 29.9 s", n)
	}
}

func TestFireControlRejected(t *testing.T) {
	l := &recordingLauncher{limit: 1}
	fc := NewFireControl(DefaultFireControlConfig(), []math.Vec3{math.Vec3Zero, math.Vec3One}, l, constRand(0))

	// 0 gives the minimum 5 s delay.
	fc.Update(5)
	if fc.Fired() != 1 || fc.Rejected() != 1 {
		t.Errorf("expected 1 fired and 1 rejected, got %d and %d", fc.Fired(), fc.Rejected())
	}
	if l.launches[0].color != "#ff0000" {
		t.Errorf("expected first palette colour, got %s", l.launches[0].color)
	}
}

func TestFireControlZeroDelayConfig(t *testing.T) {
	l := &recordingLauncher{}
	cfg := FireControlConfig{Palette: []string{"#ffffff"}}
	fc := NewFireControl(cfg, []math.Vec3{math.Vec3Zero}, l, constRand(0.5))

	if n := fc.Update(1); n == 0 || n > 1/minDelay+1 {
		t.Errorf("zero-delay config should fire a bounded number of shots, got %d", n)
	}
}

func TestFireControlWithManager(t *testing.T) {
	m := fireworks.NewManager(fireworks.DefaultConfig(), constRand(0.5))
	fc := NewFireControl(DefaultFireControlConfig(), DefaultLayout().LaunchPoints(), m, constRand(0.5))

	fc.Update(10)
	if got := len(m.Rockets()); got != 5 {
		t.Fatalf("expected 5 rockets in flight, got %d", got)
	}
	want := core.MustParseColor("#ff00ff")
	if got := m.Rockets()[0].Color; got != want {
		t.Errorf("rocket colour: expected %v, got %v", want, got)
	}
}

func TestBuildCounts(t *testing.T) {
	tests := []struct {
		name      string
		r         float64
		solid     int
		glow      int
		groundCol core.Color
	}{
		// 31x31 ground cells, 5 houses x 6 parts, 6 trees x 8, 5 lamps x 4 posts.
		{"all windows lit", 0.5, 961 + 30 + 48 + 20, 15 + 5, colorGround},
		{"all windows dark", 0.1, 961 + 30 + 15 + 48 + 20, 5, colorGround},
		{"snow everywhere", 0.9, 961 + 30 + 48 + 20, 15 + 5, colorSnow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Build(DefaultLayout(), constRand(tt.r))
			if s.Solid.Count() != tt.solid {
				t.Errorf("solid: expected %d, got %d", tt.solid, s.Solid.Count())
			}
			if s.Glow.Count() != tt.glow {
				t.Errorf("glow: expected %d, got %d", tt.glow, s.Glow.Count())
			}
			last := s.Solid.ColorAt(s.Solid.Count() - 1)
			if last != tt.groundCol {
				t.Errorf("ground colour: expected %v, got %v", tt.groundCol, last)
			}
		})
	}
}

func TestBuildGroundPlacement(t *testing.T) {
	l := Layout{Offset: math.NewVec3(0, -2, 0), GroundExtent: 2}
	s := Build(l, constRand(0.9))

	if s.Solid.Count() != 9 {
		t.Fatalf("expected 3x3 ground cells, got %d", s.Solid.Count())
	}
	// 0.9 raises every cell by one.
	want := math.Mat4ScaleTranslation(math.Splat(2), math.NewVec3(-2, -2, -2))
	if got := s.Solid.TransformAt(0); got != want {
		t.Errorf("first cell: expected %v, got %v", want, got)
	}
}

func TestBuildHouseRotation(t *testing.T) {
	h := House{Position: math.NewVec3(5, 0, 0), Rotation: stdmath.Pi / 2, Width: 4, Height: 3, Depth: 4}
	s := Build(Layout{Houses: []House{h}}, constRand(0.1))

	// Chimney is the fifth part; its centre must sit under the launch point.
	centre := math.NewVec4(0, 0, 0, 1).MulMat(s.Solid.TransformAt(4)).ToVec3()
	top := h.Chimney()
	if !near(centre.X, top.X) || !near(centre.Z, top.Z) {
		t.Errorf("chimney centre %v is not under launch point %v", centre, top)
	}
	if !near(centre.Y, 4.5) {
		t.Errorf("chimney centre height: expected 4.5, got %v", centre.Y)
	}
}

func BenchmarkBuild(b *testing.B) {
	l := DefaultLayout()
	rng := fireworks.NewRand(9)
	for i := 0; i < b.N; i++ {
		Build(l, rng)
	}
}
