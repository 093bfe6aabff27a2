package fireworks

import (
	"testing"

	"voxel-fireworks/core"
	vmath "voxel-fireworks/math"
)

func TestInstanceBuffersBrightness(t *testing.T) {
	b := NewInstanceBuffers(2, 10)
	b.Set(0, vmath.Vec3Zero, vmath.Vec3One, core.Color{R: 1, G: 0, B: 0, A: 1})
	b.Set(1, vmath.Vec3Zero, vmath.Vec3One, core.Color{R: 0.5, G: 0.25, B: 0, A: 1})

	if got := b.ColorAt(0); got != (core.Color{R: 10, G: 0, B: 0, A: 1}) {
		t.Errorf("slot 0: expected (10,0,0), got %v", got)
	}
	if got := b.ColorAt(1); got != (core.Color{R: 5, G: 2.5, B: 0, A: 1}) {
		t.Errorf("slot 1: expected (5,2.5,0), got %v", got)
	}
}

func TestInstanceBuffersTransformLayout(t *testing.T) {
	b := NewInstanceBuffers(1, 1)
	pos := vmath.NewVec3(3, 4, 5)
	b.Set(0, pos, vmath.NewVec3(0.4, 0.8, 0.4), core.ColorWhite)

	m := b.Transforms
	// Column-major: the diagonal holds the scale, the last column the translation.
	want := []float32{
		0.4, 0, 0, 0,
		0, 0.8, 0, 0,
		0, 0, 0.4, 0,
		3, 4, 5, 1,
	}
	for i := range want {
		if m[i] != want[i] {
			t.Errorf("transform[%d]: expected %v, got %v", i, want[i], m[i])
		}
	}

	centre := vmath.NewVec4(0, 0, 0, 1).MulMat(b.TransformAt(0)).ToVec3()
	if centre != pos {
		t.Errorf("box centre: expected %v, got %v", pos, centre)
	}
}

func TestInstanceBuffersDirtyRange(t *testing.T) {
	b := NewInstanceBuffers(8, 1)
	if _, ok := b.Dirty(); ok {
		t.Fatal("new buffers should not be dirty")
	}

	b.Commit(3)
	b.Commit(2)
	r, ok := b.Dirty()
	if !ok || r != (Range{Offset: 0, Count: 3}) {
		t.Errorf("dirty after two commits: expected [0,3), got %v %v", r, ok)
	}
	if b.Count() != 2 {
		t.Errorf("count: expected 2, got %d", b.Count())
	}

	b.ClearDirty()
	if _, ok := b.Dirty(); ok {
		t.Error("dirty range should be empty after ClearDirty")
	}

	b.Commit(5)
	if r, _ := b.Dirty(); r != (Range{Offset: 0, Count: 5}) {
		t.Errorf("dirty after growth: expected [0,5), got %v", r)
	}
}

func TestInstanceBuffersCommitClips(t *testing.T) {
	b := NewInstanceBuffers(4, 1)
	b.Commit(10)
	if b.Count() != 4 {
		t.Errorf("count: expected 4, got %d", b.Count())
	}
	if r, _ := b.Dirty(); r.Count != 4 {
		t.Errorf("dirty count: expected 4, got %d", r.Count)
	}
}

func TestProject(t *testing.T) {
	s := NewStore(4)
	s.Insert(Particle{Position: vmath.NewVec3(1, 2, 3), Color: core.ColorWhite, Scale: 0.8, Life: 0.5})
	s.Insert(Particle{Position: vmath.NewVec3(-1, 6, 0), Color: core.ColorRed, Scale: 0.4, Life: 1})

	b := NewInstanceBuffers(4, 10)
	Project(s, b)

	if b.Count() != 2 {
		t.Fatalf("count: expected 2, got %d", b.Count())
	}
	want := vmath.Mat4ScaleTranslation(vmath.Splat(0.8*0.5), vmath.NewVec3(1, 2, 3))
	if got := b.TransformAt(0); got != want {
		t.Errorf("slot 0 transform: expected %v, got %v", want, got)
	}
	if got := b.ColorAt(1); got != (core.Color{R: 10, G: 0, B: 0, A: 1}) {
		t.Errorf("slot 1 colour: expected (10,0,0), got %v", got)
	}

	// Projection alone must not advance the simulation.
	if p := s.At(0); p.Life != 0.5 || p.Position != vmath.NewVec3(1, 2, 3) {
		t.Errorf("Project changed the store: %+v", p)
	}
}

func TestProjectClipsToCapacity(t *testing.T) {
	s := NewStore(4)
	for i := 0; i < 4; i++ {
		s.Insert(sparkAt(float32(i)))
	}
	b := NewInstanceBuffers(2, 1)
	Project(s, b)
	if b.Count() != 2 {
		t.Errorf("count: expected 2, got %d", b.Count())
	}
}
