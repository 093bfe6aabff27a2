package fireworks

import (
	"fmt"

	"voxel-fireworks/core"
	"voxel-fireworks/math"
)

// Store holds live particles as parallel arrays (struct-of-arrays) with a
// fixed capacity. Slots [0, Len()) are live; order carries no meaning and
// RemoveAt moves the last particle into the freed slot.
type Store struct {
	pos   []math.Vec3
	vel   []math.Vec3
	color []core.Color
	scale []float32
	life  []float32
	decay []float32

	n int
}

// NewStore allocates every slot up front; nothing is allocated afterwards.
func NewStore(capacity int) *Store {
	if capacity < 0 {
		capacity = 0
	}
	return &Store{
		pos:   make([]math.Vec3, capacity),
		vel:   make([]math.Vec3, capacity),
		color: make([]core.Color, capacity),
		scale: make([]float32, capacity),
		life:  make([]float32, capacity),
		decay: make([]float32, capacity),
	}
}

func (s *Store) Cap() int       { return len(s.pos) }
func (s *Store) Len() int       { return s.n }
func (s *Store) Available() int { return len(s.pos) - s.n }

// Insert appends p. It returns false and leaves the store untouched when
// the store is full.
func (s *Store) Insert(p Particle) bool {
	if s.n >= len(s.pos) {
		return false
	}
	s.set(s.n, p)
	s.n++
	return true
}

// RemoveAt drops the particle in slot i by overwriting it with the last
// live particle. Any index held for the previous occupant of i or for the
// old last slot is invalid afterwards.
func (s *Store) RemoveAt(i int) {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("fireworks: RemoveAt(%d) outside live range [0,%d)", i, s.n))
	}
	last := s.n - 1
	if i != last {
		s.pos[i] = s.pos[last]
		s.vel[i] = s.vel[last]
		s.color[i] = s.color[last]
		s.scale[i] = s.scale[last]
		s.life[i] = s.life[last]
		s.decay[i] = s.decay[last]
	}
	s.n = last
}

// At returns a copy of the particle in live slot i.
func (s *Store) At(i int) Particle {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("fireworks: At(%d) outside live range [0,%d)", i, s.n))
	}
	return Particle{
		Position: s.pos[i],
		Velocity: s.vel[i],
		Color:    s.color[i],
		Scale:    s.scale[i],
		Life:     s.life[i],
		Decay:    s.decay[i],
	}
}

// Reset kills every particle. Slots are rewritten in full by the next Insert.
func (s *Store) Reset() {
	s.n = 0
}

func (s *Store) set(i int, p Particle) {
	s.pos[i] = p.Position
	s.vel[i] = p.Velocity
	s.color[i] = p.Color
	s.scale[i] = p.Scale
	s.life[i] = p.Life
	s.decay[i] = p.Decay
}
