package fireworks

import (
	"voxel-fireworks/core"
	"voxel-fireworks/math"
)

// Manager owns the particle store and the rockets in flight. It turns
// launch requests and frame deltas into instance buffers.
type Manager struct {
	cfg        Config
	rng        Rand
	integrator Integrator

	store     *Store
	particles *InstanceBuffers

	rockets       []Rocket
	rocketBuffers *InstanceBuffers
	nextID        RocketID

	onRemove func(RocketID)

	// scratch is reused by every explosion so bursts never allocate.
	scratch []Particle
}

func NewManager(cfg Config, rng Rand) *Manager {
	if rng == nil {
		rng = NewRand(1)
	}
	return &Manager{
		cfg:           cfg,
		rng:           rng,
		integrator:    Integrator{Gravity: cfg.Gravity},
		store:         NewStore(cfg.MaxParticles),
		particles:     NewInstanceBuffers(cfg.MaxParticles, cfg.Brightness),
		rockets:       make([]Rocket, 0, cfg.MaxRockets),
		rocketBuffers: NewInstanceBuffers(cfg.MaxRockets, cfg.RocketBrightness),
		scratch:       make([]Particle, 0, cfg.Shape.MaxCount),
	}
}

// OnRemoveRocket registers fn to be called exactly once per rocket, in the
// update where it explodes.
func (m *Manager) OnRemoveRocket(fn func(RocketID)) {
	m.onRemove = fn
}

// Launch starts a rocket at start with a random explosion height. color is
// a CSS hex string; an unparsable colour gives a black rocket. It returns
// false when MaxRockets rockets are already in flight.
func (m *Manager) Launch(start math.Vec3, color string) (RocketID, bool) {
	span := float64(m.cfg.MaxTargetHeight - m.cfg.MinTargetHeight)
	target := m.cfg.MinTargetHeight + float32(m.rng.Float64()*span)
	return m.LaunchTo(start, color, target)
}

// LaunchTo is Launch with an explicit explosion height.
func (m *Manager) LaunchTo(start math.Vec3, color string, targetHeight float32) (RocketID, bool) {
	if len(m.rockets) >= m.cfg.MaxRockets {
		return 0, false
	}
	c, _ := core.ParseColor(color)
	m.nextID++
	m.rockets = append(m.rockets, Rocket{
		ID:           m.nextID,
		Position:     start,
		Color:        c,
		TargetHeight: targetHeight,
	})
	return m.nextID, true
}

// AddExplosion bursts a default-sized explosion at center and returns how
// many particles fit into the store. A full store makes it a no-op.
func (m *Manager) AddExplosion(center math.Vec3, color core.Color) int {
	if m.store.Available() <= 0 {
		return 0
	}
	m.scratch = m.cfg.Shape.Generate(m.scratch, center, color, DefaultCount, m.rng)

	added := 0
	for _, p := range m.scratch {
		if !m.store.Insert(p) {
			break
		}
		added++
	}
	return added
}

// Update advances the whole simulation by delta seconds: rockets climb and
// explode, then particles are integrated and projected, then the remaining
// rockets are projected. A rocket never survives the update it explodes in.
func (m *Manager) Update(delta float32) {
	m.stepRockets(delta)
	m.integrator.Step(m.store, delta, m.particles)
	m.projectRockets()
}

func (m *Manager) stepRockets(delta float32) {
	i := 0
	for i < len(m.rockets) {
		r := &m.rockets[i]
		if !r.Step(m.cfg.RocketSpeed, delta) {
			i++
			continue
		}

		id, pos, color := r.ID, r.Position, r.Color
		last := len(m.rockets) - 1
		m.rockets[i] = m.rockets[last]
		m.rockets = m.rockets[:last]

		m.AddExplosion(pos, color)
		if m.onRemove != nil {
			m.onRemove(id)
		}
	}
}

func (m *Manager) projectRockets() {
	n := len(m.rockets)
	if n > m.rocketBuffers.Cap() {
		n = m.rocketBuffers.Cap()
	}
	for i := 0; i < n; i++ {
		r := m.rockets[i]
		m.rocketBuffers.Set(i, r.Position, m.cfg.RocketSize, r.Color)
	}
	m.rocketBuffers.Commit(n)
}

// Particles returns the particle instance buffers, valid until the next Update.
func (m *Manager) Particles() *InstanceBuffers { return m.particles }

// RocketInstances returns the rocket instance buffers.
func (m *Manager) RocketInstances() *InstanceBuffers { return m.rocketBuffers }

// Rockets returns the rockets in flight. The slice is owned by m.
func (m *Manager) Rockets() []Rocket { return m.rockets }

func (m *Manager) ParticleCount() int { return m.store.Len() }

// Reset discards every rocket and particle. Removal hooks are not called.
func (m *Manager) Reset() {
	m.rockets = m.rockets[:0]
	m.store.Reset()
	m.particles.Commit(0)
	m.rocketBuffers.Commit(0)
}
