package fireworks

// Gravity is half of Earth gravity; full strength makes bursts collapse
// before they read as fireworks.
const Gravity = 9.8 * 0.5

// Integrator advances every particle in a Store by one frame.
type Integrator struct {
	Gravity float32
}

// Step ages, accelerates and moves each live particle, removes the ones
// that died or reached the ground, and projects the survivors into out at
// their compacted index. out may be nil. It returns the live count.
//
// Velocity is updated before position (semi-implicit Euler). A removed
// slot is refilled from the end of the store, so the loop re-examines the
// same index instead of advancing.
func (in Integrator) Step(s *Store, delta float32, out *InstanceBuffers) int {
	g := in.Gravity * delta

	i := 0
	for i < s.n {
		s.life[i] -= delta * s.decay[i]
		s.vel[i].Y -= g
		s.pos[i] = s.pos[i].AddScaled(s.vel[i], delta)

		if alive(s.life[i], s.pos[i].Y) {
			if out != nil && i < out.Cap() {
				out.projectParticle(i, s.pos[i], s.scale[i], s.life[i], s.color[i])
			}
			i++
			continue
		}
		s.RemoveAt(i)
	}

	if out != nil {
		out.Commit(s.n)
	}
	return s.n
}
