// Package fireworks simulates firework rockets and their explosion particles
// and projects the live particles into instance buffers for a single
// instanced draw call per frame.
//
// The simulation is frame driven and single threaded: a Manager and the
// Store it owns must only be touched from the goroutine that runs the
// render loop. Memory is bounded by Config.MaxParticles and
// Config.MaxRockets; work beyond either ceiling is dropped rather than
// queued.
//
// A typical host loop:
//
//	m := fireworks.NewManager(fireworks.DefaultConfig(), fireworks.NewRand(seed))
//	for running {
//	    m.Update(dt)
//	    backend.Draw(m.Particles())
//	}
package fireworks
