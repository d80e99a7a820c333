package particle

import (
	"iter"
	"slices"
	"time"

	"github.com/kamstrup/intmap"
)

// EmitterID is a stable handle for an emitter held by a System. It
// remains valid across cleanup passes until the emitter is removed,
// either by expiring or through KillEmitter. Particles have no handles;
// their identity is their slot in the collection.
type EmitterID uint64

type emitterSlot struct {
	id      EmitterID
	emitter Emitter
}

// System owns collections of particles and emitters and drives the
// per-frame emit, admit, integrate, cull cycle. It is the sole mutator
// of both collections. Update and Draw are not reentrant, and a System
// is not safe for concurrent use.
type System struct {
	particles []Particle
	emitters  []emitterSlot

	// Maps emitter handles to their current slice index. Indices shift
	// on every removal, so the map is reindexed after each cull.
	slots  *intmap.Map[EmitterID, int]
	nextID EmitterID

	stats statsInternal
}

// NewSystem creates an empty particle system.
func NewSystem() *System {
	return &System{
		slots: intmap.New[EmitterID, int](16),
		stats: statsInternal{
			minUpdate: time.Duration(1<<63 - 1),
		},
	}
}

// AddParticle transfers exclusive ownership of a particle into the
// system. No liveness check is performed: a particle added already dead
// survives until the next cleanup pass, matching the original behavior.
func (s *System) AddParticle(p Particle) {
	s.particles = append(s.particles, p)
}

// AddEmitter transfers exclusive ownership of an emitter into the system
// and returns a handle that can cancel it before it expires on its own.
func (s *System) AddEmitter(e Emitter) EmitterID {
	s.nextID++
	id := s.nextID
	s.emitters = append(s.emitters, emitterSlot{id: id, emitter: e})
	s.slots.Put(id, len(s.emitters)-1)
	return id
}

// HasEmitter reports whether the emitter behind the handle is still held.
func (s *System) HasEmitter(id EmitterID) bool {
	_, ok := s.slots.Get(id)
	return ok
}

// KillEmitter removes an emitter immediately, without waiting for its
// Alive to report false. Particles it already spawned are unaffected.
// Returns false if the handle no longer resolves.
func (s *System) KillEmitter(id EmitterID) bool {
	idx, ok := s.slots.Get(id)
	if !ok {
		return false
	}
	s.emitters = slices.Delete(s.emitters, idx, idx+1)
	s.slots.Del(id)
	s.reindexEmitters(idx)
	return true
}

func (s *System) reindexEmitters(from int) {
	for i := from; i < len(s.emitters); i++ {
		s.slots.Put(s.emitters[i].id, i)
	}
}

// ParticleCount returns the number of currently held particles.
func (s *System) ParticleCount() int {
	return len(s.particles)
}

// EmitterCount returns the number of currently held emitters.
func (s *System) EmitterCount() int {
	return len(s.emitters)
}

// Particles returns an iterator over the currently held particles in
// container order. Particle values are interfaces wrapping pointers, so
// mutating through a yielded value is allowed; the iteration itself
// never mutates liveness state.
func (s *System) Particles() iter.Seq[Particle] {
	return func(yield func(Particle) bool) {
		for _, p := range s.particles {
			if !yield(p) {
				return
			}
		}
	}
}

// Emitters returns an iterator over the currently held emitters in
// container order.
func (s *System) Emitters() iter.Seq[Emitter] {
	return func(yield func(Emitter) bool) {
		for _, slot := range s.emitters {
			if !yield(slot.emitter) {
				return
			}
		}
	}
}

// UpdateEmitters advances every emitter by dt and returns the combined
// batch of newly spawned particles, in emitter order. Every emitter sees
// the same dt, and all emitters are advanced before the batch is handed
// back, so no emitter observes particles spawned by another this frame.
func (s *System) UpdateEmitters(dt float64) []Particle {
	var batch []Particle
	for _, slot := range s.emitters {
		batch = append(batch, slot.emitter.Update(dt)...)
	}
	return batch
}

// UpdateParticles integrates every currently held particle by dt.
func (s *System) UpdateParticles(dt float64) {
	for _, p := range s.particles {
		p.Update(dt)
	}
}

// CleanParticles removes every particle whose Alive reports false,
// preserving the relative order of survivors.
func (s *System) CleanParticles() {
	live := s.particles[:0]
	for _, p := range s.particles {
		if p.Alive() {
			live = append(live, p)
		} else {
			s.stats.particlesCulled++
		}
	}
	// Clear trailing slots so dead particles are collectable.
	for i := len(live); i < len(s.particles); i++ {
		s.particles[i] = nil
	}
	s.particles = live
}

// CleanEmitters removes every emitter whose Alive reports false,
// preserving the relative order of survivors and releasing their
// handles.
func (s *System) CleanEmitters() {
	live := s.emitters[:0]
	removed := false
	for _, slot := range s.emitters {
		if slot.emitter.Alive() {
			live = append(live, slot)
		} else {
			s.slots.Del(slot.id)
			s.stats.emittersCulled++
			removed = true
		}
	}
	for i := len(live); i < len(s.emitters); i++ {
		s.emitters[i] = emitterSlot{}
	}
	s.emitters = live
	if removed {
		s.reindexEmitters(0)
	}
}

// Update runs one update cycle with the given time delta, in strict
// order: advance emitters and collect their spawn batch, admit the
// batch, integrate every particle (including ones admitted this frame,
// with the same dt), then cull dead particles and dead emitters. Culling
// never interleaves with integration, so a particle is integrated
// exactly once in the frame it is born and a dead particle is never
// drawn.
func (s *System) Update(dt float64) {
	start := time.Now()

	batch := s.UpdateEmitters(dt)
	for _, p := range batch {
		s.AddParticle(p)
	}
	s.stats.emitted += int64(len(batch))

	s.UpdateParticles(dt)

	s.CleanParticles()
	s.CleanEmitters()

	s.stats.record(time.Since(start))
}

// Draw renders every live particle in container order. It performs no
// state mutation and is a convenience composition over Particles.
func (s *System) Draw() {
	for _, p := range s.particles {
		p.Draw()
	}
}
