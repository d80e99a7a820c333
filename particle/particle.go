// Package particle provides a container for transient point effects
// (sparks, smoke, explosions) driven by a discrete per-frame update loop.
// A System owns heterogeneous collections of Particle and Emitter
// implementations and advances them through an emit, integrate, cull
// cycle once per frame.
package particle

// Particle is a single simulated, drawable, time-limited point entity.
// A System owns the particle exclusively from the moment it is added;
// implementations must not hold references back into the container.
type Particle interface {
	// Position reports the particle's current location. Pure query.
	Position() Vec2

	// Update advances the particle's internal state by dt seconds.
	// Integration is the implementation's choice; the usual form is
	// position += velocity * dt together with age += dt.
	Update(dt float64)

	// Draw renders the particle through whatever rendering collaborator
	// it was constructed with. It must not mutate simulation state.
	Draw()

	// Alive reports false when the particle is eligible for removal on
	// the next cleanup pass. Once false it must stay false until an
	// intervening Update.
	Alive() bool
}

// Emitter is a stateful spawner that produces particles over time and
// eventually expires.
type Emitter interface {
	// Update advances the emitter by dt seconds and returns zero or more
	// newly spawned particles. The owning System admits the returned
	// particles in the same update cycle, so they are integrated with the
	// same dt the emitter saw.
	Update(dt float64) []Particle

	// Alive reports false when the emitter should be removed after the
	// current update cycle. The batch returned by its final Update is
	// still honored.
	Alive() bool
}
