package particle_test

import (
	"github.com/JMANN240/particula/particle"
)

// Common concrete types used across the package tests.

// dot is the basic concrete particle: euler integration plus an
// age-based lifetime.
type dot struct {
	particle.Lifetime
	position particle.Vec2
	velocity particle.Vec2
	updates  int
	draws    int
}

func newDot(position, velocity particle.Vec2, maxAge float64) *dot {
	return &dot{
		Lifetime: particle.Lifetime{MaxAge: maxAge},
		position: position,
		velocity: velocity,
	}
}

func (d *dot) Position() particle.Vec2 { return d.position }

func (d *dot) Update(dt float64) {
	d.position = d.position.Add(d.velocity.Scale(dt))
	d.Advance(dt)
	d.updates++
}

func (d *dot) Draw() { d.draws++ }

// stub is a particle with an externally controlled liveness flag.
type stub struct {
	name    string
	alive   bool
	updates int
	draws   int
}

func (p *stub) Position() particle.Vec2 { return particle.Vec2{} }
func (p *stub) Update(dt float64)       { p.updates++ }
func (p *stub) Draw()                   { p.draws++ }
func (p *stub) Alive() bool             { return p.alive }

// drip emits exactly one zero-velocity dot per update at a fixed origin.
// remaining counts down to expiry; -1 means it never expires.
type drip struct {
	origin    particle.Vec2
	maxAge    float64
	remaining int
	updates   int
	spawned   []*dot
}

func (e *drip) Update(dt float64) []particle.Particle {
	e.updates++
	if e.remaining == 0 {
		return nil
	}
	if e.remaining > 0 {
		e.remaining--
	}
	d := newDot(e.origin, particle.Vec2{}, e.maxAge)
	e.spawned = append(e.spawned, d)
	return []particle.Particle{d}
}

func (e *drip) Alive() bool { return e.remaining != 0 }

// burst emits count dots on its first update, then reports dead.
type burst struct {
	origin particle.Vec2
	count  int
	maxAge float64
	fired  bool
}

func (e *burst) Update(dt float64) []particle.Particle {
	if e.fired {
		return nil
	}
	e.fired = true

	out := make([]particle.Particle, 0, e.count)
	for i := 0; i < e.count; i++ {
		out = append(out, newDot(e.origin, particle.Vec2{}, e.maxAge))
	}
	return out
}

func (e *burst) Alive() bool { return !e.fired }

func collectParticles(sys *particle.System) []particle.Particle {
	var out []particle.Particle
	for p := range sys.Particles() {
		out = append(out, p)
	}
	return out
}
