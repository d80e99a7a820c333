package particle_test

import (
	"fmt"

	"github.com/JMANN240/particula/particle"
)

// ember is a particle that rises at a constant velocity and expires
// after MaxAge seconds.
type ember struct {
	particle.Lifetime
	position particle.Vec2
	velocity particle.Vec2
}

func (e *ember) Position() particle.Vec2 { return e.position }

func (e *ember) Update(dt float64) {
	e.position = e.position.Add(e.velocity.Scale(dt))
	e.Advance(dt)
}

func (e *ember) Draw() {
	fmt.Printf("ember at (%.0f, %.0f)\n", e.position.X, e.position.Y)
}

// chimney emits one rising ember per update and never expires.
type chimney struct{}

func (chimney) Update(dt float64) []particle.Particle {
	return []particle.Particle{&ember{
		Lifetime: particle.Lifetime{MaxAge: 3.0},
		velocity: particle.Vec2{Y: -30},
	}}
}

func (chimney) Alive() bool { return true }

// ExampleSystem demonstrates the per-frame lifecycle. Each Update
// advances the emitters, admits their spawns, integrates every particle
// with the same dt, and culls whatever aged out. The first ember expires
// on the third frame, so the population reaches a steady state.
func ExampleSystem() {
	sys := particle.NewSystem()
	sys.AddEmitter(chimney{})

	for frame := 1; frame <= 3; frame++ {
		sys.Update(1.0)
		fmt.Printf("frame %d: %d particles\n", frame, sys.ParticleCount())
	}

	sys.Draw()

	// Output:
	// frame 1: 1 particles
	// frame 2: 2 particles
	// frame 3: 2 particles
	// ember at (0, -60)
	// ember at (0, -30)
}

// ExampleSystem_killEmitter shows cancelling a looping effect through
// its handle before it expires on its own.
func ExampleSystem_killEmitter() {
	sys := particle.NewSystem()
	id := sys.AddEmitter(chimney{})

	sys.Update(1.0)
	fmt.Printf("emitters: %d, particles: %d\n", sys.EmitterCount(), sys.ParticleCount())

	sys.KillEmitter(id)
	sys.Update(1.0)
	fmt.Printf("emitters: %d, particles: %d\n", sys.EmitterCount(), sys.ParticleCount())

	// Output:
	// emitters: 1, particles: 1
	// emitters: 0, particles: 1
}

// ExampleLifetime shows the age-based liveness policy concrete particles
// compose in.
func ExampleLifetime() {
	l := particle.Lifetime{MaxAge: 2.0}

	for i := 0; i < 3; i++ {
		fmt.Printf("age %.1f: %.0f%% alive=%v\n", l.Age, l.Percent()*100, l.Alive())
		l.Advance(1.0)
	}

	// Output:
	// age 0.0: 0% alive=true
	// age 1.0: 50% alive=true
	// age 2.0: 100% alive=false
}
