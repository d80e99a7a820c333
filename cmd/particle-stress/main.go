package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/JMANN240/particula/particle"
)

// spark is the stress particle: euler integration with an age cap.
type spark struct {
	particle.Lifetime
	position particle.Vec2
	velocity particle.Vec2
}

func (s *spark) Position() particle.Vec2 { return s.position }

func (s *spark) Update(dt float64) {
	s.position = s.position.Add(s.velocity.Scale(dt))
	s.Advance(dt)
}

func (s *spark) Draw() {}

// spray emits rate particles per second in random directions and never
// expires. Fractional spawns carry over to the next frame so low rates
// still emit.
type spray struct {
	origin particle.Vec2
	rate   float64
	maxAge float64
	carry  float64
}

func (e *spray) Update(dt float64) []particle.Particle {
	e.carry += e.rate * dt
	count := int(e.carry)
	e.carry -= float64(count)

	out := make([]particle.Particle, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, &spark{
			Lifetime: particle.Lifetime{MaxAge: e.maxAge},
			position: e.origin,
			velocity: particle.FromAngle(rand.Float64() * 2 * math.Pi).Scale(50 + rand.Float64()*150),
		})
	}
	return out
}

func (e *spray) Alive() bool { return true }

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	emitterCount := flag.Int("emitters", 100, "The number of emitters to create.")
	rate := flag.Float64("rate", 100, "Particles per second emitted by each emitter.")
	maxAge := flag.Float64("max-age", 1.0, "Particle lifetime in seconds.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting particle stress test...")

	// 1. Setup the system and populate it with emitters
	sys := particle.NewSystem()
	for i := 0; i < *emitterCount; i++ {
		sys.AddEmitter(&spray{
			origin: particle.Vec2{X: rand.Float64() * 1000, Y: rand.Float64() * 1000},
			rate:   *rate,
			maxAge: *maxAge,
		})
	}

	report := &Report{
		Duration:       *duration,
		Emitters:       *emitterCount,
		Rate:           *rate,
		MaxAge:         *maxAge,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	// 2. Run the simulation loop
	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			sys.Update(deltaTime.Seconds())
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++

			if count := sys.ParticleCount(); count > report.PeakParticles {
				report.PeakParticles = count
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.SystemStats = sys.CollectStats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	// 3. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
