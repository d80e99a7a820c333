package particle

import (
	"context"
	"time"
)

// Runner drives a System from a ticker for headless use. Windowed
// applications should call System.Update from their own frame loop
// instead.
type Runner struct {
	system *System
}

// NewRunner creates a runner for the given system.
func NewRunner(system *System) *Runner {
	return &Runner{system: system}
}

// Run updates the system repeatedly at the given interval until the
// context is cancelled. The delta passed to each update is the measured
// wall-clock time since the previous tick, not the nominal interval.
func (r *Runner) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			r.system.Update(dt)
		}
	}
}
