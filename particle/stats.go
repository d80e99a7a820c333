package particle

import "time"

// SystemStats is a point-in-time snapshot of a System's contents and the
// timing of its Update calls.
type SystemStats struct {
	ParticleCount int
	EmitterCount  int

	TotalEmitted         int64
	TotalParticlesCulled int64
	TotalEmittersCulled  int64

	UpdateCount int64
	MinUpdate   time.Duration
	MaxUpdate   time.Duration
	AvgUpdate   time.Duration
	LastUpdate  time.Duration
	TotalUpdate time.Duration
}

type statsInternal struct {
	emitted         int64
	particlesCulled int64
	emittersCulled  int64

	updateCount int64
	minUpdate   time.Duration
	maxUpdate   time.Duration
	totalUpdate time.Duration
	lastUpdate  time.Duration
}

func (st *statsInternal) record(d time.Duration) {
	st.updateCount++
	st.lastUpdate = d
	st.totalUpdate += d

	if d < st.minUpdate {
		st.minUpdate = d
	}
	if d > st.maxUpdate {
		st.maxUpdate = d
	}
}

// CollectStats returns a snapshot of the system's counters and update
// timings.
func (s *System) CollectStats() SystemStats {
	stats := SystemStats{
		ParticleCount: len(s.particles),
		EmitterCount:  len(s.emitters),

		TotalEmitted:         s.stats.emitted,
		TotalParticlesCulled: s.stats.particlesCulled,
		TotalEmittersCulled:  s.stats.emittersCulled,

		UpdateCount: s.stats.updateCount,
		MaxUpdate:   s.stats.maxUpdate,
		LastUpdate:  s.stats.lastUpdate,
		TotalUpdate: s.stats.totalUpdate,
	}

	if s.stats.updateCount > 0 {
		stats.MinUpdate = s.stats.minUpdate
		stats.AvgUpdate = s.stats.totalUpdate / time.Duration(s.stats.updateCount)
	}

	return stats
}
