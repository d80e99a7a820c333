package particle

// Lifetime tracks elapsed age against a maximum age. Embed it in a
// concrete particle to get the standard age-based liveness policy
// without reimplementing it per type.
type Lifetime struct {
	Age    float64
	MaxAge float64
}

// Advance adds dt seconds to the elapsed age.
func (l *Lifetime) Advance(dt float64) {
	l.Age += dt
}

// Percent returns the elapsed fraction of the lifetime, Age / MaxAge.
// Callers that need a well-defined value for MaxAge <= 0 should check
// Alive first.
func (l Lifetime) Percent() float64 {
	return l.Age / l.MaxAge
}

// Alive reports whether the lifetime has not yet expired. A MaxAge of
// zero or less counts as already expired, so a degenerate lifetime is
// culled on its first check instead of surviving as NaN or +Inf.
func (l Lifetime) Alive() bool {
	if l.MaxAge <= 0 {
		return false
	}
	return l.Percent() < 1.0
}
