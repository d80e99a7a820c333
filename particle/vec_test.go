package particle_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JMANN240/particula/particle"
)

func TestVec2Arithmetic(t *testing.T) {
	v := particle.Vec2{X: 3, Y: 4}

	assert.Equal(t, particle.Vec2{X: 4, Y: 6}, v.Add(particle.Vec2{X: 1, Y: 2}))
	assert.Equal(t, particle.Vec2{X: 2, Y: 2}, v.Sub(particle.Vec2{X: 1, Y: 2}))
	assert.Equal(t, particle.Vec2{X: 6, Y: 8}, v.Scale(2))
	assert.Equal(t, 5.0, v.Length())
}

func TestFromAngle(t *testing.T) {
	right := particle.FromAngle(0)
	assert.InDelta(t, 1.0, right.X, 1e-12)
	assert.InDelta(t, 0.0, right.Y, 1e-12)

	up := particle.FromAngle(math.Pi / 2)
	assert.InDelta(t, 0.0, up.X, 1e-12)
	assert.InDelta(t, 1.0, up.Y, 1e-12)

	assert.InDelta(t, 1.0, particle.FromAngle(1.234).Length(), 1e-12)
}
