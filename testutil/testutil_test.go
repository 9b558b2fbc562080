package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	rng := NewRNG(4711)

	ws := rng.Words(8)

	assert.Equal(t, 8, len(ws))
	assert.NotEqual(t, ws[0], ws[1])
}

func TestBools(t *testing.T) {
	rng := NewRNG(4711)

	assert.NotContains(t, rng.Bools(100, 0), true)
	assert.NotContains(t, rng.Bools(100, 1), false)

	flags := rng.Bools(10000, 0.25)
	set := 0
	for _, f := range flags {
		if f {
			set++
		}
	}
	assert.InDelta(t, 2500, set, 250)
}

func TestRange(t *testing.T) {
	rng := NewRNG(4711)

	for range 1000 {
		i, j := rng.Range(192)
		assert.GreaterOrEqual(t, i, 0)
		assert.Less(t, i, 192)
		assert.GreaterOrEqual(t, j, 0)
		assert.Less(t, j, 192)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	w1 := rng.Words(4)

	rng.Reset()
	w2 := rng.Words(4)

	assert.Equal(t, w1, w2)
	assert.Equal(t, int64(4711), rng.Seed())
}
