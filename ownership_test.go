package bitvec

import (
	"testing"

	"github.com/hupe1980/bitvec/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// Vectors confined to one goroutine each need no locking, and values derived
// from a shared read-only operand never alias it. Run with -race.
func TestConfinedVectors(t *testing.T) {
	const workers = 8

	shared, err := New(1000, false)
	require.NoError(t, err)
	shared.SetRange(100, 900, true).Must()
	want := shared.Clone()

	results := make([]*BitVector, workers)
	var g errgroup.Group
	for w := range workers {
		g.Go(func() error {
			rng := testutil.NewRNG(int64(w))
			own := Not(shared)
			for range 1000 {
				i, j := rng.Range(own.Len())
				if r := own.SetRange(i, j, rng.Bool()); !r.Ok() {
					return r.Err()
				}
			}
			combined, err := Or(own, shared)
			if err != nil {
				return err
			}
			results[w] = combined
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.True(t, want.Equal(shared), "shared operand modified")
	for w, r := range results {
		assert.True(t, r.GetRange(100, 900).Must(), "worker %d", w)
		r.Clear()
	}
	assert.True(t, want.Equal(shared), "result aliases shared operand")
}
