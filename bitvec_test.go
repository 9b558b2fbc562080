package bitvec

import (
	"strings"
	"testing"

	"github.com/hupe1980/bitvec/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomVector(t testing.TB, rng *testutil.RNG, length int) *BitVector {
	t.Helper()
	v, err := New(length, false)
	require.NoError(t, err)
	for n, set := range rng.Bools(length, 0.5) {
		v.Set(n, set).Must()
	}
	return v
}

func TestNew(t *testing.T) {
	t.Run("negative length", func(t *testing.T) {
		v, err := New(-1, false)
		require.ErrorIs(t, err, ErrNegativeLength)
		assert.Nil(t, v)
	})

	tests := []struct {
		length    int
		wantWords int
	}{
		{0, 0},
		{1, 1},
		{63, 1},
		{64, 1},
		{65, 2},
		{192, 3},
		{193, 4},
	}
	for _, tt := range tests {
		v, err := New(tt.length, true)
		require.NoError(t, err)
		assert.Equal(t, tt.length, v.Len())
		assert.Len(t, v.words, tt.wantWords, "length %d", tt.length)
		assert.Equal(t, tt.wantWords*WordBits, v.Capacity())
		assert.Equal(t, tt.length, v.Count())
	}

	t.Run("fill", func(t *testing.T) {
		ones, err := New(100, true)
		require.NoError(t, err)
		zeros, err := NewZero(100)
		require.NoError(t, err)
		for n := 0; n < 100; n++ {
			assert.True(t, ones.Get(n).Must())
			assert.False(t, zeros.Get(n).Must())
		}
	})

	t.Run("empty vector rejects every index", func(t *testing.T) {
		v, err := NewZero(0)
		require.NoError(t, err)
		r := v.Get(0)
		assert.False(t, r.Ok())
		assert.ErrorIs(t, r.Err(), ErrOutOfRange)
		assert.False(t, v.Set(0, true).Ok())
		assert.Equal(t, "", v.String())
	})
}

func TestGetSet(t *testing.T) {
	v, err := NewZero(150)
	require.NoError(t, err)

	for n := 0; n < v.Len(); n++ {
		require.True(t, v.Set(n, true).Ok())
		assert.True(t, v.Get(n).Must())
		require.True(t, v.Set(n, false).Ok())
		assert.False(t, v.Get(n).Must())
	}

	v = randomVector(t, testutil.NewRNG(20), 150)
	before := v.Clone()
	for _, n := range []int{-1000, -1, 150, 151, 191, 192, 1 << 20} {
		r := v.Get(n)
		assert.False(t, r.Ok(), "get %d", n)
		assert.Equal(t, IndexOutOfRange, r.Kind())

		s := v.Set(n, true)
		assert.False(t, s.Ok(), "set %d", n)
		assert.True(t, IsOutOfRange(s.Err()))
		assert.True(t, before.Equal(v), "vector changed by set %d", n)
	}
}

func TestGetRange(t *testing.T) {
	rng := testutil.NewRNG(21)

	t.Run("set then get", func(t *testing.T) {
		for range 300 {
			v, err := New(300, false)
			require.NoError(t, err)
			i, j := rng.Range(300)
			require.True(t, v.SetRange(i, j, true).Ok())
			assert.True(t, v.GetRange(i, j).Must())
			assert.True(t, v.GetRange(j, i).Must())
			assert.Equal(t, max(i, j)-min(i, j)+1, v.Count())
		}
	})

	t.Run("any clear bit fails the range", func(t *testing.T) {
		for range 300 {
			v, err := New(300, true)
			require.NoError(t, err)
			i, j := rng.Range(300)
			lo, hi := min(i, j), max(i, j)
			hole := lo + rng.Intn(hi-lo+1)
			v.Set(hole, false).Must()
			assert.False(t, v.GetRange(i, j).Must(), "range [%d, %d] hole %d", lo, hi, hole)
		}
	})

	t.Run("clear range", func(t *testing.T) {
		v, err := New(200, true)
		require.NoError(t, err)
		require.True(t, v.SetRange(150, 50, false).Ok())
		assert.Equal(t, 99, v.Count())
		assert.True(t, v.GetRange(0, 49).Must())
		assert.True(t, v.GetRange(151, 199).Must())
		assert.False(t, v.Get(100).Must())
	})

	t.Run("out of range", func(t *testing.T) {
		v, err := New(100, false)
		require.NoError(t, err)
		for _, r := range [][2]int{{-1, 5}, {5, -1}, {0, 100}, {100, 0}, {100, 200}} {
			assert.False(t, v.GetRange(r[0], r[1]).Ok())
			assert.False(t, v.SetRange(r[0], r[1], true).Ok())
		}
		assert.Equal(t, 0, v.Count())
	})
}

func TestScenario192(t *testing.T) {
	v, err := New(192, false)
	require.NoError(t, err)

	require.True(t, v.SetRange(10, 130, true).Ok())

	assert.True(t, v.GetRange(10, 130).Must())
	assert.False(t, v.Get(9).Must())
	assert.False(t, v.Get(131).Must())
	assert.Equal(t, strings.Repeat("0", 10)+strings.Repeat("1", 10), v.Format(20))
}

func TestBulk(t *testing.T) {
	v := randomVector(t, testutil.NewRNG(22), 130)
	orig := v.Clone()

	v.Invert()
	assert.Equal(t, 130-orig.Count(), v.Count())
	v.Invert()
	assert.True(t, orig.Equal(v))

	v.Clear()
	assert.Equal(t, 0, v.Count())

	v.Fill()
	assert.Equal(t, 130, v.Count())
	assert.True(t, v.GetRange(0, 129).Must())
}

func TestLogical(t *testing.T) {
	rng := testutil.NewRNG(23)

	for _, length := range []int{1, 63, 64, 65, 130, 192} {
		v := randomVector(t, rng, length)
		snapshot := v.Clone()
		ones, err := New(length, true)
		require.NoError(t, err)
		zeros, err := NewZero(length)
		require.NoError(t, err)

		and, err := And(v, ones)
		require.NoError(t, err)
		assert.True(t, v.Equal(and), "and identity, length %d", length)

		or, err := Or(v, zeros)
		require.NoError(t, err)
		assert.True(t, v.Equal(or), "or identity, length %d", length)

		xor, err := Xor(v, v)
		require.NoError(t, err)
		assert.True(t, zeros.Equal(xor), "xor self, length %d", length)

		assert.True(t, v.Equal(Not(Not(v))), "double not, length %d", length)
		assert.Equal(t, length-v.Count(), Not(v).Count())

		assert.True(t, snapshot.Equal(v), "operand modified, length %d", length)
	}

	t.Run("results are new vectors", func(t *testing.T) {
		x, err := New(64, true)
		require.NoError(t, err)
		y, err := New(64, true)
		require.NoError(t, err)

		r, err := And(x, y)
		require.NoError(t, err)
		r.Clear()
		assert.Equal(t, 64, x.Count())
		assert.Equal(t, 64, y.Count())

		n := Not(x)
		n.Fill()
		n.Set(0, false).Must()
		assert.True(t, x.Get(0).Must())
	})

	t.Run("length mismatch", func(t *testing.T) {
		x, err := NewZero(64)
		require.NoError(t, err)
		y, err := NewZero(65)
		require.NoError(t, err)

		for _, op := range []func(x, y *BitVector) (*BitVector, error){And, Or, Xor} {
			r, err := op(x, y)
			require.ErrorIs(t, err, ErrLengthMismatch)
			assert.Nil(t, r)

			var lm *LengthMismatchError
			require.ErrorAs(t, err, &lm)
			assert.Equal(t, 64, lm.Left)
			assert.Equal(t, 65, lm.Right)
		}
	})
}

func TestFormat(t *testing.T) {
	v := randomVector(t, testutil.NewRNG(24), 150)

	for _, size := range []int{-1, 0, 1, 64, 100, 150, 151, 1000} {
		s := v.Format(size)
		require.Len(t, s, max(0, min(size, v.Len())))
		for n := range len(s) {
			want := byte('0')
			if v.Get(n).Must() {
				want = '1'
			}
			assert.Equal(t, want, s[n])
		}
	}
	assert.Equal(t, v.Format(v.Len()), v.String())
}

func TestEqualIgnoresPadding(t *testing.T) {
	a, err := New(70, true)
	require.NoError(t, err)
	b, err := NewZero(70)
	require.NoError(t, err)
	b.SetRange(0, 69, true).Must()

	assert.NotEqual(t, a.words, b.words)
	assert.True(t, a.Equal(b))
	assert.Equal(t, 70, a.Count())

	c, err := New(71, true)
	require.NoError(t, err)
	assert.False(t, a.Equal(c))

	b.Set(69, false).Must()
	assert.False(t, a.Equal(b))
}

func TestIteration(t *testing.T) {
	v, err := NewZero(130)
	require.NoError(t, err)
	v.SetRange(60, 70, true).Must()

	collect := func() []bool {
		var out []bool
		for b := range v.Bits() {
			out = append(out, b)
		}
		return out
	}

	first := collect()
	require.Len(t, first, 130)
	for n, b := range first {
		assert.Equal(t, n >= 60 && n <= 70, b)
	}
	assert.Equal(t, first, collect(), "ranging again restarts")

	v.Set(0, true).Must()
	assert.True(t, collect()[0], "iteration reads through to current state")

	t.Run("mutation while ranging", func(t *testing.T) {
		seen := 0
		for n, b := range v.All() {
			if n == 0 {
				v.Set(129, true).Must()
			}
			if n == 129 {
				assert.True(t, b)
			}
			seen++
		}
		assert.Equal(t, 130, seen)
	})

	t.Run("early break", func(t *testing.T) {
		steps := 0
		for range v.All() {
			steps++
			if steps == 5 {
				break
			}
		}
		assert.Equal(t, 5, steps)
	})

	t.Run("empty", func(t *testing.T) {
		e, err := NewZero(0)
		require.NoError(t, err)
		for range e.Bits() {
			t.Fatal("unexpected bit")
		}
	})
}
