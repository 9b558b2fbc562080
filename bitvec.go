package bitvec

import (
	"fmt"
	"iter"

	"github.com/hupe1980/bitvec/word"
	"github.com/hupe1980/bitvec/words"
)

// WordBits is the number of bits per storage word.
const WordBits = 64

// BitVector is a fixed-length sequence of bits packed into 64-bit words.
//
// Index-taking methods never panic: they return an AccessResult that carries
// either the value or an out-of-range error, and leave the vector unchanged
// on failure.
//
// A BitVector is not safe for concurrent mutation. Callers that share one
// across goroutines must serialize access.
type BitVector struct {
	length int
	words  []uint64
}

// New creates a vector of length bits, all set to fill.
// A negative length is rejected with ErrNegativeLength.
func New(length int, fill bool) (*BitVector, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, length)
	}
	v := &BitVector{
		length: length,
		words:  make([]uint64, wordCount(length)),
	}
	if fill {
		words.SetAll(v.words)
	}
	return v, nil
}

// NewZero creates a vector of length clear bits.
func NewZero(length int) (*BitVector, error) {
	return New(length, false)
}

func wordCount(length int) int {
	return (length + WordBits - 1) / WordBits
}

// Len returns the number of addressable bits.
func (v *BitVector) Len() int { return v.length }

// Capacity returns the number of bits held by the backing words, padding
// included.
func (v *BitVector) Capacity() int { return WordBits * len(v.words) }

// Get returns bit n.
func (v *BitVector) Get(n int) AccessResult[bool] {
	set, err := words.GetSafe(v.words, v.length, n)
	if err != nil {
		return fail[bool](err)
	}
	return succeed(set)
}

// Set sets bit n to value.
func (v *BitVector) Set(n int, value bool) AccessResult[Unit] {
	if err := words.SetSafe(v.words, v.length, n, value); err != nil {
		return fail[Unit](err)
	}
	return succeed(Unit{})
}

// GetRange reports whether every bit in the inclusive range between i and j
// is set. The endpoints may be given in either order.
func (v *BitVector) GetRange(i, j int) AccessResult[bool] {
	set, err := words.GetRangeSafe(v.words, v.length, i, j)
	if err != nil {
		return fail[bool](err)
	}
	return succeed(set)
}

// SetRange sets every bit in the inclusive range between i and j to value.
func (v *BitVector) SetRange(i, j int, value bool) AccessResult[Unit] {
	if err := words.SetRangeSafe(v.words, v.length, i, j, value); err != nil {
		return fail[Unit](err)
	}
	return succeed(Unit{})
}

// Clear clears every bit.
func (v *BitVector) Clear() { words.ClearAll(v.words) }

// Fill sets every bit.
func (v *BitVector) Fill() { words.SetAll(v.words) }

// Invert flips every bit in place.
func (v *BitVector) Invert() { words.Not(v.words, v.words) }

// Count returns the number of set bits.
func (v *BitVector) Count() int { return words.Count(v.words, v.length) }

// Clone returns an independent copy of v.
func (v *BitVector) Clone() *BitVector {
	c := &BitVector{
		length: v.length,
		words:  make([]uint64, len(v.words)),
	}
	copy(c.words, v.words)
	return c
}

// Equal reports whether v and other have the same length and the same bits.
// Padding past the length is not compared.
func (v *BitVector) Equal(other *BitVector) bool {
	if v.length != other.length {
		return false
	}
	full := v.length / WordBits
	for i := range full {
		if v.words[i] != other.words[i] {
			return false
		}
	}
	if rem := v.length % WordBits; rem != 0 {
		live := word.DownMask[uint64](rem - 1)
		return v.words[full]&live == other.words[full]&live
	}
	return true
}

// Format renders the first size bits, bit 0 first, as '1' and '0'.
// The output is min(size, Len()) characters long.
func (v *BitVector) Format(size int) string {
	return words.Format(v.words, min(size, v.length))
}

// String renders every bit of v.
func (v *BitVector) String() string { return v.Format(v.length) }

// All returns an iterator over (index, bit) pairs in index order.
//
// Each step reads the current state of v, so mutations made while ranging
// are observed by later steps. Ranging again starts over from bit 0.
func (v *BitVector) All() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for n := 0; n < v.length; n++ {
			if !yield(n, words.Get(v.words, n)) {
				return
			}
		}
	}
}

// Bits returns an iterator over the bits of v in index order.
func (v *BitVector) Bits() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for _, set := range v.All() {
			if !yield(set) {
				return
			}
		}
	}
}

// Not returns a new vector holding the complement of x.
func Not(x *BitVector) *BitVector {
	r := x.Clone()
	r.Invert()
	return r
}

// And returns a new vector holding x AND y.
func And(x, y *BitVector) (*BitVector, error) {
	return combine(x, y, words.And[uint64])
}

// Or returns a new vector holding x OR y.
func Or(x, y *BitVector) (*BitVector, error) {
	return combine(x, y, words.Or[uint64])
}

// Xor returns a new vector holding x XOR y.
func Xor(x, y *BitVector) (*BitVector, error) {
	return combine(x, y, words.Xor[uint64])
}

func combine(x, y *BitVector, op func(x, y, result []uint64)) (*BitVector, error) {
	if x.length != y.length {
		return nil, &LengthMismatchError{Left: x.length, Right: y.length}
	}
	r := &BitVector{
		length: x.length,
		words:  make([]uint64, len(x.words)),
	}
	op(x.words, y.words, r.words)
	return r, nil
}
