package bitvec

import (
	"fmt"
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/bitvec/internal/conv"
	"github.com/hupe1980/bitvec/word"
	"github.com/hupe1980/bitvec/words"
)

// forEachSet calls fn with the position of every set bit below Len(), in
// ascending order. Padding is skipped.
func (v *BitVector) forEachSet(fn func(n int)) {
	for i, w := range v.words {
		if rem := v.length - i*WordBits; rem < WordBits {
			w &= word.DownMask[uint64](rem - 1)
		}
		for w != 0 {
			fn(i*WordBits + bits.TrailingZeros64(w))
			w &= w - 1 // clear lowest set bit
		}
	}
}

// ToRoaring returns a roaring bitmap holding the positions of the set bits
// of v. Vectors longer than the 32-bit roaring domain are rejected with
// conv.ErrOverflow.
func (v *BitVector) ToRoaring() (*roaring.Bitmap, error) {
	if v.length > 0 {
		if _, err := conv.IntToUint32(v.length - 1); err != nil {
			return nil, err
		}
	}
	rb := roaring.New()
	v.forEachSet(func(n int) {
		rb.Add(uint32(n))
	})
	return rb, nil
}

// FromRoaring creates a vector of length bits with the positions held by rb
// set. A position at or beyond length is reported as an out-of-range error.
func FromRoaring(length int, rb *roaring.Bitmap) (*BitVector, error) {
	v, err := New(length, false)
	if err != nil {
		return nil, err
	}
	if rb.IsEmpty() {
		return v, nil
	}
	maxPos, err := conv.Uint32ToInt(rb.Maximum())
	if err != nil {
		return nil, err
	}
	if maxPos >= length {
		return nil, fmt.Errorf("roaring bitmap: %w", &word.IndexError{Index: maxPos, Limit: length})
	}
	it := rb.Iterator()
	for it.HasNext() {
		words.Set(v.words, int(it.Next()), true)
	}
	return v, nil
}

// ToBitSet returns a bitset of length Len() with the same bits as v.
func (v *BitVector) ToBitSet() *bitset.BitSet {
	b := bitset.New(uint(v.length))
	v.forEachSet(func(n int) {
		b.Set(uint(n))
	})
	return b
}

// FromBitSet creates a vector with the length and bits of b.
func FromBitSet(b *bitset.BitSet) (*BitVector, error) {
	length, err := conv.UintToInt(b.Len())
	if err != nil {
		return nil, err
	}
	v, err := New(length, false)
	if err != nil {
		return nil, err
	}
	for i, ok := b.NextSet(0); ok && i < b.Len(); i, ok = b.NextSet(i + 1) {
		words.Set(v.words, int(i), true)
	}
	return v, nil
}
