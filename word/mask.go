package word

import "unsafe"

// Word is the set of unsigned integer types usable as bit storage.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// MaxWidth is the width of the widest supported word.
const MaxWidth = 64

var (
	up   = upMasks()
	down = downMasks()
)

func upMasks() [MaxWidth]uint64 {
	var m [MaxWidth]uint64
	for n := range m {
		m[n] = ^uint64(0) << n
	}
	return m
}

func downMasks() [MaxWidth]uint64 {
	var m [MaxWidth]uint64
	for n := range m {
		m[n] = ^uint64(0) >> (MaxWidth - 1 - n)
	}
	return m
}

// Width returns the number of bits in T.
func Width[T Word]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// UpMask returns a T with bits [n, W) set and bits [0, n) clear.
// n must be in [0, W).
func UpMask[T Word](n int) T {
	return T(up[n])
}

// DownMask returns a T with bits [0, n] set and bits (n, W) clear.
// n must be in [0, W).
//
// The 64-bit table truncates correctly for narrower words because bit W-1 is
// the highest bit a T can hold.
func DownMask[T Word](n int) T {
	return T(down[n])
}

// RangeMask returns a T with exactly the bits of the inclusive range [i, j]
// set. Both endpoints must be in [0, W) and i <= j.
func RangeMask[T Word](i, j int) T {
	return UpMask[T](i) & DownMask[T](j)
}

// Ones returns the all-ones T.
func Ones[T Word]() T {
	return ^T(0)
}
