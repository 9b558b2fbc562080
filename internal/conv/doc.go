// Package conv provides safe integer type conversion utilities.
//
// Bit positions are plain ints throughout bitvec, while roaring bitmaps
// address uint32 positions and bits-and-blooms bitsets use uint. These
// helpers check the conversion at the interop boundary and report
// ErrOverflow instead of silently truncating.
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
