// Package bitvec provides fixed-length packed bit vectors with an
// exception-free access API.
//
// A BitVector stores its bits in 64-bit words. Every index-taking method
// returns an AccessResult instead of panicking, so hot paths that probe many
// small flags never pay for recover or for pointer-to-bool indirection.
//
// # Quick Start
//
//	v, _ := bitvec.New(192, false)
//	v.SetRange(10, 130, true)
//
//	if set, ok := v.GetRange(10, 130).Value(); ok && set {
//	    // every bit in [10, 130] is set
//	}
//
//	if r := v.Get(500); !r.Ok() {
//	    fmt.Println(r.Err()) // index out of range: 500 not in [0, 192)
//	}
//
// # Ranges
//
// Ranges are inclusive and order-independent: GetRange(130, 10) is the same
// query as GetRange(10, 130). A range query answers "fully set": it is true
// only if every bit of the range is set.
//
// # Combining Vectors
//
// Not, And, Or and Xor return new vectors and leave their operands untouched.
// The binary forms require equal lengths and return ErrLengthMismatch
// otherwise:
//
//	both, err := bitvec.And(x, y)
//
// # Errors
//
// There are two failure classes:
//
//   - Out of range (recoverable): carried by AccessResult, matches
//     ErrOutOfRange. The vector is never modified by a failed access.
//   - Precondition violations: a negative length (ErrNegativeLength) or
//     operands of different lengths (ErrLengthMismatch), returned as errors
//     from constructors and combinators.
//
// # Layers
//
// The vector is a thin owner over two pure layers that can be used directly:
//
//   - package word: single-word bit and range operations on any unsigned type
//   - package words: the same operations across a []T, plus bulk fill and
//     elementwise logic
//
// # Concurrency
//
// A BitVector has no internal locking. Confine each vector to one goroutine
// or guard it with a mutex, as package presence does.
package bitvec
