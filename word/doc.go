// Package word implements bit and bit-range operations on a single unsigned
// machine word.
//
// Every operation is a pure function of its inputs: words are values, so a
// "set" returns the updated word instead of mutating storage. Range queries
// use two precomputed mask tables instead of looping over bits:
//
//	UpMask(n)   bits [n, W) set
//	DownMask(n) bits [0, n] set
//
// so the inclusive range [i, j] is UpMask(i) & DownMask(j).
//
// Functions come in two flavours. The plain forms (Get, Set, GetRange, ...)
// trust the caller to pass offsets in [0, W). The *Safe forms validate first
// and report an *IndexError (which wraps ErrOutOfRange) instead of producing
// a wrapped-around or meaningless result.
package word
