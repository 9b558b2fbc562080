// Package testutil provides testing utilities for bitvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random source for generating words,
// word arrays, flag patterns and bit ranges, so that property-style tests
// stay reproducible.
//
// # Random Data Generation
//
//	rng := testutil.NewRNG(seed)
//	w := rng.Uint64()                // one random word
//	ws := rng.Words(3)               // three random words
//	flags := rng.Bools(192, 0.25)    // ~25% true
//	i, j := rng.Range(192)           // two endpoints in [0, 192)
package testutil
