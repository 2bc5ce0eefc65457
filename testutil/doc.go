// Package testutil provides testing utilities for okm.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source, generators for time-series style key
// sequences, and invariant checks for sorted key slices.
//
// # Random Keys
//
//	rng := testutil.NewRNG(seed)
//	keys := rng.UniqueKeys(1000, 1<<20) // distinct, unsorted
//	rng.Shuffle(keys)
//
// # Trading Minutes
//
//	ts := testutil.TradingMinutes(start, 10_000) // unix seconds, ascending
//
// # Invariants
//
//	if i := testutil.FirstUnordered(keys); i >= 0 { ... }
package testutil
