// Package buffer provides the contiguous, growable storage behind okm maps.
//
// A Buffer is a slice with an explicit split between length (live items) and
// capacity (allocated items) plus an ownership tag:
//
//   - Owned buffers are allocated by this package and grow geometrically.
//   - Borrowed buffers wrap caller memory. They are never grown or released;
//     the caller keeps that memory alive and unmodified.
//
// # Invalidation
//
// Every method that may reallocate (Reserve, Append, InsertAt) reports whether
// it did. A reallocation invalidates every slice previously obtained from Items.
// Shifting without reallocation keeps the backing array but moves items, so
// positions past the shift point refer to different items afterwards.
package buffer
