// Package mmap provides memory-mapped file access for zero-copy map views.
//
// # Overview
//
// A snapshot written from a map's raw bytes can be mapped back into memory and
// wrapped as a view without copying or decoding. Large time series stay out of
// the Go heap and pages are faulted in on demand.
//
// # Usage
//
//	m, err := mmap.Open("series.okm", mmap.ReadOnly)
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes()
//	m.Advise(mmap.AccessRandom)
//
// # Modes
//
//   - ReadOnly maps pages read-only; any write faults.
//   - Private maps pages copy-on-write; writes stay in this process and never
//     reach the file.
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with madvise(2) for access hints
//   - Windows: CreateFileMapping/MapViewOfFile (advise is a no-op)
//
// # Thread Safety
//
// Close is idempotent and protected by an atomic flag. Callers must ensure no
// goroutine touches Bytes() after Close returns.
package mmap
