// Package fs provides the small filesystem surface okm writes snapshots
// through, so that tests can inject I/O faults.
//
//   - [LocalFS]: production implementation using the os package
//   - [FaultyFS]: wrapper that fails writes, syncs, closes or renames on demand
//
// [WriteAtomic] writes a file by way of a temporary sibling and a rename, so
// readers never observe a partially written snapshot.
package fs
