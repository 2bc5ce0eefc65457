package okm

import "sync/atomic"

// Op names a container operation in diagnostics.
type Op string

const (
	OpFind         Op = "find"
	OpGet          Op = "get"
	OpValueNearPos Op = "value_near_pos"
	OpFirst        Op = "first"
	OpLast         Op = "last"
	OpInsert       Op = "insert"
	OpRef          Op = "ref"
	OpSet          Op = "set"
	OpRemove       Op = "remove"
	OpReserve      Op = "reserve"
	OpAssign       Op = "assign"
	OpPrepend      Op = "insert_at_beginning"
	OpAppend       Op = "insert_after_end"
)

// MetricsCollector defines an interface for collecting container events.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// The container calls the collector synchronously from the mutating goroutine.
// A collector shared by several containers must be safe for concurrent use.
type MetricsCollector interface {
	// RecordGrow is called after the buffer was reallocated.
	RecordGrow(op Op, fromCap, toCap int)

	// RecordShift is called when an insert or remove moved the tail of the
	// buffer. count is the number of entries before the operation.
	RecordShift(op Op, pos, count int)

	// RecordMiss is called when a lookup found no entry.
	RecordMiss(op Op)

	// RecordMerge is called after InsertAtBeginning or InsertAfterEnd.
	RecordMerge(op Op, added int, ok bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrow(Op, int, int)   {}
func (NoopMetricsCollector) RecordShift(Op, int, int)  {}
func (NoopMetricsCollector) RecordMiss(Op)             {}
func (NoopMetricsCollector) RecordMerge(Op, int, bool) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GrowCount     atomic.Int64
	GrownEntries  atomic.Int64
	ShiftCount    atomic.Int64
	ShiftedItems  atomic.Int64
	MissCount     atomic.Int64
	MergeCount    atomic.Int64
	MergeRejected atomic.Int64
	MergedEntries atomic.Int64
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(_ Op, fromCap, toCap int) {
	b.GrowCount.Add(1)
	b.GrownEntries.Add(int64(toCap - fromCap))
}

// RecordShift implements MetricsCollector.
func (b *BasicMetricsCollector) RecordShift(_ Op, pos, count int) {
	b.ShiftCount.Add(1)
	b.ShiftedItems.Add(int64(count - pos))
}

// RecordMiss implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMiss(Op) {
	b.MissCount.Add(1)
}

// RecordMerge implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMerge(_ Op, added int, ok bool) {
	if !ok {
		b.MergeRejected.Add(1)
		return
	}
	b.MergeCount.Add(1)
	b.MergedEntries.Add(int64(added))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GrowCount:     b.GrowCount.Load(),
		GrownEntries:  b.GrownEntries.Load(),
		ShiftCount:    b.ShiftCount.Load(),
		ShiftedItems:  b.ShiftedItems.Load(),
		MissCount:     b.MissCount.Load(),
		MergeCount:    b.MergeCount.Load(),
		MergeRejected: b.MergeRejected.Load(),
		MergedEntries: b.MergedEntries.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GrowCount     int64
	GrownEntries  int64
	ShiftCount    int64
	ShiftedItems  int64
	MissCount     int64
	MergeCount    int64
	MergeRejected int64
	MergedEntries int64
}
