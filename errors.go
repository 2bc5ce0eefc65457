package okm

import (
	"errors"
	"fmt"
)

var (
	// ErrNotPlainData is returned when raw-byte access is requested for an
	// entry type that holds pointers (strings, slices, maps, interfaces, ...).
	ErrNotPlainData = errors.New("okm: entry type is not plain data")
	// ErrInvalidLength is returned when a byte region is not a whole number
	// of entries.
	ErrInvalidLength = errors.New("okm: byte length is not a multiple of the entry size")
	// ErrMisaligned is returned when a byte region does not start at an
	// address suitably aligned for the entry type.
	ErrMisaligned = errors.New("okm: byte region is misaligned for the entry type")
)

// ErrOrderViolation indicates that entries are not strictly ascending by key,
// or that the cached boundary keys disagree with the entries.
type ErrOrderViolation struct {
	// Pos is the index of the offending entry.
	Pos  int
	Prev any
	Next any
}

func (e *ErrOrderViolation) Error() string {
	return fmt.Sprintf("okm: order violation at %d: %v then %v", e.Pos, e.Prev, e.Next)
}
