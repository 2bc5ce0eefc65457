package conv

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is returned when a value does not fit the target type.
var ErrOutOfRange = errors.New("integer overflow")

// Integer is the set of Go integer kinds.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// ToUint32 converts v to uint32 safely.
func ToUint32[T Integer](v T) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint32 (negative)", ErrOutOfRange, v)
	}
	// Widening to uint64 is exact for every non-negative integer kind.
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint32 (too large)", ErrOutOfRange, v)
	}
	return uint32(v), nil
}

// FromUint32 converts v to T safely.
func FromUint32[T Integer](v uint32) (T, error) {
	t := T(v)
	if t < 0 || uint64(t) != uint64(v) {
		return 0, fmt.Errorf("%w: %d cannot be converted to %T", ErrOutOfRange, v, t)
	}
	return t, nil
}
