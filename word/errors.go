package word

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is the single failure kind of the safe API: an index, range
// endpoint, size or operand shape outside what the storage can address.
var ErrOutOfRange = errors.New("index out of range")

// IndexError reports an index outside [0, Limit).
//
// It unwraps to ErrOutOfRange.
type IndexError struct {
	Index int
	Limit int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index out of range: %d not in [0, %d)", e.Index, e.Limit)
}

func (e *IndexError) Unwrap() error { return ErrOutOfRange }
