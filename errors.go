package bitvec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/bitvec/word"
)

var (
	// ErrOutOfRange is carried by every failed AccessResult: an index or
	// range endpoint outside [0, Len()).
	ErrOutOfRange = word.ErrOutOfRange

	// ErrNegativeLength is returned when constructing a vector with a
	// negative length.
	ErrNegativeLength = errors.New("negative length")

	// ErrLengthMismatch is returned when combining vectors of different
	// lengths.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrEmptyResult is the panic value of Must on a zero AccessResult,
	// which holds neither a value nor an error.
	ErrEmptyResult = errors.New("access result holds neither value nor error")
)

// ErrorKind classifies a failed access.
type ErrorKind uint8

const (
	// NoError is the kind of a successful (or zero) AccessResult.
	NoError ErrorKind = iota
	// IndexOutOfRange is the kind of every failed access.
	IndexOutOfRange
)

func (k ErrorKind) String() string {
	switch k {
	case NoError:
		return "none"
	case IndexOutOfRange:
		return "index out of range"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// LengthMismatchError indicates that the operands of a binary combinator
// differ in length.
//
// It unwraps to ErrLengthMismatch.
type LengthMismatchError struct {
	Left  int
	Right int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: %d vs %d bits", e.Left, e.Right)
}

func (e *LengthMismatchError) Unwrap() error { return ErrLengthMismatch }
