package words

import (
	"fmt"

	"github.com/hupe1980/bitvec/word"
)

// ShapeError reports an operand whose shape cannot be addressed: an empty
// slice, a size beyond capacity or operands of different lengths.
//
// It unwraps to word.ErrOutOfRange.
type ShapeError struct {
	Reason string
}

func (e *ShapeError) Error() string { return e.Reason }

func (e *ShapeError) Unwrap() error { return word.ErrOutOfRange }

var (
	// ErrArrayEmpty is returned when the primary operand has no words.
	ErrArrayEmpty = &ShapeError{Reason: "array is empty"}

	// ErrMaskEmpty is returned when a mask operand has no words.
	ErrMaskEmpty = &ShapeError{Reason: "mask is empty"}

	// ErrOperandEmpty is returned when the second operand of a binary
	// combinator has no words.
	ErrOperandEmpty = &ShapeError{Reason: "operand is empty"}

	// ErrResultEmpty is returned when the result buffer has no words.
	ErrResultEmpty = &ShapeError{Reason: "result is empty"}

	// ErrSizeMismatch is returned when operands differ in length.
	ErrSizeMismatch = &ShapeError{Reason: "operands do not match in size"}

	// ErrInvalidSize is returned when a logical size is not in (0, W*len].
	ErrInvalidSize = &ShapeError{Reason: "invalid size"}
)

func checkSize[T word.Word](a []T, size int) error {
	if len(a) == 0 {
		return ErrArrayEmpty
	}
	if capacity := word.Width[T]() * len(a); size <= 0 || size > capacity {
		return fmt.Errorf("%w: %d bits with capacity %d", ErrInvalidSize, size, capacity)
	}
	return nil
}

func checkIndex[T word.Word](a []T, size, n int) error {
	if err := checkSize(a, size); err != nil {
		return err
	}
	if n < 0 || n >= size {
		return &word.IndexError{Index: n, Limit: size}
	}
	return nil
}

func checkRange[T word.Word](a []T, size, i, j int) error {
	if err := checkIndex(a, size, i); err != nil {
		return err
	}
	return checkIndex(a, size, j)
}

func checkMask[T word.Word](a, masks []T) error {
	switch {
	case len(a) == 0:
		return ErrArrayEmpty
	case len(masks) == 0:
		return ErrMaskEmpty
	case len(a) != len(masks):
		return fmt.Errorf("%w: array has %d words, mask has %d", ErrSizeMismatch, len(a), len(masks))
	}
	return nil
}

func checkUnary[T word.Word](x, result []T) error {
	switch {
	case len(x) == 0:
		return ErrArrayEmpty
	case len(result) == 0:
		return ErrResultEmpty
	case len(x) != len(result):
		return fmt.Errorf("%w: operand has %d words, result has %d", ErrSizeMismatch, len(x), len(result))
	}
	return nil
}

func checkBinary[T word.Word](x, y, result []T) error {
	switch {
	case len(x) == 0:
		return ErrArrayEmpty
	case len(y) == 0:
		return ErrOperandEmpty
	case len(result) == 0:
		return ErrResultEmpty
	case len(x) != len(y) || len(y) != len(result):
		return fmt.Errorf("%w: operands have %d and %d words, result has %d",
			ErrSizeMismatch, len(x), len(y), len(result))
	}
	return nil
}
