package bitvec

import "errors"

// Unit is the value type of accesses that produce nothing but success.
type Unit struct{}

// AccessResult is the outcome of a bounds-checked access: either a value or
// an out-of-range error, never both.
//
// Inspect it with Ok, Value or Get. Must is the forced unwrap and panics on
// failure; use it only where a failure is a programming error.
type AccessResult[T any] struct {
	value T
	err   error
	ok    bool
}

func succeed[T any](v T) AccessResult[T] {
	return AccessResult[T]{value: v, ok: true}
}

func fail[T any](err error) AccessResult[T] {
	return AccessResult[T]{err: err}
}

// Ok reports whether the access succeeded.
func (r AccessResult[T]) Ok() bool { return r.ok }

// Err returns the failure, or nil on success.
func (r AccessResult[T]) Err() error { return r.err }

// Kind classifies the failure.
func (r AccessResult[T]) Kind() ErrorKind {
	if r.err == nil {
		return NoError
	}
	return IndexOutOfRange
}

// Value returns the value and whether it is present.
func (r AccessResult[T]) Value() (T, bool) { return r.value, r.ok }

// Get returns the value or the failure, Go style.
func (r AccessResult[T]) Get() (T, error) {
	if r.ok {
		return r.value, nil
	}
	if r.err == nil {
		var zero T
		return zero, ErrEmptyResult
	}
	return r.value, r.err
}

// Must returns the value and panics with the carried error if the access
// failed, or with ErrEmptyResult on a zero AccessResult.
func (r AccessResult[T]) Must() T {
	v, err := r.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// IsOutOfRange reports whether err is an out-of-range failure from any layer
// of the safe API.
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}
