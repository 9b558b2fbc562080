// Package words extends the single-word primitives of package word across a
// slice of words, including ranges that cross word boundaries and elementwise
// logical combination.
//
// Global bit i of a []T lives in word i/W at offset i%W, where W is the width
// of T. Bits past the logical size in the last word are padding and carry no
// guaranteed value.
//
// As in package word, every operation has a caller-trusted form and a *Safe
// form. The safe forms take the logical size explicitly, validate indexes and
// operand shapes, and never mutate on failure. All of their errors wrap
// word.ErrOutOfRange; the shape errors (ErrArrayEmpty, ErrMaskEmpty,
// ErrSizeMismatch, ...) additionally identify which kind of misuse occurred.
//
// The caller-trusted combinators (Not, And, Or, Xor) operate over the
// shortest operand and leave any remaining words of the result untouched.
// Each result word depends only on the operand words at the same position, so
// an operand may also be passed as the result.
package words
