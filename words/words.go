package words

import (
	"math/bits"

	"github.com/hupe1980/bitvec/word"
)

func locate[T word.Word](n int) (idx, off int) {
	w := word.Width[T]()
	return n / w, n % w
}

// Get reports whether bit n of a is set. n must address a bit of a.
func Get[T word.Word](a []T, n int) bool {
	idx, off := locate[T](n)
	return word.Get(a[idx], off)
}

// Set sets bit n of a to value. n must address a bit of a.
func Set[T word.Word](a []T, n int, value bool) {
	idx, off := locate[T](n)
	a[idx] = word.Set(a[idx], off, value)
}

// GetSafe is Get bounded by the logical size of a.
func GetSafe[T word.Word](a []T, size, n int) (bool, error) {
	if err := checkIndex(a, size, n); err != nil {
		return false, err
	}
	return Get(a, n), nil
}

// SetSafe is Set bounded by the logical size of a. On failure a is not
// modified.
func SetSafe[T word.Word](a []T, size, n int, value bool) error {
	if err := checkIndex(a, size, n); err != nil {
		return err
	}
	Set(a, n, value)
	return nil
}

// GetRange reports whether every bit in the inclusive range between i and j
// is set. The endpoints may be given in either order.
//
// A range spanning several words is checked as the tail of the first word,
// the fully covered interior words and the head of the last word, stopping at
// the first segment with a clear bit.
func GetRange[T word.Word](a []T, i, j int) bool {
	if j < i {
		i, j = j, i
	}
	first, lo := locate[T](i)
	last, hi := locate[T](j)
	if first == last {
		return word.GetRange(a[first], lo, hi)
	}
	if !word.GetMask(a[first], word.UpMask[T](lo)) {
		return false
	}
	ones := word.Ones[T]()
	for n := first + 1; n < last; n++ {
		if a[n] != ones {
			return false
		}
	}
	return word.GetMask(a[last], word.DownMask[T](hi))
}

// SetRange sets every bit in the inclusive range between i and j to value.
func SetRange[T word.Word](a []T, i, j int, value bool) {
	if j < i {
		i, j = j, i
	}
	first, lo := locate[T](i)
	last, hi := locate[T](j)
	if first == last {
		a[first] = word.SetRange(a[first], lo, hi, value)
		return
	}
	a[first] = word.SetMask(a[first], word.UpMask[T](lo), value)
	var fill T
	if value {
		fill = word.Ones[T]()
	}
	for n := first + 1; n < last; n++ {
		a[n] = fill
	}
	a[last] = word.SetMask(a[last], word.DownMask[T](hi), value)
}

// GetRangeSafe is GetRange with both endpoints bounded by the logical size.
func GetRangeSafe[T word.Word](a []T, size, i, j int) (bool, error) {
	if err := checkRange(a, size, i, j); err != nil {
		return false, err
	}
	return GetRange(a, i, j), nil
}

// SetRangeSafe is SetRange with both endpoints bounded by the logical size.
// On failure a is not modified.
func SetRangeSafe[T word.Word](a []T, size, i, j int, value bool) error {
	if err := checkRange(a, size, i, j); err != nil {
		return err
	}
	SetRange(a, i, j, value)
	return nil
}

// GetMask reports whether every word of a contains the bits of the mask word
// at the same position. Only the common prefix of a and masks is compared.
func GetMask[T word.Word](a, masks []T) bool {
	n := min(len(a), len(masks))
	for i := range n {
		if !word.GetMask(a[i], masks[i]) {
			return false
		}
	}
	return true
}

// GetMaskSafe is GetMask for operands that are non-empty and equal in length.
func GetMaskSafe[T word.Word](a, masks []T) (bool, error) {
	if err := checkMask(a, masks); err != nil {
		return false, err
	}
	return GetMask(a, masks), nil
}

// SetMask sets (value true) or clears (value false) the bits of each mask
// word in the word of a at the same position.
func SetMask[T word.Word](a, masks []T, value bool) {
	n := min(len(a), len(masks))
	for i := range n {
		a[i] = word.SetMask(a[i], masks[i], value)
	}
}

// SetMaskSafe is SetMask for operands that are non-empty and equal in length.
func SetMaskSafe[T word.Word](a, masks []T, value bool) error {
	if err := checkMask(a, masks); err != nil {
		return err
	}
	SetMask(a, masks, value)
	return nil
}

// ClearAll clears every bit of a, padding included.
func ClearAll[T word.Word](a []T) {
	clear(a)
}

// SetAll sets every bit of a, padding included.
func SetAll[T word.Word](a []T) {
	ones := word.Ones[T]()
	for i := range a {
		a[i] = ones
	}
}

// Not stores the complement of x in result.
func Not[T word.Word](x, result []T) {
	n := min(len(x), len(result))
	for i := range n {
		result[i] = ^x[i]
	}
}

// NotSafe is Not for operands that are non-empty and equal in length.
func NotSafe[T word.Word](x, result []T) error {
	if err := checkUnary(x, result); err != nil {
		return err
	}
	Not(x, result)
	return nil
}

// And stores x AND y in result.
func And[T word.Word](x, y, result []T) {
	n := min(len(x), len(y), len(result))
	for i := range n {
		result[i] = x[i] & y[i]
	}
}

// AndSafe is And for operands that are non-empty and equal in length.
func AndSafe[T word.Word](x, y, result []T) error {
	if err := checkBinary(x, y, result); err != nil {
		return err
	}
	And(x, y, result)
	return nil
}

// Or stores x OR y in result.
func Or[T word.Word](x, y, result []T) {
	n := min(len(x), len(y), len(result))
	for i := range n {
		result[i] = x[i] | y[i]
	}
}

// OrSafe is Or for operands that are non-empty and equal in length.
func OrSafe[T word.Word](x, y, result []T) error {
	if err := checkBinary(x, y, result); err != nil {
		return err
	}
	Or(x, y, result)
	return nil
}

// Xor stores x XOR y in result.
func Xor[T word.Word](x, y, result []T) {
	n := min(len(x), len(y), len(result))
	for i := range n {
		result[i] = x[i] ^ y[i]
	}
}

// XorSafe is Xor for operands that are non-empty and equal in length.
func XorSafe[T word.Word](x, y, result []T) error {
	if err := checkBinary(x, y, result); err != nil {
		return err
	}
	Xor(x, y, result)
	return nil
}

// Count returns the number of set bits among the first size bits of a.
// Padding past size is ignored; size is capped at the capacity of a.
func Count[T word.Word](a []T, size int) int {
	w := word.Width[T]()
	size = min(size, w*len(a))
	if size <= 0 {
		return 0
	}
	full, rem := size/w, size%w
	c := 0
	for _, x := range a[:full] {
		c += bits.OnesCount64(uint64(x))
	}
	if rem > 0 {
		c += word.Count(a[full] & word.DownMask[T](rem-1))
	}
	return c
}

// Format renders the first size bits of a, bit 0 first, as '1' for set and
// '0' for clear. The output is min(size, W*len(a)) characters long; a
// non-positive size or an empty array yields "".
func Format[T word.Word](a []T, size int) string {
	w := word.Width[T]()
	size = min(size, w*len(a))
	if size <= 0 {
		return ""
	}
	buf := make([]byte, 0, size)
	for _, x := range a {
		if size <= 0 {
			break
		}
		k := min(size, w)
		buf = word.AppendFormat(buf, x, k)
		size -= k
	}
	return string(buf)
}
