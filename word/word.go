package word

import "math/bits"

// GetMask reports whether every bit set in mask is also set in w.
// An empty mask is trivially contained.
func GetMask[T Word](w, mask T) bool {
	return w&mask == mask
}

// SetMask returns w with the bits of mask set (value true) or cleared
// (value false).
func SetMask[T Word](w, mask T, value bool) T {
	if value {
		return w | mask
	}
	return w &^ mask
}

// Get reports whether bit n of w is set. n must be in [0, W).
func Get[T Word](w T, n int) bool {
	return GetMask(w, T(1)<<n)
}

// Set returns w with bit n set to value. n must be in [0, W).
func Set[T Word](w T, n int, value bool) T {
	return SetMask(w, T(1)<<n, value)
}

// GetSafe is Get with n validated against [0, W).
func GetSafe[T Word](w T, n int) (bool, error) {
	if err := checkIndex[T](n); err != nil {
		return false, err
	}
	return Get(w, n), nil
}

// SetSafe is Set with n validated against [0, W). On failure the zero word
// is returned and w is left as it was.
func SetSafe[T Word](w T, n int, value bool) (T, error) {
	if err := checkIndex[T](n); err != nil {
		return 0, err
	}
	return Set(w, n, value), nil
}

// GetRange reports whether all bits in the inclusive range between i and j
// are set. The endpoints may be given in either order and must both be in
// [0, W).
func GetRange[T Word](w T, i, j int) bool {
	if j < i {
		i, j = j, i
	}
	return GetMask(w, RangeMask[T](i, j))
}

// SetRange returns w with every bit in the inclusive range between i and j
// set to value.
func SetRange[T Word](w T, i, j int, value bool) T {
	if j < i {
		i, j = j, i
	}
	return SetMask(w, RangeMask[T](i, j), value)
}

// GetRangeSafe is GetRange with both endpoints validated against [0, W).
func GetRangeSafe[T Word](w T, i, j int) (bool, error) {
	if err := checkRange[T](i, j); err != nil {
		return false, err
	}
	return GetRange(w, i, j), nil
}

// SetRangeSafe is SetRange with both endpoints validated against [0, W).
func SetRangeSafe[T Word](w T, i, j int, value bool) (T, error) {
	if err := checkRange[T](i, j); err != nil {
		return 0, err
	}
	return SetRange(w, i, j, value), nil
}

// Count returns the number of set bits in w.
func Count[T Word](w T) int {
	return bits.OnesCount64(uint64(w))
}

// Format renders the first min(size, W) bits of w, bit 0 first, as '1' for
// set and '0' for clear. A non-positive size yields "".
func Format[T Word](w T, size int) string {
	return string(AppendFormat(nil, w, size))
}

// AppendFormat appends the Format rendering of w to dst.
func AppendFormat[T Word](dst []byte, w T, size int) []byte {
	size = min(size, Width[T]())
	for n := 0; n < size; n++ {
		if Get(w, n) {
			dst = append(dst, '1')
		} else {
			dst = append(dst, '0')
		}
	}
	return dst
}

func checkIndex[T Word](n int) error {
	if limit := Width[T](); n < 0 || n >= limit {
		return &IndexError{Index: n, Limit: limit}
	}
	return nil
}

func checkRange[T Word](i, j int) error {
	if err := checkIndex[T](i); err != nil {
		return err
	}
	return checkIndex[T](j)
}
