// ABOUTME: Utility functions for parsing integers from loosely formatted strings
// ABOUTME: Accepts decimal notation like "1234.0" and rounds to the target integer width

package parse

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Integer is the set of signed integer types RoundedInt can produce.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// RoundedInt parses s as a floating point number and rounds it to the nearest
// integer of type T. Halves round away from zero. It reports false when s is not
// a finite number or the rounded value does not fit in T.
func RoundedInt[T Integer](s string) (T, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	// T spans [-2^(n-1), 2^(n-1)); both bounds are exact in a float64.
	limit := math.Ldexp(1, reflect.TypeOf((*T)(nil)).Elem().Bits()-1)
	f = math.Round(f)
	if f < -limit || f >= limit {
		return 0, false
	}
	return T(f), true
}
