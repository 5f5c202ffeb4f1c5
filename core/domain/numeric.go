// ABOUTME: Tolerant numeric field type for upstream payloads that encode integers as strings
// ABOUTME: A malformed value decodes to an absent number instead of failing the whole record

package domain

import (
	"bytes"
	"encoding/json"
	"strconv"

	"countrystats-api/pkg/utils/parse"
)

// Numeric is an optional integer decoded from either a JSON number or a
// numeric-looking JSON string such as "1234" or "1234.0".
type Numeric[T parse.Integer] struct {
	V     T
	Valid bool
}

// NumericOf returns a present Numeric holding v.
func NumericOf[T parse.Integer](v T) Numeric[T] {
	return Numeric[T]{V: v, Valid: true}
}

// Get returns the value and whether it is present.
func (n Numeric[T]) Get() (T, bool) {
	return n.V, n.Valid
}

// Ptr returns a pointer to a copy of the value, or nil when absent.
func (n Numeric[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.V
	return &v
}

// UnmarshalJSON never returns an error: anything that is not a finite number
// representable in T leaves the field absent.
func (n *Numeric[T]) UnmarshalJSON(data []byte) error {
	*n = Numeric[T]{}

	text := string(bytes.TrimSpace(data))
	if len(text) > 0 && text[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		text = s
	}

	if v, ok := parse.RoundedInt[T](text); ok {
		n.V, n.Valid = v, true
	}
	return nil
}

// MarshalJSON emits the number, or null when absent.
func (n Numeric[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(int64(n.V), 10)), nil
}
