package parse

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundedInt_Int64(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
		ok    bool
	}{
		{"plain integer", "134512", 134512, true},
		{"decimal zero", "1234.0", 1234, true},
		{"rounds up at half", "2.5", 3, true},
		{"rounds down", "2.4", 2, true},
		{"negative half away from zero", "-2.5", -3, true},
		{"surrounding whitespace", "  42 ", 42, true},
		{"exponent", "1e3", 1000, true},
		{"letters", "abc", 0, false},
		{"empty", "", 0, false},
		{"nan", "NaN", 0, false},
		{"infinity", "Inf", 0, false},
		{"too large", "1e19", 0, false},
		{"one past max", "9223372036854775808", 0, false},
		{"min", "-9223372036854775808", math.MinInt64, true},
		{"one below min", "-9223372036854777856", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RoundedInt[int64](tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoundedInt_NarrowWidth(t *testing.T) {
	v, ok := RoundedInt[int8]("127.4")
	assert.True(t, ok)
	assert.Equal(t, int8(127), v)

	_, ok = RoundedInt[int8]("128")
	assert.False(t, ok, "128 does not fit in int8")

	v, ok = RoundedInt[int8]("-128")
	assert.True(t, ok)
	assert.Equal(t, int8(-128), v)

	_, ok = RoundedInt[int8]("-129")
	assert.False(t, ok)

	_, ok = RoundedInt[int32](strconv.FormatInt(math.MaxInt32+1, 10))
	assert.False(t, ok)
}
