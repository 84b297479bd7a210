package strformat

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type celsius float32

type level uint8

func (l level) String() string { return "level" }

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "5", FormatNumber(5, ""))
	assert.Equal(t, "-5", FormatNumber(int8(-5), ""))
	assert.Equal(t, "18446744073709551615", FormatNumber(uint64(math.MaxUint64), ""))
	assert.Equal(t, "ffffffffffffffff", FormatNumber(uint64(math.MaxUint64), "x"))
	assert.Equal(t, "9223372036854775807", FormatNumber(int64(math.MaxInt64), "d"))
	assert.Equal(t, "0.1", FormatNumber(float32(0.1), ""))
	assert.Equal(t, "21.5", FormatNumber(celsius(21.5), ""))
	assert.Equal(t, "+21.50", FormatNumber(celsius(21.5), "+.2f"))
	assert.Equal(t, "3", FormatNumber(3.7, "d"))
	assert.Equal(t, "-4", FormatNumber(-3.2, "d"))
	assert.Equal(t, "1e-7", FormatNumber(0.0000001, ""))
	assert.Equal(t, "0.000001", FormatNumber(0.000001, ""))
	assert.Equal(t, "1e+21", FormatNumber(1e21, ""))
	assert.Equal(t, "100000000000000000000", FormatNumber(1e20, ""))
	assert.Equal(t, "0", FormatNumber(math.Copysign(0, -1), ""))
	assert.Equal(t, "NaN", FormatNumber(math.NaN(), "x"))
	assert.Equal(t, "INFINITY", FormatNumber(math.Inf(1), "F"))
	assert.Equal(t, "-Infinity", FormatNumber(math.Inf(-1), "d"))
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name      string
		value     any
		specifier string
		expected  string
	}{
		{name: "nil", value: nil, specifier: "d", expected: ""},
		{name: "string ignores specifier", value: "abc", specifier: "08.2f", expected: "abc"},
		{name: "bool", value: false, expected: "false"},
		{name: "error", value: errors.New("boom"), expected: "boom"},
		{name: "named numeric beats stringer", value: level(3), specifier: "02", expected: "03"},
		{name: "formattable", value: money(250), specifier: "", expected: "$2.50"},
		{name: "pointer to number", value: func() *int { v := 9; return &v }(), specifier: "03", expected: "009"},
		{name: "nil pointer", value: (*int)(nil), expected: ""},
		{name: "slice", value: []int{1, 2}, expected: "[1 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatValue(tt.value, tt.specifier))
		})
	}
}
