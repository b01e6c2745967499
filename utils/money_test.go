package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"float", 9.99, "9.99"},
		{"int-like float", float64(5), "5"},
		{"plain string", "12.50", "12.5"},
		{"decimal comma", "9,99", "9.99"},
		{"currency symbol", "€249.00", "249"},
		{"thousands dot with decimal comma", "1.299,99", "1299.99"},
		{"thousands comma with decimal dot", "1,299.99", "1299.99"},
		{"zero", "0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrice(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestParsePriceRejects(t *testing.T) {
	for _, input := range []any{"abc", "", -1.5, "-10", true, nil} {
		_, err := ParsePrice(input)
		assert.ErrorIs(t, err, ErrInvalidPrice, "input %v", input)
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		input any
		want  int
	}{
		{float64(2), 2},
		{"3", 3},
		{1, 1},
		{"10", 10},
	}
	for _, tt := range tests {
		got, err := ParseQuantity(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseQuantityRejects(t *testing.T) {
	for _, input := range []any{float64(0), float64(-2), "0", "abc", "", nil, "0.2"} {
		_, err := ParseQuantity(input)
		assert.ErrorIs(t, err, ErrInvalidQuantity, "input %v", input)
	}
}

func TestRound2HalfUp(t *testing.T) {
	assert.Equal(t, "0.01", Round2(decimal.RequireFromString("0.005")).String())
	assert.Equal(t, "24.98", Round2(decimal.RequireFromString("24.98")).String())
	assert.Equal(t, "1.24", Round2(decimal.RequireFromString("1.235")).String())
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "26.98", FormatMoney(26.98))
	assert.Equal(t, "5.00", FormatMoney(5))
}
