package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  int64
		expectErr error
	}{
		{name: "whole", input: "12", expected: 1200},
		{name: "two places", input: "12.50", expected: 1250},
		{name: "one cent", input: "0.01", expected: 1},
		{name: "negative", input: "-3.10", expected: -310},
		{name: "max int64 cents", input: "92233720368547758.07", expected: 9223372036854775807},
		{name: "sub cent", input: "0.001", expectErr: ErrTooPrecise},
		{name: "wraps to one", input: "184467440737095517.16", expectErr: ErrOutOfRange},
		{name: "just above max", input: "92233720368547758.08", expectErr: ErrOutOfRange},
		{name: "far below min", input: "-184467440737095517.16", expectErr: ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cents, err := Parse(tt.input)
			if tt.expectErr != nil {
				require.ErrorIs(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cents)
		})
	}
}

func TestParseGarbage(t *testing.T) {
	_, err := Parse("ten")
	require.Error(t, err)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "12.00", Format(1200))
	assert.Equal(t, "0.01", Format(1))
	assert.Equal(t, "2.05", Format(205))
}

func TestFromCents(t *testing.T) {
	assert.True(t, decimal.RequireFromString("10.5").Equal(FromCents(1050)))
}
