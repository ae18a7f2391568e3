package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertBase(t *testing.T) {
	tests := []struct {
		name          string
		value         string
		from, to      int
		wantResult    string
		wantFormatted string
	}{
		{"decimal to binary", "10", 10, 2, "1010", "1010"},
		{"binary padding", "255", 10, 2, "11111111", "1111 1111"},
		{"binary odd width", "5", 10, 2, "101", "0101"},
		{"wide binary", "1000", 10, 2, "1111101000", "0011 1110 1000"},
		{"decimal to hex", "255", 10, 16, "FF", "FF"},
		{"hex padding", "4095", 10, 16, "FFF", "0F FF"},
		{"hex to decimal", "ff", 16, 10, "255", "255"},
		{"base 36", "zz", 36, 10, "1295", "1295"},
		{"octal", "64", 10, 8, "100", "100"},
		{"grouped input", "1111 1111", 2, 10, "255", "255"},
		{"negative", "-10", 10, 2, "-1010", "-1010"},
		{"beyond int64", "18446744073709551616", 10, 16, "10000000000000000", "01 00 00 00 00 00 00 00 00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertBase(tt.value, tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.wantResult, got.Result)
			assert.Equal(t, tt.wantFormatted, got.Formatted)
		})
	}
}

func TestConvertBase_SameBaseRoundTrip(t *testing.T) {
	for base := MinBase; base <= MaxBase; base++ {
		got, err := ConvertBase("1", base, base)
		require.NoError(t, err)
		assert.Equal(t, "1", got.Result)
	}

	got, err := ConvertBase("deadbeef", 16, 16)
	require.NoError(t, err)
	assert.Equal(t, "DEADBEEF", got.Result)
}

func TestConvertBase_Errors(t *testing.T) {
	_, err := ConvertBase("12", 2, 10)
	assert.ErrorIs(t, err, ErrInvalidNumberLiteral)

	_, err = ConvertBase("", 10, 2)
	assert.ErrorIs(t, err, ErrInvalidNumberLiteral)

	_, err = ConvertBase("xyz!", 36, 10)
	assert.ErrorIs(t, err, ErrInvalidNumberLiteral)

	_, err = ConvertBase("10", 1, 10)
	assert.ErrorIs(t, err, ErrUnsupportedOption)

	_, err = ConvertBase("10", 10, 37)
	assert.ErrorIs(t, err, ErrUnsupportedOption)
}
