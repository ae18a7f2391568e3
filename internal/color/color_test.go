package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		input string
		want  Conversion
	}{
		{"#ff0000", Conversion{"#ff0000", "rgb(255, 0, 0)", "hsl(0, 100%, 50%)", "hsv(0, 100%, 100%)"}},
		{"F00", Conversion{"#ff0000", "rgb(255, 0, 0)", "hsl(0, 100%, 50%)", "hsv(0, 100%, 100%)"}},
		{"rgb(0, 128, 255)", Conversion{"#0080ff", "rgb(0, 128, 255)", "hsl(210, 100%, 50%)", "hsv(210, 100%, 100%)"}},
		{" HSL(120, 100%, 25%) ", Conversion{"#008000", "rgb(0, 128, 0)", "hsl(120, 100%, 25%)", "hsv(120, 100%, 50%)"}},
		{"#ffffff", Conversion{"#ffffff", "rgb(255, 255, 255)", "hsl(0, 0%, 100%)", "hsv(0, 0%, 100%)"}},
		{"#000", Conversion{"#000000", "rgb(0, 0, 0)", "hsl(0, 0%, 0%)", "hsv(0, 0%, 0%)"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Convert(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvert_RoundTripThroughNotations(t *testing.T) {
	for _, hex := range []string{"#336699", "#abcdef", "#010203", "#fedcba"} {
		c, err := Convert(hex)
		require.NoError(t, err)

		fromRGB, err := Convert(c.RGB)
		require.NoError(t, err)
		assert.Equal(t, hex, fromRGB.Hex)
	}
}

func TestConvert_Invalid(t *testing.T) {
	for _, in := range []string{"", "red", "#12345", "#gggggg", "rgb(256, 0, 0)", "rgb(1, 2)", "hsl(400, 10%, 10%)", "hsl(10, 101%, 10%)"} {
		_, err := Convert(in)
		assert.ErrorIs(t, err, ErrInvalidColor, in)
	}
}
