package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolvia/toolvia-go/internal/codec"
	"github.com/toolvia/toolvia-go/internal/model"
)

func TestEncoding_RoundTrip(t *testing.T) {
	svc := NewEncodingService()
	input := "héllo <wörld> & \"friends\" 100%"

	for _, name := range []string{"base64", "hex", "url", "HTML"} {
		t.Run(name, func(t *testing.T) {
			enc, err := svc.Encode(name, model.EncodeDecodeRequest{Input: input})
			require.NoError(t, err)
			require.True(t, enc.Success)

			dec, err := svc.Decode(name, model.EncodeDecodeRequest{Input: enc.Output})
			require.NoError(t, err)
			require.True(t, dec.Success, dec.Error)
			assert.Equal(t, input, dec.Output)
		})
	}
}

func TestEncoding_HexSeparator(t *testing.T) {
	sep := ":"
	resp, err := NewEncodingService().Encode("hex", model.EncodeDecodeRequest{Input: "Hi", Separator: &sep})
	require.NoError(t, err)
	assert.Equal(t, "48:69", resp.Output)
}

func TestEncoding_MalformedPayload(t *testing.T) {
	svc := NewEncodingService()

	resp, err := svc.Decode("base64", model.EncodeDecodeRequest{Input: "not base64!"})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
	assert.Empty(t, resp.Output)

	resp, err = svc.Decode("hex", model.EncodeDecodeRequest{Input: "zz"})
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestEncoding_UnknownCodec(t *testing.T) {
	_, err := NewEncodingService().Encode("rot13", model.EncodeDecodeRequest{Input: "x"})
	assert.ErrorIs(t, err, codec.ErrUnsupportedCodec)
}
