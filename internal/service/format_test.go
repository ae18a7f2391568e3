package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolvia/toolvia-go/internal/format"
	"github.com/toolvia/toolvia-go/internal/model"
)

func TestFormatJSON(t *testing.T) {
	svc := NewFormatService()

	resp, err := svc.FormatJSON(model.FormatRequest{Input: `{"a":1}`})
	require.NoError(t, err)
	assert.Equal(t, model.FormatResponse{Output: "{\n  \"a\": 1\n}", IsValid: true}, resp)

	resp, err = svc.FormatJSON(model.FormatRequest{Input: `{"a":1}`, IndentSize: intPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, "{\n\"a\": 1\n}", resp.Output)

	resp, err = svc.FormatJSON(model.FormatRequest{Input: "{not json"})
	require.NoError(t, err)
	assert.False(t, resp.IsValid)
	assert.NotEmpty(t, resp.Error)

	_, err = svc.FormatJSON(model.FormatRequest{Input: "{}", IndentSize: intPtr(-2)})
	assert.ErrorIs(t, err, format.ErrInvalidIndent)
}

func TestValidateJSON(t *testing.T) {
	svc := NewFormatService()

	resp := svc.ValidateJSON(model.FormatRequest{Input: `[1, 2]`})
	assert.Equal(t, model.FormatResponse{Output: `[1, 2]`, IsValid: true}, resp)

	resp = svc.ValidateJSON(model.FormatRequest{Input: "{not json"})
	assert.False(t, resp.IsValid)
	assert.NotEmpty(t, resp.Error)
}

func TestFormatJSON_MinifyRoundTrip(t *testing.T) {
	svc := NewFormatService()
	in := model.FormatRequest{Input: `{ "a": [1, 2], "b": {"c": null} }`}

	first, err := svc.FormatJSON(in)
	require.NoError(t, err)
	minified, err := svc.MinifyJSON(model.FormatRequest{Input: first.Output})
	require.NoError(t, err)
	second, err := svc.FormatJSON(model.FormatRequest{Input: minified.Output})
	require.NoError(t, err)
	assert.Equal(t, first.Output, second.Output)
}

func TestUnescapeJSON(t *testing.T) {
	resp, err := NewFormatService().UnescapeJSON(model.FormatRequest{Input: `"{\"a\":true}"`})
	require.NoError(t, err)
	assert.True(t, resp.IsValid)
	assert.Equal(t, "{\n  \"a\": true\n}", resp.Output)
}

func TestXMLOperations(t *testing.T) {
	svc := NewFormatService()

	resp, err := svc.FormatXML(model.FormatRequest{Input: "<a><b>1</b></a>"})
	require.NoError(t, err)
	assert.Equal(t, "<a>\n  <b>1</b>\n</a>", resp.Output)

	resp, err = svc.MinifyXML(model.FormatRequest{Input: "<a>\n  <b>1</b>\n</a>"})
	require.NoError(t, err)
	assert.Equal(t, "<a><b>1</b></a>", resp.Output)

	v := svc.ValidateXML(model.FormatRequest{Input: "<a><b></a>"})
	assert.False(t, v.IsValid)
	assert.NotEmpty(t, v.Error)
}

func TestHTMLOperations(t *testing.T) {
	svc := NewFormatService()

	resp, err := svc.FormatHTML(model.FormatRequest{Input: "<div><span>x</span></div>", IndentSize: intPtr(4)})
	require.NoError(t, err)
	assert.Equal(t, "<div>\n    <span>\n        x\n    </span>\n</div>", resp.Output)

	m := svc.MinifyHTML(model.FormatRequest{Input: "<div>\n  <span>x</span>\n</div>"})
	assert.True(t, m.IsValid)
	assert.Equal(t, "<div><span>x</span></div>", m.Output)
}
