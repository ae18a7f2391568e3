package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		body string
		want float64
	}{
		{`{"value": 12.5}`, 12.5},
		{`{"value": "12.5"}`, 12.5},
		{`{"value": " -3 "}`, -3},
		{`{"value": 1e3}`, 1000},
	}

	for _, tt := range tests {
		var req UnitConvertRequest
		require.NoError(t, json.Unmarshal([]byte(tt.body), &req), tt.body)
		assert.Equal(t, tt.want, float64(req.Value))
	}
}

func TestNumber_UnmarshalJSON_Invalid(t *testing.T) {
	for _, body := range []string{`{"value": "abc"}`, `{"value": "Inf"}`, `{"value": true}`, `{"value": "NaN"}`} {
		var req UnitConvertRequest
		err := json.Unmarshal([]byte(body), &req)
		assert.ErrorIs(t, err, ErrInvalidNumber, body)
	}
}
