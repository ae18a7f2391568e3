package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidNumber = errors.New("value must be a finite number")

// Number accepts either a JSON number or a numeric string.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return fmt.Errorf("%w: %q", ErrInvalidNumber, s)
		}
		*n = Number(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidNumber, b)
	}
	*n = Number(f)
	return nil
}

type UnitConvertRequest struct {
	Value    Number `json:"value"`
	FromUnit string `json:"fromUnit"`
	ToUnit   string `json:"toUnit"`
	Category string `json:"category"`
}

type UnitConvertResponse struct {
	Result  float64 `json:"result"`
	Formula string  `json:"formula"`
}

type NumberBaseRequest struct {
	Value    string `json:"value"`
	FromBase int    `json:"fromBase"`
	ToBase   int    `json:"toBase"`
}

type NumberBaseResponse struct {
	Result    string `json:"result"`
	Formatted string `json:"formatted"`
}

// TextRequest carries a single input string.
type TextRequest struct {
	Input string `json:"input"`
}

// CaseResponse maps each case variant name to the converted text.
type CaseResponse map[string]string

type ColorResponse struct {
	Hex     string `json:"hex,omitempty"`
	RGB     string `json:"rgb,omitempty"`
	HSL     string `json:"hsl,omitempty"`
	HSV     string `json:"hsv,omitempty"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
