package convert

import (
	"fmt"
	"math/big"
	"strings"
	"unicode"
)

const (
	MinBase = 2
	MaxBase = 36
)

// NumberBase is a number rendered in a target base.
type NumberBase struct {
	Result    string
	Formatted string
}

// ConvertBase parses value in base from and renders it in base to, uppercase.
// Binary output is grouped into nibbles and hex output into byte pairs.
func ConvertBase(value string, from, to int) (NumberBase, error) {
	if from < MinBase || from > MaxBase {
		return NumberBase{}, fmt.Errorf("%w: base %d (must be %d-%d)", ErrUnsupportedOption, from, MinBase, MaxBase)
	}
	if to < MinBase || to > MaxBase {
		return NumberBase{}, fmt.Errorf("%w: base %d (must be %d-%d)", ErrUnsupportedOption, to, MinBase, MaxBase)
	}

	digits := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, value)

	n, ok := new(big.Int).SetString(digits, from)
	if !ok || digits == "" {
		return NumberBase{}, fmt.Errorf("%w: %q is not a base %d integer", ErrInvalidNumberLiteral, value, from)
	}

	result := strings.ToUpper(n.Text(to))

	formatted := result
	switch to {
	case 2:
		formatted = group(result, 4)
	case 16:
		formatted = group(result, 2)
	}

	return NumberBase{Result: result, Formatted: formatted}, nil
}

// group left-pads digits with zeros to a multiple of size and joins the
// chunks with spaces. A leading minus sign is kept in front.
func group(digits string, size int) string {
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}

	if rem := len(digits) % size; rem != 0 {
		digits = strings.Repeat("0", size-rem) + digits
	}

	chunks := make([]string, 0, len(digits)/size)
	for i := 0; i < len(digits); i += size {
		chunks = append(chunks, digits[i:i+size])
	}
	return sign + strings.Join(chunks, " ")
}
