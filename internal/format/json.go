// Package format pretty-prints, minifies and validates JSON, XML and HTML.
package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultIndent = 2
	MaxIndent     = 16
)

var ErrInvalidIndent = fmt.Errorf("indent size must be between 0 and %d", MaxIndent)

func indentString(size int) (string, error) {
	if size < 0 || size > MaxIndent {
		return "", ErrInvalidIndent
	}
	return strings.Repeat(" ", size), nil
}

// FormatJSON pretty-prints a JSON document with indent spaces per level.
// Key order and number literals are preserved.
func FormatJSON(input string, indent int) (string, error) {
	unit, err := indentString(indent)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace([]byte(input)), "", unit); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MinifyJSON removes insignificant whitespace.
func MinifyJSON(input string) (string, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(input)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ValidateJSON reports the parser error for input, or nil when it is a
// single well-formed JSON value.
func ValidateJSON(input string) error {
	_, err := MinifyJSON(input)
	return err
}

var ErrNotEscapedJSON = errors.New("input is not an escaped JSON string")

var literalEscapes = strings.NewReplacer(
	`\\`, `\`,
	`\"`, `"`,
	`\'`, `'`,
	`\n`, "\n",
	`\r`, "\r",
	`\t`, "\t",
)

// UnescapeJSON unwraps one level of string quoting from JSON that was
// embedded in a string literal, then pretty-prints it.
//
// A double-quoted blob is decoded as a JSON string; when that fails, and for
// single-quoted or unquoted blobs, backslash escapes are substituted literally.
func UnescapeJSON(input string, indent int) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", ErrNotEscapedJSON
	}

	var inner string
	switch {
	case len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"':
		if err := json.Unmarshal([]byte(s), &inner); err != nil {
			inner = literalEscapes.Replace(s[1 : len(s)-1])
		}
	case len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'':
		inner = literalEscapes.Replace(s[1 : len(s)-1])
	default:
		inner = literalEscapes.Replace(s)
	}

	return FormatJSON(inner, indent)
}
