// Package codec implements the symmetric text encodings: base64, hex, URL
// percent-encoding and HTML entities.
package codec

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
)

var (
	ErrUnsupportedCodec = errors.New("unsupported codec")
	ErrInvalidUTF8      = errors.New("decoded bytes are not valid UTF-8")
)

// Codec names a supported encoding.
type Codec string

const (
	Base64 Codec = "base64"
	Hex    Codec = "hex"
	URL    Codec = "url"
	HTML   Codec = "html"
)

// DefaultHexSeparator is placed between encoded hex bytes when none is given.
const DefaultHexSeparator = " "

// ParseCodec resolves a codec name case-insensitively.
func ParseCodec(name string) (Codec, error) {
	switch c := Codec(strings.ToLower(name)); c {
	case Base64, Hex, URL, HTML:
		return c, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedCodec, name)
}

// Encode encodes input with c. separator is only used by Hex; nil selects
// DefaultHexSeparator.
func Encode(c Codec, input string, separator *string) (string, error) {
	switch c {
	case Base64:
		return EncodeBase64(input), nil
	case Hex:
		sep := DefaultHexSeparator
		if separator != nil {
			sep = *separator
		}
		return EncodeHex(input, sep), nil
	case URL:
		return EncodeURL(input), nil
	case HTML:
		return EncodeHTML(input), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedCodec, c)
}

// Decode reverses Encode.
func Decode(c Codec, input string) (string, error) {
	switch c {
	case Base64:
		return DecodeBase64(input)
	case Hex:
		return DecodeHex(input)
	case URL:
		return DecodeURL(input)
	case HTML:
		return DecodeHTML(input), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedCodec, c)
}

func EncodeBase64(input string) string {
	return base64.StdEncoding.EncodeToString([]byte(input))
}

// DecodeBase64 accepts padded or unpadded standard base64. Whitespace is ignored.
func DecodeBase64(input string) (string, error) {
	clean := stripSpace(input)
	b, err := base64.StdEncoding.DecodeString(clean)
	if err != nil {
		raw, rawErr := base64.RawStdEncoding.DecodeString(clean)
		if rawErr != nil {
			return "", err
		}
		b = raw
	}
	return utf8String(b)
}

// EncodeHex renders each UTF-8 byte as two lowercase hex digits joined by separator.
func EncodeHex(input, separator string) string {
	b := []byte(input)
	parts := make([]string, len(b))
	for i, c := range b {
		parts[i] = hex.EncodeToString([]byte{c})
	}
	return strings.Join(parts, separator)
}

var hexNoise = regexp.MustCompile(`[\s,;:\-]`)

// DecodeHex strips whitespace and the separators ",;:-" before pairing digits.
func DecodeHex(input string) (string, error) {
	b, err := hex.DecodeString(hexNoise.ReplaceAllString(input, ""))
	if err != nil {
		return "", err
	}
	return utf8String(b)
}

// EncodeURL percent-encodes everything except the RFC 3986 unreserved
// characters. Spaces become %20.
func EncodeURL(input string) string {
	// QueryEscape already encodes a literal '+', so every '+' left is a space.
	return strings.ReplaceAll(url.QueryEscape(input), "+", "%20")
}

// DecodeURL decodes percent escapes. A '+' is kept literally.
func DecodeURL(input string) (string, error) {
	s, err := url.PathUnescape(input)
	if err != nil {
		return "", err
	}
	return utf8String([]byte(s))
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func EncodeHTML(input string) string {
	return htmlEscaper.Replace(input)
}

// DecodeHTML resolves named and numeric character references.
func DecodeHTML(input string) string {
	return html.UnescapeString(input)
}

func utf8String(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
