package convert

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Case variant names as reported to clients.
const (
	LowerCase    = "lowercase"
	UpperCase    = "uppercase"
	TitleCase    = "titlecase"
	SentenceCase = "sentencecase"
	CamelCase    = "camelcase"
	PascalCase   = "pascalcase"
	SnakeCase    = "snakecase"
	KebabCase    = "kebabcase"
	ConstantCase = "constantcase"
)

var camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)

// AllCases renders input in every supported case variant.
func AllCases(input string) map[string]string {
	return map[string]string{
		LowerCase:    strings.ToLower(input),
		UpperCase:    strings.ToUpper(input),
		TitleCase:    ToTitleCase(input),
		SentenceCase: ToSentenceCase(input),
		CamelCase:    ToCamelCase(input),
		PascalCase:   ToPascalCase(input),
		SnakeCase:    ToSnakeCase(input),
		KebabCase:    ToKebabCase(input),
		ConstantCase: ToConstantCase(input),
	}
}

// SplitWords splits camelCase, PascalCase, snake_case, kebab-case and
// space separated input into words.
func SplitWords(input string) []string {
	spaced := camelBoundary.ReplaceAllString(input, "$1 $2")
	return strings.FieldsFunc(spaced, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})
}

func ToTitleCase(input string) string {
	// Casers are stateful, so each call gets its own.
	return cases.Title(language.Und).String(strings.ToLower(input))
}

func ToSentenceCase(input string) string {
	return capitalize(input)
}

func ToCamelCase(input string) string {
	words := SplitWords(input)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

func ToPascalCase(input string) string {
	var b strings.Builder
	for _, w := range SplitWords(input) {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

func ToSnakeCase(input string) string {
	return joinWords(input, "_", strings.ToLower)
}

func ToKebabCase(input string) string {
	return joinWords(input, "-", strings.ToLower)
}

func ToConstantCase(input string) string {
	return joinWords(input, "_", strings.ToUpper)
}

func joinWords(input, sep string, transform func(string) string) string {
	words := SplitWords(input)
	for i, w := range words {
		words[i] = transform(w)
	}
	return strings.Join(words, sep)
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
