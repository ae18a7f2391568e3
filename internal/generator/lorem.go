package generator

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode/utf8"
)

// LoremPrefix is the classic opening sentence.
const LoremPrefix = "Lorem ipsum dolor sit amet, consectetur adipiscing elit."

var ErrUnsupportedLoremType = errors.New("type must be one of words, sentences, paragraphs")

var loremWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit",
	"sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore", "et", "dolore",
	"magna", "aliqua", "enim", "ad", "minim", "veniam", "quis", "nostrud",
	"exercitation", "ullamco", "laboris", "nisi", "aliquip", "ex", "ea", "commodo",
	"consequat", "duis", "aute", "irure", "in", "reprehenderit", "voluptate",
}

type LoremType string

const (
	LoremWords      LoremType = "words"
	LoremSentences  LoremType = "sentences"
	LoremParagraphs LoremType = "paragraphs"
)

// ParseLoremType matches s case-insensitively. An empty string selects
// paragraphs.
func ParseLoremType(s string) (LoremType, error) {
	switch t := LoremType(strings.ToLower(strings.TrimSpace(s))); t {
	case "":
		return LoremParagraphs, nil
	case LoremWords, LoremSentences, LoremParagraphs:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLoremType, s)
}

type LoremOptions struct {
	Type           LoremType
	Count          int
	StartWithLorem bool
}

// Lorem is generated placeholder text with its statistics.
type Lorem struct {
	Text      string
	WordCount int
	CharCount int
}

// LoremGenerator produces placeholder text. It carries no security
// contract, so it draws from math/rand.
type LoremGenerator struct {
	intN func(n int) int
}

func NewLoremGenerator() *LoremGenerator {
	return &LoremGenerator{intN: rand.IntN}
}

func (g *LoremGenerator) Generate(opts LoremOptions) (Lorem, error) {
	if opts.Count < 1 || opts.Count > MaxCount {
		return Lorem{}, ErrInvalidCount
	}

	var parts []string
	switch opts.Type {
	case LoremWords:
		for range opts.Count {
			parts = append(parts, g.word())
		}
	case LoremSentences:
		for range opts.Count {
			parts = append(parts, g.sentence())
		}
	case LoremParagraphs:
		for range opts.Count {
			parts = append(parts, g.paragraph())
		}
	default:
		return Lorem{}, fmt.Errorf("%w: %q", ErrUnsupportedLoremType, opts.Type)
	}

	sep := " "
	if opts.Type == LoremParagraphs {
		sep = "\n\n"
	}
	text := strings.Join(parts, sep)
	if opts.StartWithLorem {
		text = LoremPrefix + " " + text
	}

	return Lorem{
		Text:      text,
		WordCount: len(strings.Fields(text)),
		CharCount: utf8.RuneCountInString(text),
	}, nil
}

func (g *LoremGenerator) word() string {
	return loremWords[g.intN(len(loremWords))]
}

// sentence is 5 to 14 words, capitalised and terminated by a period.
func (g *LoremGenerator) sentence() string {
	n := 5 + g.intN(10)
	words := make([]string, n)
	for i := range words {
		words[i] = g.word()
	}
	s := strings.Join(words, " ")
	return strings.ToUpper(s[:1]) + s[1:] + "."
}

// paragraph is 3 to 6 sentences.
func (g *LoremGenerator) paragraph() string {
	n := 3 + g.intN(4)
	sentences := make([]string, n)
	for i := range sentences {
		sentences[i] = g.sentence()
	}
	return strings.Join(sentences, " ")
}
