package format

import (
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// voidElements never have content or an end tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

var (
	spaceBetweenTags = regexp.MustCompile(`>\s+<`)
	lineBreaks       = regexp.MustCompile(`[\r\n\t]+`)
	repeatedSpaces   = regexp.MustCompile(` {2,}`)
)

// FormatHTML indents markup one tag or text run per line. It is a token-level
// indenter, not a DOM-aware formatter: it never fails, and unbalanced markup
// is indented as written.
func FormatHTML(input string, indent int) (string, error) {
	unit, err := indentString(indent)
	if err != nil {
		return "", err
	}

	src := spaceBetweenTags.ReplaceAllString(strings.TrimSpace(input), "><")
	z := html.NewTokenizer(strings.NewReader(src))

	var lines []string
	depth := 0
	emit := func(s string) {
		lines = append(lines, strings.Repeat(unit, depth)+s)
	}

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if z.Err() == io.EOF {
				break
			}
			return "", z.Err()
		}
		// Raw is only valid until the next tokenizer call.
		raw := strings.TrimSpace(string(z.Raw()))

		switch tt {
		case html.TextToken:
			if raw != "" {
				emit(raw)
			}
		case html.StartTagToken:
			name, _ := z.TagName()
			emit(raw)
			if !voidElements[string(name)] {
				depth++
			}
		case html.EndTagToken:
			if depth > 0 {
				depth--
			}
			emit(raw)
		case html.SelfClosingTagToken, html.CommentToken, html.DoctypeToken:
			emit(raw)
		}
	}

	return strings.Join(lines, "\n"), nil
}

// MinifyHTML removes line breaks, tabs and whitespace between tags, and
// collapses runs of spaces.
func MinifyHTML(input string) string {
	s := lineBreaks.ReplaceAllString(input, " ")
	s = spaceBetweenTags.ReplaceAllString(s, "><")
	s = repeatedSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
