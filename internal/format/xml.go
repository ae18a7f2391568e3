package format

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html/charset"
)

var (
	ErrNoRootElement        = errors.New("XML document must have a root element")
	ErrMultipleRootElements = errors.New("XML document must have exactly one root element")
)

type xmlNodeKind int

const (
	xmlElement xmlNodeKind = iota
	xmlText
	xmlComment
	xmlProcInst
	xmlDirective
)

type xmlNode struct {
	kind     xmlNodeKind
	name     xml.Name // element name; Space holds the prefix
	attrs    []xml.Attr
	text     string // text, comment, directive body or proc-inst target
	inst     string
	children []*xmlNode
}

// xmlDocument is a parsed document with prefixes preserved as written.
type xmlDocument struct {
	nodes       []*xmlNode
	declaration *xmlNode
}

// parseXML builds a document tree. It rejects mismatched tags, missing or
// multiple root elements and text outside the root.
func parseXML(input string) (*xmlDocument, error) {
	dec := xml.NewDecoder(strings.NewReader(input))
	dec.Strict = true
	dec.CharsetReader = utf8CharsetReader

	doc := &xmlDocument{}
	var stack []*xmlNode
	roots := 0

	appendNode := func(n *xmlNode) {
		if len(stack) == 0 {
			doc.nodes = append(doc.nodes, n)
			return
		}
		parent := stack[len(stack)-1]
		parent.children = append(parent.children, n)
	}

	for {
		tok, err := dec.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if len(stack) == 0 {
				roots++
				if roots > 1 {
					line, _ := dec.InputPos()
					return nil, fmt.Errorf("%w (line %d)", ErrMultipleRootElements, line)
				}
			}
			n := &xmlNode{kind: xmlElement, name: t.Name, attrs: append([]xml.Attr(nil), t.Attr...)}
			appendNode(n)
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("unexpected end element </%s>", qualified(t.Name))
			}
			open := stack[len(stack)-1]
			if open.name != t.Name {
				return nil, fmt.Errorf("element <%s> closed by </%s>", qualified(open.name), qualified(t.Name))
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			text := string(t)
			if len(stack) == 0 {
				if strings.TrimSpace(text) != "" {
					return nil, fmt.Errorf("text %q outside the root element", strings.TrimSpace(text))
				}
				continue
			}
			appendNode(&xmlNode{kind: xmlText, text: text})
		case xml.Comment:
			appendNode(&xmlNode{kind: xmlComment, text: string(t)})
		case xml.ProcInst:
			n := &xmlNode{kind: xmlProcInst, text: t.Target, inst: string(t.Inst)}
			if t.Target == "xml" && len(stack) == 0 {
				n.inst = utf8Declaration(n.inst)
				doc.declaration = n
				continue
			}
			appendNode(n)
		case xml.Directive:
			appendNode(&xmlNode{kind: xmlDirective, text: string(t)})
		}
	}

	if len(stack) > 0 {
		return nil, fmt.Errorf("element <%s> is not closed", qualified(stack[len(stack)-1].name))
	}
	if roots == 0 {
		return nil, ErrNoRootElement
	}
	return doc, nil
}

var declaredEncoding = regexp.MustCompile(`encoding\s*=\s*("[^"]*"|'[^']*')`)

// utf8Declaration rewrites the encoding pseudo-attribute to UTF-8, which is
// what the serialised output always is.
func utf8Declaration(inst string) string {
	return declaredEncoding.ReplaceAllStringFunc(inst, func(attr string) string {
		m := declaredEncoding.FindStringSubmatch(attr)
		if strings.EqualFold(strings.Trim(m[1], `"'`), "utf-8") {
			return attr
		}
		return `encoding="UTF-8"`
	})
}

// utf8CharsetReader accepts any encoding label the charset package knows.
// Input strings are already decoded, so the bytes pass through unchanged.
func utf8CharsetReader(label string, input io.Reader) (io.Reader, error) {
	if e, _ := charset.Lookup(label); e == nil {
		return nil, fmt.Errorf("unsupported encoding %q", label)
	}
	return input, nil
}

// FormatXML re-indents an XML document. The <?xml?> declaration is kept
// only when the input has one.
func FormatXML(input string, indent int) (string, error) {
	unit, err := indentString(indent)
	if err != nil {
		return "", err
	}
	doc, err := parseXML(input)
	if err != nil {
		return "", err
	}
	w := &xmlWriter{indent: unit, pretty: true}
	w.document(doc)
	return w.String(), nil
}

// MinifyXML serialises the document without indentation or
// whitespace-only text.
func MinifyXML(input string) (string, error) {
	doc, err := parseXML(input)
	if err != nil {
		return "", err
	}
	w := &xmlWriter{}
	w.document(doc)
	return w.String(), nil
}

// ValidateXML reports the parser error for input, or nil when well-formed.
func ValidateXML(input string) error {
	_, err := parseXML(input)
	return err
}

// xmlTextEscaper escapes character data. Unlike xml.EscapeText it leaves
// line breaks and quotes alone, which are only significant in attributes.
var xmlTextEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

type xmlWriter struct {
	strings.Builder
	indent string
	pretty bool
}

func (w *xmlWriter) newline(depth int) {
	if !w.pretty || w.Len() == 0 {
		return
	}
	w.WriteByte('\n')
	w.WriteString(strings.Repeat(w.indent, depth))
}

func (w *xmlWriter) document(doc *xmlDocument) {
	if doc.declaration != nil {
		w.node(doc.declaration, 0)
	}
	for _, n := range doc.nodes {
		w.node(n, 0)
	}
}

func (w *xmlWriter) node(n *xmlNode, depth int) {
	switch n.kind {
	case xmlElement:
		w.element(n, depth)
	case xmlText:
		text := n.text
		if w.pretty {
			text = strings.TrimSpace(text)
		}
		if text == "" {
			return
		}
		w.newline(depth)
		w.WriteString(xmlTextEscaper.Replace(text))
	case xmlComment:
		w.newline(depth)
		w.WriteString("<!--" + n.text + "-->")
	case xmlProcInst:
		w.newline(depth)
		w.WriteString("<?" + n.text)
		if inst := strings.TrimSpace(n.inst); inst != "" {
			w.WriteString(" " + inst)
		}
		w.WriteString("?>")
	case xmlDirective:
		w.newline(depth)
		w.WriteString("<!" + n.text + ">")
	}
}

func (w *xmlWriter) element(n *xmlNode, depth int) {
	w.newline(depth)
	w.WriteString("<" + qualified(n.name))
	for _, a := range n.attrs {
		w.WriteString(" " + qualified(a.Name) + `="`)
		xml.EscapeText(w, []byte(a.Value))
		w.WriteByte('"')
	}

	children := significant(n.children)
	if len(children) == 0 {
		w.WriteString(" />")
		return
	}
	w.WriteByte('>')

	if len(children) == 1 && children[0].kind == xmlText {
		// Text-only content stays on the element's line, verbatim.
		w.WriteString(xmlTextEscaper.Replace(children[0].text))
	} else {
		for _, c := range children {
			w.node(c, depth+1)
		}
		w.newline(depth)
	}
	w.WriteString("</" + qualified(n.name) + ">")
}

// significant drops whitespace-only text nodes and merges adjacent text.
func significant(nodes []*xmlNode) []*xmlNode {
	var out []*xmlNode
	for _, n := range nodes {
		if n.kind == xmlText {
			if strings.TrimSpace(n.text) == "" {
				continue
			}
			if last := len(out) - 1; last >= 0 && out[last].kind == xmlText {
				out[last] = &xmlNode{kind: xmlText, text: out[last].text + n.text}
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

func qualified(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}
