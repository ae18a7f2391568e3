// Package textdiff computes line-level differences between two texts.
package textdiff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

type LineType string

const (
	LineEqual  LineType = "equal"
	LineInsert LineType = "insert"
	LineDelete LineType = "delete"
)

// Line is one line of the diff. OldNumber and NewNumber are 1-based and
// zero when the line does not exist on that side.
type Line struct {
	Type      LineType
	Content   string
	OldNumber int
	NewNumber int
}

type Result struct {
	Lines     []Line
	Additions int
	Deletions int
	Unchanged int
}

// Identical reports whether no line was inserted or deleted.
func (r Result) Identical() bool {
	return r.Additions == 0 && r.Deletions == 0
}

type Differ struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

func New() *Differ {
	return &Differ{dmp: diffmatchpatch.New()}
}

// Lines diffs original against modified line by line. Line endings are
// normalised so a missing final newline does not mark the last line changed.
func (d *Differ) Lines(original, modified string) Result {
	a, b, lineArray := d.dmp.DiffLinesToChars(normalize(original), normalize(modified))
	// Each rune stands for a whole line, so semantic cleanup would only
	// merge unrelated lines into larger edits.
	diffs := d.dmp.DiffCharsToLines(d.dmp.DiffMain(a, b, false), lineArray)

	var res Result
	oldLine, newLine := 0, 0
	for _, diff := range diffs {
		if diff.Text == "" {
			continue
		}
		for _, content := range strings.Split(strings.TrimSuffix(diff.Text, "\n"), "\n") {
			switch diff.Type {
			case diffmatchpatch.DiffEqual:
				oldLine++
				newLine++
				res.Unchanged++
				res.Lines = append(res.Lines, Line{Type: LineEqual, Content: content, OldNumber: oldLine, NewNumber: newLine})
			case diffmatchpatch.DiffDelete:
				oldLine++
				res.Deletions++
				res.Lines = append(res.Lines, Line{Type: LineDelete, Content: content, OldNumber: oldLine})
			case diffmatchpatch.DiffInsert:
				newLine++
				res.Additions++
				res.Lines = append(res.Lines, Line{Type: LineInsert, Content: content, NewNumber: newLine})
			}
		}
	}
	return res
}

func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	if s != "" && !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	return s
}
