package generator

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const MaxCount = 1000

var ErrInvalidCount = fmt.Errorf("count must be between 1 and %d", MaxCount)

// UUIDOptions controls the rendering of generated UUIDs.
type UUIDOptions struct {
	Count     int
	Uppercase bool
	NoDashes  bool
}

// UUIDs returns opts.Count random version 4 UUIDs.
func UUIDs(opts UUIDOptions) ([]string, error) {
	if opts.Count < 1 || opts.Count > MaxCount {
		return nil, ErrInvalidCount
	}

	out := make([]string, 0, opts.Count)
	for range opts.Count {
		id, err := uuid.NewRandom()
		if err != nil {
			return nil, fmt.Errorf("generating uuid: %w", err)
		}
		s := id.String()
		if opts.NoDashes {
			s = strings.ReplaceAll(s, "-", "")
		}
		if opts.Uppercase {
			s = strings.ToUpper(s)
		}
		out = append(out, s)
	}
	return out, nil
}
