package service

import (
	"github.com/toolvia/toolvia-go/internal/model"
	"github.com/toolvia/toolvia-go/internal/textdiff"
)

// OtherService hosts the tools that fit no other group.
type OtherService struct {
	differ *textdiff.Differ
}

func NewOtherService() *OtherService {
	return &OtherService{differ: textdiff.New()}
}

// Diff compares two texts line by line.
func (s *OtherService) Diff(req model.DiffRequest) model.DiffResponse {
	res := s.differ.Lines(req.Original, req.Modified)

	lines := make([]model.DiffLine, len(res.Lines))
	for i, l := range res.Lines {
		lines[i] = model.DiffLine{
			Type:      string(l.Type),
			Content:   l.Content,
			OldNumber: l.OldNumber,
			NewNumber: l.NewNumber,
		}
	}
	return model.DiffResponse{
		Lines:     lines,
		Additions: res.Additions,
		Deletions: res.Deletions,
		Unchanged: res.Unchanged,
		Identical: res.Identical(),
	}
}
