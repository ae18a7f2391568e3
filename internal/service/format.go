package service

import (
	"errors"

	"github.com/toolvia/toolvia-go/internal/format"
	"github.com/toolvia/toolvia-go/internal/model"
)

// FormatService handles JSON, XML and HTML reformatting. Parser errors are
// reported with IsValid false; only a bad indent size is returned as an error.
type FormatService struct{}

func NewFormatService() *FormatService {
	return &FormatService{}
}

func indentSize(req model.FormatRequest) int {
	if req.IndentSize == nil {
		return format.DefaultIndent
	}
	return *req.IndentSize
}

func formatResult(out string, err error) (model.FormatResponse, error) {
	if errors.Is(err, format.ErrInvalidIndent) {
		return model.FormatResponse{}, err
	}
	if err != nil {
		return model.FormatResponse{IsValid: false, Error: err.Error()}, nil
	}
	return model.FormatResponse{Output: out, IsValid: true}, nil
}

// validateResult echoes the input back when it is well-formed.
func validateResult(input string, err error) model.FormatResponse {
	if err != nil {
		return model.FormatResponse{IsValid: false, Error: err.Error()}
	}
	return model.FormatResponse{Output: input, IsValid: true}
}

func (s *FormatService) FormatJSON(req model.FormatRequest) (model.FormatResponse, error) {
	return formatResult(format.FormatJSON(req.Input, indentSize(req)))
}

func (s *FormatService) MinifyJSON(req model.FormatRequest) (model.FormatResponse, error) {
	return formatResult(format.MinifyJSON(req.Input))
}

func (s *FormatService) ValidateJSON(req model.FormatRequest) model.FormatResponse {
	return validateResult(req.Input, format.ValidateJSON(req.Input))
}

func (s *FormatService) UnescapeJSON(req model.FormatRequest) (model.FormatResponse, error) {
	return formatResult(format.UnescapeJSON(req.Input, indentSize(req)))
}

func (s *FormatService) FormatXML(req model.FormatRequest) (model.FormatResponse, error) {
	return formatResult(format.FormatXML(req.Input, indentSize(req)))
}

func (s *FormatService) MinifyXML(req model.FormatRequest) (model.FormatResponse, error) {
	return formatResult(format.MinifyXML(req.Input))
}

func (s *FormatService) ValidateXML(req model.FormatRequest) model.FormatResponse {
	return validateResult(req.Input, format.ValidateXML(req.Input))
}

func (s *FormatService) FormatHTML(req model.FormatRequest) (model.FormatResponse, error) {
	return formatResult(format.FormatHTML(req.Input, indentSize(req)))
}

func (s *FormatService) MinifyHTML(req model.FormatRequest) model.FormatResponse {
	return model.FormatResponse{Output: format.MinifyHTML(req.Input), IsValid: true}
}
