package service

import (
	"github.com/toolvia/toolvia-go/internal/color"
	"github.com/toolvia/toolvia-go/internal/convert"
	"github.com/toolvia/toolvia-go/internal/model"
)

// ConverterService handles unit, number base, case and color conversion.
type ConverterService struct {
	units convert.UnitConverter
}

// NewConverterService creates a new ConverterService. lenientTemperature
// makes unknown temperature units behave as Celsius.
func NewConverterService(lenientTemperature bool) *ConverterService {
	return &ConverterService{units: convert.UnitConverter{LenientTemperature: lenientTemperature}}
}

func (s *ConverterService) ConvertUnit(req model.UnitConvertRequest) (model.UnitConvertResponse, error) {
	conv, err := s.units.Convert(req.Category, float64(req.Value), req.FromUnit, req.ToUnit)
	if err != nil {
		return model.UnitConvertResponse{}, err
	}
	return model.UnitConvertResponse{Result: conv.Result, Formula: conv.Formula}, nil
}

func (s *ConverterService) ConvertNumberBase(req model.NumberBaseRequest) (model.NumberBaseResponse, error) {
	nb, err := convert.ConvertBase(req.Value, req.FromBase, req.ToBase)
	if err != nil {
		return model.NumberBaseResponse{}, err
	}
	return model.NumberBaseResponse{Result: nb.Result, Formatted: nb.Formatted}, nil
}

func (s *ConverterService) ConvertCase(req model.TextRequest) model.CaseResponse {
	return model.CaseResponse(convert.AllCases(req.Input))
}

// ConvertColor reports unparseable colors in the response rather than as an error.
func (s *ConverterService) ConvertColor(req model.TextRequest) model.ColorResponse {
	c, err := color.Convert(req.Input)
	if err != nil {
		return model.ColorResponse{Success: false, Error: err.Error()}
	}
	return model.ColorResponse{Hex: c.Hex, RGB: c.RGB, HSL: c.HSL, HSV: c.HSV, Success: true}
}
