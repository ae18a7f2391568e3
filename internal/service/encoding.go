package service

import (
	"github.com/toolvia/toolvia-go/internal/codec"
	"github.com/toolvia/toolvia-go/internal/model"
)

// EncodingService handles the text encodings.
type EncodingService struct{}

func NewEncodingService() *EncodingService {
	return &EncodingService{}
}

// Encode returns an error only for an unknown codec name.
func (s *EncodingService) Encode(codecName string, req model.EncodeDecodeRequest) (model.EncodeDecodeResponse, error) {
	c, err := codec.ParseCodec(codecName)
	if err != nil {
		return model.EncodeDecodeResponse{}, err
	}
	out, err := codec.Encode(c, req.Input, req.Separator)
	return encodeDecodeResult(out, err), nil
}

// Decode returns an error only for an unknown codec name. Malformed input is
// reported with Success false.
func (s *EncodingService) Decode(codecName string, req model.EncodeDecodeRequest) (model.EncodeDecodeResponse, error) {
	c, err := codec.ParseCodec(codecName)
	if err != nil {
		return model.EncodeDecodeResponse{}, err
	}
	out, err := codec.Decode(c, req.Input)
	return encodeDecodeResult(out, err), nil
}

func encodeDecodeResult(out string, err error) model.EncodeDecodeResponse {
	if err != nil {
		return model.EncodeDecodeResponse{Success: false, Error: err.Error()}
	}
	return model.EncodeDecodeResponse{Output: out, Success: true}
}
