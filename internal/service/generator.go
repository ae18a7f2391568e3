package service

import (
	"github.com/toolvia/toolvia-go/internal/crypto"
	"github.com/toolvia/toolvia-go/internal/generator"
	"github.com/toolvia/toolvia-go/internal/model"
	"github.com/toolvia/toolvia-go/internal/qrcode"
)

// GeneratorService handles UUID, password, lorem ipsum and QR code generation.
type GeneratorService struct {
	lorem *generator.LoremGenerator
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{lorem: generator.NewLoremGenerator()}
}

func (s *GeneratorService) UUIDs(req model.UUIDRequest) (model.UUIDResponse, error) {
	ids, err := generator.UUIDs(generator.UUIDOptions{
		Count:     intOrDefault(req.Count, 1),
		Uppercase: req.Uppercase,
		NoDashes:  req.NoDashes,
	})
	if err != nil {
		return model.UUIDResponse{}, err
	}
	return model.UUIDResponse{UUIDs: ids}, nil
}

// Password produces a password based on the given request.
func (s *GeneratorService) Password(req model.PasswordRequest) (model.PasswordResponse, error) {
	opts := crypto.GeneratorOptions{
		Length:           intOrDefault(req.Length, 16),
		Uppercase:        boolOrDefault(req.IncludeUppercase, true),
		Lowercase:        boolOrDefault(req.IncludeLowercase, true),
		Numbers:          boolOrDefault(req.IncludeNumbers, true),
		Symbols:          boolOrDefault(req.IncludeSymbols, true),
		ExcludeAmbiguous: req.ExcludeAmbiguous,
	}

	password, err := crypto.Generate(opts)
	if err != nil {
		return model.PasswordResponse{}, err
	}

	return model.PasswordResponse{
		Password: password,
		Strength: crypto.Strength(password),
	}, nil
}

func (s *GeneratorService) Lorem(req model.LoremRequest) (model.LoremResponse, error) {
	typ, err := generator.ParseLoremType(req.Type)
	if err != nil {
		return model.LoremResponse{}, err
	}

	lorem, err := s.lorem.Generate(generator.LoremOptions{
		Type:           typ,
		Count:          intOrDefault(req.Count, 3),
		StartWithLorem: boolOrDefault(req.StartWithLorem, true),
	})
	if err != nil {
		return model.LoremResponse{}, err
	}
	return model.LoremResponse{Text: lorem.Text, WordCount: lorem.WordCount, CharCount: lorem.CharCount}, nil
}

func (s *GeneratorService) QRCode(req model.QRCodeRequest) (model.QRCodeResponse, error) {
	code, err := qrcode.Render(qrcode.Options{
		Content:    req.Content,
		Size:       intOrDefault(req.Size, qrcode.DefaultSize),
		DarkColor:  stringOrDefault(req.DarkColor, qrcode.DefaultDarkColor),
		LightColor: stringOrDefault(req.LightColor, qrcode.DefaultLightColor),
		ErrorLevel: stringOrDefault(req.ErrorLevel, qrcode.DefaultLevel),
	})
	if err != nil {
		return model.QRCodeResponse{}, err
	}
	return model.QRCodeResponse{DataURL: code.DataURL, SVGContent: code.SVG}, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

func intOrDefault(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}

func stringOrDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
