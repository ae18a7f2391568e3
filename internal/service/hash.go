package service

import (
	"errors"
	"io"

	"github.com/toolvia/toolvia-go/internal/crypto"
	"github.com/toolvia/toolvia-go/internal/model"
)

var ErrInputRequired = errors.New("input is required")

// HashService computes digests and argon2id password hashes.
type HashService struct {
	argon2 crypto.Argon2Params
}

func NewHashService(params crypto.Argon2Params) *HashService {
	return &HashService{argon2: params}
}

func digestResponse(d crypto.Digest) model.HashResponse {
	return model.HashResponse{
		Hash:      d.Hex,
		Algorithm: d.Algorithm.DisplayName(),
		Length:    d.Algorithm.HexLength(),
	}
}

// Hash digests the UTF-8 bytes of the input with the named algorithm.
func (s *HashService) Hash(algorithm string, req model.TextRequest) (model.HashResponse, error) {
	a, err := crypto.ParseAlgorithm(algorithm)
	if err != nil {
		return model.HashResponse{}, err
	}
	d, err := crypto.Sum(a, []byte(req.Input))
	if err != nil {
		return model.HashResponse{}, err
	}
	return digestResponse(d), nil
}

// HashAll digests the input with every algorithm, keyed by algorithm name.
func (s *HashService) HashAll(req model.TextRequest) map[string]model.HashResponse {
	out := make(map[string]model.HashResponse, len(crypto.Algorithms))
	for _, d := range crypto.SumAll([]byte(req.Input)) {
		out[string(d.Algorithm)] = digestResponse(d)
	}
	return out
}

// HashFile streams r through the named algorithm. An empty name selects SHA-256.
func (s *HashService) HashFile(algorithm, fileName string, r io.Reader) (model.FileHashResponse, error) {
	a := crypto.SHA256
	if algorithm != "" {
		var err error
		if a, err = crypto.ParseAlgorithm(algorithm); err != nil {
			return model.FileHashResponse{}, err
		}
	}

	d, n, err := crypto.SumReader(a, r)
	if err != nil {
		return model.FileHashResponse{}, err
	}
	return model.FileHashResponse{HashResponse: digestResponse(d), FileName: fileName, Size: n}, nil
}

func (s *HashService) HashPassword(req model.TextRequest) (model.PasswordHashResponse, error) {
	if req.Input == "" {
		return model.PasswordHashResponse{}, ErrInputRequired
	}
	encoded, err := crypto.HashPassword(req.Input, s.argon2)
	if err != nil {
		return model.PasswordHashResponse{}, err
	}
	return model.PasswordHashResponse{Hash: encoded}, nil
}

// VerifyPassword reports a malformed hash with Success false.
func (s *HashService) VerifyPassword(req model.PasswordVerifyRequest) model.PasswordVerifyResponse {
	match, err := crypto.VerifyPassword(req.Input, req.Hash)
	if err != nil {
		return model.PasswordVerifyResponse{Success: false, Error: err.Error()}
	}
	return model.PasswordVerifyResponse{Match: match, Success: true}
}
