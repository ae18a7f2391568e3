package crypto

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"strings"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // offered for compatibility, not security
	"golang.org/x/crypto/sha3"
)

var ErrUnsupportedAlgorithm = errors.New("unsupported hash algorithm")

// Algorithm identifies a digest algorithm.
type Algorithm string

const (
	MD5       Algorithm = "md5"
	SHA1      Algorithm = "sha1"
	SHA224    Algorithm = "sha224"
	SHA256    Algorithm = "sha256"
	SHA384    Algorithm = "sha384"
	SHA512    Algorithm = "sha512"
	SHA3_224  Algorithm = "sha3-224"
	SHA3_256  Algorithm = "sha3-256"
	SHA3_384  Algorithm = "sha3-384"
	SHA3_512  Algorithm = "sha3-512"
	RIPEMD160 Algorithm = "ripemd160"
)

type algorithmInfo struct {
	name      string
	hexLength int
	new       func() hash.Hash
}

var algorithms = map[Algorithm]algorithmInfo{
	MD5:       {"MD5", 32, md5.New},
	SHA1:      {"SHA-1", 40, sha1.New},
	SHA224:    {"SHA-224", 56, sha256.New224},
	SHA256:    {"SHA-256", 64, sha256.New},
	SHA384:    {"SHA-384", 96, sha512.New384},
	SHA512:    {"SHA-512", 128, sha512.New},
	SHA3_224:  {"SHA3-224", 56, sha3.New224},
	SHA3_256:  {"SHA3-256", 64, sha3.New256},
	SHA3_384:  {"SHA3-384", 96, sha3.New384},
	SHA3_512:  {"SHA3-512", 128, sha3.New512},
	RIPEMD160: {"RIPEMD-160", 40, ripemd160.New},
}

// Algorithms lists every supported algorithm in presentation order.
var Algorithms = []Algorithm{MD5, SHA1, SHA224, SHA256, SHA384, SHA512, SHA3_224, SHA3_256, SHA3_384, SHA3_512, RIPEMD160}

// algorithmAliases maps names with separators removed ("SHA-256", "sha_256")
// onto algorithms.
var algorithmAliases = func() map[string]Algorithm {
	m := make(map[string]Algorithm, len(Algorithms))
	for _, a := range Algorithms {
		m[normalizeAlgorithm(string(a))] = a
	}
	return m
}()

func normalizeAlgorithm(name string) string {
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(name))
}

// ParseAlgorithm resolves an algorithm name. Case, dashes and underscores are ignored.
func ParseAlgorithm(name string) (Algorithm, error) {
	if a, ok := algorithmAliases[normalizeAlgorithm(name)]; ok {
		return a, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, name)
}

// DisplayName returns the conventional spelling, e.g. "SHA-256".
func (a Algorithm) DisplayName() string { return algorithms[a].name }

// HexLength returns the length of the hex-encoded digest.
func (a Algorithm) HexLength() int { return algorithms[a].hexLength }

// Digest is a computed hash.
type Digest struct {
	Algorithm Algorithm
	Hex       string
}

// Sum hashes data with a.
func Sum(a Algorithm, data []byte) (Digest, error) {
	info, ok := algorithms[a]
	if !ok {
		return Digest{}, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, a)
	}
	h := info.new()
	h.Write(data)
	return Digest{Algorithm: a, Hex: hex.EncodeToString(h.Sum(nil))}, nil
}

// SumAll hashes data with every supported algorithm.
func SumAll(data []byte) []Digest {
	digests := make([]Digest, 0, len(Algorithms))
	for _, a := range Algorithms {
		d, _ := Sum(a, data)
		digests = append(digests, d)
	}
	return digests
}

// SumReader streams r through a and returns the digest and the number of
// bytes read.
func SumReader(a Algorithm, r io.Reader) (Digest, int64, error) {
	info, ok := algorithms[a]
	if !ok {
		return Digest{}, 0, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, a)
	}
	h := info.new()
	n, err := io.Copy(h, r)
	if err != nil {
		return Digest{}, n, err
	}
	return Digest{Algorithm: a, Hex: hex.EncodeToString(h.Sum(nil))}, n, nil
}
