package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"unicode"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// Look-alike characters (I/l/1, O/o/0) removed.
	unambiguousUppercaseChars = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	unambiguousLowercaseChars = "abcdefghjkmnpqrstuvwxyz"
	unambiguousNumberChars    = "23456789"

	MinLength = 4
	MaxLength = 1024
)

var (
	ErrLengthTooShort   = fmt.Errorf("password length must be at least %d", MinLength)
	ErrLengthTooLong    = fmt.Errorf("password length must be at most %d", MaxLength)
	ErrNoCharacterTypes = errors.New("at least one character set must be selected")
)

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length           int
	Uppercase        bool
	Lowercase        bool
	Numbers          bool
	Symbols          bool
	ExcludeAmbiguous bool
}

// DefaultOptions returns sensible defaults: 16 characters with all types enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// charsets returns the character sets selected by opts.
func (opts GeneratorOptions) charsets() []string {
	var sets []string
	if opts.Uppercase {
		sets = append(sets, pick(opts.ExcludeAmbiguous, unambiguousUppercaseChars, uppercaseChars))
	}
	if opts.Lowercase {
		sets = append(sets, pick(opts.ExcludeAmbiguous, unambiguousLowercaseChars, lowercaseChars))
	}
	if opts.Numbers {
		sets = append(sets, pick(opts.ExcludeAmbiguous, unambiguousNumberChars, numberChars))
	}
	if opts.Symbols {
		sets = append(sets, symbolChars)
	}
	return sets
}

// Generate creates a cryptographically secure random password based on the given options.
// Every selected character set is represented at least once.
func Generate(opts GeneratorOptions) (string, error) {
	if opts.Length < MinLength {
		return "", ErrLengthTooShort
	}
	if opts.Length > MaxLength {
		return "", ErrLengthTooLong
	}

	requiredSets := opts.charsets()
	if len(requiredSets) == 0 {
		return "", ErrNoCharacterTypes
	}

	var pool string
	for _, set := range requiredSets {
		pool += set
	}

	result := make([]byte, opts.Length)

	// MinLength covers the four sets, so each one gets a slot.
	for i, charset := range requiredSets {
		ch, err := randChar(charset)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	for i := len(requiredSets); i < opts.Length; i++ {
		ch, err := randChar(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	if err := secureShuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// Strength scores a password from 1 (weak) to 4 (strong) by length
// thresholds and the character classes present.
func Strength(password string) int {
	score := 0
	n := len([]rune(password))
	for _, threshold := range []int{8, 12, 16} {
		if n >= threshold {
			score++
		}
	}

	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsLetter(r):
			symbol = true
		}
	}
	for _, present := range []bool{lower, upper, digit, symbol} {
		if present {
			score++
		}
	}

	switch {
	case score <= 2:
		return 1
	case score <= 4:
		return 2
	case score <= 5:
		return 3
	default:
		return 4
	}
}

func pick(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}

// randChar picks a random character from charset using crypto/rand.
func randChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}

// secureShuffle performs a Fisher-Yates shuffle using crypto/rand.
func secureShuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return err
		}
		data[i], data[j.Int64()] = data[j.Int64()], data[i]
	}
	return nil
}
