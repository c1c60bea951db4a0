package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

const (
	letters    = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits     = "0123456789"
	symbols    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
	lookalikes = "il1Lo0O"
)

// PasswordOptions controls the charset and length used by
// [GeneratePassword].
type PasswordOptions struct {
	Length            int
	IncludeDigits     bool
	IncludeSymbols    bool
	ExcludeLookalikes bool
}

// DefaultPasswordOptions mirrors the generator defaults of the client UI:
// 16 characters, digits and symbols on, lookalike characters excluded.
func DefaultPasswordOptions() PasswordOptions {
	return PasswordOptions{
		Length:            16,
		IncludeDigits:     true,
		IncludeSymbols:    true,
		ExcludeLookalikes: true,
	}
}

// GeneratePassword produces a random password from the OS CSPRNG using the
// charset selected by opts. Each character is drawn with rand.Int, so the
// distribution over the charset is uniform.
func GeneratePassword(opts PasswordOptions) (string, error) {
	if opts.Length <= 0 {
		return "", errors.New("password length must be positive")
	}

	charset := letters
	if opts.IncludeDigits {
		charset += digits
	}
	if opts.IncludeSymbols {
		charset += symbols
	}
	if opts.ExcludeLookalikes {
		var b strings.Builder
		for _, r := range charset {
			if !strings.ContainsRune(lookalikes, r) {
				b.WriteRune(r)
			}
		}
		charset = b.String()
	}

	max := big.NewInt(int64(len(charset)))
	out := make([]byte, opts.Length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate password: %w", err)
		}
		out[i] = charset[n.Int64()]
	}

	return string(out), nil
}
