package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePassword_Length(t *testing.T) {
	for _, length := range []int{1, 8, 16, 64} {
		opts := DefaultPasswordOptions()
		opts.Length = length

		pw, err := GeneratePassword(opts)
		require.NoError(t, err)
		assert.Len(t, pw, length)
	}
}

func TestGeneratePassword_InvalidLength(t *testing.T) {
	_, err := GeneratePassword(PasswordOptions{Length: 0})
	require.Error(t, err)

	_, err = GeneratePassword(PasswordOptions{Length: -5})
	require.Error(t, err)
}

func TestGeneratePassword_CharsetOptions(t *testing.T) {
	opts := PasswordOptions{Length: 256}

	pw, err := GeneratePassword(opts)
	require.NoError(t, err)
	assert.NotContains(t, pw, "0")
	assert.NotContains(t, pw, "!")

	opts.ExcludeLookalikes = true
	pw, err = GeneratePassword(opts)
	require.NoError(t, err)
	for _, r := range lookalikes {
		assert.NotContains(t, pw, string(r))
	}
}

func TestGeneratePassword_Distinct(t *testing.T) {
	opts := DefaultPasswordOptions()

	first, err := GeneratePassword(opts)
	require.NoError(t, err)
	second, err := GeneratePassword(opts)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.False(t, strings.ContainsAny(first, " \t\n"))
}
