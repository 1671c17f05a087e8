package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCipherRoundTrip(t *testing.T) {
	c, err := NewTokenCipher("an example session secret of sufficient length")
	require.NoError(t, err)

	encrypted, err := c.Encrypt("shcat_access_token_value")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encrypted, "enc:v1:"))
	assert.NotContains(t, encrypted, "shcat_access_token_value")

	plain, err := c.Decrypt(encrypted)
	require.NoError(t, err)
	assert.Equal(t, "shcat_access_token_value", plain)
}

func TestTokenCipherDistinctCiphertexts(t *testing.T) {
	c, err := NewTokenCipher("an example session secret of sufficient length")
	require.NoError(t, err)

	first, err := c.Encrypt("same value")
	require.NoError(t, err)
	second, err := c.Encrypt("same value")
	require.NoError(t, err)

	// a fresh nonce is used for every encryption
	assert.NotEqual(t, first, second)
}

func TestTokenCipherRejectsTamperedValue(t *testing.T) {
	c, err := NewTokenCipher("an example session secret of sufficient length")
	require.NoError(t, err)

	encrypted, err := c.Encrypt("value")
	require.NoError(t, err)

	tampered := encrypted[:len(encrypted)-2] + "AA"
	if tampered == encrypted {
		tampered = encrypted[:len(encrypted)-2] + "BB"
	}

	_, err = c.Decrypt(tampered)
	assert.Error(t, err)
}

func TestTokenCipherRejectsWrongKey(t *testing.T) {
	first, err := NewTokenCipher("an example session secret of sufficient length")
	require.NoError(t, err)
	second, err := NewTokenCipher("a different session secret of sufficient length")
	require.NoError(t, err)

	encrypted, err := first.Encrypt("value")
	require.NoError(t, err)

	_, err = second.Decrypt(encrypted)
	assert.Error(t, err)
}

func TestTokenCipherRejectsUnprefixedValue(t *testing.T) {
	c, err := NewTokenCipher("an example session secret of sufficient length")
	require.NoError(t, err)

	_, err = c.Decrypt("plaintext value")
	assert.Error(t, err)
}

func TestNewTokenCipherEmptySecret(t *testing.T) {
	_, err := NewTokenCipher("  ")
	assert.ErrorIs(t, err, ErrInvalidCipherKey)
}
