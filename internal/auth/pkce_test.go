package auth

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var verifierPattern = regexp.MustCompile(`^[A-Za-z0-9\-._~]+$`)

func TestGenerateCodeVerifier(t *testing.T) {
	verifier := GenerateCodeVerifier()

	assert.Len(t, verifier, 64)
	assert.Regexp(t, verifierPattern, verifier)

	assert.NotEqual(t, verifier, GenerateCodeVerifier())
}

func TestGenerateStateAndNonce(t *testing.T) {
	state := GenerateState()
	nonce := GenerateNonce()

	assert.Len(t, state, 32)
	assert.Len(t, nonce, 32)
	assert.Regexp(t, verifierPattern, state)
	assert.Regexp(t, verifierPattern, nonce)
	assert.NotEqual(t, state, nonce)
}

func TestGenerateCodeChallenge(t *testing.T) {
	// appendix B of RFC 7636
	verifier := "dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk"
	expected := "E9Melhoa2OwvFrEMTJguCHaoeK1t8URWbuGJSstw-cM"

	assert.Equal(t, expected, GenerateCodeChallenge(verifier))

	// deterministic for the same input
	assert.Equal(t, GenerateCodeChallenge(verifier), GenerateCodeChallenge(verifier))
}
