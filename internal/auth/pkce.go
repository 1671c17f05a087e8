package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"math/big"
)

// unreserved characters permitted in a PKCE code verifier (RFC 7636 §4.1)
const verifierCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-._~"

const (
	codeVerifierLength = 64
	stateLength        = 32
	nonceLength        = 32
)

func randomString(length int) string {
	b := make([]byte, length)
	max := big.NewInt(int64(len(verifierCharset)))

	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err)
		}
		b[i] = verifierCharset[n.Int64()]
	}

	return string(b)
}

// GenerateCodeVerifier returns a fresh PKCE code verifier.
func GenerateCodeVerifier() string {
	return randomString(codeVerifierLength)
}

// GenerateState returns an opaque value binding the authorization
// request to the session.
func GenerateState() string {
	return randomString(stateLength)
}

// GenerateNonce returns the nonce embedded into the id token.
func GenerateNonce() string {
	return randomString(nonceLength)
}

// GenerateCodeChallenge derives the S256 challenge for a verifier:
// base64url without padding over the SHA-256 digest.
func GenerateCodeChallenge(verifier string) string {
	hash := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(hash[:])
}
