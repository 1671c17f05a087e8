package middlewares

import (
	"context"
	"net/http"
	"time"

	"storefront-bff/internal/models"
)

//go:generate mockgen -source=session_provider.go -destination=../mocks/mock_session_provider.go -package=mocks

// SessionProvider wraps the session manager so handlers can be tested
// against a mock instead of a live cookie store.
type SessionProvider interface {
	// LoadAndSave is the middleware that attaches the session cookie
	// to every request.
	LoadAndSave(next http.Handler) http.Handler

	// SetTokens stores the token set in the session, encrypting the
	// token material at rest, and clears any pending login artifacts.
	SetTokens(ctx context.Context, tokens models.TokenSet) error
	// GetTokens returns the stored token set. The second return is
	// false when no tokens are present or the stored values cannot be
	// decrypted.
	GetTokens(ctx context.Context) (models.TokenSet, bool)

	SetCustomerID(ctx context.Context, customerID string)
	GetCustomerID(ctx context.Context) string

	SetOauthState(ctx context.Context, state string)
	GetOauthState(ctx context.Context) string
	SetOauthNonce(ctx context.Context, nonce string)
	GetOauthNonce(ctx context.Context) string
	SetOauthCodeVerifier(ctx context.Context, verifier string)
	GetOauthCodeVerifier(ctx context.Context) string

	// ClearLoginArtifacts removes the state, nonce and code verifier
	// stored while a login is in flight.
	ClearLoginArtifacts(ctx context.Context)

	IsAuthenticated(ctx context.Context) bool
	Lifetime() time.Duration

	// Destroy deletes all session data and rotates the session token.
	Destroy(ctx context.Context) error
}
