package auth

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront-bff/internal/config"
	"storefront-bff/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionManager(t *testing.T) *SessionManager {
	t.Helper()

	cfg := &config.Config{
		Sessions: config.SessionConfig{
			Store:    "memory",
			Name:     "shopify_auth_session",
			Secret:   strings.Repeat("s", 32),
			Lifetime: time.Hour,
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	sm, err := NewSessionManager(logger, cfg)
	require.NoError(t, err)

	return sm
}

// withSession runs fn inside a request wrapped by the session
// middleware so the scs context is populated.
func withSession(t *testing.T, s *SessionManager, fn func(ctx context.Context)) {
	t.Helper()

	handler := s.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fn(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)
}

func TestSessionManagerTokensRoundTrip(t *testing.T) {
	s := newTestSessionManager(t)

	expiresAt := time.Now().Add(time.Hour).Truncate(time.Millisecond)

	withSession(t, s, func(ctx context.Context) {
		tokens := models.TokenSet{
			AccessToken:  "access-value",
			RefreshToken: "refresh-value",
			IDToken:      "id-token-value",
			ExpiresAt:    expiresAt,
		}

		require.NoError(t, s.SetTokens(ctx, tokens))

		got, ok := s.GetTokens(ctx)
		require.True(t, ok)
		assert.Equal(t, "access-value", got.AccessToken)
		assert.Equal(t, "refresh-value", got.RefreshToken)
		assert.Equal(t, "id-token-value", got.IDToken)
		assert.True(t, got.ExpiresAt.Equal(expiresAt))

		assert.True(t, s.IsAuthenticated(ctx))
	})
}

func TestSessionManagerTokensEncryptedAtRest(t *testing.T) {
	s := newTestSessionManager(t)

	withSession(t, s, func(ctx context.Context) {
		require.NoError(t, s.SetTokens(ctx, models.TokenSet{
			AccessToken:  "access-value",
			RefreshToken: "refresh-value",
			ExpiresAt:    time.Now().Add(time.Hour),
		}))

		stored := s.GetString(ctx, string(SessionKeyAccessToken))
		assert.True(t, strings.HasPrefix(stored, "enc:v1:"))
		assert.NotContains(t, stored, "access-value")

		stored = s.GetString(ctx, string(SessionKeyRefreshToken))
		assert.True(t, strings.HasPrefix(stored, "enc:v1:"))
		assert.NotContains(t, stored, "refresh-value")
	})
}

func TestSessionManagerSetTokensClearsLoginArtifacts(t *testing.T) {
	s := newTestSessionManager(t)

	withSession(t, s, func(ctx context.Context) {
		s.SetOauthState(ctx, "state-value")
		s.SetOauthNonce(ctx, "nonce-value")
		s.SetOauthCodeVerifier(ctx, "verifier-value")

		require.NoError(t, s.SetTokens(ctx, models.TokenSet{
			AccessToken: "access-value",
			ExpiresAt:   time.Now().Add(time.Hour),
		}))

		assert.Empty(t, s.GetOauthState(ctx))
		assert.Empty(t, s.GetOauthNonce(ctx))
		assert.Empty(t, s.GetOauthCodeVerifier(ctx))
	})
}

func TestSessionManagerGetTokensEmptySession(t *testing.T) {
	s := newTestSessionManager(t)

	withSession(t, s, func(ctx context.Context) {
		_, ok := s.GetTokens(ctx)
		assert.False(t, ok)
		assert.False(t, s.IsAuthenticated(ctx))
	})
}

func TestSessionManagerGetTokensCorruptValue(t *testing.T) {
	s := newTestSessionManager(t)

	withSession(t, s, func(ctx context.Context) {
		s.Put(ctx, string(SessionKeyAccessToken), "enc:v1:not-valid")

		_, ok := s.GetTokens(ctx)
		assert.False(t, ok)
	})
}

func TestSessionManagerDestroy(t *testing.T) {
	s := newTestSessionManager(t)

	withSession(t, s, func(ctx context.Context) {
		require.NoError(t, s.SetTokens(ctx, models.TokenSet{
			AccessToken: "access-value",
			ExpiresAt:   time.Now().Add(time.Hour),
		}))
		s.SetCustomerID(ctx, "gid://shopify/Customer/1")

		require.NoError(t, s.Destroy(ctx))

		_, ok := s.GetTokens(ctx)
		assert.False(t, ok)
		assert.Empty(t, s.GetCustomerID(ctx))

		// destroying an already destroyed session is not an error
		require.NoError(t, s.Destroy(ctx))
	})
}
