package middlewares

import (
	"context"

	"storefront-bff/internal/models"
)

//go:generate mockgen -source=auth_provider.go -destination=../mocks/mock_auth_provider.go -package=mocks

// AuthProvider performs the OAuth authorization code flow against the
// customer account endpoints.
type AuthProvider interface {
	// BeginLogin generates the PKCE material, stores it in the session
	// and returns the provider authorization URL.
	BeginLogin(ctx *AppContext) (string, error)

	// CompleteLogin validates the callback request, exchanges the code
	// for tokens and persists them in the session. It returns the
	// customer id extracted from the id token.
	CompleteLogin(ctx *AppContext) (string, error)

	// Refresh exchanges a refresh token for a new token set.
	Refresh(ctx context.Context, refreshToken string) (models.TokenSet, error)

	// Revoke invalidates the given id token at the provider.
	Revoke(ctx context.Context, idToken string) error

	// EndSessionEndpoint returns the provider logout URL from the
	// discovery document.
	EndSessionEndpoint(ctx context.Context) (string, error)
}
