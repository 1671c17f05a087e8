package handlers

import (
	"strings"
	"time"

	"storefront-bff/internal/middlewares"
	"storefront-bff/internal/models"
)

// tokens are treated as expired this long before their actual expiry
const refreshBuffer = 5 * time.Minute

// ensureFreshSession returns the session's token set, refreshing it
// first when it is within the expiry buffer. A failed refresh destroys
// the session. The second return reports whether the caller still has
// an authenticated session.
func ensureFreshSession(ctx *middlewares.AppContext) (models.TokenSet, bool) {
	tokens, ok := ctx.SessionManager.GetTokens(ctx)
	if !ok {
		return models.TokenSet{}, false
	}

	if !tokens.ExpiresWithin(time.Now(), refreshBuffer) {
		return tokens, true
	}

	// without a refresh token the access token is served until the
	// provider rejects it
	if tokens.RefreshToken == "" {
		return tokens, true
	}

	refreshed, err := ctx.Auth.Refresh(ctx, tokens.RefreshToken)
	if err != nil {
		ctx.Logger.Warn("token refresh failed, destroying session", "error", err)

		if destroyErr := ctx.SessionManager.Destroy(ctx); destroyErr != nil {
			ctx.Logger.Error("failed to destroy session", "error", destroyErr)
		}

		return models.TokenSet{}, false
	}

	if refreshed.IDToken == "" {
		refreshed.IDToken = tokens.IDToken
	}

	if err := ctx.SessionManager.SetTokens(ctx, refreshed); err != nil {
		ctx.Logger.Error("failed to store refreshed tokens", "error", err)
		return models.TokenSet{}, false
	}

	return refreshed, true
}

// RedactEmail is used to redact emails (mostly for logs)
func RedactEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return ""
	}

	localRunes := []rune(parts[0])
	domain := parts[1]

	if len(localRunes) <= 2 {
		return strings.Repeat("*", len(localRunes)) + "@" + domain
	}

	first := string(localRunes[0])
	last := string(localRunes[len(localRunes)-1])
	middle := strings.Repeat("*", len(localRunes)-2)

	return first + middle + last + "@" + domain
}
