package handlers

import (
	"fmt"
	"net/http"
	"net/url"

	"storefront-bff/internal/middlewares"
	"storefront-bff/internal/models"
)

// POSTLogoutHandler destroys the session and revokes the id token at
// the provider. Revocation is best effort: the customer is logged out
// locally no matter what the provider says.
func POSTLogoutHandler(ctx *middlewares.AppContext) {
	tokens, hadTokens := ctx.SessionManager.GetTokens(ctx)

	if err := ctx.SessionManager.Destroy(ctx); err != nil {
		ctx.Logger.Error("failed to destroy session", "error", err)
	}

	if hadTokens && tokens.IDToken != "" {
		if err := ctx.Auth.Revoke(ctx, tokens.IDToken); err != nil {
			ctx.Logger.Warn("token revocation failed", "error", err)
		}
	}

	ctx.Logger.Info("customer logged out")

	ctx.WriteJSON(http.StatusOK, LogoutResponse{Success: true})
}

// GETLogoutURLHandler returns the provider's logout URL so the main
// window can end the hosted session too.
func GETLogoutURLHandler(ctx *middlewares.AppContext) {
	endpoint, err := ctx.Auth.EndSessionEndpoint(ctx)
	if err != nil {
		ctx.Logger.Error("failed to resolve end session endpoint", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	logoutURL := endpoint

	if tokens, ok := ctx.SessionManager.GetTokens(ctx); ok && tokens.IDToken != "" {
		logoutURL = fmt.Sprintf("%s?id_token_hint=%s&post_logout_redirect_uri=%s",
			endpoint,
			url.QueryEscape(tokens.IDToken),
			url.QueryEscape(ctx.Config.CustomerAuth.AppURL+"/api/auth/logout-callback"),
		)
	}

	ctx.WriteJSON(http.StatusOK, LogoutURLResponse{LogoutURL: logoutURL})
}

// GETLogoutCallbackHandler is where the provider sends the browser
// after a hosted logout.
func GETLogoutCallbackHandler(ctx *middlewares.AppContext) {
	writePopup(ctx, models.PopupMessage{Type: models.PopupLogoutSuccess})
}
