package handlers

import (
	"net/http"

	"storefront-bff/internal/middlewares"
)

// GETLoginHandler starts the PKCE flow and hands the authorization URL
// to the popup opener.
func GETLoginHandler(ctx *middlewares.AppContext) {
	if ctx.SessionManager.IsAuthenticated(ctx) {
		ctx.Logger.Debug("customer already authenticated")
		ctx.SetJSONStatus(http.StatusOK, "ok")
		return
	}

	authURL, err := ctx.Auth.BeginLogin(ctx)
	if err != nil {
		ctx.Logger.Error("failed to start login", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx.Logger.Debug("issued authorization url")

	ctx.WriteJSON(http.StatusOK, LoginResponse{AuthURL: authURL})
}
