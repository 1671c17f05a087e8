package handlers

import (
	"net/http"

	"storefront-bff/internal/middlewares"
)

// GETMeHandler reports the session state, refreshing the access token
// when it is close to expiry.
func GETMeHandler(ctx *middlewares.AppContext) {
	_, ok := ensureFreshSession(ctx)
	if !ok {
		ctx.WriteJSON(http.StatusOK, MeResponse{Authenticated: false})
		return
	}

	ctx.WriteJSON(http.StatusOK, MeResponse{
		Authenticated: true,
		CustomerID:    ctx.SessionManager.GetCustomerID(ctx),
	})
}
