package handlers

import (
	"errors"

	"storefront-bff/internal/auth"
	"storefront-bff/internal/metrics"
	"storefront-bff/internal/middlewares"
	"storefront-bff/internal/models"
)

// GETCallbackHandler finishes the PKCE flow. Whatever happens, the
// response is an HTML page that reports the outcome to the opener and
// closes the popup.
func GETCallbackHandler(ctx *middlewares.AppContext) {
	customerID, err := ctx.Auth.CompleteLogin(ctx)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("failure").Inc()

		reason := auth.ReasonTokenExchangeFailed

		var loginErr *auth.LoginError
		if errors.As(err, &loginErr) {
			reason = loginErr.Reason
		}

		ctx.Logger.Warn("login failed", "reason", reason, "error", err)

		writePopup(ctx, models.PopupMessage{
			Type:  models.PopupAuthError,
			Error: reason,
		})
		return
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	ctx.Logger.Info("customer logged in", "customer_id", customerID)

	writePopup(ctx, models.PopupMessage{
		Type:       models.PopupAuthSuccess,
		CustomerID: customerID,
	})
}
