package handlers

import (
	"errors"
	"net/http"
	"testing"

	"storefront-bff/internal/auth"
	"storefront-bff/internal/testutil"
)

func TestGetCallbackHandler_Success(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/callback?code=abc&state=xyz")
	defer tc.Finish()

	tc.MockAuth.EXPECT().CompleteLogin(tc.AppContext).Return("gid://shopify/Customer/123", nil).Times(1)

	tc.CallHandler(GETCallbackHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertContentType(t, "text/html; charset=utf-8")
	tc.AssertBodyContains(t, "AUTH_SUCCESS")
	tc.AssertBodyContains(t, "gid://shopify/Customer/123")
	tc.AssertBodyContains(t, "window.opener.postMessage")
	tc.AssertBodyContains(t, "https://shop.example.com")
}

func TestGetCallbackHandler_LoginErrorReason(t *testing.T) {
	tests := []struct {
		name   string
		reason string
	}{
		{"state mismatch", auth.ReasonStateMismatch},
		{"missing parameters", auth.ReasonMissingParameters},
		{"missing verifier", auth.ReasonMissingVerifier},
		{"token exchange failed", auth.ReasonTokenExchangeFailed},
		{"provider error param", "access_denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/callback")
			defer tc.Finish()

			tc.MockAuth.EXPECT().CompleteLogin(tc.AppContext).
				Return("", &auth.LoginError{Reason: tt.reason}).Times(1)

			tc.CallHandler(GETCallbackHandler)

			tc.AssertStatus(t, http.StatusOK)
			tc.AssertContentType(t, "text/html; charset=utf-8")
			tc.AssertBodyContains(t, "AUTH_ERROR")
			tc.AssertBodyContains(t, tt.reason)
		})
	}
}

func TestGetCallbackHandler_UnexpectedErrorMapsToExchangeFailure(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/callback?code=abc&state=xyz")
	defer tc.Finish()

	tc.MockAuth.EXPECT().CompleteLogin(tc.AppContext).
		Return("", errors.New("connection reset")).Times(1)

	tc.CallHandler(GETCallbackHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertContentType(t, "text/html; charset=utf-8")
	tc.AssertBodyContains(t, "AUTH_ERROR")
	tc.AssertBodyContains(t, auth.ReasonTokenExchangeFailed)
}
