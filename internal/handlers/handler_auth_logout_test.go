package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"storefront-bff/internal/models"
	"storefront-bff/internal/testutil"
)

func TestPostLogoutHandler_Success(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/auth/logout")
	defer tc.Finish()

	tokens := models.TokenSet{
		AccessToken: "access",
		IDToken:     "id-token",
		ExpiresAt:   time.Now().Add(time.Hour),
	}

	tc.MockSession.EXPECT().GetTokens(tc.AppContext).Return(tokens, true).Times(1)
	tc.MockSession.EXPECT().Destroy(tc.AppContext).Return(nil).Times(1)
	tc.MockAuth.EXPECT().Revoke(tc.AppContext, "id-token").Return(nil).Times(1)

	tc.CallHandler(POSTLogoutHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONBool(t, "success", true)
}

func TestPostLogoutHandler_RevokeFailureStillSucceeds(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/auth/logout")
	defer tc.Finish()

	tokens := models.TokenSet{
		AccessToken: "access",
		IDToken:     "id-token",
		ExpiresAt:   time.Now().Add(time.Hour),
	}

	tc.MockSession.EXPECT().GetTokens(tc.AppContext).Return(tokens, true).Times(1)
	tc.MockSession.EXPECT().Destroy(tc.AppContext).Return(nil).Times(1)
	tc.MockAuth.EXPECT().Revoke(tc.AppContext, "id-token").
		Return(errors.New("provider unavailable")).Times(1)

	tc.CallHandler(POSTLogoutHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONBool(t, "success", true)
	tc.AssertLogsContainMessage(t, slog.LevelWarn, "token revocation failed")
}

func TestPostLogoutHandler_NoSessionIsIdempotent(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/auth/logout")
	defer tc.Finish()

	tc.MockSession.EXPECT().GetTokens(tc.AppContext).Return(models.TokenSet{}, false).Times(1)
	tc.MockSession.EXPECT().Destroy(tc.AppContext).Return(nil).Times(1)

	tc.CallHandler(POSTLogoutHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONBool(t, "success", true)
}

func TestPostLogoutHandler_DestroyFailureStillSucceeds(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/auth/logout")
	defer tc.Finish()

	tc.MockSession.EXPECT().GetTokens(tc.AppContext).Return(models.TokenSet{}, false).Times(1)
	tc.MockSession.EXPECT().Destroy(tc.AppContext).Return(errors.New("store unavailable")).Times(1)

	tc.CallHandler(POSTLogoutHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONBool(t, "success", true)
}

func TestGetLogoutURLHandler_WithSession(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/logout-url")
	defer tc.Finish()

	tokens := models.TokenSet{
		AccessToken: "access",
		IDToken:     "id-token",
		ExpiresAt:   time.Now().Add(time.Hour),
	}

	tc.MockAuth.EXPECT().EndSessionEndpoint(tc.AppContext).
		Return("https://shop.example.com/logout", nil).Times(1)
	tc.MockSession.EXPECT().GetTokens(tc.AppContext).Return(tokens, true).Times(1)

	tc.CallHandler(GETLogoutURLHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONString(t, "logoutUrl",
		"https://shop.example.com/logout?id_token_hint=id-token&post_logout_redirect_uri=https%3A%2F%2Fshop.example.com%2Fapi%2Fauth%2Flogout-callback")
}

func TestGetLogoutURLHandler_WithoutSession(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/logout-url")
	defer tc.Finish()

	tc.MockAuth.EXPECT().EndSessionEndpoint(tc.AppContext).
		Return("https://shop.example.com/logout", nil).Times(1)
	tc.MockSession.EXPECT().GetTokens(tc.AppContext).Return(models.TokenSet{}, false).Times(1)

	tc.CallHandler(GETLogoutURLHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONString(t, "logoutUrl", "https://shop.example.com/logout")
}

func TestGetLogoutURLHandler_DiscoveryFailure(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/logout-url")
	defer tc.Finish()

	tc.MockAuth.EXPECT().EndSessionEndpoint(tc.AppContext).
		Return("", errors.New("no end_session_endpoint")).Times(1)

	tc.CallHandler(GETLogoutURLHandler)

	tc.AssertStatus(t, http.StatusInternalServerError)
	tc.AssertJSONField(t, "error", "Internal Server Error")
}

func TestGetLogoutCallbackHandler(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/logout-callback")
	defer tc.Finish()

	tc.CallHandler(GETLogoutCallbackHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertContentType(t, "text/html; charset=utf-8")
	tc.AssertBodyContains(t, "LOGOUT_SUCCESS")
	tc.AssertBodyContains(t, "window.opener.postMessage")
}
