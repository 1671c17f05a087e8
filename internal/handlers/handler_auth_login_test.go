package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"storefront-bff/internal/testutil"
)

const expectedAuthURL = "https://shop.example.com/oauth/authorize?state=12345"

func TestGetLoginHandler_ShouldReturnAuthURL(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/login")
	defer tc.Finish()

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(false).Times(1)
	tc.MockAuth.EXPECT().BeginLogin(tc.AppContext).Return(expectedAuthURL, nil).Times(1)

	tc.CallHandler(GETLoginHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONField(t, "authUrl", expectedAuthURL)
}

func TestGetLoginHandler_ShouldShortCircuitAuthenticatedSession(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/login")
	defer tc.Finish()

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(true).Times(1)

	tc.CallHandler(GETLoginHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONField(t, "status", "ok")
	tc.AssertLogsContainMessage(t, slog.LevelDebug, "customer already authenticated")
}

func TestGetLoginHandler_ShouldErrorOnBeginLoginError(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/login")
	defer tc.Finish()

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(false).Times(1)
	tc.MockAuth.EXPECT().BeginLogin(tc.AppContext).Return("", errors.New("discovery unreachable")).Times(1)

	tc.CallHandler(GETLoginHandler)

	tc.AssertStatus(t, http.StatusInternalServerError)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONField(t, "error", "Internal Server Error")
	tc.AssertLogsContainMessage(t, slog.LevelError, "failed to start login")
}
