package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"storefront-bff/internal/models"
	"storefront-bff/internal/testutil"
)

func TestGetMeHandler_NotAuthenticated(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/me")
	defer tc.Finish()

	tc.MockSession.EXPECT().GetTokens(tc.AppContext).Return(models.TokenSet{}, false).Times(1)

	tc.CallHandler(GETMeHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONBool(t, "authenticated", false)
	tc.AssertJSONFieldAbsent(t, "customerId")
}

func TestGetMeHandler_ValidToken(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/me")
	defer tc.Finish()

	tokens := models.TokenSet{
		AccessToken: "access",
		ExpiresAt:   time.Now().Add(time.Hour),
	}

	tc.MockSession.EXPECT().GetTokens(tc.AppContext).Return(tokens, true).Times(1)
	tc.MockSession.EXPECT().GetCustomerID(tc.AppContext).Return("gid://shopify/Customer/1").Times(1)

	tc.CallHandler(GETMeHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONBool(t, "authenticated", true)
	tc.AssertJSONString(t, "customerId", "gid://shopify/Customer/1")
}

func TestGetMeHandler_RefreshesExpiringToken(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/me")
	defer tc.Finish()

	old := models.TokenSet{
		AccessToken:  "old-access",
		RefreshToken: "old-refresh",
		IDToken:      "old-id-token",
		ExpiresAt:    time.Now().Add(time.Minute),
	}
	refreshed := models.TokenSet{
		AccessToken:  "new-access",
		RefreshToken: "new-refresh",
		ExpiresAt:    time.Now().Add(time.Hour),
	}

	tc.MockSession.EXPECT().GetTokens(tc.AppContext).Return(old, true).Times(1)
	tc.MockAuth.EXPECT().Refresh(tc.AppContext, "old-refresh").Return(refreshed, nil).Times(1)

	// the old id token is kept when the refresh response has none
	stored := refreshed
	stored.IDToken = "old-id-token"
	tc.MockSession.EXPECT().SetTokens(tc.AppContext, stored).Return(nil).Times(1)
	tc.MockSession.EXPECT().GetCustomerID(tc.AppContext).Return("gid://shopify/Customer/1").Times(1)

	tc.CallHandler(GETMeHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONBool(t, "authenticated", true)
}

func TestGetMeHandler_RefreshFailureDestroysSession(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/me")
	defer tc.Finish()

	old := models.TokenSet{
		AccessToken:  "old-access",
		RefreshToken: "old-refresh",
		ExpiresAt:    time.Now().Add(-time.Minute),
	}

	tc.MockSession.EXPECT().GetTokens(tc.AppContext).Return(old, true).Times(1)
	tc.MockAuth.EXPECT().Refresh(tc.AppContext, "old-refresh").
		Return(models.TokenSet{}, errors.New("invalid_grant")).Times(1)
	tc.MockSession.EXPECT().Destroy(tc.AppContext).Return(nil).Times(1)

	tc.CallHandler(GETMeHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONBool(t, "authenticated", false)
}

func TestGetMeHandler_ExpiredWithoutRefreshTokenStaysAuthenticated(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/me")
	defer tc.Finish()

	tokens := models.TokenSet{
		AccessToken: "access",
		ExpiresAt:   time.Now().Add(-time.Minute),
	}

	tc.MockSession.EXPECT().GetTokens(tc.AppContext).Return(tokens, true).Times(1)
	tc.MockSession.EXPECT().GetCustomerID(tc.AppContext).Return("gid://shopify/Customer/1").Times(1)

	tc.CallHandler(GETMeHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONBool(t, "authenticated", true)
}

func TestGetMeHandler_ExpiryBoundary(t *testing.T) {
	t.Run("exactly at the buffer boundary is expired", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/me")
		defer tc.Finish()

		tokens := models.TokenSet{
			AccessToken:  "access",
			RefreshToken: "refresh",
			ExpiresAt:    time.Now().Add(refreshBuffer),
		}

		tc.MockSession.EXPECT().GetTokens(tc.AppContext).Return(tokens, true).Times(1)
		tc.MockAuth.EXPECT().Refresh(tc.AppContext, "refresh").
			Return(models.TokenSet{}, errors.New("denied")).Times(1)
		tc.MockSession.EXPECT().Destroy(tc.AppContext).Return(nil).Times(1)

		tc.CallHandler(GETMeHandler)

		tc.AssertJSONBool(t, "authenticated", false)
	})

	t.Run("just past the buffer boundary is not expired", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/me")
		defer tc.Finish()

		tokens := models.TokenSet{
			AccessToken:  "access",
			RefreshToken: "refresh",
			ExpiresAt:    time.Now().Add(refreshBuffer + time.Second),
		}

		tc.MockSession.EXPECT().GetTokens(tc.AppContext).Return(tokens, true).Times(1)
		tc.MockSession.EXPECT().GetCustomerID(tc.AppContext).Return("gid://shopify/Customer/1").Times(1)

		tc.CallHandler(GETMeHandler)

		tc.AssertJSONBool(t, "authenticated", true)
	})
}
