package handlers

import (
	"errors"
	"net/http"
	"testing"

	"storefront-bff/internal/models"
	"storefront-bff/internal/testutil"
)

func TestGetSearchHandler(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/search?query=shirt")
	defer tc.Finish()

	results := []models.SearchResult{
		{Handle: "linen-shirt", Title: "Linen Shirt", ImageURL: "https://cdn.example.com/shirt.jpg"},
	}

	tc.MockStorefront.EXPECT().SearchProducts(tc.AppContext, "shirt").Return(results, nil).Times(1)

	tc.CallHandler(GETSearchHandler)

	tc.AssertStatus(t, http.StatusOK)

	response := tc.GetJSONResponseArray(t)
	if len(response) != 1 {
		t.Fatalf("expected 1 result, got %d", len(response))
	}
}

func TestGetSearchHandler_MissingQuery(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/search")
	defer tc.Finish()

	tc.CallHandler(GETSearchHandler)

	tc.AssertStatus(t, http.StatusBadRequest)
	tc.AssertJSONField(t, "error", "query parameter is required")
}

func TestGetSearchHandler_UpstreamFailure(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/search?query=shirt")
	defer tc.Finish()

	tc.MockStorefront.EXPECT().SearchProducts(tc.AppContext, "shirt").
		Return(nil, errors.New("throttled")).Times(1)

	tc.CallHandler(GETSearchHandler)

	tc.AssertStatus(t, http.StatusInternalServerError)
}
