package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"storefront-bff/internal/models"
	"storefront-bff/internal/storefront"
	"storefront-bff/internal/testutil"

	"github.com/go-chi/chi/v5"
)

func TestGetProductsHandler(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/products")
	defer tc.Finish()

	products := []models.Product{
		{ID: "gid://shopify/Product/1", Title: "Linen Shirt", Handle: "linen-shirt"},
	}

	tc.MockStorefront.EXPECT().GetProducts(tc.AppContext).Return(products, nil).Times(1)

	tc.CallHandler(GETProductsHandler)

	tc.AssertStatus(t, http.StatusOK)

	response := tc.GetJSONResponseArray(t)
	if len(response) != 1 {
		t.Fatalf("expected 1 product, got %d", len(response))
	}
}

func TestGetProductsHandler_UpstreamFailure(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/products")
	defer tc.Finish()

	tc.MockStorefront.EXPECT().GetProducts(tc.AppContext).
		Return(nil, errors.New("throttled")).Times(1)

	tc.CallHandler(GETProductsHandler)

	tc.AssertStatus(t, http.StatusInternalServerError)
	tc.AssertJSONField(t, "error", "Internal Server Error")
}

// withURLParam injects a chi route parameter into the test request.
func withURLParam(tc *testutil.TestContext, key, value string) {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)

	req := tc.Request.WithContext(context.WithValue(tc.Request.Context(), chi.RouteCtxKey, rctx))
	tc.Request = req
	tc.AppContext.Request = req
}

func TestGetProductHandler(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/products/linen-shirt")
	defer tc.Finish()

	withURLParam(tc, "handle", "linen-shirt")

	product := &models.Product{ID: "gid://shopify/Product/1", Title: "Linen Shirt", Handle: "linen-shirt"}
	tc.MockStorefront.EXPECT().GetProduct(tc.AppContext, "linen-shirt").Return(product, nil).Times(1)

	tc.CallHandler(GETProductHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONString(t, "handle", "linen-shirt")
}

func TestGetProductHandler_NotFound(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/products/no-such-product")
	defer tc.Finish()

	withURLParam(tc, "handle", "no-such-product")

	tc.MockStorefront.EXPECT().GetProduct(tc.AppContext, "no-such-product").
		Return(nil, storefront.ErrProductNotFound).Times(1)

	tc.CallHandler(GETProductHandler)

	tc.AssertStatus(t, http.StatusNotFound)
	tc.AssertJSONField(t, "error", "product not found")
}
