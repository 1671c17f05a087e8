package handlers

import (
	"errors"
	"net/http"

	"storefront-bff/internal/middlewares"
	"storefront-bff/internal/storefront"

	"github.com/go-chi/chi/v5"
)

func GETProductsHandler(ctx *middlewares.AppContext) {
	products, err := ctx.Storefront.GetProducts(ctx)
	if err != nil {
		ctx.Logger.Error("failed to fetch products", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx.WriteJSON(http.StatusOK, products)
}

func GETProductHandler(ctx *middlewares.AppContext) {
	handle := chi.URLParam(ctx.Request, "handle")
	if handle == "" {
		ctx.SetJSONError(http.StatusBadRequest, "product handle is required")
		return
	}

	product, err := ctx.Storefront.GetProduct(ctx, handle)
	if err != nil {
		if errors.Is(err, storefront.ErrProductNotFound) {
			ctx.SetJSONError(http.StatusNotFound, "product not found")
			return
		}

		ctx.Logger.Error("failed to fetch product", "handle", handle, "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx.WriteJSON(http.StatusOK, product)
}
