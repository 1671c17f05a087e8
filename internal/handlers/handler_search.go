package handlers

import (
	"net/http"

	"storefront-bff/internal/middlewares"
)

func GETSearchHandler(ctx *middlewares.AppContext) {
	query := ctx.Request.URL.Query().Get("query")
	if query == "" {
		ctx.SetJSONError(http.StatusBadRequest, "query parameter is required")
		return
	}

	results, err := ctx.Storefront.SearchProducts(ctx, query)
	if err != nil {
		ctx.Logger.Error("product search failed", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx.WriteJSON(http.StatusOK, results)
}
