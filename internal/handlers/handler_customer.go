package handlers

import (
	"encoding/json"
	"net/http"

	"storefront-bff/internal/middlewares"
)

// POSTCustomerHandler proxies a GraphQL query to the customer account
// API using the session's access token. The token never reaches the
// browser.
func POSTCustomerHandler(ctx *middlewares.AppContext) {
	tokens, ok := ensureFreshSession(ctx)
	if !ok {
		ctx.SetJSONError(http.StatusUnauthorized, "not authenticated")
		return
	}

	var req CustomerQueryRequest
	if err := json.NewDecoder(ctx.Request.Body).Decode(&req); err != nil || req.Query == "" {
		ctx.SetJSONError(http.StatusBadRequest, "a graphql query is required")
		return
	}

	if req.Variables == nil {
		req.Variables = map[string]interface{}{}
	}
	req.Variables["customerAccessToken"] = tokens.AccessToken

	data, err := ctx.Storefront.CustomerQuery(ctx, req.Query, req.Variables, tokens.AccessToken)
	if err != nil {
		ctx.Logger.Error("customer query failed", "error", err)
		ctx.SetJSONError(http.StatusBadGateway, "customer query failed")
		return
	}

	ctx.WriteJSON(http.StatusOK, map[string]json.RawMessage{"data": data})
}
