package middlewares

import (
	"context"
	"encoding/json"

	"storefront-bff/internal/models"
)

//go:generate mockgen -source=storefront_provider.go -destination=../mocks/mock_storefront_provider.go -package=mocks

// StorefrontProvider exposes the catalog and customer operations backed
// by the Shopify storefront API.
type StorefrontProvider interface {
	GetProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, handle string) (*models.Product, error)
	SearchProducts(ctx context.Context, query string) ([]models.SearchResult, error)

	// CustomerQuery forwards a GraphQL query to the customer account
	// API using the customer's access token.
	CustomerQuery(ctx context.Context, query string, variables map[string]interface{}, accessToken string) (json.RawMessage, error)
}
