package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"storefront-bff/internal/config"
	"storefront-bff/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

const (
	productsCacheKey      = "catalog:products"
	productCacheKeyPrefix = "catalog:product:"
)

const productFields = `
id
title
handle
description
availableForSale
images(first: 10) { edges { node { url altText } } }
priceRange {
  minVariantPrice { amount currencyCode }
  maxVariantPrice { amount currencyCode }
}
variants(first: 20) {
  edges {
    node {
      id
      title
      availableForSale
      quantityAvailable
      price { amount currencyCode }
      selectedOptions { name value }
    }
  }
}`

var productsQuery = fmt.Sprintf(`query Products($first: Int!) {
  products(first: $first) {
    edges { node { %s } }
  }
}`, productFields)

var productByHandleQuery = fmt.Sprintf(`query ProductByHandle($handle: String!) {
  productByHandle(handle: $handle) { %s }
}`, productFields)

const searchQuery = `query SearchProducts($query: String!, $first: Int!) {
  products(first: $first, query: $query) {
    edges {
      node {
        handle
        title
        images(first: 1) { edges { node { url } } }
      }
    }
  }
}`

// Service serves the catalog with a cache in front of the storefront
// API and forwards customer queries untouched.
type Service struct {
	client *Client
	cache  CacheProvider
	cfg    config.CatalogConfig
	logger *slog.Logger
}

func NewService(client *Client, cache CacheProvider, cfg config.CatalogConfig, logger *slog.Logger) *Service {
	return &Service{
		client: client,
		cache:  cache,
		cfg:    cfg,
		logger: logger,
	}
}

func (s *Service) GetProducts(ctx context.Context) ([]models.Product, error) {
	if data, ok := s.cache.Get(ctx, productsCacheKey); ok {
		var products []models.Product
		if err := json.Unmarshal(data, &products); err == nil {
			return products, nil
		}
		s.cache.Delete(ctx, productsCacheKey)
	}

	products, err := s.fetchProducts(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(products); err == nil {
		s.cache.Set(ctx, productsCacheKey, data, s.cfg.TTL)
	}

	return products, nil
}

func (s *Service) GetProduct(ctx context.Context, handle string) (*models.Product, error) {
	cacheKey := productCacheKeyPrefix + handle

	if data, ok := s.cache.Get(ctx, cacheKey); ok {
		var product models.Product
		if err := json.Unmarshal(data, &product); err == nil {
			return &product, nil
		}
		s.cache.Delete(ctx, cacheKey)
	}

	data, err := s.client.Query(ctx, "product_by_handle", productByHandleQuery, map[string]interface{}{
		"handle": handle,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		ProductByHandle *productNode `json:"productByHandle"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse product response: %w", err)
	}

	if payload.ProductByHandle == nil {
		return nil, ErrProductNotFound
	}

	product := payload.ProductByHandle.toModel()

	if data, err := json.Marshal(product); err == nil {
		s.cache.Set(ctx, cacheKey, data, s.cfg.TTL)
	}

	return &product, nil
}

// SearchProducts is not cached: the query space is unbounded and the
// result set is small.
func (s *Service) SearchProducts(ctx context.Context, query string) ([]models.SearchResult, error) {
	data, err := s.client.Query(ctx, "search_products", searchQuery, map[string]interface{}{
		"query": query,
		"first": s.cfg.SearchLimit,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Products struct {
			Edges []struct {
				Node struct {
					Handle string `json:"handle"`
					Title  string `json:"title"`
					Images imageConnection `json:"images"`
				} `json:"node"`
			} `json:"edges"`
		} `json:"products"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse search response: %w", err)
	}

	results := make([]models.SearchResult, 0, len(payload.Products.Edges))
	for _, edge := range payload.Products.Edges {
		result := models.SearchResult{
			Handle: edge.Node.Handle,
			Title:  edge.Node.Title,
		}
		if images := edge.Node.Images.toModels(); len(images) > 0 {
			result.ImageURL = images[0].URL
		}
		results = append(results, result)
	}

	return results, nil
}

func (s *Service) CustomerQuery(ctx context.Context, query string, variables map[string]interface{}, accessToken string) (json.RawMessage, error) {
	return s.client.CustomerQuery(ctx, query, variables, accessToken)
}

// Prefetch warms the product list cache. Called by the background
// refresh job.
func (s *Service) Prefetch(ctx context.Context) error {
	products, err := s.fetchProducts(ctx)
	if err != nil {
		return err
	}

	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("marshal products: %w", err)
	}

	s.cache.Set(ctx, productsCacheKey, data, s.cfg.TTL)
	s.logger.Debug("catalog prefetch complete", "products", len(products))

	return nil
}

func (s *Service) fetchProducts(ctx context.Context) ([]models.Product, error) {
	data, err := s.client.Query(ctx, "products", productsQuery, map[string]interface{}{
		"first": 50,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Products struct {
			Edges []struct {
				Node productNode `json:"node"`
			} `json:"edges"`
		} `json:"products"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse products response: %w", err)
	}

	products := make([]models.Product, 0, len(payload.Products.Edges))
	for _, edge := range payload.Products.Edges {
		products = append(products, edge.Node.toModel())
	}

	return products, nil
}

// GraphQL connection shapes flattened into the model types.

type imageConnection struct {
	Edges []struct {
		Node models.ProductImage `json:"node"`
	} `json:"edges"`
}

func (c imageConnection) toModels() []models.ProductImage {
	images := make([]models.ProductImage, 0, len(c.Edges))
	for _, edge := range c.Edges {
		images = append(images, edge.Node)
	}
	return images
}

type variantConnection struct {
	Edges []struct {
		Node models.ProductVariant `json:"node"`
	} `json:"edges"`
}

func (c variantConnection) toModels() []models.ProductVariant {
	variants := make([]models.ProductVariant, 0, len(c.Edges))
	for _, edge := range c.Edges {
		variants = append(variants, edge.Node)
	}
	return variants
}

type productNode struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	Handle           string            `json:"handle"`
	Description      string            `json:"description"`
	AvailableForSale bool              `json:"availableForSale"`
	Images           imageConnection   `json:"images"`
	PriceRange       models.PriceRange `json:"priceRange"`
	Variants         variantConnection `json:"variants"`
}

func (n productNode) toModel() models.Product {
	return models.Product{
		ID:               n.ID,
		Title:            n.Title,
		Handle:           n.Handle,
		Description:      n.Description,
		AvailableForSale: n.AvailableForSale,
		Images:           n.Images.toModels(),
		PriceRange:       n.PriceRange,
		Variants:         n.Variants.toModels(),
	}
}
