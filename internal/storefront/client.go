package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"storefront-bff/internal/config"
	"storefront-bff/internal/metrics"
)

// Client talks GraphQL to the commerce platform. Catalog queries hit
// the storefront API with the shop level token, customer queries hit
// the customer account API with the customer's own token.
type Client struct {
	httpClient     *http.Client
	storefrontURL  string
	customerAPIURL string
	accessToken    string
}

func NewClient(cfg config.StorefrontConfig) *Client {
	return &Client{
		httpClient:     &http.Client{Timeout: 15 * time.Second},
		storefrontURL:  fmt.Sprintf("https://%s/api/%s/graphql.json", cfg.Domain, cfg.APIVersion),
		customerAPIURL: fmt.Sprintf("https://%s/account/customer/api/%s/graphql", cfg.Domain, cfg.APIVersion),
		accessToken:    cfg.AccessToken,
	}
}

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// Query runs a storefront API query. The operation label is only used
// for metrics.
func (c *Client) Query(ctx context.Context, operation, query string, variables map[string]interface{}) (json.RawMessage, error) {
	headers := map[string]string{
		"X-Shopify-Storefront-Access-Token": c.accessToken,
	}

	return c.do(ctx, operation, c.storefrontURL, headers, query, variables)
}

// CustomerQuery runs a customer account API query on behalf of a
// logged in customer.
func (c *Client) CustomerQuery(ctx context.Context, query string, variables map[string]interface{}, customerToken string) (json.RawMessage, error) {
	headers := map[string]string{
		"Authorization": "Bearer " + customerToken,
	}

	return c.do(ctx, "customer_query", c.customerAPIURL, headers, query, variables)
}

func (c *Client) do(ctx context.Context, operation, endpoint string, headers map[string]string, query string, variables map[string]interface{}) (json.RawMessage, error) {
	start := time.Now()

	data, err := c.post(ctx, endpoint, headers, query, variables)

	metrics.StorefrontRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.StorefrontErrors.WithLabelValues(operation).Inc()
	}

	return data, err
}

func (c *Client) post(ctx context.Context, endpoint string, headers map[string]string, query string, variables map[string]interface{}) (json.RawMessage, error) {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("marshal graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build graphql request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("graphql request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read graphql response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("graphql endpoint returned %d", resp.StatusCode)
	}

	var parsed graphQLResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return nil, fmt.Errorf("parse graphql response: %w", err)
	}

	if len(parsed.Errors) > 0 {
		messages := make([]string, 0, len(parsed.Errors))
		for _, gqlErr := range parsed.Errors {
			messages = append(messages, gqlErr.Message)
		}
		return nil, fmt.Errorf("graphql errors: %s", strings.Join(messages, "; "))
	}

	return parsed.Data, nil
}
