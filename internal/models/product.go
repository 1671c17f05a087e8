package models

// Money is an amount plus ISO currency code as the storefront API returns it.
type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type PriceRange struct {
	MinVariantPrice Money `json:"minVariantPrice"`
	MaxVariantPrice Money `json:"maxVariantPrice"`
}

type ProductImage struct {
	URL     string `json:"url"`
	AltText string `json:"altText"`
}

type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type ProductVariant struct {
	ID                string           `json:"id"`
	Title             string           `json:"title"`
	AvailableForSale  bool             `json:"availableForSale"`
	QuantityAvailable int              `json:"quantityAvailable"`
	Price             Money            `json:"price"`
	SelectedOptions   []SelectedOption `json:"selectedOptions"`
}

// Product is the catalog entry shape served to the storefront UI.
type Product struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Handle           string           `json:"handle"`
	Description      string           `json:"description"`
	AvailableForSale bool             `json:"availableForSale"`
	Images           []ProductImage   `json:"images"`
	PriceRange       PriceRange       `json:"priceRange"`
	Variants         []ProductVariant `json:"variants"`
}

// SearchResult is the trimmed product shape returned by the search endpoint.
type SearchResult struct {
	Handle   string `json:"handle"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl,omitempty"`
}
