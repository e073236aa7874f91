package upstream

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"panchmev/internal/models"
)

// Feed fetches catalog rows from an upstream product source. The
// storefront previously read two product sources; the legacy REST feed
// survives behind this interface until its rows are migrated.
type Feed interface {
	Fetch() ([]models.Product, error)
}

// HTTPFeed reads products from a JSON endpoint returning a product array.
type HTTPFeed struct {
	url    string
	client *http.Client
}

// NewHTTPFeed creates a feed reading from the given URL.
func NewHTTPFeed(url string) *HTTPFeed {
	return &HTTPFeed{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetch performs a single GET; there are no retries, a failed fetch just
// leaves the catalog with the authoritative store's rows.
func (f *HTTPFeed) Fetch() ([]models.Product, error) {
	resp, err := f.client.Get(f.url)
	if err != nil {
		return nil, fmt.Errorf("catalog feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog feed returned status %d", resp.StatusCode)
	}

	var products []models.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("failed to decode catalog feed: %w", err)
	}
	return products, nil
}
