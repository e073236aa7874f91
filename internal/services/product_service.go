package services

import (
	"fmt"
	"log"

	"panchmev/internal/models"
	"panchmev/internal/repositories"
	"panchmev/internal/upstream"
)

// ProductService handles business logic related to the product catalog.
type ProductService struct {
	repo repositories.ProductRepository
	feed upstream.Feed // optional second source, nil when disabled
}

// NewProductService creates a new ProductService. feed may be nil.
func NewProductService(repo repositories.ProductRepository, feed upstream.Feed) *ProductService {
	return &ProductService{
		repo: repo,
		feed: feed,
	}
}

// ListAll returns the storefront catalog. The authoritative store wins:
// its rows come first and an upstream row with a conflicting ID is
// dropped. The sample catalog is returned only when both sources are
// empty, and is never persisted.
func (s *ProductService) ListAll() ([]models.Product, error) {
	stored, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	merged := stored
	if s.feed != nil {
		seen := make(map[string]bool, len(stored))
		for _, p := range stored {
			seen[p.ID] = true
		}
		external, err := s.feed.Fetch()
		if err != nil {
			// A dead feed must not take the storefront down.
			log.Printf("Catalog feed unavailable, serving store rows only: %v", err)
		} else {
			for _, p := range external {
				if !seen[p.ID] {
					merged = append(merged, p)
					seen[p.ID] = true
				}
			}
		}
	}

	if len(merged) == 0 {
		return sampleCatalog(), nil
	}
	return merged, nil
}

// GetByID retrieves a single product by its ID.
func (s *ProductService) GetByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// Create validates and stores a new product.
func (s *ProductService) Create(product *models.Product) error {
	if err := checkProductFields(product); err != nil {
		return err
	}
	return s.repo.Create(product)
}

// Update validates and replaces an existing product.
func (s *ProductService) Update(product *models.Product) error {
	if err := checkProductFields(product); err != nil {
		return err
	}
	return s.repo.Update(product)
}

// Delete removes a product by its ID.
func (s *ProductService) Delete(id string) error {
	return s.repo.Delete(id)
}

// checkProductFields enforces the business rules the admin form relies
// on: a known category and a rating on the 0-5 scale.
func checkProductFields(product *models.Product) error {
	if !models.ValidCategory(product.Category) {
		return fmt.Errorf("invalid product category: %s", product.Category)
	}
	if product.Rating < 0 || product.Rating > 5 {
		return fmt.Errorf("rating must be between 0 and 5, got %v", product.Rating)
	}
	return nil
}

// sampleCatalog is the demo fallback shown when neither the store nor
// the upstream feed has any rows.
func sampleCatalog() []models.Product {
	return []models.Product{
		{
			ID:          "sample-1",
			Name:        "Fresh Cow Milk",
			Category:    "Milk",
			Price:       "₹40/L",
			Rating:      4.8,
			Description: "100% pure cow milk from grass-fed cows",
			ImageURL:    "/static/samples/milk.jpg",
		},
		{
			ID:          "sample-2",
			Name:        "Organic Paneer",
			Category:    "Paneer",
			Price:       "₹280/kg",
			Rating:      4.9,
			Description: "Handmade fresh paneer, no preservatives",
			ImageURL:    "/static/samples/paneer.jpg",
		},
		{
			ID:          "sample-3",
			Name:        "Desi Ghee",
			Category:    "Ghee",
			Price:       "₹550/kg",
			Rating:      4.9,
			Description: "Traditional bilona method ghee",
			ImageURL:    "/static/samples/ghee.jpg",
		},
		{
			ID:          "sample-4",
			Name:        "Curd (Dahi)",
			Category:    "Curd",
			Price:       "₹60/pack",
			Rating:      4.7,
			Description: "Creamy homemade curd",
			ImageURL:    "/static/samples/curd.jpg",
		},
		{
			ID:          "sample-5",
			Name:        "Buttermilk",
			Category:    "Buttermilk",
			Price:       "₹30/glass",
			Rating:      4.6,
			Description: "Fresh spiced buttermilk",
			ImageURL:    "/static/samples/buttermilk.jpg",
		},
	}
}
