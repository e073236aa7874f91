package services_test

import (
	"fmt"
	"testing"

	"panchmev/internal/models"
	"panchmev/internal/repositories"
	"panchmev/internal/services"

	"github.com/stretchr/testify/assert"
)

// stubFeed is an in-memory upstream.Feed.
type stubFeed struct {
	products []models.Product
	err      error
}

func (s stubFeed) Fetch() ([]models.Product, error) {
	return s.products, s.err
}

func TestProductService_ListAll_StoreWins(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	stored := &models.Product{ID: "p-1", Name: "Store Milk", Category: "Milk", Price: "₹40/L", Rating: 4.5}
	assert.NoError(t, repo.Create(stored))

	feed := stubFeed{products: []models.Product{
		{ID: "p-1", Name: "Feed Milk", Category: "Milk", Price: "₹99/L"}, // conflicting ID, dropped
		{ID: "p-2", Name: "Feed Ghee", Category: "Ghee", Price: "₹550/kg"},
	}}

	svc := services.NewProductService(repo, feed)
	products, err := svc.ListAll()
	assert.NoError(t, err)
	assert.Len(t, products, 2)

	byID := make(map[string]models.Product)
	for _, p := range products {
		byID[p.ID] = p
	}
	assert.Equal(t, "Store Milk", byID["p-1"].Name, "store row must win over feed row")
	assert.Equal(t, "Feed Ghee", byID["p-2"].Name)
}

func TestProductService_ListAll_FeedFailureKeepsStore(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	assert.NoError(t, repo.Create(&models.Product{ID: "p-1", Name: "Store Milk", Category: "Milk", Price: "₹40/L"}))

	svc := services.NewProductService(repo, stubFeed{err: fmt.Errorf("feed down")})
	products, err := svc.ListAll()
	assert.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestProductService_ListAll_SampleFallback(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	svc := services.NewProductService(repo, stubFeed{})

	products, err := svc.ListAll()
	assert.NoError(t, err)
	assert.NotEmpty(t, products, "empty store and feed fall back to the sample catalog")
	for _, p := range products {
		assert.True(t, models.ValidCategory(p.Category))
	}

	// The fallback is never persisted.
	stored, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Empty(t, stored)
}

func TestProductService_CreateValidation(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	svc := services.NewProductService(repo, nil)

	err := svc.Create(&models.Product{Name: "Mystery", Category: "Gadgets", Price: "₹1", Rating: 3})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid product category")

	err = svc.Create(&models.Product{Name: "Milk", Category: "Milk", Price: "₹40/L", Rating: 7})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "rating must be between 0 and 5")

	ok := &models.Product{Name: "Milk", Category: "Milk", Price: "₹40/L", Rating: 4.5}
	assert.NoError(t, svc.Create(ok))
	assert.NotEmpty(t, ok.ID)
}

func TestProductService_Delete(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	svc := services.NewProductService(repo, nil)

	p := &models.Product{Name: "Milk", Category: "Milk", Price: "₹40/L", Rating: 4.5}
	assert.NoError(t, svc.Create(p))
	assert.NoError(t, svc.Delete(p.ID))

	_, err := svc.GetByID(p.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
