package services_test

import (
	"testing"

	"panchmev/internal/models"
	"panchmev/internal/repositories"
	"panchmev/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestParseTotal(t *testing.T) {
	assert.Equal(t, 100.0, services.ParseTotal("100"))
	assert.Equal(t, 99.5, services.ParseTotal(" 99.5 "))
	assert.Equal(t, 0.0, services.ParseTotal("abc"))
	assert.Equal(t, 0.0, services.ParseTotal(""))
	assert.Equal(t, 0.0, services.ParseTotal("₹40/L"))
}

func TestStatsService_Compute(t *testing.T) {
	productRepo := repositories.NewMockProductRepository()
	contactRepo := repositories.NewMockContactRepository()
	orderRepo := repositories.NewMockOrderRepository()
	userRepo := new(MockUserRepository)
	userRepo.On("Count").Return(int64(7), nil)

	for _, p := range []models.Product{
		{Name: "Cow Milk", Category: "Milk", Price: "₹40/L"},
		{Name: "Buffalo Milk", Category: "Milk", Price: "₹55/L"},
		{Name: "Desi Ghee", Category: "Ghee", Price: "₹550/kg"},
	} {
		prod := p
		assert.NoError(t, productRepo.Create(&prod))
	}

	assert.NoError(t, contactRepo.Create(&models.ContactMessage{FirstName: "Asha", LastName: "Verma", Email: "a@b.c", Phone: "1", Message: "hi"}))
	assert.NoError(t, contactRepo.Create(&models.ContactMessage{FirstName: "Rahul", LastName: "Singh", Email: "d@e.f", Phone: "2", Message: "yo"}))

	// Revenue must treat unparseable totals as zero: 100 + abc + "" + 50 = 150.
	orders := []models.Order{
		{UserID: "u1", ProductID: "p1", Quantity: 1, TotalPrice: "100", Status: models.OrderPending},
		{UserID: "u1", ProductID: "p1", Quantity: 1, TotalPrice: "abc", Status: models.OrderDelivered},
		{UserID: "u2", ProductID: "p2", Quantity: 2, TotalPrice: "", Status: ""},
		{UserID: "u2", ProductID: "p3", Quantity: 1, TotalPrice: "50", Status: models.OrderPending},
	}
	for i := range orders {
		assert.NoError(t, orderRepo.Create(&orders[i]))
	}

	svc := services.NewStatsService(productRepo, contactRepo, userRepo, orderRepo)
	stats, err := svc.Compute()
	assert.NoError(t, err)

	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, int64(2), stats.TotalContacts)
	assert.Equal(t, int64(7), stats.TotalUsers)
	assert.Equal(t, 150.0, stats.Revenue)
	assert.Equal(t, 2, stats.PendingOrders)

	assert.Equal(t, map[string]int{"Milk": 2, "Ghee": 1}, stats.ProductsByCategory)
	assert.Equal(t, map[string]int{
		"pending":   2,
		"delivered": 1,
		"unknown":   1,
	}, stats.OrdersByStatus)
	userRepo.AssertExpectations(t)
}

func TestOrderService_CreateAndStatus(t *testing.T) {
	productRepo := repositories.NewMockProductRepository()
	orderRepo := repositories.NewMockOrderRepository()
	pub := &recordingPublisher{}

	prod := &models.Product{Name: "Milk", Category: "Milk", Price: "₹40/L", Rating: 4.5}
	assert.NoError(t, productRepo.Create(prod))

	svc := services.NewOrderService(orderRepo, productRepo, pub)

	created, err := svc.Create(&models.Order{UserID: "u1", ProductID: prod.ID, Quantity: 2, TotalPrice: "80"})
	assert.NoError(t, err)
	assert.Equal(t, models.OrderPending, created.Status)
	assert.NotEmpty(t, created.ID)
	if assert.Len(t, pub.keys, 1) {
		assert.Equal(t, services.EventOrderCreated, pub.keys[0])
	}

	// Ordering a missing product fails before any write.
	_, err = svc.Create(&models.Order{UserID: "u1", ProductID: "ghost", Quantity: 1})
	assert.Error(t, err)
	all, err := svc.GetAll()
	assert.NoError(t, err)
	assert.Len(t, all, 1)

	// Status transitions are limited to the fixed set.
	assert.Error(t, svc.UpdateStatus(created.ID, "teleported"))
	assert.NoError(t, svc.UpdateStatus(created.ID, models.OrderDelivered))
	got, err := orderRepo.GetByID(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderDelivered, got.Status)
}
