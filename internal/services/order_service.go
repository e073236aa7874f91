package services

import (
	"encoding/json"
	"fmt"
	"log"

	"panchmev/internal/models"
	"panchmev/internal/repositories"
)

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	events      EventPublisher
}

// NewOrderService creates a new OrderService. events may be nil.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, events EventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		events:      events,
	}
}

// GetAll retrieves all orders.
func (s *OrderService) GetAll() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetByUser retrieves the orders placed by one user.
func (s *OrderService) GetByUser(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUser(userID)
}

// Create stores a new order for an existing product and publishes an
// order.created event. The total is captured as entered; the revenue
// report deals with unparseable values.
func (s *OrderService) Create(order *models.Order) (*models.Order, error) {
	if _, err := s.productRepo.GetByID(order.ProductID); err != nil {
		return nil, fmt.Errorf("product %s not found: %w", order.ProductID, err)
	}
	if order.Quantity < 1 {
		order.Quantity = 1
	}
	order.Status = models.OrderPending

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if s.events != nil {
		payload := map[string]interface{}{
			"orderID": order.ID,
			"userID":  order.UserID,
			"status":  order.Status,
			"total":   order.TotalPrice,
		}
		body, err := json.Marshal(payload)
		if err != nil {
			log.Printf("Failed to marshal order event: %v", err)
		} else if err := s.events.Publish(EventOrderCreated, body); err != nil {
			log.Printf("Warning: failed to publish order created event for %s: %v", order.ID, err)
		}
	}

	return order, nil
}

// UpdateStatus moves an order to a new status from the fixed set.
func (s *OrderService) UpdateStatus(id string, status string) error {
	if !models.ValidOrderStatus(status) {
		return fmt.Errorf("invalid order status: %s", status)
	}
	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}
	return nil
}
