package services

import (
	"strconv"
	"strings"

	"panchmev/internal/models"
	"panchmev/internal/repositories"
)

// Stats is the aggregate view behind the admin dashboard. Everything is
// recomputed from full table scans on each request; the tables are small
// and the page is internal.
type Stats struct {
	TotalProducts      int            `json:"total_products"`
	TotalContacts      int64          `json:"total_contacts"`
	TotalUsers         int64          `json:"total_users"`
	PendingOrders      int            `json:"pending_orders"`
	Revenue            float64        `json:"revenue"`
	ProductsByCategory map[string]int `json:"products_by_category"`
	OrdersByStatus     map[string]int `json:"orders_by_status"`
}

// StatsService computes dashboard aggregates.
type StatsService struct {
	productRepo repositories.ProductRepository
	contactRepo repositories.ContactRepository
	userRepo    repositories.UserRepository
	orderRepo   repositories.OrderRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(
	productRepo repositories.ProductRepository,
	contactRepo repositories.ContactRepository,
	userRepo repositories.UserRepository,
	orderRepo repositories.OrderRepository,
) *StatsService {
	return &StatsService{
		productRepo: productRepo,
		contactRepo: contactRepo,
		userRepo:    userRepo,
		orderRepo:   orderRepo,
	}
}

// Compute reads every collection and aggregates counts, the per-category
// product breakdown, the per-status order breakdown and total revenue.
func (s *StatsService) Compute() (*Stats, error) {
	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, err
	}
	contactCount, err := s.contactRepo.Count()
	if err != nil {
		return nil, err
	}
	userCount, err := s.userRepo.Count()
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalProducts:      len(products),
		TotalContacts:      contactCount,
		TotalUsers:         userCount,
		ProductsByCategory: make(map[string]int),
		OrdersByStatus:     make(map[string]int),
	}

	for _, p := range products {
		stats.ProductsByCategory[p.Category]++
	}

	for _, o := range orders {
		status := strings.ToLower(o.Status)
		if status == "" {
			status = "unknown"
		}
		stats.OrdersByStatus[status]++
		if status == models.OrderPending {
			stats.PendingOrders++
		}
		stats.Revenue += ParseTotal(o.TotalPrice)
	}

	return stats, nil
}

// ParseTotal converts a free-text order total to a number, treating
// missing or non-numeric values as zero rather than failing the report.
func ParseTotal(total string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(total), 64)
	if err != nil {
		return 0
	}
	return v
}
