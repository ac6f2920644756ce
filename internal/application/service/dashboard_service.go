package service

import (
	"context"

	"github.com/sokoline/soko-api/internal/domain/enum"
	"github.com/sokoline/soko-api/internal/domain/repository"
)

// DashboardService aggregates the counters shown on the admin dashboard.
type DashboardService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	supplierRepo repository.SupplierRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	supplierRepo repository.SupplierRepository,
) *DashboardService {
	return &DashboardService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		supplierRepo: supplierRepo,
	}
}

// DashboardStats is the admin overview snapshot.
type DashboardStats struct {
	TotalCustomers int64                      `json:"total_customers"`
	TotalSuppliers int64                      `json:"total_suppliers"`
	TotalProducts  int64                      `json:"total_products"`
	OrdersByStatus map[enum.OrderStatus]int64 `json:"orders_by_status"`
}

// GetStats collects the dashboard counters.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	customers, err := s.customerRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	suppliers, err := s.supplierRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.orderRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalCustomers: customers,
		TotalSuppliers: suppliers,
		TotalProducts:  products,
		OrdersByStatus: byStatus,
	}, nil
}
