package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sokoline/soko-api/internal/domain/entity"
	"github.com/sokoline/soko-api/internal/domain/enum"
	"github.com/sokoline/soko-api/pkg/pagination"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	// CreateWithItems persists the order and all of its lines in a single
	// transaction; either everything is written or nothing is.
	CreateWithItems(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, params *OrderFilterParams) ([]entity.Order, int64, error)
	ListBySupplier(ctx context.Context, supplierID uuid.UUID, params *OrderFilterParams) ([]entity.Order, int64, error)
	// UpdateStatus persists the order status and any new history entries in
	// one transaction.
	UpdateStatus(ctx context.Context, order *entity.Order) error
	CountByStatus(ctx context.Context) (map[enum.OrderStatus]int64, error)
}

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.OrderStatus
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}
