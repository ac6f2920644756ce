package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sokoline/soko-api/internal/domain/entity"
	"github.com/sokoline/soko-api/pkg/pagination"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Customer, int64, error)
	Count(ctx context.Context) (int64, error)
}

// SupplierRepository defines the interface for supplier data operations
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Supplier, int64, error)
	Count(ctx context.Context) (int64, error)
}

// DeliveryAssociateRepository defines the interface for delivery associate
// data operations
type DeliveryAssociateRepository interface {
	Create(ctx context.Context, associate *entity.DeliveryAssociate) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryAssociate, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.DeliveryAssociate, error)
	Update(ctx context.Context, associate *entity.DeliveryAssociate) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.DeliveryAssociate, int64, error)
}
