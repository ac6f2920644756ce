package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sokoline/soko-api/internal/domain/entity"
	"github.com/sokoline/soko-api/internal/domain/enum"
	domainRepo "github.com/sokoline/soko-api/internal/domain/repository"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

// CreateWithItems writes the order and its lines atomically. GORM persists
// the associated Items and StatusHistory inside the same transaction as the
// order row.
func (r *orderRepository) CreateWithItems(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Customer", "Supplier", "Items.Product").Create(order).Error
	})
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_status_history.created_at ASC")
		}).
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	return r.list(ctx, "customer_id = ?", customerID, params)
}

func (r *orderRepository) ListBySupplier(ctx context.Context, supplierID uuid.UUID, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	return r.list(ctx, "supplier_id = ?", supplierID, params)
}

// orderSortColumn maps a caller-supplied sort key onto a known column.
// Anything outside the allowlist falls back to created_at, so the query
// string never reaches the ORDER BY clause directly.
func orderSortColumn(sortBy string) string {
	switch sortBy {
	case "created_at", "updated_at", "total", "status", "order_number":
		return sortBy
	default:
		return "created_at"
	}
}

func (r *orderRepository) list(ctx context.Context, ownerCond string, ownerID uuid.UUID, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Order{}).Where(ownerCond, ownerID)

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("created_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := orderSortColumn(params.SortBy)
	sortOrder := "DESC"
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Order(sortBy + " " + sortOrder).
		Find(&orders).Error

	return orders, total, err
}

// UpdateStatus persists the order's status and inserts any history entries
// that are not yet stored, in a single transaction.
func (r *orderRepository) UpdateStatus(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Order{}).
			Where("id = ?", order.ID).
			Update("status", order.Status).Error; err != nil {
			return err
		}
		for i := range order.StatusHistory {
			entry := &order.StatusHistory[i]
			if !entry.CreatedAt.IsZero() && entry.ID != uuid.Nil {
				// FirstOrCreate keeps already-persisted entries untouched
				if err := tx.Where("id = ?", entry.ID).FirstOrCreate(entry).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (r *orderRepository) CountByStatus(ctx context.Context) (map[enum.OrderStatus]int64, error) {
	type row struct {
		Status enum.OrderStatus
		Count  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&entity.Order{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[enum.OrderStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
