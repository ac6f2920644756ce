package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sokoline/soko-api/internal/domain/entity"
	"github.com/sokoline/soko-api/internal/domain/enum"
	"github.com/sokoline/soko-api/internal/domain/repository"
	"github.com/sokoline/soko-api/pkg/apperror"
	"github.com/sokoline/soko-api/pkg/pagination"
	"github.com/sokoline/soko-api/pkg/utils"
)

// OrderService creates orders with locked price snapshots and manages their
// status lifecycle.
type OrderService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	supplierRepo repository.SupplierRepository
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	supplierRepo repository.SupplierRepository,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		supplierRepo: supplierRepo,
	}
}

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	Variation *entity.Variation
}

// CreateOrderInput carries everything needed to place an order.
type CreateOrderInput struct {
	SupplierID        uuid.UUID
	Items             []OrderItemInput
	DeliveryAddress   string
	PaymentMethod     string
	CouponCode        *string
	IsExpressDelivery bool
}

// UpdateStatusInput carries a status transition request.
type UpdateStatusInput struct {
	OrderID uuid.UUID
	Status  enum.OrderStatus
	Note    *string
	UserID  uuid.UUID
	Role    enum.Role
}

// CreateOrder validates the request, resolves every product up front and
// persists the order with immutable price snapshots. Any missing product
// fails the whole order; nothing is written partially.
func (s *OrderService) CreateOrder(ctx context.Context, userID uuid.UUID, input *CreateOrderInput) (*entity.Order, error) {
	customer, err := s.customerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer profile")
	}

	if input.SupplierID == uuid.Nil {
		return nil, apperror.NewRequiredFieldError("supplier")
	}
	if len(input.Items) == 0 {
		return nil, apperror.NewRequiredFieldError("items")
	}
	if input.DeliveryAddress == "" {
		return nil, apperror.NewRequiredFieldError("deliveryAddress")
	}
	if input.PaymentMethod == "" {
		return nil, apperror.NewRequiredFieldError("paymentMethod")
	}
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, apperror.NewBadRequestError("Item quantity must be at least 1")
		}
	}

	supplier, err := s.supplierRepo.GetByID(ctx, input.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	productIDs := make([]uuid.UUID, 0, len(input.Items))
	for _, item := range input.Items {
		productIDs = append(productIDs, item.ProductID)
	}
	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	productsByID := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productsByID[products[i].ID] = &products[i]
	}

	order := &entity.Order{
		ID:                uuid.New(),
		OrderNumber:       utils.GenerateOrderNumber(),
		CustomerID:        customer.ID,
		SupplierID:        supplier.ID,
		Status:            enum.OrderStatusPending,
		PaymentStatus:     enum.PaymentStatusPending,
		DeliveryAddress:   input.DeliveryAddress,
		PaymentMethod:     input.PaymentMethod,
		CouponCode:        input.CouponCode,
		IsExpressDelivery: input.IsExpressDelivery,
	}

	var total int64
	for _, item := range input.Items {
		product, ok := productsByID[item.ProductID]
		if !ok {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
		}

		line := entity.OrderItem{
			ID:              uuid.New(),
			OrderID:         order.ID,
			ProductID:       product.ID,
			Quantity:        item.Quantity,
			Price:           product.Price,
			DiscountedPrice: copyPrice(product.DiscountedPrice),
		}
		line.SetVariation(item.Variation)
		line.Total = line.UnitPrice() * int64(item.Quantity)
		total += line.Total

		order.Items = append(order.Items, line)
	}
	order.Total = total

	if err := s.orderRepo.CreateWithItems(ctx, order); err != nil {
		return nil, err
	}

	return s.orderRepo.GetWithDetails(ctx, order.ID)
}

// GetCustomerOrder returns one of the customer's own orders with its lines
// and status history.
func (s *OrderService) GetCustomerOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	customer, err := s.customerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer profile")
	}

	order, err := s.orderRepo.GetWithDetails(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if order.CustomerID != customer.ID {
		return nil, apperror.NewForbiddenError("You do not have access to this order")
	}
	return order, nil
}

// ListCustomerOrders returns the customer's orders, newest first.
func (s *OrderService) ListCustomerOrders(ctx context.Context, userID uuid.UUID, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	customer, err := s.customerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer profile")
	}

	orders, total, err := s.orderRepo.ListByCustomer(ctx, customer.ID, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(orders, pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// ListSupplierOrders returns orders placed against the caller's supplier
// profile.
func (s *OrderService) ListSupplierOrders(ctx context.Context, userID uuid.UUID, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	supplier, err := s.supplierRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier profile")
	}

	orders, total, err := s.orderRepo.ListBySupplier(ctx, supplier.ID, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(orders, pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// UpdateStatus applies a status transition to an order. Suppliers may only
// update their own orders; admins may update any. Repeating the current
// status succeeds without growing the history.
func (s *OrderService) UpdateStatus(ctx context.Context, input *UpdateStatusInput) (*entity.Order, error) {
	if !input.Status.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid order status")
	}

	order, err := s.orderRepo.GetWithDetails(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	switch input.Role {
	case enum.RoleAdmin, enum.RoleSuperAdmin:
		// Admins may update any order.
	case enum.RoleSupplier:
		supplier, err := s.supplierRepo.GetByUserID(ctx, input.UserID)
		if err != nil {
			return nil, err
		}
		if supplier == nil || order.SupplierID != supplier.ID {
			return nil, apperror.NewForbiddenError("You do not have access to this order")
		}
	case enum.RoleCustomer:
		// Customers may only cancel their own pending orders.
		customer, err := s.customerRepo.GetByUserID(ctx, input.UserID)
		if err != nil {
			return nil, err
		}
		if customer == nil || order.CustomerID != customer.ID {
			return nil, apperror.NewForbiddenError("You do not have access to this order")
		}
		if input.Status != enum.OrderStatusCancelled {
			return nil, apperror.NewForbiddenError("Customers can only cancel orders")
		}
		if order.Status != enum.OrderStatusPending {
			return nil, apperror.NewBadRequestError("Only pending orders can be cancelled")
		}
	default:
		return nil, apperror.NewForbiddenError("You do not have access to this order")
	}

	order.AppendStatus(input.Status, input.UserID, input.Role.ActorKind(), input.Note)

	if err := s.orderRepo.UpdateStatus(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func copyPrice(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
