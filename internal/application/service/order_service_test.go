package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sokoline/soko-api/internal/domain/entity"
	"github.com/sokoline/soko-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderTestDeps struct {
	orderRepo    *MockOrderRepository
	productRepo  *MockProductRepository
	customerRepo *MockCustomerRepository
	supplierRepo *MockSupplierRepository
	svc          *OrderService
}

func newOrderTestDeps() *orderTestDeps {
	d := &orderTestDeps{
		orderRepo:    new(MockOrderRepository),
		productRepo:  new(MockProductRepository),
		customerRepo: new(MockCustomerRepository),
		supplierRepo: new(MockSupplierRepository),
	}
	d.svc = NewOrderService(d.orderRepo, d.productRepo, d.customerRepo, d.supplierRepo)
	return d
}

func TestOrderService_CreateOrder(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	customer := &entity.Customer{ID: uuid.New(), UserID: userID}
	supplier := &entity.Supplier{ID: uuid.New()}

	validInput := func(items ...OrderItemInput) *CreateOrderInput {
		return &CreateOrderInput{
			SupplierID:      supplier.ID,
			Items:           items,
			DeliveryAddress: "14 Moi Avenue, Nairobi",
			PaymentMethod:   "mpesa",
		}
	}

	t.Run("MissingFields", func(t *testing.T) {
		cases := []struct {
			name  string
			input *CreateOrderInput
			field string
		}{
			{"NoSupplier", &CreateOrderInput{Items: []OrderItemInput{{ProductID: uuid.New(), Quantity: 1}}, DeliveryAddress: "a", PaymentMethod: "m"}, "supplier"},
			{"NoItems", &CreateOrderInput{SupplierID: uuid.New(), DeliveryAddress: "a", PaymentMethod: "m"}, "items"},
			{"NoAddress", &CreateOrderInput{SupplierID: uuid.New(), Items: []OrderItemInput{{ProductID: uuid.New(), Quantity: 1}}, PaymentMethod: "m"}, "deliveryAddress"},
			{"NoPaymentMethod", &CreateOrderInput{SupplierID: uuid.New(), Items: []OrderItemInput{{ProductID: uuid.New(), Quantity: 1}}, DeliveryAddress: "a"}, "paymentMethod"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				d := newOrderTestDeps()
				d.customerRepo.On("GetByUserID", ctx, userID).Return(customer, nil)

				_, err := d.svc.CreateOrder(ctx, userID, tc.input)
				require.Error(t, err)
				appErr := apperrorFrom(t, err)
				assert.Equal(t, 400, appErr.Code)
				require.Len(t, appErr.Errors, 1)
				assert.Equal(t, tc.field, appErr.Errors[0].Field)
				d.orderRepo.AssertNotCalled(t, "CreateWithItems", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("LocksPricesAtCreation", func(t *testing.T) {
		d := newOrderTestDeps()
		p1 := entity.Product{ID: uuid.New(), Name: "Rice", Price: 10000, DiscountedPrice: priceCents(8000)}
		p2 := entity.Product{ID: uuid.New(), Name: "Beans", Price: 5000}

		d.customerRepo.On("GetByUserID", ctx, userID).Return(customer, nil)
		d.supplierRepo.On("GetByID", ctx, supplier.ID).Return(supplier, nil)
		d.productRepo.On("GetByIDs", ctx, mock.Anything).Return([]entity.Product{p1, p2}, nil)

		var created *entity.Order
		d.orderRepo.On("CreateWithItems", ctx, mock.AnythingOfType("*entity.Order")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*entity.Order)
			}).
			Return(nil)
		d.orderRepo.On("GetWithDetails", ctx, mock.Anything).
			Return(&entity.Order{}, nil)

		_, err := d.svc.CreateOrder(ctx, userID, validInput(
			OrderItemInput{ProductID: p1.ID, Quantity: 2},
			OrderItemInput{ProductID: p2.ID, Quantity: 3},
		))
		require.NoError(t, err)
		require.NotNil(t, created)

		require.Len(t, created.Items, 2)
		assert.Equal(t, int64(10000), created.Items[0].Price)
		require.NotNil(t, created.Items[0].DiscountedPrice)
		assert.Equal(t, int64(8000), *created.Items[0].DiscountedPrice)
		assert.Equal(t, int64(16000), created.Items[0].Total)

		// A product without a discount keeps nil, not zero.
		assert.Equal(t, int64(5000), created.Items[1].Price)
		assert.Nil(t, created.Items[1].DiscountedPrice)
		assert.Equal(t, int64(15000), created.Items[1].Total)

		assert.Equal(t, int64(31000), created.Total)
		assert.Equal(t, enum.OrderStatusPending, created.Status)
		assert.Equal(t, enum.PaymentStatusPending, created.PaymentStatus)
		assert.Empty(t, created.StatusHistory)
		assert.NotEmpty(t, created.OrderNumber)
	})

	t.Run("AnyMissingProductFailsWholeOrder", func(t *testing.T) {
		d := newOrderTestDeps()
		p1 := entity.Product{ID: uuid.New(), Price: 10000}
		missing := uuid.New()

		d.customerRepo.On("GetByUserID", ctx, userID).Return(customer, nil)
		d.supplierRepo.On("GetByID", ctx, supplier.ID).Return(supplier, nil)
		d.productRepo.On("GetByIDs", ctx, mock.Anything).Return([]entity.Product{p1}, nil)

		_, err := d.svc.CreateOrder(ctx, userID, validInput(
			OrderItemInput{ProductID: p1.ID, Quantity: 1},
			OrderItemInput{ProductID: missing, Quantity: 1},
		))
		require.Error(t, err)
		assert.Equal(t, 404, apperrorFrom(t, err).Code)
		d.orderRepo.AssertNotCalled(t, "CreateWithItems", mock.Anything, mock.Anything)
	})

	t.Run("UnknownSupplier", func(t *testing.T) {
		d := newOrderTestDeps()
		d.customerRepo.On("GetByUserID", ctx, userID).Return(customer, nil)
		d.supplierRepo.On("GetByID", ctx, supplier.ID).Return(nil, nil)

		_, err := d.svc.CreateOrder(ctx, userID, validInput(OrderItemInput{ProductID: uuid.New(), Quantity: 1}))
		require.Error(t, err)
		assert.Equal(t, 404, apperrorFrom(t, err).Code)
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	supplierUserID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New(), UserID: supplierUserID}

	newOrder := func() *entity.Order {
		return &entity.Order{
			ID:         uuid.New(),
			SupplierID: supplier.ID,
			CustomerID: uuid.New(),
			Status:     enum.OrderStatusPending,
		}
	}

	t.Run("SupplierUpdatesOwnOrder", func(t *testing.T) {
		d := newOrderTestDeps()
		order := newOrder()

		d.orderRepo.On("GetWithDetails", ctx, order.ID).Return(order, nil)
		d.supplierRepo.On("GetByUserID", ctx, supplierUserID).Return(supplier, nil)
		d.orderRepo.On("UpdateStatus", ctx, order).Return(nil)

		res, err := d.svc.UpdateStatus(ctx, &UpdateStatusInput{
			OrderID: order.ID,
			Status:  enum.OrderStatusProcessing,
			UserID:  supplierUserID,
			Role:    enum.RoleSupplier,
		})
		require.NoError(t, err)
		assert.Equal(t, enum.OrderStatusProcessing, res.Status)
		require.Len(t, res.StatusHistory, 1)
		assert.Equal(t, enum.ActorKindSupplier, res.StatusHistory[0].ActorKind)
	})

	t.Run("SupplierCannotTouchForeignOrder", func(t *testing.T) {
		d := newOrderTestDeps()
		order := newOrder()
		order.SupplierID = uuid.New()

		d.orderRepo.On("GetWithDetails", ctx, order.ID).Return(order, nil)
		d.supplierRepo.On("GetByUserID", ctx, supplierUserID).Return(supplier, nil)

		_, err := d.svc.UpdateStatus(ctx, &UpdateStatusInput{
			OrderID: order.ID,
			Status:  enum.OrderStatusProcessing,
			UserID:  supplierUserID,
			Role:    enum.RoleSupplier,
		})
		require.Error(t, err)
		assert.Equal(t, 403, apperrorFrom(t, err).Code)
		d.orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		d := newOrderTestDeps()

		_, err := d.svc.UpdateStatus(ctx, &UpdateStatusInput{
			OrderID: uuid.New(),
			Status:  enum.OrderStatus("shipped"),
			UserID:  supplierUserID,
			Role:    enum.RoleSupplier,
		})
		require.Error(t, err)
		assert.Equal(t, 400, apperrorFrom(t, err).Code)
	})

	t.Run("RepeatingStatusDoesNotGrowHistory", func(t *testing.T) {
		d := newOrderTestDeps()
		order := newOrder()
		order.Status = enum.OrderStatusProcessing
		order.StatusHistory = []entity.OrderStatusHistory{
			{ID: uuid.New(), OrderID: order.ID, Status: enum.OrderStatusProcessing},
		}

		d.orderRepo.On("GetWithDetails", ctx, order.ID).Return(order, nil)
		d.supplierRepo.On("GetByUserID", ctx, supplierUserID).Return(supplier, nil)
		d.orderRepo.On("UpdateStatus", ctx, order).Return(nil)

		res, err := d.svc.UpdateStatus(ctx, &UpdateStatusInput{
			OrderID: order.ID,
			Status:  enum.OrderStatusProcessing,
			UserID:  supplierUserID,
			Role:    enum.RoleSupplier,
		})
		require.NoError(t, err)
		assert.Len(t, res.StatusHistory, 1)
	})

	t.Run("CustomerCancelsPendingOrder", func(t *testing.T) {
		d := newOrderTestDeps()
		customerUserID := uuid.New()
		customer := &entity.Customer{ID: uuid.New(), UserID: customerUserID}
		order := newOrder()
		order.CustomerID = customer.ID

		d.orderRepo.On("GetWithDetails", ctx, order.ID).Return(order, nil)
		d.customerRepo.On("GetByUserID", ctx, customerUserID).Return(customer, nil)
		d.orderRepo.On("UpdateStatus", ctx, order).Return(nil)

		res, err := d.svc.UpdateStatus(ctx, &UpdateStatusInput{
			OrderID: order.ID,
			Status:  enum.OrderStatusCancelled,
			UserID:  customerUserID,
			Role:    enum.RoleCustomer,
		})
		require.NoError(t, err)
		assert.Equal(t, enum.OrderStatusCancelled, res.Status)
	})

	t.Run("CustomerCannotCancelProcessingOrder", func(t *testing.T) {
		d := newOrderTestDeps()
		customerUserID := uuid.New()
		customer := &entity.Customer{ID: uuid.New(), UserID: customerUserID}
		order := newOrder()
		order.CustomerID = customer.ID
		order.Status = enum.OrderStatusProcessing

		d.orderRepo.On("GetWithDetails", ctx, order.ID).Return(order, nil)
		d.customerRepo.On("GetByUserID", ctx, customerUserID).Return(customer, nil)

		_, err := d.svc.UpdateStatus(ctx, &UpdateStatusInput{
			OrderID: order.ID,
			Status:  enum.OrderStatusCancelled,
			UserID:  customerUserID,
			Role:    enum.RoleCustomer,
		})
		require.Error(t, err)
		assert.Equal(t, 400, apperrorFrom(t, err).Code)
	})
}
