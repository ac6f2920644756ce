package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sokoline/soko-api/internal/domain/entity"
	"github.com/sokoline/soko-api/internal/domain/enum"
	"github.com/sokoline/soko-api/internal/domain/repository"
	"github.com/sokoline/soko-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func priceCents(v int64) *int64 {
	return &v
}

func TestCartService_GetCart(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("ExistingCart", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		svc := NewCartService(cartRepo, productRepo)

		cart := &entity.Cart{ID: uuid.New(), CustomerID: customerID}
		cartRepo.On("GetByCustomer", ctx, customerID).Return(cart, nil)

		res, err := svc.GetCart(ctx, customerID)
		require.NoError(t, err)
		assert.Equal(t, cart, res)
	})

	t.Run("NoCartReturnsEmptyShape", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		svc := NewCartService(cartRepo, productRepo)

		cartRepo.On("GetByCustomer", ctx, customerID).Return(nil, nil)

		res, err := svc.GetCart(ctx, customerID)
		require.NoError(t, err)
		assert.Equal(t, customerID, res.CustomerID)
		assert.Empty(t, res.Items)
		assert.Equal(t, int64(0), res.Subtotal)
		cartRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	productID := uuid.New()
	product := &entity.Product{ID: productID, Name: "Maize Flour", Price: 10000, DiscountedPrice: priceCents(8000)}

	t.Run("CreatesCartLazily", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		svc := NewCartService(cartRepo, productRepo)

		productRepo.On("GetByID", ctx, productID).Return(product, nil)
		cartRepo.On("GetByCustomer", ctx, customerID).Return(nil, nil)
		cartRepo.On("Create", ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)
		cartRepo.On("UpdateWithVersion", ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)

		cart, err := svc.AddItem(ctx, customerID, productID, 2, nil)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, int64(8000), cart.Items[0].UnitPrice())
		assert.Equal(t, int64(16000), cart.Subtotal)
		cartRepo.AssertExpectations(t)
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		svc := NewCartService(cartRepo, productRepo)

		productRepo.On("GetByID", ctx, productID).Return(nil, nil)

		_, err := svc.AddItem(ctx, customerID, productID, 2, nil)
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})

	t.Run("InvalidQuantity", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		svc := NewCartService(cartRepo, productRepo)

		productRepo.On("GetByID", ctx, productID).Return(product, nil)
		cartRepo.On("GetByCustomer", ctx, customerID).Return(&entity.Cart{ID: uuid.New(), CustomerID: customerID}, nil)

		_, err := svc.AddItem(ctx, customerID, productID, 0, nil)
		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
		cartRepo.AssertNotCalled(t, "UpdateWithVersion", mock.Anything, mock.Anything)
	})

	t.Run("RetriesOnVersionConflict", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		svc := NewCartService(cartRepo, productRepo)

		productRepo.On("GetByID", ctx, productID).Return(product, nil)
		cartRepo.On("GetByCustomer", ctx, customerID).Return(&entity.Cart{ID: uuid.New(), CustomerID: customerID}, nil)
		cartRepo.On("UpdateWithVersion", ctx, mock.AnythingOfType("*entity.Cart")).
			Return(repository.ErrVersionConflict).Once()
		cartRepo.On("UpdateWithVersion", ctx, mock.AnythingOfType("*entity.Cart")).
			Return(nil).Once()

		cart, err := svc.AddItem(ctx, customerID, productID, 1, nil)
		require.NoError(t, err)
		assert.Len(t, cart.Items, 1)
		cartRepo.AssertExpectations(t)
	})

	t.Run("GivesUpAfterRetriesExhausted", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		svc := NewCartService(cartRepo, productRepo)

		productRepo.On("GetByID", ctx, productID).Return(product, nil)
		cartRepo.On("GetByCustomer", ctx, customerID).Return(&entity.Cart{ID: uuid.New(), CustomerID: customerID}, nil)
		cartRepo.On("UpdateWithVersion", ctx, mock.AnythingOfType("*entity.Cart")).
			Return(repository.ErrVersionConflict)

		_, err := svc.AddItem(ctx, customerID, productID, 1, nil)
		require.Error(t, err)
		assert.Equal(t, 409, apperror.GetAppError(err).Code)
		cartRepo.AssertNumberOfCalls(t, "UpdateWithVersion", cartMutationRetries)
	})
}

func TestCartService_UpdateItemQuantity(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("NoCartIs404", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		svc := NewCartService(cartRepo, productRepo)

		cartRepo.On("GetByCustomer", ctx, customerID).Return(nil, nil)

		_, err := svc.UpdateItemQuantity(ctx, customerID, uuid.New(), 3)
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})

	t.Run("UnknownItemIs404", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		svc := NewCartService(cartRepo, productRepo)

		cart := &entity.Cart{ID: uuid.New(), CustomerID: customerID}
		require.NoError(t, cart.AddItem(uuid.New(), 1, 10000, nil, nil))
		cartRepo.On("GetByCustomer", ctx, customerID).Return(cart, nil)

		_, err := svc.UpdateItemQuantity(ctx, customerID, uuid.New(), 3)
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})

	t.Run("ZeroQuantityRemovesLine", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		svc := NewCartService(cartRepo, productRepo)

		cart := &entity.Cart{ID: uuid.New(), CustomerID: customerID}
		require.NoError(t, cart.AddItem(uuid.New(), 2, 10000, nil, nil))
		itemID := cart.Items[0].ID

		cartRepo.On("GetByCustomer", ctx, customerID).Return(cart, nil)
		cartRepo.On("UpdateWithVersion", ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)

		res, err := svc.UpdateItemQuantity(ctx, customerID, itemID, 0)
		require.NoError(t, err)
		assert.Empty(t, res.Items)
		assert.Equal(t, int64(0), res.Subtotal)
	})
}

func TestCartService_ApplyCoupon(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	newCartWithItem := func(t *testing.T) *entity.Cart {
		cart := &entity.Cart{ID: uuid.New(), CustomerID: customerID}
		require.NoError(t, cart.AddItem(uuid.New(), 2, 10000, nil, nil))
		return cart
	}

	t.Run("FixedAmountRoundsToWholeCents", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		svc := NewCartService(cartRepo, productRepo)

		cartRepo.On("GetByCustomer", ctx, customerID).Return(newCartWithItem(t), nil)
		cartRepo.On("UpdateWithVersion", ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)

		// 10.55 * 100 is 1054.999... in float64; the stored amount must
		// still be exactly 1055 cents.
		res, err := svc.ApplyCoupon(ctx, customerID, "SAVE10", enum.CouponTypeFixed, 10.55)
		require.NoError(t, err)
		assert.Equal(t, int64(1055), res.CouponValue)
		assert.Equal(t, int64(1055), res.Discount)
	})

	t.Run("PercentageStoredAsPercent", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		svc := NewCartService(cartRepo, productRepo)

		cartRepo.On("GetByCustomer", ctx, customerID).Return(newCartWithItem(t), nil)
		cartRepo.On("UpdateWithVersion", ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)

		res, err := svc.ApplyCoupon(ctx, customerID, "TEN", enum.CouponTypePercentage, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(10), res.CouponValue)
		assert.Equal(t, int64(2000), res.Discount)
	})

	t.Run("InvalidType", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		svc := NewCartService(cartRepo, productRepo)

		_, err := svc.ApplyCoupon(ctx, customerID, "BAD", enum.CouponType("buy-one-get-one"), 10)
		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	})
}

func TestCartService_RemoveItem(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("NoCartSucceedsWithEmptyShape", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		svc := NewCartService(cartRepo, productRepo)

		cartRepo.On("GetByCustomer", ctx, customerID).Return(nil, nil)

		res, err := svc.RemoveItem(ctx, customerID, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, res.Items)
		cartRepo.AssertNotCalled(t, "UpdateWithVersion", mock.Anything, mock.Anything)
	})
}
