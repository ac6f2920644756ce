package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/sokoline/soko-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_AppendStatus(t *testing.T) {
	actorID := uuid.New()

	t.Run("AppendsEntry", func(t *testing.T) {
		order := &Order{ID: uuid.New(), Status: enum.OrderStatusPending}

		appended := order.AppendStatus(enum.OrderStatusProcessing, actorID, enum.ActorKindSupplier, nil)
		assert.True(t, appended)
		assert.Equal(t, enum.OrderStatusProcessing, order.Status)
		require.Len(t, order.StatusHistory, 1)
		assert.Equal(t, enum.OrderStatusProcessing, order.StatusHistory[0].Status)
		assert.Equal(t, actorID, order.StatusHistory[0].ActorID)
	})

	t.Run("SuppressesConsecutiveDuplicates", func(t *testing.T) {
		order := &Order{ID: uuid.New(), Status: enum.OrderStatusPending}

		assert.True(t, order.AppendStatus(enum.OrderStatusProcessing, actorID, enum.ActorKindSupplier, nil))
		assert.False(t, order.AppendStatus(enum.OrderStatusProcessing, actorID, enum.ActorKindSupplier, nil))
		assert.Len(t, order.StatusHistory, 1)
	})

	t.Run("AllowsNonConsecutiveRepeat", func(t *testing.T) {
		order := &Order{ID: uuid.New(), Status: enum.OrderStatusPending}

		order.AppendStatus(enum.OrderStatusProcessing, actorID, enum.ActorKindSupplier, nil)
		order.AppendStatus(enum.OrderStatusOutForDelivery, actorID, enum.ActorKindDeliveryAssociate, nil)
		appended := order.AppendStatus(enum.OrderStatusProcessing, actorID, enum.ActorKindAdmin, nil)

		assert.True(t, appended)
		assert.Len(t, order.StatusHistory, 3)
	})

	t.Run("DuplicateStillUpdatesStatusField", func(t *testing.T) {
		order := &Order{ID: uuid.New(), Status: enum.OrderStatusPending}

		order.AppendStatus(enum.OrderStatusDelivered, actorID, enum.ActorKindDeliveryAssociate, nil)
		order.AppendStatus(enum.OrderStatusDelivered, actorID, enum.ActorKindAdmin, nil)

		assert.Equal(t, enum.OrderStatusDelivered, order.Status)
		assert.Len(t, order.StatusHistory, 1)
	})
}

func TestOrderItem_UnitPrice(t *testing.T) {
	t.Run("DiscountedWins", func(t *testing.T) {
		item := &OrderItem{Price: 10000, DiscountedPrice: cents(8000)}
		assert.Equal(t, int64(8000), item.UnitPrice())
	})

	t.Run("ListPriceWhenNoDiscount", func(t *testing.T) {
		item := &OrderItem{Price: 10000}
		assert.Equal(t, int64(10000), item.UnitPrice())
	})
}
