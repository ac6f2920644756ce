package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/sokoline/soko-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cents(v int64) *int64 {
	return &v
}

func TestVariationEqual(t *testing.T) {
	t.Run("BothNil", func(t *testing.T) {
		assert.True(t, VariationEqual(nil, nil))
	})

	t.Run("OneNil", func(t *testing.T) {
		v := &Variation{Name: "size", Value: "L"}
		assert.False(t, VariationEqual(v, nil))
		assert.False(t, VariationEqual(nil, v))
	})

	t.Run("Equal", func(t *testing.T) {
		a := &Variation{Name: "size", Value: "L"}
		b := &Variation{Name: "size", Value: "L"}
		assert.True(t, VariationEqual(a, b))
	})

	t.Run("DifferentValue", func(t *testing.T) {
		a := &Variation{Name: "size", Value: "L"}
		b := &Variation{Name: "size", Value: "XL"}
		assert.False(t, VariationEqual(a, b))
	})
}

func TestCart_AddItem(t *testing.T) {
	productID := uuid.New()

	t.Run("RejectsNonPositiveQuantity", func(t *testing.T) {
		cart := &Cart{ID: uuid.New()}
		assert.ErrorIs(t, cart.AddItem(productID, 0, 10000, nil, nil), ErrInvalidQuantity)
		assert.ErrorIs(t, cart.AddItem(productID, -3, 10000, nil, nil), ErrInvalidQuantity)
		assert.Empty(t, cart.Items)
	})

	t.Run("AppendsNewLine", func(t *testing.T) {
		cart := &Cart{ID: uuid.New()}
		require.NoError(t, cart.AddItem(productID, 2, 10000, nil, nil))

		require.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Quantity)
		assert.Equal(t, int64(20000), cart.Items[0].TotalPrice)
		assert.Equal(t, int64(20000), cart.Subtotal)
	})

	t.Run("MergesSameProductAndVariation", func(t *testing.T) {
		cart := &Cart{ID: uuid.New()}
		v := &Variation{Name: "size", Value: "L"}
		require.NoError(t, cart.AddItem(productID, 2, 10000, nil, v))
		require.NoError(t, cart.AddItem(productID, 3, 10000, nil, v))

		require.Len(t, cart.Items, 1)
		assert.Equal(t, 5, cart.Items[0].Quantity)
		assert.Equal(t, int64(50000), cart.Items[0].TotalPrice)
	})

	t.Run("DifferentVariationGetsOwnLine", func(t *testing.T) {
		cart := &Cart{ID: uuid.New()}
		require.NoError(t, cart.AddItem(productID, 1, 10000, nil, &Variation{Name: "size", Value: "L"}))
		require.NoError(t, cart.AddItem(productID, 1, 10000, nil, &Variation{Name: "size", Value: "XL"}))
		require.NoError(t, cart.AddItem(productID, 1, 10000, nil, nil))

		assert.Len(t, cart.Items, 3)
	})

	t.Run("MergeKeepsOriginalPriceSnapshot", func(t *testing.T) {
		cart := &Cart{ID: uuid.New()}
		require.NoError(t, cart.AddItem(productID, 1, 10000, nil, nil))
		// The product price changed between adds; the line keeps the first
		// snapshot.
		require.NoError(t, cart.AddItem(productID, 1, 99900, cents(88800), nil))

		require.Len(t, cart.Items, 1)
		assert.Equal(t, int64(10000), cart.Items[0].Price)
		assert.Nil(t, cart.Items[0].DiscountedPrice)
		assert.Equal(t, int64(20000), cart.Items[0].TotalPrice)
	})

	t.Run("DiscountedPriceDrivesLineTotal", func(t *testing.T) {
		cart := &Cart{ID: uuid.New()}
		require.NoError(t, cart.AddItem(productID, 3, 5000, cents(4000), nil))

		require.Len(t, cart.Items, 1)
		assert.Equal(t, int64(12000), cart.Items[0].TotalPrice)
		assert.Equal(t, int64(12000), cart.Subtotal)
	})
}

func TestCart_UpdateItemQuantity(t *testing.T) {
	t.Run("SetsQuantity", func(t *testing.T) {
		cart := &Cart{ID: uuid.New()}
		require.NoError(t, cart.AddItem(uuid.New(), 2, 10000, nil, nil))
		itemID := cart.Items[0].ID

		require.NoError(t, cart.UpdateItemQuantity(itemID, 5))
		assert.Equal(t, 5, cart.Items[0].Quantity)
		assert.Equal(t, int64(50000), cart.Subtotal)
	})

	t.Run("ZeroRemovesLine", func(t *testing.T) {
		cart := &Cart{ID: uuid.New()}
		require.NoError(t, cart.AddItem(uuid.New(), 2, 10000, nil, nil))
		itemID := cart.Items[0].ID

		require.NoError(t, cart.UpdateItemQuantity(itemID, 0))
		assert.Empty(t, cart.Items)
		assert.Equal(t, int64(0), cart.Subtotal)
	})

	t.Run("NegativeRemovesLine", func(t *testing.T) {
		cart := &Cart{ID: uuid.New()}
		require.NoError(t, cart.AddItem(uuid.New(), 2, 10000, nil, nil))
		itemID := cart.Items[0].ID

		require.NoError(t, cart.UpdateItemQuantity(itemID, -5))
		assert.Empty(t, cart.Items)
	})

	t.Run("UnknownItem", func(t *testing.T) {
		cart := &Cart{ID: uuid.New()}
		require.NoError(t, cart.AddItem(uuid.New(), 2, 10000, nil, nil))

		err := cart.UpdateItemQuantity(uuid.New(), 3)
		assert.ErrorIs(t, err, ErrCartItemNotFound)
		assert.Len(t, cart.Items, 1)
	})
}

func TestCart_RemoveItem(t *testing.T) {
	t.Run("RemovesLine", func(t *testing.T) {
		cart := &Cart{ID: uuid.New()}
		require.NoError(t, cart.AddItem(uuid.New(), 1, 10000, nil, nil))
		require.NoError(t, cart.AddItem(uuid.New(), 1, 5000, nil, nil))
		itemID := cart.Items[0].ID

		cart.RemoveItem(itemID)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, int64(5000), cart.Subtotal)
	})

	t.Run("AbsentItemIsNoOp", func(t *testing.T) {
		cart := &Cart{ID: uuid.New()}
		require.NoError(t, cart.AddItem(uuid.New(), 1, 10000, nil, nil))

		cart.RemoveItem(uuid.New())
		assert.Len(t, cart.Items, 1)
		assert.Equal(t, int64(10000), cart.Subtotal)
	})
}

func TestCart_Coupon(t *testing.T) {
	t.Run("PercentageDiscount", func(t *testing.T) {
		cart := &Cart{ID: uuid.New()}
		require.NoError(t, cart.AddItem(uuid.New(), 2, 10000, nil, nil))

		cart.ApplyCoupon("SAVE10", enum.CouponTypePercentage, 10)
		assert.Equal(t, int64(2000), cart.Discount)
	})

	t.Run("FixedDiscountCappedAtSubtotal", func(t *testing.T) {
		cart := &Cart{ID: uuid.New()}
		require.NoError(t, cart.AddItem(uuid.New(), 1, 5000, nil, nil))

		cart.ApplyCoupon("BIG", enum.CouponTypeFixed, 10000)
		assert.Equal(t, int64(5000), cart.Discount)
	})

	t.Run("DiscountTracksSubtotal", func(t *testing.T) {
		cart := &Cart{ID: uuid.New()}
		require.NoError(t, cart.AddItem(uuid.New(), 2, 10000, nil, nil))
		cart.ApplyCoupon("SAVE10", enum.CouponTypePercentage, 10)

		itemID := cart.Items[0].ID
		require.NoError(t, cart.UpdateItemQuantity(itemID, 4))
		assert.Equal(t, int64(4000), cart.Discount)
	})

	t.Run("RemoveCoupon", func(t *testing.T) {
		cart := &Cart{ID: uuid.New()}
		require.NoError(t, cart.AddItem(uuid.New(), 1, 10000, nil, nil))
		cart.ApplyCoupon("SAVE10", enum.CouponTypePercentage, 10)

		cart.RemoveCoupon()
		assert.Nil(t, cart.CouponCode)
		assert.Equal(t, int64(0), cart.Discount)
	})
}

// TestCart_Lifecycle walks a cart through a typical shopping session and
// checks the subtotal after every step.
func TestCart_Lifecycle(t *testing.T) {
	cart := &Cart{ID: uuid.New()}
	p1 := uuid.New()
	p2 := uuid.New()

	// Add 2 of a 100.00 product.
	require.NoError(t, cart.AddItem(p1, 2, 10000, nil, nil))
	assert.Equal(t, int64(20000), cart.Subtotal)

	// Add 3 more of the same; the line merges to quantity 5.
	require.NoError(t, cart.AddItem(p1, 3, 10000, nil, nil))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, int64(50000), cart.Subtotal)

	// Add 1 of a 50.00 product discounted to 40.00.
	require.NoError(t, cart.AddItem(p2, 1, 5000, cents(4000), nil))
	require.Len(t, cart.Items, 2)
	assert.Equal(t, int64(54000), cart.Subtotal)

	// Remove the first line; only the discounted product remains.
	cart.RemoveItem(cart.Items[0].ID)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(4000), cart.Subtotal)

	cart.Clear()
	assert.Empty(t, cart.Items)
	assert.Equal(t, int64(0), cart.Subtotal)
}
