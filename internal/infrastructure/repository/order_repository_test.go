package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderSortColumn(t *testing.T) {
	t.Run("AllowsKnownColumns", func(t *testing.T) {
		for _, col := range []string{"created_at", "updated_at", "total", "status", "order_number"} {
			assert.Equal(t, col, orderSortColumn(col))
		}
	})

	t.Run("RejectsUnknownInput", func(t *testing.T) {
		assert.Equal(t, "created_at", orderSortColumn(""))
		assert.Equal(t, "created_at", orderSortColumn("supplier_id"))
		assert.Equal(t, "created_at", orderSortColumn("created_at; DROP TABLE orders--"))
	})
}
