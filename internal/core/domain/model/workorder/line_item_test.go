package workorder_test

import (
	"testing"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workorder"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustQuantity(t *testing.T, value int) kernel.Quantity {
	t.Helper()
	qty, err := kernel.NewQuantity(value)
	require.NoError(t, err)
	return qty
}

func mustPrice(t *testing.T, value float64) kernel.Price {
	t.Helper()
	price, err := kernel.PriceFromFloat(value)
	require.NoError(t, err)
	return price
}

func TestItemKindFromString(t *testing.T) {
	t.Run("should parse service and part", func(t *testing.T) {
		kind, err := workorder.ItemKindFromString("service")
		require.NoError(t, err)
		assert.Equal(t, workorder.KindService, kind)

		kind, err = workorder.ItemKindFromString("part")
		require.NoError(t, err)
		assert.Equal(t, workorder.KindPart, kind)
	})

	t.Run("should require a value", func(t *testing.T) {
		_, err := workorder.ItemKindFromString("")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unrecognized kinds", func(t *testing.T) {
		_, err := workorder.ItemKindFromString("labor")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("String round-trips", func(t *testing.T) {
		assert.Equal(t, "service", workorder.KindService.String())
		assert.Equal(t, "part", workorder.KindPart.String())
		assert.Equal(t, "unknown", workorder.KindUnknown.String())
	})
}

func TestNewLineItem(t *testing.T) {
	t.Run("should create an item with a fresh identifier", func(t *testing.T) {
		orderID := kernel.NewUUID()
		partID := kernel.NewUUID()

		item, err := workorder.NewLineItem(
			orderID, workorder.KindPart, partID,
			mustQuantity(t, 2), mustPrice(t, 25.90),
		)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.NoError(t, item.ID().Validate())
		assert.True(t, orderID.IsEqual(item.OrderID()))
		assert.Equal(t, workorder.KindPart, item.Kind())
		assert.True(t, partID.IsEqual(item.ReferencedID()))
		assert.Equal(t, 2, item.Quantity().Value())
	})

	t.Run("should reject missing order id", func(t *testing.T) {
		_, err := workorder.NewLineItem(
			kernel.UUID{}, workorder.KindService, kernel.NewUUID(),
			mustQuantity(t, 1), mustPrice(t, 10),
		)

		require.Error(t, err)
	})

	t.Run("should reject an invalid kind", func(t *testing.T) {
		_, err := workorder.NewLineItem(
			kernel.NewUUID(), workorder.KindUnknown, kernel.NewUUID(),
			mustQuantity(t, 1), mustPrice(t, 10),
		)

		require.Error(t, err)
	})

	t.Run("should reject zero quantity", func(t *testing.T) {
		_, err := workorder.NewLineItem(
			kernel.NewUUID(), workorder.KindService, kernel.NewUUID(),
			kernel.Quantity{}, mustPrice(t, 10),
		)

		require.Error(t, err)
	})

	t.Run("should reject an unconstructed price", func(t *testing.T) {
		_, err := workorder.NewLineItem(
			kernel.NewUUID(), workorder.KindService, kernel.NewUUID(),
			mustQuantity(t, 1), kernel.Price{},
		)

		require.Error(t, err)
	})
}

func TestLineItem_Subtotal(t *testing.T) {
	t.Run("subtotal is quantity times the snapshot price", func(t *testing.T) {
		item, err := workorder.NewLineItem(
			kernel.NewUUID(), workorder.KindService, kernel.NewUUID(),
			mustQuantity(t, 3), mustPrice(t, 100.50),
		)
		require.NoError(t, err)

		assert.Equal(t, "301.5", item.Subtotal().String())
	})

	t.Run("service and part subtotals sum into the budget total", func(t *testing.T) {
		serviceItem, err := workorder.NewLineItem(
			kernel.NewUUID(), workorder.KindService, kernel.NewUUID(),
			mustQuantity(t, 3), mustPrice(t, 100.50),
		)
		require.NoError(t, err)

		partItem, err := workorder.NewLineItem(
			kernel.NewUUID(), workorder.KindPart, kernel.NewUUID(),
			mustQuantity(t, 3), mustPrice(t, 25.90),
		)
		require.NoError(t, err)

		total := serviceItem.Subtotal().Add(partItem.Subtotal())

		assert.Equal(t, "379.2", total.String())
	})
}

func TestLineItem_WithQuantity(t *testing.T) {
	t.Run("returns a new item and keeps the original", func(t *testing.T) {
		item, err := workorder.NewLineItem(
			kernel.NewUUID(), workorder.KindPart, kernel.NewUUID(),
			mustQuantity(t, 1), mustPrice(t, 25.90),
		)
		require.NoError(t, err)

		updated, err := item.WithQuantity(mustQuantity(t, 3))

		require.NoError(t, err)
		assert.Equal(t, 1, item.Quantity().Value())
		assert.Equal(t, 3, updated.Quantity().Value())
		assert.True(t, item.ID().IsEqual(updated.ID()))
		assert.True(t, item.IsEqual(updated))
	})

	t.Run("rejects an invalid quantity", func(t *testing.T) {
		item, err := workorder.NewLineItem(
			kernel.NewUUID(), workorder.KindPart, kernel.NewUUID(),
			mustQuantity(t, 1), mustPrice(t, 25.90),
		)
		require.NoError(t, err)

		_, err = item.WithQuantity(kernel.Quantity{})
		require.Error(t, err)
	})
}

func TestLineItem_IsEqual(t *testing.T) {
	t.Run("items match on kind and referenced entry only", func(t *testing.T) {
		partID := kernel.NewUUID()

		a, err := workorder.NewLineItem(
			kernel.NewUUID(), workorder.KindPart, partID,
			mustQuantity(t, 1), mustPrice(t, 10),
		)
		require.NoError(t, err)

		b, err := workorder.NewLineItem(
			kernel.NewUUID(), workorder.KindPart, partID,
			mustQuantity(t, 5), mustPrice(t, 12),
		)
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
	})

	t.Run("same entry billed as a different kind does not match", func(t *testing.T) {
		refID := kernel.NewUUID()
		orderID := kernel.NewUUID()

		a, err := workorder.NewLineItem(
			orderID, workorder.KindPart, refID,
			mustQuantity(t, 1), mustPrice(t, 10),
		)
		require.NoError(t, err)

		b, err := workorder.NewLineItem(
			orderID, workorder.KindService, refID,
			mustQuantity(t, 1), mustPrice(t, 10),
		)
		require.NoError(t, err)

		assert.False(t, a.IsEqual(b))
	})

	t.Run("nil does not match", func(t *testing.T) {
		a, err := workorder.NewLineItem(
			kernel.NewUUID(), workorder.KindPart, kernel.NewUUID(),
			mustQuantity(t, 1), mustPrice(t, 10),
		)
		require.NoError(t, err)

		assert.False(t, a.IsEqual(nil))
	})
}

func TestLineItem_BelongsToOrder(t *testing.T) {
	orderID := kernel.NewUUID()
	item, err := workorder.NewLineItem(
		orderID, workorder.KindPart, kernel.NewUUID(),
		mustQuantity(t, 2), mustPrice(t, 35),
	)
	require.NoError(t, err)

	t.Run("matches the owning work order", func(t *testing.T) {
		assert.True(t, item.BelongsToOrder(orderID))
	})

	t.Run("does not match another work order", func(t *testing.T) {
		assert.False(t, item.BelongsToOrder(kernel.NewUUID()))
	})
}

func TestRestoreLineItem(t *testing.T) {
	t.Run("should restore a persisted item", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()
		refID := kernel.NewUUID()

		item, err := workorder.RestoreLineItem(
			id, orderID, workorder.KindService, refID,
			mustQuantity(t, 2), mustPrice(t, 100.50),
		)

		require.NoError(t, err)
		assert.True(t, id.IsEqual(item.ID()))
		assert.Equal(t, "201", item.Subtotal().String())
	})

	t.Run("should surface corruption as a business-rule error", func(t *testing.T) {
		_, err := workorder.RestoreLineItem(
			kernel.UUID{}, kernel.NewUUID(), workorder.KindService, kernel.NewUUID(),
			mustQuantity(t, 1), mustPrice(t, 10),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRule)
	})
}
