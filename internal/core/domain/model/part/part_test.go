package part_test

import (
	"testing"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/part"
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

func mustStock(t *testing.T, units int) part.Stock {
	t.Helper()
	stock, err := part.NewStock(units)
	require.NoError(t, err)
	return stock
}

func TestNewStock(t *testing.T) {
	t.Run("should accept zero units", func(t *testing.T) {
		stock, err := part.NewStock(0)

		require.NoError(t, err)
		assert.True(t, stock.IsEmpty())
	})

	t.Run("should reject negative units", func(t *testing.T) {
		_, err := part.NewStock(-1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStock_Remove(t *testing.T) {
	t.Run("should remove available units", func(t *testing.T) {
		stock := mustStock(t, 5)

		remaining, err := stock.Remove(mustQuantity(t, 3))

		require.NoError(t, err)
		assert.Equal(t, 2, remaining.Units())
		assert.Equal(t, 5, stock.Units())
	})

	t.Run("should fail on insufficient stock", func(t *testing.T) {
		stock := mustStock(t, 1)

		_, err := stock.Remove(mustQuantity(t, 3))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRule)
		assert.Contains(t, err.Error(), "insufficient stock")
	})

	t.Run("can empty the shelf exactly", func(t *testing.T) {
		stock := mustStock(t, 3)

		remaining, err := stock.Remove(mustQuantity(t, 3))

		require.NoError(t, err)
		assert.True(t, remaining.IsEmpty())
	})
}

func TestStock_AddAndHas(t *testing.T) {
	stock := mustStock(t, 1).Add(mustQuantity(t, 4))

	assert.Equal(t, 5, stock.Units())
	assert.True(t, stock.Has(mustQuantity(t, 5)))
	assert.False(t, stock.Has(mustQuantity(t, 6)))
}

func TestNewPart(t *testing.T) {
	price, _ := kernel.PriceFromFloat(25.90)

	t.Run("should create a part", func(t *testing.T) {
		p, err := part.NewPart("Brake pad", "BP-42", price, mustStock(t, 10))

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.NoError(t, p.ID().Validate())
		assert.Equal(t, "Brake pad", p.Name())
		assert.Equal(t, "BP-42", p.Code())
		assert.Equal(t, 10, p.Stock().Units())
	})

	t.Run("code is optional", func(t *testing.T) {
		p, err := part.NewPart("Oil filter", "", price, mustStock(t, 0))

		require.NoError(t, err)
		assert.Empty(t, p.Code())
	})

	t.Run("should reject a short name", func(t *testing.T) {
		_, err := part.NewPart("x", "", price, mustStock(t, 0))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an unconstructed price", func(t *testing.T) {
		_, err := part.NewPart("Brake pad", "", kernel.Price{}, mustStock(t, 0))

		require.Error(t, err)
	})
}

func TestPart_RestockAndDeplete(t *testing.T) {
	price, _ := kernel.PriceFromFloat(25.90)

	t.Run("restock then deplete round-trips", func(t *testing.T) {
		p, err := part.NewPart("Brake pad", "", price, mustStock(t, 0))
		require.NoError(t, err)

		require.NoError(t, p.Restock(mustQuantity(t, 5)))
		assert.Equal(t, 5, p.Stock().Units())

		require.NoError(t, p.Deplete(mustQuantity(t, 2)))
		assert.Equal(t, 3, p.Stock().Units())
		assert.True(t, p.HasStock(mustQuantity(t, 3)))
	})

	t.Run("deplete fails and keeps the shelf untouched", func(t *testing.T) {
		p, err := part.NewPart("Brake pad", "", price, mustStock(t, 1))
		require.NoError(t, err)

		err = p.Deplete(mustQuantity(t, 3))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRule)
		assert.Equal(t, 1, p.Stock().Units())
	})
}

func TestPart_UpdatePrice(t *testing.T) {
	price, _ := kernel.PriceFromFloat(25.90)
	p, err := part.NewPart("Brake pad", "", price, mustStock(t, 1))
	require.NoError(t, err)

	newPrice, _ := kernel.PriceFromFloat(29.90)
	require.NoError(t, p.UpdatePrice(newPrice))

	assert.True(t, newPrice.IsEqual(p.Price()))
}

func TestRestorePart(t *testing.T) {
	price, _ := kernel.PriceFromFloat(25.90)

	t.Run("should restore with the original identifier", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := part.RestorePart(id, "Brake pad", "BP-42", price, mustStock(t, 7))

		require.NoError(t, err)
		assert.True(t, id.IsEqual(p.ID()))
		assert.Equal(t, 7, p.Stock().Units())
	})

	t.Run("should reject a missing identifier", func(t *testing.T) {
		_, err := part.RestorePart(kernel.UUID{}, "Brake pad", "", price, mustStock(t, 0))
		require.Error(t, err)
	})
}

func TestPart_Validate(t *testing.T) {
	t.Run("zero value part fails validation", func(t *testing.T) {
		var p part.Part
		assert.Equal(t, part.ErrPartIsNotConstructed, p.Validate())
	})
}
