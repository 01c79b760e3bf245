package store

import (
	"testing"

	"github.com/fekuna/omnipos-register/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToBasketMergesSamePair(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AddProduct(simpleProduct("cola", 3, nil)))
	require.NoError(t, s.AddProduct(variationProduct("tee", 15, 1, 1)))

	for i := 0; i < 4; i++ {
		require.NoError(t, s.AddToBasket("cola", ""))
	}
	require.NoError(t, s.AddToBasket("tee", "tee-v1"))
	require.NoError(t, s.AddToBasket("tee", "tee-v2"))
	require.NoError(t, s.AddToBasket("tee", "tee-v1"))

	b := s.Basket()
	require.Len(t, b.Items, 3)
	assert.Equal(t, model.BasketItem{ID: "cola", Name: "Product cola", Price: decimal.NewFromInt(3), Quantity: 4}, b.Items[0])
	assert.Equal(t, 2, b.Items[1].Quantity)
	assert.Equal(t, "Size 1", b.Items[1].VariationName)
	assert.Equal(t, 1, b.Items[2].Quantity)

	seen := map[model.BasketKey]bool{}
	for _, it := range b.Items {
		assert.False(t, seen[it.Key()], "duplicate row for %v", it.Key())
		seen[it.Key()] = true
	}
	assert.True(t, b.Total().Equal(decimal.NewFromInt(4*3+3*15)))
	assert.Equal(t, 7, b.Units())
}

func TestAddToBasketRejects(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AddProduct(simpleProduct("cola", 3, nil)))
	require.NoError(t, s.AddProduct(variationProduct("tee", 15, 1)))
	require.NoError(t, s.AddProduct(variationProduct("bare", 5)))

	assert.ErrorIs(t, s.AddToBasket("ghost", ""), model.ErrProductNotFound)
	assert.ErrorIs(t, s.AddToBasket("tee", ""), model.ErrVariationRequired)
	assert.ErrorIs(t, s.AddToBasket("tee", "nope"), model.ErrVariationNotFound)
	assert.ErrorIs(t, s.AddToBasket("cola", "tee-v1"), model.ErrUnexpectedVariation)
	assert.True(t, s.Basket().IsEmpty())

	// a variation product with an empty list sells as a plain item
	require.NoError(t, s.AddToBasket("bare", ""))
	assert.Len(t, s.Basket().Items, 1)
}

func TestBasketPriceIsSnapshotted(t *testing.T) {
	s := newTestStore(t)
	p := simpleProduct("cola", 3, nil)
	require.NoError(t, s.AddProduct(p))
	require.NoError(t, s.AddToBasket("cola", ""))

	p.Price = decimal.NewFromInt(5)
	require.NoError(t, s.UpdateProduct(p))
	require.NoError(t, s.AddToBasket("cola", ""))

	b := s.Basket()
	require.Len(t, b.Items, 1)
	assert.True(t, b.Items[0].Price.Equal(decimal.NewFromInt(3)))
	assert.Equal(t, 2, b.Items[0].Quantity)
}

func TestRemoveFromBasketUsesFullKey(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AddProduct(variationProduct("tee", 15, 1, 1)))
	require.NoError(t, s.AddToBasket("tee", "tee-v1"))
	require.NoError(t, s.AddToBasket("tee", "tee-v2"))

	require.NoError(t, s.RemoveFromBasket(model.BasketKey{ProductID: "tee", VariationID: "tee-v1"}))
	assert.ErrorIs(t, s.RemoveFromBasket(model.BasketKey{ProductID: "tee", VariationID: "tee-v1"}), model.ErrBasketItemNotFound)
	assert.ErrorIs(t, s.RemoveFromBasket(model.BasketKey{ProductID: "tee"}), model.ErrBasketItemNotFound)

	b := s.Basket()
	require.Len(t, b.Items, 1)
	assert.Equal(t, "tee-v2", b.Items[0].VariationID)
}

func TestSetBasketQuantity(t *testing.T) {
	s := newTestStore(t)
	cola := simpleProduct("cola", 3, nil)
	require.NoError(t, s.AddProduct(cola))
	require.NoError(t, s.AddProduct(simpleProduct("chips", 2, nil)))
	require.NoError(t, s.AddToBasket("cola", ""))
	require.NoError(t, s.AddToBasket("chips", ""))
	require.NoError(t, s.AddToBasket("chips", ""))

	colaKey := model.BasketKey{ProductID: "cola"}

	t.Run("sets quantity and keeps order", func(t *testing.T) {
		require.NoError(t, s.SetBasketQuantity(colaKey, 3))
		b := s.Basket()
		require.Len(t, b.Items, 2)
		assert.Equal(t, "cola", b.Items[0].ID)
		assert.Equal(t, 3, b.Items[0].Quantity)
		assert.Equal(t, 2, b.Items[1].Quantity)
	})

	t.Run("clamps to one", func(t *testing.T) {
		for _, q := range []int{0, -4} {
			require.NoError(t, s.SetBasketQuantity(colaKey, q))
			assert.Equal(t, 1, s.Basket().Items[0].Quantity)
		}
	})

	t.Run("keeps snapshotted price", func(t *testing.T) {
		cola.Price = decimal.NewFromInt(100)
		require.NoError(t, s.UpdateProduct(cola))
		require.NoError(t, s.SetBasketQuantity(colaKey, 2))
		assert.True(t, s.Basket().Items[0].Price.Equal(decimal.NewFromInt(3)))
	})

	t.Run("unknown row", func(t *testing.T) {
		assert.ErrorIs(t, s.SetBasketQuantity(model.BasketKey{ProductID: "ghost"}, 2), model.ErrBasketItemNotFound)
	})

	t.Run("refuses quantities above the line limit", func(t *testing.T) {
		for _, q := range []int{model.MaxLineQuantity + 1, 1<<31 - 1} {
			assert.ErrorIs(t, s.SetBasketQuantity(colaKey, q), model.ErrInvalid)
		}
		assert.Equal(t, 2, s.Basket().Items[0].Quantity)

		require.NoError(t, s.SetBasketQuantity(colaKey, model.MaxLineQuantity))
		assert.Equal(t, model.MaxLineQuantity, s.Basket().Items[0].Quantity)
	})
}

func TestAddToBasketStopsAtLineLimit(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AddProduct(simpleProduct("cola", 3, nil)))
	require.NoError(t, s.AddToBasket("cola", ""))
	require.NoError(t, s.SetBasketQuantity(model.BasketKey{ProductID: "cola"}, model.MaxLineQuantity))

	assert.ErrorIs(t, s.AddToBasket("cola", ""), model.ErrInvalid)
	assert.Equal(t, model.MaxLineQuantity, s.Basket().Items[0].Quantity)
}

func TestClearBasket(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AddProduct(simpleProduct("cola", 3, nil)))
	require.NoError(t, s.AddToBasket("cola", ""))

	s.ClearBasket()
	assert.True(t, s.Basket().IsEmpty())
	assert.True(t, s.Basket().Total().IsZero())
}

func TestAddToBasketDoesNotTouchStock(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AddProduct(simpleProduct("cola", 3, intPtr(1))))
	for i := 0; i < 3; i++ {
		require.NoError(t, s.AddToBasket("cola", ""))
	}
	_, err := s.Checkout("Cash")
	require.NoError(t, err)

	stock, err := s.TotalStock("cola")
	require.NoError(t, err)
	assert.Equal(t, 1, stock)
}
