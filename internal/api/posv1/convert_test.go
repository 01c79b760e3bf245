package posv1

import (
	"math"
	"testing"
	"time"

	"github.com/fekuna/omnipos-register/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromProduct(t *testing.T) {
	stock := 7
	p := FromProduct(model.Product{
		ID:         "cola",
		Name:       "Cola",
		Price:      decimal.RequireFromString("2.5"),
		CategoryID: "drinks",
		Stock:      &stock,
	})
	assert.Equal(t, "2.50", p.Price)
	require.NotNil(t, p.Stock)
	assert.EqualValues(t, 7, *p.Stock)
	assert.EqualValues(t, 7, p.TotalStock)
	assert.Nil(t, p.Variations)

	v := FromProduct(model.Product{
		ID:            "tee",
		HasVariations: true,
		Variations:    []model.ProductVariation{{ID: "s", Name: "S", Stock: 3}, {ID: "m", Name: "M", Stock: 5}},
	})
	assert.Nil(t, v.Stock)
	assert.EqualValues(t, 8, v.TotalStock)
	assert.Len(t, v.Variations, 2)
}

func TestFromProductSaturatesTotalStock(t *testing.T) {
	p := FromProduct(model.Product{
		ID:            "bolts",
		HasVariations: true,
		Variations: []model.ProductVariation{
			{ID: "a", Name: "A", Stock: math.MaxInt32},
			{ID: "b", Name: "B", Stock: math.MaxInt32},
		},
	})
	assert.Equal(t, int32(math.MaxInt32), p.TotalStock)
	for _, v := range p.Variations {
		assert.Equal(t, int32(math.MaxInt32), v.Stock)
	}
}

func TestCount32(t *testing.T) {
	assert.Equal(t, int32(42), Count32(42))
	assert.Equal(t, int32(math.MaxInt32), Count32(math.MaxInt32+1))
	assert.Equal(t, int32(math.MinInt32), Count32(math.MinInt32-1))
}

func TestFromSale(t *testing.T) {
	at := time.Date(2024, 5, 4, 10, 0, 0, 0, time.UTC)
	s := FromSale(model.Sale{
		ID:            "t1",
		TransactionID: "t1",
		Items: []model.BasketItem{
			{ID: "a", Name: "A", Price: decimal.NewFromInt(10), Quantity: 2},
		},
		Total:         decimal.NewFromInt(20),
		PaymentMethod: "Cash",
		Date:          at,
	})
	assert.Equal(t, "20.00", s.Total)
	assert.Equal(t, "20.00", s.Items[0].LineTotal)
	assert.Equal(t, at, s.Date.AsTime())
	assert.Nil(t, s.RefundedAt)
}

func TestFromSettings(t *testing.T) {
	s := FromSettings(model.Settings{SiteName: "Shop", Currency: "£"})
	assert.Equal(t, []string{"$", "£", "€"}, s.SupportedCurrencies)
}
