package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/fekuna/omnipos-register/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("txn-%d", n)
	}
}

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	opts = append([]Option{WithIDGenerator(sequentialIDs()), WithClock(func() time.Time { return fixedNow })}, opts...)
	s := New(opts...)
	require.NoError(t, s.AddCategory(model.Category{ID: "drinks", Name: "Drinks"}))
	return s
}

func intPtr(v int) *int { return &v }

func simpleProduct(id string, price int64, stock *int) model.Product {
	return model.Product{
		ID:         id,
		Name:       "Product " + id,
		Price:      decimal.NewFromInt(price),
		CategoryID: "drinks",
		Stock:      stock,
	}
}

func variationProduct(id string, price int64, stocks ...int) model.Product {
	p := model.Product{
		ID:            id,
		Name:          "Product " + id,
		Price:         decimal.NewFromInt(price),
		CategoryID:    "drinks",
		HasVariations: true,
		Variations:    []model.ProductVariation{},
	}
	for i, st := range stocks {
		p.Variations = append(p.Variations, model.ProductVariation{
			ID:    fmt.Sprintf("%s-v%d", id, i+1),
			Name:  fmt.Sprintf("Size %d", i+1),
			Stock: st,
		})
	}
	return p
}
