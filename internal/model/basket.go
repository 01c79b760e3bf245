package model

import "github.com/shopspring/decimal"

// MaxLineQuantity bounds the units a single basket row may hold.
const MaxLineQuantity = 9999

// BasketKey identifies a basket row. VariationID is empty for simple products.
type BasketKey struct {
	ProductID   string `json:"product_id"`
	VariationID string `json:"variation_id,omitempty"`
}

type BasketItem struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	VariationID   string          `json:"variation_id,omitempty"`
	VariationName string          `json:"variation_name,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int             `json:"quantity"`
}

func (i BasketItem) Key() BasketKey {
	return BasketKey{ProductID: i.ID, VariationID: i.VariationID}
}

func (i BasketItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Basket struct {
	Items []BasketItem `json:"items"`
}

// Total is recomputed on every call.
func (b Basket) Total() decimal.Decimal {
	return SumItems(b.Items)
}

func (b Basket) IsEmpty() bool {
	return len(b.Items) == 0
}

// Units counts every unit across all rows.
func (b Basket) Units() int {
	n := 0
	for _, it := range b.Items {
		n += it.Quantity
	}
	return n
}

func SumItems(items []BasketItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.LineTotal())
	}
	return total
}

func CloneItems(items []BasketItem) []BasketItem {
	if items == nil {
		return nil
	}
	return append([]BasketItem{}, items...)
}
