package posv1

import (
	"math"

	"github.com/fekuna/omnipos-register/internal/model"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func money(d decimal.Decimal) string {
	return d.StringFixed(model.MoneyPlaces)
}

// Count32 narrows an aggregate count to the wire type, saturating instead
// of wrapping.
func Count32(n int) int32 {
	switch {
	case n > math.MaxInt32:
		return math.MaxInt32
	case n < math.MinInt32:
		return math.MinInt32
	}
	return int32(n)
}

func FromCategory(c model.Category) *Category {
	return &Category{Id: c.ID, Name: c.Name}
}

func FromProduct(p model.Product) *Product {
	out := &Product{
		Id:            p.ID,
		Name:          p.Name,
		Price:         money(p.Price),
		CategoryId:    p.CategoryID,
		HasVariations: p.HasVariations,
		TotalStock:    Count32(p.TotalStock()),
		Variations:    FromVariations(p.Variations),
	}
	if p.Stock != nil {
		s := int32(*p.Stock)
		out.Stock = &s
	}
	return out
}

func FromVariation(v model.ProductVariation) *ProductVariation {
	return &ProductVariation{Id: v.ID, Name: v.Name, Stock: int32(v.Stock)}
}

func FromVariations(vs []model.ProductVariation) []*ProductVariation {
	if len(vs) == 0 {
		return nil
	}
	out := make([]*ProductVariation, len(vs))
	for i, v := range vs {
		out[i] = FromVariation(v)
	}
	return out
}

func FromBasketItems(items []model.BasketItem) []*BasketItem {
	out := make([]*BasketItem, len(items))
	for i, it := range items {
		out[i] = &BasketItem{
			ProductId:     it.ID,
			Name:          it.Name,
			VariationId:   it.VariationID,
			VariationName: it.VariationName,
			Price:         money(it.Price),
			Quantity:      int32(it.Quantity),
			LineTotal:     money(it.LineTotal()),
		}
	}
	return out
}

func FromBasket(b model.Basket) *Basket {
	return &Basket{
		Items: FromBasketItems(b.Items),
		Total: money(b.Total()),
		Units: Count32(b.Units()),
	}
}

func FromSale(s model.Sale) *Sale {
	out := &Sale{
		Id:            s.ID,
		TransactionId: s.TransactionID,
		Items:         FromBasketItems(s.Items),
		Total:         money(s.Total),
		PaymentMethod: s.PaymentMethod,
		Date:          timestamppb.New(s.Date),
		Refunded:      s.Refunded,
		RefundReason:  s.RefundReason,
	}
	if s.RefundedAt != nil {
		out.RefundedAt = timestamppb.New(*s.RefundedAt)
	}
	return out
}

func FromReceipt(r model.Receipt) *Receipt {
	return &Receipt{
		TransactionId: r.TransactionID,
		SiteName:      r.SiteName,
		Currency:      r.Currency,
		Items:         FromBasketItems(r.Items),
		Total:         money(r.Total),
		PaymentMethod: r.PaymentMethod,
		AmountPaid:    money(r.AmountPaid),
		Change:        money(r.Change),
		Date:          timestamppb.New(r.Date),
	}
}

func FromSummary(s model.SalesSummary) *SalesSummary {
	return &SalesSummary{
		Count:         Count32(s.Count),
		RefundedCount: Count32(s.RefundedCount),
		Gross:         money(s.Gross),
		Refunded:      money(s.Refunded),
		Net:           money(s.Net),
	}
}

func FromPaymentMethod(m model.PaymentMethod) *PaymentMethod {
	return &PaymentMethod{Id: m.ID, Name: m.Name, Enabled: m.Enabled}
}

func FromSettings(s model.Settings) *Settings {
	return &Settings{
		SiteName:            s.SiteName,
		Currency:            s.Currency,
		SupportedCurrencies: append([]string{}, model.SupportedCurrencies...),
	}
}
