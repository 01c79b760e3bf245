package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is created once at checkout. Only the refund fields change afterwards.
type Sale struct {
	ID            string          `json:"id"`
	TransactionID string          `json:"transaction_id"`
	Items         []BasketItem    `json:"items"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	Date          time.Time       `json:"date"`
	Refunded      bool            `json:"refunded"`
	RefundReason  string          `json:"refund_reason,omitempty"`
	RefundedAt    *time.Time      `json:"refunded_at,omitempty"`
}

func (s Sale) Clone() Sale {
	s.Items = CloneItems(s.Items)
	if s.RefundedAt != nil {
		t := *s.RefundedAt
		s.RefundedAt = &t
	}
	return s
}

// Receipt is what the register prints after checkout.
type Receipt struct {
	TransactionID string          `json:"transaction_id"`
	SiteName      string          `json:"site_name"`
	Currency      string          `json:"currency"`
	Items         []BasketItem    `json:"items"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	Change        decimal.Decimal `json:"change"`
	Date          time.Time       `json:"date"`
}

// NewReceipt derives a receipt from a sale. A zero amountPaid means the exact
// total was tendered.
func NewReceipt(s Sale, settings Settings, amountPaid decimal.Decimal) Receipt {
	paid := amountPaid
	if paid.IsZero() {
		paid = s.Total
	}
	change := decimal.Zero
	if paid.GreaterThan(s.Total) {
		change = paid.Sub(s.Total)
	}
	return Receipt{
		TransactionID: s.TransactionID,
		SiteName:      settings.SiteName,
		Currency:      settings.Currency,
		Items:         CloneItems(s.Items),
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		AmountPaid:    paid,
		Change:        change,
		Date:          s.Date,
	}
}

type SalesSummary struct {
	Count         int             `json:"count"`
	RefundedCount int             `json:"refunded_count"`
	Gross         decimal.Decimal `json:"gross"`
	Refunded      decimal.Decimal `json:"refunded"`
	Net           decimal.Decimal `json:"net"`
}
