package dto

import (
	"strings"

	"github.com/fekuna/omnipos-register/internal/model"
	"github.com/shopspring/decimal"
)

type CheckoutInput struct {
	PaymentMethod string
	// AmountPaid is the tendered amount. Zero means exact tender.
	AmountPaid decimal.Decimal
}

func (in *CheckoutInput) Validate() error {
	in.PaymentMethod = strings.TrimSpace(in.PaymentMethod)
	if in.PaymentMethod == "" {
		return model.Invalidf("payment method is required")
	}
	return model.CheckAmount("amount paid", in.AmountPaid)
}
