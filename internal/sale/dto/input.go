package dto

import (
	"strings"

	"github.com/fekuna/omnipos-register/internal/model"
)

type RefundSaleInput struct {
	SaleID string
	Reason string
}

func (in *RefundSaleInput) Validate() error {
	in.Reason = strings.TrimSpace(in.Reason)
	if in.SaleID == "" {
		return model.Invalidf("sale id is required")
	}
	if in.Reason == "" {
		return model.Invalidf("refund reason is required")
	}
	return nil
}
