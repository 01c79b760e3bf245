package model

import "strings"

// CashMethodName names the payment method that may be disabled but never removed.
const CashMethodName = "Cash"

type PaymentMethod struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

func (m PaymentMethod) IsCash() bool {
	return strings.EqualFold(strings.TrimSpace(m.Name), CashMethodName)
}
