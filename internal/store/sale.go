package store

import (
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-register/internal/model"
	"github.com/shopspring/decimal"
)

// Checkout turns the basket into a Sale paid with exact tender.
func (s *Store) Checkout(paymentMethod string) (string, error) {
	return s.CheckoutTendered(paymentMethod, decimal.Zero)
}

// CheckoutTendered turns the basket into a Sale paid with the named method
// and empties the basket. It returns the new transaction id. A positive
// tendered amount below the basket total is refused and nothing is recorded;
// zero means exact tender.
func (s *Store) CheckoutTendered(paymentMethod string, tendered decimal.Decimal) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.basket) == 0 {
		return "", model.ErrEmptyBasket
	}

	method, ok := s.paymentMethodByName(paymentMethod)
	if !ok || !method.Enabled {
		return "", fmt.Errorf("%q: %w", paymentMethod, model.ErrPaymentMethodUnavailable)
	}

	total := model.SumItems(s.basket)
	if tendered.IsPositive() && tendered.LessThan(total) {
		return "", fmt.Errorf("paid %s of %s: %w", tendered, total, model.ErrInsufficientTender)
	}

	id := s.newID()
	if id == "" || s.saleIndex(id) >= 0 {
		return "", fmt.Errorf("transaction %q: %w", id, model.ErrDuplicateID)
	}

	items := model.CloneItems(s.basket)
	s.sales = append(s.sales, model.Sale{
		ID:            id,
		TransactionID: id,
		Items:         items,
		Total:         total,
		PaymentMethod: method.Name,
		Date:          s.now(),
	})
	s.basket = nil
	return id, nil
}

// RefundSale marks a sale refunded. Items and total are left untouched and
// stock is not restored.
func (s *Store) RefundSale(saleID, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return model.Invalidf("refund reason is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.saleIndex(saleID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", model.ErrSaleNotFound, saleID)
	}
	sale := &s.sales[idx]
	if sale.Refunded {
		return fmt.Errorf("sale %s: %w", saleID, model.ErrAlreadyRefunded)
	}

	now := s.now()
	sale.Refunded = true
	sale.RefundReason = reason
	sale.RefundedAt = &now
	return nil
}

func (s *Store) Sale(id string) (model.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.saleIndex(id)
	if idx < 0 {
		return model.Sale{}, fmt.Errorf("%w: %s", model.ErrSaleNotFound, id)
	}
	return s.sales[idx].Clone(), nil
}

// Sales returns the ledger in checkout order.
func (s *Store) Sales() []model.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Sale, len(s.sales))
	for i, sale := range s.sales {
		out[i] = sale.Clone()
	}
	return out
}

func (s *Store) saleIndex(id string) int {
	for i := range s.sales {
		if s.sales[i].ID == id {
			return i
		}
	}
	return -1
}
