package store

import (
	"fmt"

	"github.com/fekuna/omnipos-register/internal/model"
)

// AddToBasket adds one unit of the product (and variation, if any). An
// existing row for the same pair is incremented; otherwise a new row
// snapshots the product's current name and price. Stock is not checked.
func (s *Store) AddToBasket(productID, variationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.productIndex(productID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", model.ErrProductNotFound, productID)
	}
	p := &s.products[idx]

	item := model.BasketItem{
		ID:          p.ID,
		Name:        p.Name,
		VariationID: variationID,
		Price:       p.Price,
	}
	switch {
	case variationID == "" && p.HasVariations && len(p.Variations) > 0:
		return fmt.Errorf("product %s: %w", productID, model.ErrVariationRequired)
	case variationID != "" && !p.HasVariations:
		return fmt.Errorf("product %s: %w", productID, model.ErrUnexpectedVariation)
	case variationID != "":
		v, ok := p.Variation(variationID)
		if !ok {
			return fmt.Errorf("%w: %s", model.ErrVariationNotFound, variationID)
		}
		item.VariationName = v.Name
	}

	if idx := s.basketIndex(item.Key()); idx >= 0 && s.basket[idx].Quantity >= model.MaxLineQuantity {
		return model.Invalidf("basket row %s already holds %d units", productID, model.MaxLineQuantity)
	}
	s.addUnit(item)
	return nil
}

// RemoveFromBasket removes the single row identified by the full
// (product, variation) pair.
func (s *Store) RemoveFromBasket(key model.BasketKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.basketIndex(key)
	if idx < 0 {
		return fmt.Errorf("%w: %s/%s", model.ErrBasketItemNotFound, key.ProductID, key.VariationID)
	}
	s.basket = append(s.basket[:idx:idx], s.basket[idx+1:]...)
	return nil
}

func (s *Store) ClearBasket() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.basket = nil
}

// SetBasketQuantity rebuilds the basket from scratch: it is cleared and every
// row is replayed one unit at a time through the merge-or-append path, with
// the target row replayed quantity times. Quantities below 1 become 1 and
// quantities above MaxLineQuantity are refused.
// Rows replay their own snapshot, so catalog edits made since they were
// added are not picked up.
func (s *Store) SetBasketQuantity(key model.BasketKey, quantity int) error {
	if quantity > model.MaxLineQuantity {
		return model.Invalidf("quantity %d exceeds %d", quantity, model.MaxLineQuantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.basketIndex(key)
	if idx < 0 {
		return fmt.Errorf("%w: %s/%s", model.ErrBasketItemNotFound, key.ProductID, key.VariationID)
	}
	if quantity < 1 {
		quantity = 1
	}

	rows := model.CloneItems(s.basket)
	rows[idx].Quantity = quantity

	s.basket = nil
	for _, row := range rows {
		for i := 0; i < row.Quantity; i++ {
			s.addUnit(row)
		}
	}
	return nil
}

func (s *Store) Basket() model.Basket {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return model.Basket{Items: model.CloneItems(s.basket)}
}

// addUnit must be called with the write lock held.
func (s *Store) addUnit(item model.BasketItem) {
	if idx := s.basketIndex(item.Key()); idx >= 0 {
		s.basket[idx].Quantity++
		return
	}
	item.Quantity = 1
	s.basket = append(s.basket, item)
}

func (s *Store) basketIndex(key model.BasketKey) int {
	for i := range s.basket {
		if s.basket[i].Key() == key {
			return i
		}
	}
	return -1
}
