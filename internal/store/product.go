package store

import (
	"fmt"

	"github.com/fekuna/omnipos-register/internal/model"
)

func (s *Store) AddProduct(p model.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.productIndex(p.ID) >= 0 {
		return fmt.Errorf("product %s: %w", p.ID, model.ErrDuplicateID)
	}
	if s.categoryIndex(p.CategoryID) < 0 {
		return fmt.Errorf("category %s: %w", p.CategoryID, model.ErrCategoryNotFound)
	}
	s.products = append(s.products, p.Clone())
	return nil
}

// UpdateProduct replaces the whole record with the same id.
func (s *Store) UpdateProduct(p model.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.productIndex(p.ID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", model.ErrProductNotFound, p.ID)
	}
	if s.categoryIndex(p.CategoryID) < 0 {
		return fmt.Errorf("category %s: %w", p.CategoryID, model.ErrCategoryNotFound)
	}
	s.products[idx] = p.Clone()
	return nil
}

func (s *Store) RemoveProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.productIndex(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", model.ErrProductNotFound, id)
	}
	s.products = append(s.products[:idx:idx], s.products[idx+1:]...)
	return nil
}

func (s *Store) Product(id string) (model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.productIndex(id)
	if idx < 0 {
		return model.Product{}, fmt.Errorf("%w: %s", model.ErrProductNotFound, id)
	}
	return s.products[idx].Clone(), nil
}

func (s *Store) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Product, len(s.products))
	for i, p := range s.products {
		out[i] = p.Clone()
	}
	return out
}

// ToggleVariations flips the product between simple-stock and
// variation-stock mode. The representation being left is discarded.
func (s *Store) ToggleVariations(productID string) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.productIndex(productID)
	if idx < 0 {
		return model.Product{}, fmt.Errorf("%w: %s", model.ErrProductNotFound, productID)
	}

	p := &s.products[idx]
	if p.HasVariations {
		zero := 0
		p.HasVariations = false
		p.Variations = nil
		p.Stock = &zero
	} else {
		p.HasVariations = true
		p.Variations = []model.ProductVariation{}
		p.Stock = nil
	}
	return p.Clone(), nil
}

func (s *Store) AddProductVariation(productID string, v model.ProductVariation) error {
	if err := v.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.variationProduct(productID)
	if err != nil {
		return err
	}
	if _, ok := p.Variation(v.ID); ok {
		return fmt.Errorf("variation %s: %w", v.ID, model.ErrDuplicateID)
	}
	p.Variations = append(p.Variations, v)
	return nil
}

func (s *Store) UpdateProductVariation(productID string, v model.ProductVariation) error {
	if err := v.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.variationProduct(productID)
	if err != nil {
		return err
	}
	existing, ok := p.Variation(v.ID)
	if !ok {
		return fmt.Errorf("%w: %s", model.ErrVariationNotFound, v.ID)
	}
	*existing = v
	return nil
}

func (s *Store) RemoveProductVariation(productID, variationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.variationProduct(productID)
	if err != nil {
		return err
	}
	for i := range p.Variations {
		if p.Variations[i].ID == variationID {
			p.Variations = append(p.Variations[:i:i], p.Variations[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", model.ErrVariationNotFound, variationID)
}

// TotalStock reports the derived stock of a catalog product.
func (s *Store) TotalStock(productID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.productIndex(productID)
	if idx < 0 {
		return 0, fmt.Errorf("%w: %s", model.ErrProductNotFound, productID)
	}
	return s.products[idx].TotalStock(), nil
}

// variationProduct must be called with the write lock held.
func (s *Store) variationProduct(productID string) (*model.Product, error) {
	idx := s.productIndex(productID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", model.ErrProductNotFound, productID)
	}
	p := &s.products[idx]
	if !p.HasVariations {
		return nil, fmt.Errorf("product %s: %w", productID, model.ErrNotVariationMode)
	}
	return p, nil
}

func (s *Store) productIndex(id string) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}
