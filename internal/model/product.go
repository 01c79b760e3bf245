package model

import "github.com/shopspring/decimal"

// Product is either simple-stock (Stock, no variations) or variation-stock
// (HasVariations, stock tracked per variation). The two never coexist.
type Product struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Price         decimal.Decimal    `json:"price"`
	CategoryID    string             `json:"category_id"`
	HasVariations bool               `json:"has_variations"`
	Stock         *int               `json:"stock,omitempty"`
	Variations    []ProductVariation `json:"variations,omitempty"`
}

type ProductVariation struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

// TotalStock sums variation stock in variation mode, otherwise returns the
// scalar stock (0 when unset).
func (p *Product) TotalStock() int {
	if p.HasVariations {
		total := 0
		for _, v := range p.Variations {
			total += v.Stock
		}
		return total
	}
	if p.Stock == nil {
		return 0
	}
	return *p.Stock
}

// Variation returns the variation with the given id.
func (p *Product) Variation(id string) (*ProductVariation, bool) {
	for i := range p.Variations {
		if p.Variations[i].ID == id {
			return &p.Variations[i], true
		}
	}
	return nil, false
}

// Validate checks the record-level invariants of a product.
func (p *Product) Validate() error {
	if p.ID == "" {
		return Invalidf("product id is required")
	}
	if p.Name == "" {
		return Invalidf("product name is required")
	}
	if p.CategoryID == "" {
		return Invalidf("product category is required")
	}
	if err := CheckAmount("product price", p.Price); err != nil {
		return err
	}
	if p.HasVariations {
		if p.Stock != nil {
			return Invalidf("product %s uses variations and cannot carry stock", p.ID)
		}
		seen := make(map[string]struct{}, len(p.Variations))
		for _, v := range p.Variations {
			if err := v.Validate(); err != nil {
				return err
			}
			if _, dup := seen[v.ID]; dup {
				return Invalidf("duplicate variation id %s", v.ID)
			}
			seen[v.ID] = struct{}{}
		}
		return nil
	}
	if len(p.Variations) > 0 {
		return Invalidf("product %s does not use variations", p.ID)
	}
	if p.Stock != nil && *p.Stock < 0 {
		return Invalidf("product stock must not be negative")
	}
	return nil
}

func (v *ProductVariation) Validate() error {
	if v.ID == "" {
		return Invalidf("variation id is required")
	}
	if v.Name == "" {
		return Invalidf("variation name is required")
	}
	if v.Stock < 0 {
		return Invalidf("variation stock must not be negative")
	}
	return nil
}

// Clone returns a deep copy.
func (p Product) Clone() Product {
	if p.Stock != nil {
		s := *p.Stock
		p.Stock = &s
	}
	if p.Variations != nil {
		p.Variations = append([]ProductVariation{}, p.Variations...)
	}
	return p
}
