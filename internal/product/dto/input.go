package dto

import (
	"strings"

	"github.com/fekuna/omnipos-register/internal/model"
	"github.com/shopspring/decimal"
)

// CreateProductInput is a product draft from the admin form. Build turns it
// into a well-formed Product once every required field is present.
type CreateProductInput struct {
	Name          string
	Price         *decimal.Decimal
	CategoryID    string
	HasVariations bool
	Stock         *int
}

func (in *CreateProductInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	switch {
	case in.Name == "":
		return model.Invalidf("product name is required")
	case in.Price == nil:
		return model.Invalidf("product price is required")
	case in.CategoryID == "":
		return model.Invalidf("product category is required")
	case in.Stock != nil && *in.Stock < 0:
		return model.Invalidf("product stock must not be negative")
	}
	return model.CheckAmount("product price", *in.Price)
}

// Build validates the draft and returns the product it describes. A draft
// with variations starts with an empty variation list and no scalar stock;
// a simple draft defaults its stock to 0.
func (in *CreateProductInput) Build(id string) (model.Product, error) {
	if err := in.Validate(); err != nil {
		return model.Product{}, err
	}

	p := model.Product{
		ID:            id,
		Name:          in.Name,
		Price:         *in.Price,
		CategoryID:    in.CategoryID,
		HasVariations: in.HasVariations,
	}
	if in.HasVariations {
		p.Variations = []model.ProductVariation{}
	} else {
		stock := 0
		if in.Stock != nil {
			stock = *in.Stock
		}
		p.Stock = &stock
	}
	return p, p.Validate()
}

// UpdateProductInput carries the complete replacement record.
type UpdateProductInput struct {
	ID            string
	Name          string
	Price         *decimal.Decimal
	CategoryID    string
	HasVariations bool
	Stock         *int
	Variations    []model.ProductVariation
}

func (in *UpdateProductInput) Product() (model.Product, error) {
	if in.Price == nil {
		return model.Product{}, model.Invalidf("product price is required")
	}
	p := model.Product{
		ID:            in.ID,
		Name:          strings.TrimSpace(in.Name),
		Price:         *in.Price,
		CategoryID:    in.CategoryID,
		HasVariations: in.HasVariations,
		Stock:         in.Stock,
		Variations:    in.Variations,
	}
	if p.HasVariations && p.Variations == nil {
		p.Variations = []model.ProductVariation{}
	}
	return p, p.Validate()
}
