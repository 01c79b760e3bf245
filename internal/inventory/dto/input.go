package dto

import (
	"strings"

	"github.com/fekuna/omnipos-register/internal/model"
)

type AddVariationInput struct {
	ProductID string
	Name      string
	Stock     int
}

func (in *AddVariationInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	if in.ProductID == "" {
		return model.Invalidf("product id is required")
	}
	if in.Name == "" {
		return model.Invalidf("variation name is required")
	}
	if in.Stock < 0 {
		return model.Invalidf("variation stock must not be negative")
	}
	return nil
}

type UpdateVariationInput struct {
	ProductID   string
	VariationID string
	Name        string
	Stock       int
}

func (in *UpdateVariationInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	if in.ProductID == "" || in.VariationID == "" {
		return model.Invalidf("product id and variation id are required")
	}
	if in.Name == "" {
		return model.Invalidf("variation name is required")
	}
	if in.Stock < 0 {
		return model.Invalidf("variation stock must not be negative")
	}
	return nil
}
