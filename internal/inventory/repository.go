package inventory

import "github.com/fekuna/omnipos-register/internal/model"

type Repository interface {
	Product(id string) (model.Product, error)
	ToggleVariations(productID string) (model.Product, error)
	AddProductVariation(productID string, v model.ProductVariation) error
	UpdateProductVariation(productID string, v model.ProductVariation) error
	RemoveProductVariation(productID, variationID string) error
}
