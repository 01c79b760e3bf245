package dto

import "github.com/fekuna/omnipos-register/internal/model"

// StockLevel is the stock view of one product. Total is the sum of the
// variations in variation mode, otherwise the product's own stock.
type StockLevel struct {
	ProductID     string
	HasVariations bool
	Total         int
	Variations    []model.ProductVariation
}
