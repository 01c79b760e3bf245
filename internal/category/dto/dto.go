package dto

import "github.com/fekuna/omnipos-register/internal/model"

// CategoryListing backs the category tabs on the cashier screen.
type CategoryListing struct {
	Category     model.Category
	ProductCount int
}
