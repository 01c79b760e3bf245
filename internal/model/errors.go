package model

import (
	"errors"
	"fmt"
)

// Error kinds. Every domain error wraps exactly one of these so transport
// layers can classify failures with errors.Is.
var (
	ErrNotFound = errors.New("not found")
	ErrInvalid  = errors.New("invalid argument")
	ErrConflict = errors.New("conflict")
)

var (
	ErrProductNotFound       = fmt.Errorf("product %w", ErrNotFound)
	ErrVariationNotFound     = fmt.Errorf("variation %w", ErrNotFound)
	ErrCategoryNotFound      = fmt.Errorf("category %w", ErrNotFound)
	ErrBasketItemNotFound    = fmt.Errorf("basket item %w", ErrNotFound)
	ErrSaleNotFound          = fmt.Errorf("sale %w", ErrNotFound)
	ErrPaymentMethodNotFound = fmt.Errorf("payment method %w", ErrNotFound)

	ErrDuplicateID              = fmt.Errorf("id already exists: %w", ErrConflict)
	ErrDuplicateName            = fmt.Errorf("name already exists: %w", ErrConflict)
	ErrEmptyBasket              = fmt.Errorf("basket is empty: %w", ErrConflict)
	ErrAlreadyRefunded          = fmt.Errorf("sale already refunded: %w", ErrConflict)
	ErrProtectedPaymentMethod   = fmt.Errorf("payment method cannot be removed: %w", ErrConflict)
	ErrPaymentMethodUnavailable = fmt.Errorf("payment method unavailable: %w", ErrConflict)
	ErrCategoryInUse            = fmt.Errorf("category is referenced by products: %w", ErrConflict)
	ErrNotVariationMode         = fmt.Errorf("product does not use variations: %w", ErrConflict)
	ErrVariationRequired        = fmt.Errorf("variation must be selected: %w", ErrInvalid)
	ErrUnexpectedVariation      = fmt.Errorf("product has no variations: %w", ErrInvalid)
	ErrInsufficientTender       = fmt.Errorf("amount paid is less than total: %w", ErrInvalid)
)

// Invalidf builds a validation error carrying ErrInvalid.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalid)
}
