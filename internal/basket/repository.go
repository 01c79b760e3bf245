package basket

import (
	"github.com/fekuna/omnipos-register/internal/model"
	"github.com/shopspring/decimal"
)

type Repository interface {
	Basket() model.Basket
	AddToBasket(productID, variationID string) error
	RemoveFromBasket(key model.BasketKey) error
	SetBasketQuantity(key model.BasketKey, quantity int) error
	ClearBasket()
	CheckoutTendered(paymentMethod string, tendered decimal.Decimal) (string, error)
	Sale(id string) (model.Sale, error)
	Settings() model.Settings
}
