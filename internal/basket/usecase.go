package basket

import (
	"context"

	"github.com/fekuna/omnipos-register/internal/basket/dto"
	"github.com/fekuna/omnipos-register/internal/model"
)

type UseCase interface {
	GetBasket(ctx context.Context) (*model.Basket, error)
	AddItem(ctx context.Context, key model.BasketKey) (*model.Basket, error)
	RemoveItem(ctx context.Context, key model.BasketKey) (*model.Basket, error)
	SetQuantity(ctx context.Context, key model.BasketKey, quantity int) (*model.Basket, error)
	ClearBasket(ctx context.Context) (*model.Basket, error)
	Checkout(ctx context.Context, input *dto.CheckoutInput) (*model.Receipt, error)
}
