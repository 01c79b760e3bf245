package inventory

import (
	"context"

	"github.com/fekuna/omnipos-register/internal/inventory/dto"
	"github.com/fekuna/omnipos-register/internal/model"
)

type UseCase interface {
	AddVariation(ctx context.Context, input *dto.AddVariationInput) (*model.ProductVariation, error)
	UpdateVariation(ctx context.Context, input *dto.UpdateVariationInput) (*model.ProductVariation, error)
	RemoveVariation(ctx context.Context, productID, variationID string) error
	ToggleVariations(ctx context.Context, productID string) (*model.Product, error)
	GetStock(ctx context.Context, productID string) (*dto.StockLevel, error)
}
