package usecase

import (
	"context"

	"github.com/fekuna/omnipos-register/internal/inventory"
	"github.com/fekuna/omnipos-register/internal/inventory/dto"
	"github.com/fekuna/omnipos-register/internal/model"
	"github.com/fekuna/omnipos-register/internal/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type inventoryUseCase struct {
	repo   inventory.Repository
	logger logger.ZapLogger
}

func NewInventoryUseCase(repo inventory.Repository, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *inventoryUseCase) AddVariation(ctx context.Context, input *dto.AddVariationInput) (*model.ProductVariation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	v := model.ProductVariation{
		ID:    uuid.New().String(),
		Name:  input.Name,
		Stock: input.Stock,
	}
	if err := uc.repo.AddProductVariation(input.ProductID, v); err != nil {
		return nil, err
	}

	uc.logger.Info("variation added",
		zap.String("product_id", input.ProductID),
		zap.String("variation_id", v.ID),
		zap.Int("stock", v.Stock),
	)
	return &v, nil
}

func (uc *inventoryUseCase) UpdateVariation(ctx context.Context, input *dto.UpdateVariationInput) (*model.ProductVariation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	v := model.ProductVariation{
		ID:    input.VariationID,
		Name:  input.Name,
		Stock: input.Stock,
	}
	if err := uc.repo.UpdateProductVariation(input.ProductID, v); err != nil {
		return nil, err
	}

	uc.logger.Info("variation updated",
		zap.String("product_id", input.ProductID),
		zap.String("variation_id", v.ID),
		zap.Int("stock", v.Stock),
	)
	return &v, nil
}

func (uc *inventoryUseCase) RemoveVariation(ctx context.Context, productID, variationID string) error {
	if err := uc.repo.RemoveProductVariation(productID, variationID); err != nil {
		return err
	}
	uc.logger.Info("variation removed", zap.String("product_id", productID), zap.String("variation_id", variationID))
	return nil
}

// ToggleVariations flips the product between simple and variation stock.
// Switching discards the stock of the mode being left.
func (uc *inventoryUseCase) ToggleVariations(ctx context.Context, productID string) (*model.Product, error) {
	p, err := uc.repo.ToggleVariations(productID)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("product stock mode switched",
		zap.String("product_id", productID),
		zap.Bool("has_variations", p.HasVariations),
	)
	return &p, nil
}

// GetStock reports the total and the per-variation breakdown from a single
// product snapshot.
func (uc *inventoryUseCase) GetStock(ctx context.Context, productID string) (*dto.StockLevel, error) {
	p, err := uc.repo.Product(productID)
	if err != nil {
		return nil, err
	}
	return &dto.StockLevel{
		ProductID:     p.ID,
		HasVariations: p.HasVariations,
		Total:         p.TotalStock(),
		Variations:    p.Variations,
	}, nil
}
