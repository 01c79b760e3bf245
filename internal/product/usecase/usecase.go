package usecase

import (
	"context"
	"strings"

	"github.com/fekuna/omnipos-register/internal/model"
	"github.com/fekuna/omnipos-register/internal/pkg/logger"
	"github.com/fekuna/omnipos-register/internal/product"
	"github.com/fekuna/omnipos-register/internal/product/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type productUseCase struct {
	repo   product.Repository
	logger logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	p, err := input.Build(uuid.New().String())
	if err != nil {
		return nil, err
	}

	if err := uc.repo.AddProduct(p); err != nil {
		return nil, err
	}

	uc.logger.Info("product created",
		zap.String("product_id", p.ID),
		zap.String("name", p.Name),
		zap.Stringer("price", p.Price),
		zap.Bool("has_variations", p.HasVariations),
	)
	return &p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	p, err := uc.repo.Product(id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProducts filters the catalog the way the cashier grid does: optional
// category, then a case-insensitive name search. Catalog order is kept.
func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	query := strings.ToLower(strings.TrimSpace(filters.SearchQuery))

	matched := []model.Product{}
	for _, p := range uc.repo.Products() {
		if filters.CategoryID != "" && p.CategoryID != filters.CategoryID {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		matched = append(matched, p)
	}

	count := len(matched)
	if filters.PageSize <= 0 {
		return matched, count, nil
	}

	page := filters.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * filters.PageSize
	if start >= count {
		return []model.Product{}, count, nil
	}
	end := min(start+filters.PageSize, count)
	return matched[start:end], count, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	p, err := input.Product()
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateProduct(p); err != nil {
		return nil, err
	}

	uc.logger.Info("product updated", zap.String("product_id", p.ID))
	return &p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	if err := uc.repo.RemoveProduct(id); err != nil {
		return err
	}
	uc.logger.Info("product deleted", zap.String("product_id", id))
	return nil
}
