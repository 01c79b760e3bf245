package usecase

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-register/internal/category"
	"github.com/fekuna/omnipos-register/internal/category/dto"
	"github.com/fekuna/omnipos-register/internal/model"
	"github.com/fekuna/omnipos-register/internal/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type categoryUseCase struct {
	repo   category.Repository
	logger logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	cat := model.Category{
		ID:   uuid.New().String(),
		Name: input.Name,
	}
	if err := uc.repo.AddCategory(cat); err != nil {
		return nil, err
	}

	uc.logger.Info("category created", zap.String("category_id", cat.ID), zap.String("name", cat.Name))
	return &cat, nil
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	cat, err := uc.repo.Category(id)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// ListCategories returns every category in creation order with the number of
// products filed under it.
func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]dto.CategoryListing, error) {
	counts := make(map[string]int)
	for _, p := range uc.repo.Products() {
		counts[p.CategoryID]++
	}

	categories := uc.repo.Categories()
	out := make([]dto.CategoryListing, len(categories))
	for i, c := range categories {
		out[i] = dto.CategoryListing{Category: c, ProductCount: counts[c.ID]}
	}
	return out, nil
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	cat := model.Category{ID: input.ID, Name: input.Name}
	if err := uc.repo.UpdateCategory(cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// DeleteCategory fails while any product still points at the category.
func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id string) error {
	if err := uc.repo.RemoveCategory(id); err != nil {
		if errors.Is(err, model.ErrCategoryInUse) {
			uc.logger.Warn("refusing to delete category in use", zap.String("category_id", id))
		}
		return err
	}
	uc.logger.Info("category deleted", zap.String("category_id", id))
	return nil
}
