package usecase

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-register/internal/category/dto"
	"github.com/fekuna/omnipos-register/internal/model"
	"github.com/fekuna/omnipos-register/internal/pkg/logger"
	"github.com/fekuna/omnipos-register/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCategoryLifecycle(t *testing.T) {
	ctx := context.Background()
	st := store.New()
	uc := NewCategoryUseCase(st, logger.NewNop())

	cat, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "  Snacks "})
	require.NoError(t, err)
	assert.NotEmpty(t, cat.ID)
	assert.Equal(t, "Snacks", cat.Name)

	updated, err := uc.UpdateCategory(ctx, &dto.UpdateCategoryInput{ID: cat.ID, Name: "Sweets"})
	require.NoError(t, err)
	assert.Equal(t, "Sweets", updated.Name)

	got, err := uc.GetCategory(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, *updated, *got)

	list, err := uc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []dto.CategoryListing{{Category: *updated}}, list)

	require.NoError(t, uc.DeleteCategory(ctx, cat.ID))
	_, err = uc.GetCategory(ctx, cat.ID)
	assert.ErrorIs(t, err, model.ErrCategoryNotFound)
}

func TestCreateCategoryRequiresName(t *testing.T) {
	uc := NewCategoryUseCase(store.New(), logger.NewNop())
	_, err := uc.CreateCategory(context.Background(), &dto.CreateCategoryInput{Name: " "})
	assert.ErrorIs(t, err, model.ErrInvalid)

	_, err = uc.UpdateCategory(context.Background(), &dto.UpdateCategoryInput{Name: "x"})
	assert.ErrorIs(t, err, model.ErrInvalid)
}

func TestDeleteCategoryInUseIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	st := store.New()
	uc := NewCategoryUseCase(st, logger.FromZap(zap.New(core)))

	cat, err := uc.CreateCategory(context.Background(), &dto.CreateCategoryInput{Name: "Drinks"})
	require.NoError(t, err)
	require.NoError(t, st.AddProduct(model.Product{ID: "p", Name: "Cola", Price: decimal.NewFromInt(1), CategoryID: cat.ID}))

	err = uc.DeleteCategory(context.Background(), cat.ID)
	assert.ErrorIs(t, err, model.ErrCategoryInUse)
	assert.Equal(t, 1, logs.FilterMessage("refusing to delete category in use").Len())
}

func TestListCategoriesCountsProducts(t *testing.T) {
	uc := NewCategoryUseCase(store.New(store.WithDemoCatalog()), logger.NewNop())

	_, err := uc.CreateCategory(context.Background(), &dto.CreateCategoryInput{Name: "Empty"})
	require.NoError(t, err)

	list, err := uc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "1", list[0].Category.ID)
	assert.Equal(t, 1, list[0].ProductCount)
	assert.Equal(t, 1, list[1].ProductCount)
	assert.Equal(t, "Empty", list[2].Category.Name)
	assert.Equal(t, 0, list[2].ProductCount)
}
