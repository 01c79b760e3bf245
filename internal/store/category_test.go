package store

import (
	"testing"

	"github.com/fekuna/omnipos-register/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCRUD(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.AddCategory(model.Category{ID: "food", Name: "Food"}))
	assert.ErrorIs(t, s.AddCategory(model.Category{ID: "food", Name: "Again"}), model.ErrDuplicateID)
	assert.ErrorIs(t, s.AddCategory(model.Category{ID: "x"}), model.ErrInvalid)

	require.NoError(t, s.UpdateCategory(model.Category{ID: "food", Name: "Hot Food"}))
	c, err := s.Category("food")
	require.NoError(t, err)
	assert.Equal(t, "Hot Food", c.Name)

	assert.ErrorIs(t, s.UpdateCategory(model.Category{ID: "ghost", Name: "G"}), model.ErrCategoryNotFound)

	require.NoError(t, s.RemoveCategory("food"))
	assert.ErrorIs(t, s.RemoveCategory("food"), model.ErrCategoryNotFound)
	assert.Equal(t, []model.Category{{ID: "drinks", Name: "Drinks"}}, s.Categories())
}

func TestRemoveCategoryInUse(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AddProduct(simpleProduct("cola", 3, nil)))

	err := s.RemoveCategory("drinks")
	assert.ErrorIs(t, err, model.ErrCategoryInUse)
	assert.ErrorIs(t, err, model.ErrConflict)

	require.NoError(t, s.RemoveProduct("cola"))
	assert.NoError(t, s.RemoveCategory("drinks"))
}

func TestDemoCatalog(t *testing.T) {
	s := New(WithDemoCatalog())
	assert.Len(t, s.Categories(), 2)
	assert.Len(t, s.Products(), 2)
}
