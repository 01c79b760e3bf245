package usecase

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-register/internal/model"
	"github.com/fekuna/omnipos-register/internal/pkg/logger"
	"github.com/fekuna/omnipos-register/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings(t *testing.T) {
	ctx := context.Background()
	uc := NewSettingsUseCase(store.New(), logger.NewNop())

	s, err := uc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Settings{SiteName: "EPOS System", Currency: "$"}, *s)

	s, err = uc.UpdateSiteName(ctx, " Corner Shop ")
	require.NoError(t, err)
	assert.Equal(t, "Corner Shop", s.SiteName)

	s, err = uc.UpdateCurrency(ctx, "€")
	require.NoError(t, err)
	assert.Equal(t, "€", s.Currency)

	_, err = uc.UpdateSiteName(ctx, "")
	assert.ErrorIs(t, err, model.ErrInvalid)

	_, err = uc.UpdateCurrency(ctx, "¥")
	assert.ErrorIs(t, err, model.ErrInvalid)

	s, err = uc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Settings{SiteName: "Corner Shop", Currency: "€"}, *s)
}
