package settings

import (
	"context"

	"github.com/fekuna/omnipos-register/internal/model"
)

type UseCase interface {
	GetSettings(ctx context.Context) (*model.Settings, error)
	UpdateSiteName(ctx context.Context, name string) (*model.Settings, error)
	UpdateCurrency(ctx context.Context, symbol string) (*model.Settings, error)
}
