package usecase

import (
	"context"

	"github.com/fekuna/omnipos-register/internal/model"
	"github.com/fekuna/omnipos-register/internal/pkg/logger"
	"github.com/fekuna/omnipos-register/internal/settings"
	"go.uber.org/zap"
)

type settingsUseCase struct {
	repo   settings.Repository
	logger logger.ZapLogger
}

func NewSettingsUseCase(repo settings.Repository, log logger.ZapLogger) settings.UseCase {
	return &settingsUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *settingsUseCase) GetSettings(ctx context.Context) (*model.Settings, error) {
	s := uc.repo.Settings()
	return &s, nil
}

func (uc *settingsUseCase) UpdateSiteName(ctx context.Context, name string) (*model.Settings, error) {
	if err := uc.repo.UpdateSiteName(name); err != nil {
		return nil, err
	}
	s := uc.repo.Settings()
	uc.logger.Info("site name updated", zap.String("site_name", s.SiteName))
	return &s, nil
}

func (uc *settingsUseCase) UpdateCurrency(ctx context.Context, symbol string) (*model.Settings, error) {
	if err := uc.repo.UpdateCurrency(symbol); err != nil {
		return nil, err
	}
	s := uc.repo.Settings()
	uc.logger.Info("currency updated", zap.String("currency", s.Currency))
	return &s, nil
}
