package handler

import (
	"context"

	"github.com/fekuna/omnipos-register/internal/api/posv1"
	"github.com/fekuna/omnipos-register/internal/model"
	"github.com/fekuna/omnipos-register/internal/pkg/logger"
	"github.com/fekuna/omnipos-register/internal/pkg/rpc"
	"github.com/fekuna/omnipos-register/internal/settings"
)

var _ posv1.SettingsServiceServer = (*SettingsHandler)(nil)

type SettingsHandler struct {
	uc     settings.UseCase
	logger logger.ZapLogger
}

func NewSettingsHandler(uc settings.UseCase, log logger.ZapLogger) *SettingsHandler {
	return &SettingsHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *SettingsHandler) GetSettings(ctx context.Context, req *posv1.GetSettingsRequest) (*posv1.SettingsResponse, error) {
	return respond(h.uc.GetSettings(ctx))
}

func (h *SettingsHandler) UpdateSiteName(ctx context.Context, req *posv1.UpdateSiteNameRequest) (*posv1.SettingsResponse, error) {
	return respond(h.uc.UpdateSiteName(ctx, req.SiteName))
}

func (h *SettingsHandler) UpdateCurrency(ctx context.Context, req *posv1.UpdateCurrencyRequest) (*posv1.SettingsResponse, error) {
	return respond(h.uc.UpdateCurrency(ctx, req.Currency))
}

func respond(s *model.Settings, err error) (*posv1.SettingsResponse, error) {
	if err != nil {
		return nil, rpc.Status(err)
	}
	return &posv1.SettingsResponse{Settings: posv1.FromSettings(*s)}, nil
}
