package usecase

import (
	"context"

	"github.com/fekuna/omnipos-register/internal/model"
	"github.com/fekuna/omnipos-register/internal/paymentmethod"
	"github.com/fekuna/omnipos-register/internal/paymentmethod/dto"
	"github.com/fekuna/omnipos-register/internal/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type paymentMethodUseCase struct {
	repo   paymentmethod.Repository
	logger logger.ZapLogger
}

func NewPaymentMethodUseCase(repo paymentmethod.Repository, log logger.ZapLogger) paymentmethod.UseCase {
	return &paymentMethodUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *paymentMethodUseCase) CreatePaymentMethod(ctx context.Context, input *dto.CreatePaymentMethodInput) (*model.PaymentMethod, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	m := model.PaymentMethod{
		ID:      uuid.New().String(),
		Name:    input.Name,
		Enabled: input.Enabled,
	}
	if err := uc.repo.AddPaymentMethod(m); err != nil {
		return nil, err
	}

	uc.logger.Info("payment method created", zap.String("payment_method_id", m.ID), zap.String("name", m.Name))
	return &m, nil
}

func (uc *paymentMethodUseCase) ListPaymentMethods(ctx context.Context, enabledOnly bool) ([]model.PaymentMethod, error) {
	methods := uc.repo.PaymentMethods()
	if !enabledOnly {
		return methods, nil
	}

	enabled := []model.PaymentMethod{}
	for _, m := range methods {
		if m.Enabled {
			enabled = append(enabled, m)
		}
	}
	return enabled, nil
}

func (uc *paymentMethodUseCase) UpdatePaymentMethod(ctx context.Context, input *dto.UpdatePaymentMethodInput) (*model.PaymentMethod, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	m := model.PaymentMethod{ID: input.ID, Name: input.Name, Enabled: input.Enabled}
	if err := uc.repo.UpdatePaymentMethod(m); err != nil {
		return nil, err
	}

	uc.logger.Info("payment method updated",
		zap.String("payment_method_id", m.ID),
		zap.String("name", m.Name),
		zap.Bool("enabled", m.Enabled),
	)
	return &m, nil
}

func (uc *paymentMethodUseCase) DeletePaymentMethod(ctx context.Context, id string) error {
	if err := uc.repo.RemovePaymentMethod(id); err != nil {
		return err
	}
	uc.logger.Info("payment method deleted", zap.String("payment_method_id", id))
	return nil
}
