package paymentmethod

import (
	"context"

	"github.com/fekuna/omnipos-register/internal/model"
	"github.com/fekuna/omnipos-register/internal/paymentmethod/dto"
)

type UseCase interface {
	CreatePaymentMethod(ctx context.Context, input *dto.CreatePaymentMethodInput) (*model.PaymentMethod, error)
	ListPaymentMethods(ctx context.Context, enabledOnly bool) ([]model.PaymentMethod, error)
	UpdatePaymentMethod(ctx context.Context, input *dto.UpdatePaymentMethodInput) (*model.PaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, id string) error
}
