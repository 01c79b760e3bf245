package handler

import (
	"context"

	"github.com/fekuna/omnipos-register/internal/api/posv1"
	"github.com/fekuna/omnipos-register/internal/paymentmethod"
	"github.com/fekuna/omnipos-register/internal/paymentmethod/dto"
	"github.com/fekuna/omnipos-register/internal/pkg/logger"
	"github.com/fekuna/omnipos-register/internal/pkg/rpc"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/emptypb"
)

var _ posv1.PaymentMethodServiceServer = (*PaymentMethodHandler)(nil)

type PaymentMethodHandler struct {
	uc     paymentmethod.UseCase
	logger logger.ZapLogger
}

func NewPaymentMethodHandler(uc paymentmethod.UseCase, log logger.ZapLogger) *PaymentMethodHandler {
	return &PaymentMethodHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *PaymentMethodHandler) CreatePaymentMethod(ctx context.Context, req *posv1.CreatePaymentMethodRequest) (*posv1.PaymentMethodResponse, error) {
	m, err := h.uc.CreatePaymentMethod(ctx, &dto.CreatePaymentMethodInput{Name: req.Name, Enabled: req.Enabled})
	if err != nil {
		h.logger.Error("failed to create payment method", zap.Error(err))
		return nil, rpc.Status(err)
	}
	return &posv1.PaymentMethodResponse{PaymentMethod: posv1.FromPaymentMethod(*m)}, nil
}

func (h *PaymentMethodHandler) ListPaymentMethods(ctx context.Context, req *posv1.ListPaymentMethodsRequest) (*posv1.ListPaymentMethodsResponse, error) {
	methods, err := h.uc.ListPaymentMethods(ctx, req.EnabledOnly)
	if err != nil {
		return nil, rpc.Status(err)
	}

	out := make([]*posv1.PaymentMethod, len(methods))
	for i, m := range methods {
		out[i] = posv1.FromPaymentMethod(m)
	}
	return &posv1.ListPaymentMethodsResponse{PaymentMethods: out}, nil
}

func (h *PaymentMethodHandler) UpdatePaymentMethod(ctx context.Context, req *posv1.UpdatePaymentMethodRequest) (*posv1.PaymentMethodResponse, error) {
	m, err := h.uc.UpdatePaymentMethod(ctx, &dto.UpdatePaymentMethodInput{ID: req.Id, Name: req.Name, Enabled: req.Enabled})
	if err != nil {
		return nil, rpc.Status(err)
	}
	return &posv1.PaymentMethodResponse{PaymentMethod: posv1.FromPaymentMethod(*m)}, nil
}

func (h *PaymentMethodHandler) DeletePaymentMethod(ctx context.Context, req *posv1.DeletePaymentMethodRequest) (*emptypb.Empty, error) {
	if err := h.uc.DeletePaymentMethod(ctx, req.Id); err != nil {
		return nil, rpc.Status(err)
	}
	return &emptypb.Empty{}, nil
}
