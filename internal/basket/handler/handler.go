package handler

import (
	"context"
	"strings"

	"github.com/fekuna/omnipos-register/internal/api/posv1"
	"github.com/fekuna/omnipos-register/internal/basket"
	"github.com/fekuna/omnipos-register/internal/basket/dto"
	"github.com/fekuna/omnipos-register/internal/model"
	"github.com/fekuna/omnipos-register/internal/pkg/logger"
	"github.com/fekuna/omnipos-register/internal/pkg/rpc"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var _ posv1.BasketServiceServer = (*BasketHandler)(nil)

type BasketHandler struct {
	uc     basket.UseCase
	logger logger.ZapLogger
}

func NewBasketHandler(uc basket.UseCase, log logger.ZapLogger) *BasketHandler {
	return &BasketHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *BasketHandler) GetBasket(ctx context.Context, req *posv1.GetBasketRequest) (*posv1.BasketResponse, error) {
	return respond(h.uc.GetBasket(ctx))
}

func (h *BasketHandler) AddItem(ctx context.Context, req *posv1.AddItemRequest) (*posv1.BasketResponse, error) {
	return respond(h.uc.AddItem(ctx, model.BasketKey{ProductID: req.ProductId, VariationID: req.VariationId}))
}

func (h *BasketHandler) RemoveItem(ctx context.Context, req *posv1.RemoveItemRequest) (*posv1.BasketResponse, error) {
	return respond(h.uc.RemoveItem(ctx, model.BasketKey{ProductID: req.ProductId, VariationID: req.VariationId}))
}

func (h *BasketHandler) SetQuantity(ctx context.Context, req *posv1.SetQuantityRequest) (*posv1.BasketResponse, error) {
	key := model.BasketKey{ProductID: req.ProductId, VariationID: req.VariationId}
	return respond(h.uc.SetQuantity(ctx, key, int(req.Quantity)))
}

func (h *BasketHandler) ClearBasket(ctx context.Context, req *posv1.ClearBasketRequest) (*posv1.BasketResponse, error) {
	return respond(h.uc.ClearBasket(ctx))
}

func (h *BasketHandler) Checkout(ctx context.Context, req *posv1.CheckoutRequest) (*posv1.CheckoutResponse, error) {
	input := &dto.CheckoutInput{PaymentMethod: req.PaymentMethod}
	if paid := strings.TrimSpace(req.AmountPaid); paid != "" {
		d, err := decimal.NewFromString(paid)
		if err != nil {
			return nil, rpc.Status(model.Invalidf("amount paid %q is not a number", paid))
		}
		input.AmountPaid = d
	}

	receipt, err := h.uc.Checkout(ctx, input)
	if err != nil {
		h.logger.Error("checkout failed", zap.String("payment_method", req.PaymentMethod), zap.Error(err))
		return nil, rpc.Status(err)
	}
	return &posv1.CheckoutResponse{
		TransactionId: receipt.TransactionID,
		Receipt:       posv1.FromReceipt(*receipt),
	}, nil
}

func respond(b *model.Basket, err error) (*posv1.BasketResponse, error) {
	if err != nil {
		return nil, rpc.Status(err)
	}
	return &posv1.BasketResponse{Basket: posv1.FromBasket(*b)}, nil
}
