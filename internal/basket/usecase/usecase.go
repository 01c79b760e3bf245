package usecase

import (
	"context"

	"github.com/fekuna/omnipos-register/internal/auth"
	"github.com/fekuna/omnipos-register/internal/basket"
	"github.com/fekuna/omnipos-register/internal/basket/dto"
	"github.com/fekuna/omnipos-register/internal/model"
	"github.com/fekuna/omnipos-register/internal/pkg/logger"
	"go.uber.org/zap"
)

type basketUseCase struct {
	repo   basket.Repository
	logger logger.ZapLogger
}

func NewBasketUseCase(repo basket.Repository, log logger.ZapLogger) basket.UseCase {
	return &basketUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *basketUseCase) GetBasket(ctx context.Context) (*model.Basket, error) {
	b := uc.repo.Basket()
	return &b, nil
}

func (uc *basketUseCase) AddItem(ctx context.Context, key model.BasketKey) (*model.Basket, error) {
	if key.ProductID == "" {
		return nil, model.Invalidf("product id is required")
	}
	if err := uc.repo.AddToBasket(key.ProductID, key.VariationID); err != nil {
		return nil, err
	}
	return uc.GetBasket(ctx)
}

func (uc *basketUseCase) RemoveItem(ctx context.Context, key model.BasketKey) (*model.Basket, error) {
	if err := uc.repo.RemoveFromBasket(key); err != nil {
		return nil, err
	}
	return uc.GetBasket(ctx)
}

// SetQuantity rebuilds the basket so the row holds exactly quantity units.
// Quantities below one are treated as one; above model.MaxLineQuantity they
// are refused.
func (uc *basketUseCase) SetQuantity(ctx context.Context, key model.BasketKey, quantity int) (*model.Basket, error) {
	if err := uc.repo.SetBasketQuantity(key, quantity); err != nil {
		return nil, err
	}
	return uc.GetBasket(ctx)
}

func (uc *basketUseCase) ClearBasket(ctx context.Context) (*model.Basket, error) {
	uc.repo.ClearBasket()
	uc.logger.Debug("basket cleared", zap.String("operator_id", auth.GetOperatorID(ctx)))
	return uc.GetBasket(ctx)
}

// Checkout records the basket as a sale and returns its receipt. A tendered
// amount below the basket total is refused before anything is recorded.
func (uc *basketUseCase) Checkout(ctx context.Context, input *dto.CheckoutInput) (*model.Receipt, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	txnID, err := uc.repo.CheckoutTendered(input.PaymentMethod, input.AmountPaid)
	if err != nil {
		uc.logger.Warn("checkout refused",
			zap.String("payment_method", input.PaymentMethod),
			zap.Stringer("amount_paid", input.AmountPaid),
			zap.Error(err),
		)
		return nil, err
	}

	sale, err := uc.repo.Sale(txnID)
	if err != nil {
		return nil, err
	}
	receipt := model.NewReceipt(sale, uc.repo.Settings(), input.AmountPaid)

	uc.logger.Info("sale completed",
		zap.String("transaction_id", txnID),
		zap.String("operator_id", auth.GetOperatorID(ctx)),
		zap.String("payment_method", sale.PaymentMethod),
		zap.Stringer("total", sale.Total),
		zap.Stringer("change", receipt.Change),
		zap.Int("lines", len(sale.Items)),
	)
	return &receipt, nil
}
