package usecase

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-register/internal/auth"
	"github.com/fekuna/omnipos-register/internal/model"
	"github.com/fekuna/omnipos-register/internal/pkg/logger"
	"github.com/fekuna/omnipos-register/internal/sale"
	"github.com/fekuna/omnipos-register/internal/sale/dto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type saleUseCase struct {
	repo   sale.Repository
	logger logger.ZapLogger
}

func NewSaleUseCase(repo sale.Repository, log logger.ZapLogger) sale.UseCase {
	return &saleUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *saleUseCase) ListSales(ctx context.Context, filters *dto.SaleFilters) ([]model.Sale, int, error) {
	sales := uc.repo.Sales()
	if !filters.RefundedOnly {
		return sales, len(sales), nil
	}

	refunded := []model.Sale{}
	for _, s := range sales {
		if s.Refunded {
			refunded = append(refunded, s)
		}
	}
	return refunded, len(refunded), nil
}

func (uc *saleUseCase) GetSale(ctx context.Context, id string) (*model.Sale, error) {
	s, err := uc.repo.Sale(id)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// RefundSale flags the sale as refunded. Stock is not restored.
func (uc *saleUseCase) RefundSale(ctx context.Context, input *dto.RefundSaleInput) (*model.Sale, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := uc.repo.RefundSale(input.SaleID, input.Reason); err != nil {
		if errors.Is(err, model.ErrAlreadyRefunded) {
			uc.logger.Warn("sale already refunded", zap.String("sale_id", input.SaleID))
		}
		return nil, err
	}

	s, err := uc.repo.Sale(input.SaleID)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("sale refunded",
		zap.String("sale_id", s.ID),
		zap.String("operator_id", auth.GetOperatorID(ctx)),
		zap.Stringer("total", s.Total),
		zap.String("reason", s.RefundReason),
	)
	return &s, nil
}

// GetSummary totals the ledger. Refunded sales stay in Gross and are
// subtracted in Net.
func (uc *saleUseCase) GetSummary(ctx context.Context) (*model.SalesSummary, error) {
	summary := &model.SalesSummary{
		Gross:    decimal.Zero,
		Refunded: decimal.Zero,
	}
	for _, s := range uc.repo.Sales() {
		summary.Count++
		summary.Gross = summary.Gross.Add(s.Total)
		if s.Refunded {
			summary.RefundedCount++
			summary.Refunded = summary.Refunded.Add(s.Total)
		}
	}
	summary.Net = summary.Gross.Sub(summary.Refunded)
	return summary, nil
}
