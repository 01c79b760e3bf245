package handler

import (
	"context"

	"github.com/fekuna/omnipos-register/internal/api/posv1"
	"github.com/fekuna/omnipos-register/internal/pkg/logger"
	"github.com/fekuna/omnipos-register/internal/pkg/rpc"
	"github.com/fekuna/omnipos-register/internal/sale"
	"github.com/fekuna/omnipos-register/internal/sale/dto"
	"go.uber.org/zap"
)

var _ posv1.SaleServiceServer = (*SaleHandler)(nil)

type SaleHandler struct {
	uc     sale.UseCase
	logger logger.ZapLogger
}

func NewSaleHandler(uc sale.UseCase, log logger.ZapLogger) *SaleHandler {
	return &SaleHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *SaleHandler) ListSales(ctx context.Context, req *posv1.ListSalesRequest) (*posv1.ListSalesResponse, error) {
	sales, count, err := h.uc.ListSales(ctx, &dto.SaleFilters{RefundedOnly: req.RefundedOnly})
	if err != nil {
		return nil, rpc.Status(err)
	}

	out := make([]*posv1.Sale, len(sales))
	for i, s := range sales {
		out[i] = posv1.FromSale(s)
	}
	return &posv1.ListSalesResponse{Sales: out, Total: posv1.Count32(count)}, nil
}

func (h *SaleHandler) GetSale(ctx context.Context, req *posv1.GetSaleRequest) (*posv1.SaleResponse, error) {
	s, err := h.uc.GetSale(ctx, req.Id)
	if err != nil {
		return nil, rpc.Status(err)
	}
	return &posv1.SaleResponse{Sale: posv1.FromSale(*s)}, nil
}

func (h *SaleHandler) RefundSale(ctx context.Context, req *posv1.RefundSaleRequest) (*posv1.SaleResponse, error) {
	s, err := h.uc.RefundSale(ctx, &dto.RefundSaleInput{SaleID: req.Id, Reason: req.Reason})
	if err != nil {
		h.logger.Error("failed to refund sale", zap.String("sale_id", req.Id), zap.Error(err))
		return nil, rpc.Status(err)
	}
	return &posv1.SaleResponse{Sale: posv1.FromSale(*s)}, nil
}

func (h *SaleHandler) GetSummary(ctx context.Context, req *posv1.GetSummaryRequest) (*posv1.SummaryResponse, error) {
	summary, err := h.uc.GetSummary(ctx)
	if err != nil {
		return nil, rpc.Status(err)
	}
	return &posv1.SummaryResponse{Summary: posv1.FromSummary(*summary)}, nil
}
