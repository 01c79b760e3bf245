package handler

import (
	"context"

	"github.com/fekuna/omnipos-register/internal/api/posv1"
	"github.com/fekuna/omnipos-register/internal/inventory"
	"github.com/fekuna/omnipos-register/internal/inventory/dto"
	"github.com/fekuna/omnipos-register/internal/pkg/logger"
	"github.com/fekuna/omnipos-register/internal/pkg/rpc"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/emptypb"
)

var _ posv1.InventoryServiceServer = (*InventoryHandler)(nil)

type InventoryHandler struct {
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *InventoryHandler) AddVariation(ctx context.Context, req *posv1.AddVariationRequest) (*posv1.VariationResponse, error) {
	v, err := h.uc.AddVariation(ctx, &dto.AddVariationInput{
		ProductID: req.ProductId,
		Name:      req.Name,
		Stock:     int(req.Stock),
	})
	if err != nil {
		h.logger.Error("failed to add variation", zap.String("product_id", req.ProductId), zap.Error(err))
		return nil, rpc.Status(err)
	}
	return &posv1.VariationResponse{Variation: posv1.FromVariation(*v)}, nil
}

func (h *InventoryHandler) UpdateVariation(ctx context.Context, req *posv1.UpdateVariationRequest) (*posv1.VariationResponse, error) {
	v, err := h.uc.UpdateVariation(ctx, &dto.UpdateVariationInput{
		ProductID:   req.ProductId,
		VariationID: req.Id,
		Name:        req.Name,
		Stock:       int(req.Stock),
	})
	if err != nil {
		return nil, rpc.Status(err)
	}
	return &posv1.VariationResponse{Variation: posv1.FromVariation(*v)}, nil
}

func (h *InventoryHandler) RemoveVariation(ctx context.Context, req *posv1.RemoveVariationRequest) (*emptypb.Empty, error) {
	if err := h.uc.RemoveVariation(ctx, req.ProductId, req.Id); err != nil {
		return nil, rpc.Status(err)
	}
	return &emptypb.Empty{}, nil
}

func (h *InventoryHandler) ToggleVariations(ctx context.Context, req *posv1.ToggleVariationsRequest) (*posv1.ProductResponse, error) {
	p, err := h.uc.ToggleVariations(ctx, req.ProductId)
	if err != nil {
		return nil, rpc.Status(err)
	}
	return &posv1.ProductResponse{Product: posv1.FromProduct(*p)}, nil
}

func (h *InventoryHandler) GetStock(ctx context.Context, req *posv1.GetStockRequest) (*posv1.GetStockResponse, error) {
	level, err := h.uc.GetStock(ctx, req.ProductId)
	if err != nil {
		return nil, rpc.Status(err)
	}
	return &posv1.GetStockResponse{
		ProductId:     level.ProductID,
		HasVariations: level.HasVariations,
		TotalStock:    posv1.Count32(level.Total),
		Variations:    posv1.FromVariations(level.Variations),
	}, nil
}
