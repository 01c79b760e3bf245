package handler

import (
	"context"

	"github.com/fekuna/omnipos-register/internal/api/posv1"
	"github.com/fekuna/omnipos-register/internal/category"
	"github.com/fekuna/omnipos-register/internal/category/dto"
	"github.com/fekuna/omnipos-register/internal/pkg/logger"
	"github.com/fekuna/omnipos-register/internal/pkg/rpc"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/emptypb"
)

var _ posv1.CategoryServiceServer = (*CategoryHandler)(nil)

type CategoryHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CategoryHandler) CreateCategory(ctx context.Context, req *posv1.CreateCategoryRequest) (*posv1.CategoryResponse, error) {
	cat, err := h.uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: req.Name})
	if err != nil {
		h.logger.Error("failed to create category", zap.Error(err))
		return nil, rpc.Status(err)
	}
	return &posv1.CategoryResponse{Category: posv1.FromCategory(*cat)}, nil
}

func (h *CategoryHandler) GetCategory(ctx context.Context, req *posv1.GetCategoryRequest) (*posv1.CategoryResponse, error) {
	cat, err := h.uc.GetCategory(ctx, req.Id)
	if err != nil {
		return nil, rpc.Status(err)
	}
	return &posv1.CategoryResponse{Category: posv1.FromCategory(*cat)}, nil
}

func (h *CategoryHandler) ListCategories(ctx context.Context, req *posv1.ListCategoriesRequest) (*posv1.ListCategoriesResponse, error) {
	listings, err := h.uc.ListCategories(ctx)
	if err != nil {
		return nil, rpc.Status(err)
	}

	out := make([]*posv1.Category, len(listings))
	for i, l := range listings {
		out[i] = posv1.FromCategory(l.Category)
		out[i].ProductCount = posv1.Count32(l.ProductCount)
	}
	return &posv1.ListCategoriesResponse{Categories: out, Total: posv1.Count32(len(out))}, nil
}

func (h *CategoryHandler) UpdateCategory(ctx context.Context, req *posv1.UpdateCategoryRequest) (*posv1.CategoryResponse, error) {
	cat, err := h.uc.UpdateCategory(ctx, &dto.UpdateCategoryInput{ID: req.Id, Name: req.Name})
	if err != nil {
		return nil, rpc.Status(err)
	}
	return &posv1.CategoryResponse{Category: posv1.FromCategory(*cat)}, nil
}

func (h *CategoryHandler) DeleteCategory(ctx context.Context, req *posv1.DeleteCategoryRequest) (*emptypb.Empty, error) {
	if err := h.uc.DeleteCategory(ctx, req.Id); err != nil {
		return nil, rpc.Status(err)
	}
	return &emptypb.Empty{}, nil
}
