package handler

import (
	"context"
	"strings"

	"github.com/fekuna/omnipos-register/internal/api/posv1"
	"github.com/fekuna/omnipos-register/internal/model"
	"github.com/fekuna/omnipos-register/internal/pkg/logger"
	"github.com/fekuna/omnipos-register/internal/pkg/rpc"
	"github.com/fekuna/omnipos-register/internal/product"
	"github.com/fekuna/omnipos-register/internal/product/dto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/emptypb"
)

var _ posv1.ProductServiceServer = (*ProductHandler)(nil)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) CreateProduct(ctx context.Context, req *posv1.CreateProductRequest) (*posv1.ProductResponse, error) {
	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, rpc.Status(err)
	}

	input := &dto.CreateProductInput{
		Name:          req.Name,
		Price:         price,
		CategoryID:    req.CategoryId,
		HasVariations: req.HasVariations,
		Stock:         intPtr(req.Stock),
	}

	p, err := h.uc.CreateProduct(ctx, input)
	if err != nil {
		h.logger.Error("failed to create product", zap.Error(err))
		return nil, rpc.Status(err)
	}
	return &posv1.ProductResponse{Product: posv1.FromProduct(*p)}, nil
}

func (h *ProductHandler) GetProduct(ctx context.Context, req *posv1.GetProductRequest) (*posv1.ProductResponse, error) {
	p, err := h.uc.GetProduct(ctx, req.Id)
	if err != nil {
		return nil, rpc.Status(err)
	}
	return &posv1.ProductResponse{Product: posv1.FromProduct(*p)}, nil
}

func (h *ProductHandler) ListProducts(ctx context.Context, req *posv1.ListProductsRequest) (*posv1.ListProductsResponse, error) {
	filters := &dto.ProductFilters{
		CategoryID:  req.CategoryId,
		SearchQuery: req.Query,
		Page:        int(req.Page),
		PageSize:    int(req.PageSize),
	}

	products, count, err := h.uc.ListProducts(ctx, filters)
	if err != nil {
		return nil, rpc.Status(err)
	}

	out := make([]*posv1.Product, len(products))
	for i, p := range products {
		out[i] = posv1.FromProduct(p)
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	return &posv1.ListProductsResponse{
		Products: out,
		Total:    posv1.Count32(count),
		Page:     page,
		PageSize: req.PageSize,
	}, nil
}

func (h *ProductHandler) UpdateProduct(ctx context.Context, req *posv1.UpdateProductRequest) (*posv1.ProductResponse, error) {
	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, rpc.Status(err)
	}

	input := &dto.UpdateProductInput{
		ID:            req.Id,
		Name:          req.Name,
		Price:         price,
		CategoryID:    req.CategoryId,
		HasVariations: req.HasVariations,
		Stock:         intPtr(req.Stock),
		Variations:    toVariations(req.Variations),
	}

	p, err := h.uc.UpdateProduct(ctx, input)
	if err != nil {
		h.logger.Error("failed to update product", zap.String("product_id", req.Id), zap.Error(err))
		return nil, rpc.Status(err)
	}
	return &posv1.ProductResponse{Product: posv1.FromProduct(*p)}, nil
}

func (h *ProductHandler) DeleteProduct(ctx context.Context, req *posv1.DeleteProductRequest) (*emptypb.Empty, error) {
	if err := h.uc.DeleteProduct(ctx, req.Id); err != nil {
		return nil, rpc.Status(err)
	}
	return &emptypb.Empty{}, nil
}

// parsePrice returns nil for an empty string so the input validation can
// report a missing price.
func parsePrice(s string) (*decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, model.Invalidf("price %q is not a number", s)
	}
	return &d, nil
}

func intPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}

func toVariations(in []*posv1.ProductVariation) []model.ProductVariation {
	if in == nil {
		return nil
	}
	out := make([]model.ProductVariation, len(in))
	for i, v := range in {
		out[i] = model.ProductVariation{ID: v.Id, Name: v.Name, Stock: int(v.Stock)}
	}
	return out
}
