package sale

import (
	"context"

	"github.com/fekuna/omnipos-register/internal/model"
	"github.com/fekuna/omnipos-register/internal/sale/dto"
)

type UseCase interface {
	ListSales(ctx context.Context, filters *dto.SaleFilters) ([]model.Sale, int, error)
	GetSale(ctx context.Context, id string) (*model.Sale, error)
	RefundSale(ctx context.Context, input *dto.RefundSaleInput) (*model.Sale, error)
	GetSummary(ctx context.Context) (*model.SalesSummary, error)
}
