package sale

import "github.com/fekuna/omnipos-register/internal/model"

type Repository interface {
	Sale(id string) (model.Sale, error)
	Sales() []model.Sale
	RefundSale(saleID, reason string) error
}
