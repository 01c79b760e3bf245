package product

import "github.com/fekuna/omnipos-register/internal/model"

type Repository interface {
	AddProduct(product model.Product) error
	Product(id string) (model.Product, error)
	Products() []model.Product
	UpdateProduct(product model.Product) error
	RemoveProduct(id string) error
}
