package category

import "github.com/fekuna/omnipos-register/internal/model"

type Repository interface {
	AddCategory(category model.Category) error
	Category(id string) (model.Category, error)
	Categories() []model.Category
	UpdateCategory(category model.Category) error
	RemoveCategory(id string) error
	Products() []model.Product
}
