package settings

import "github.com/fekuna/omnipos-register/internal/model"

type Repository interface {
	Settings() model.Settings
	UpdateSiteName(name string) error
	UpdateCurrency(symbol string) error
}
