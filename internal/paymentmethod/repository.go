package paymentmethod

import "github.com/fekuna/omnipos-register/internal/model"

type Repository interface {
	AddPaymentMethod(m model.PaymentMethod) error
	PaymentMethod(id string) (model.PaymentMethod, error)
	PaymentMethods() []model.PaymentMethod
	UpdatePaymentMethod(m model.PaymentMethod) error
	RemovePaymentMethod(id string) error
}
