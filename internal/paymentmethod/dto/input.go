package dto

import (
	"strings"

	"github.com/fekuna/omnipos-register/internal/model"
)

type CreatePaymentMethodInput struct {
	Name    string
	Enabled bool
}

func (in *CreatePaymentMethodInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return model.Invalidf("payment method name is required")
	}
	return nil
}

type UpdatePaymentMethodInput struct {
	ID      string
	Name    string
	Enabled bool
}

func (in *UpdatePaymentMethodInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	if in.ID == "" {
		return model.Invalidf("payment method id is required")
	}
	if in.Name == "" {
		return model.Invalidf("payment method name is required")
	}
	return nil
}
