package dto

import (
	"strings"

	"github.com/fekuna/omnipos-register/internal/model"
)

type CreateCategoryInput struct {
	Name string
}

func (in *CreateCategoryInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return model.Invalidf("category name is required")
	}
	return nil
}

type UpdateCategoryInput struct {
	ID   string
	Name string
}

func (in *UpdateCategoryInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	if in.ID == "" {
		return model.Invalidf("category id is required")
	}
	if in.Name == "" {
		return model.Invalidf("category name is required")
	}
	return nil
}
