package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCheckAmount(t *testing.T) {
	tests := []struct {
		amount string
		valid  bool
	}{
		{"0", true},
		{"12", true},
		{"1.5", true},
		{"1.50", true},
		{"1.500", true},
		{"0.005", false},
		{"2.999", false},
		{"-1", false},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			err := CheckAmount("price", decimal.RequireFromString(tt.amount))
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestProductValidateRejectsSubCentPrice(t *testing.T) {
	stock := 1
	p := Product{ID: "p", Name: "Gum", Price: decimal.RequireFromString("0.005"), CategoryID: "c", Stock: &stock}
	assert.ErrorIs(t, p.Validate(), ErrInvalid)
}
