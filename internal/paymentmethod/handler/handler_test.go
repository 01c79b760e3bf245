package handler

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-register/internal/api/posv1"
	"github.com/fekuna/omnipos-register/internal/paymentmethod/usecase"
	"github.com/fekuna/omnipos-register/internal/pkg/logger"
	"github.com/fekuna/omnipos-register/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestPaymentMethodHandler(t *testing.T) {
	ctx := context.Background()
	log := logger.NewNop()
	h := NewPaymentMethodHandler(usecase.NewPaymentMethodUseCase(store.New(), log), log)

	created, err := h.CreatePaymentMethod(ctx, &posv1.CreatePaymentMethodRequest{Name: "Voucher", Enabled: true})
	require.NoError(t, err)
	assert.Equal(t, "Voucher", created.PaymentMethod.Name)

	list, err := h.ListPaymentMethods(ctx, &posv1.ListPaymentMethodsRequest{EnabledOnly: true})
	require.NoError(t, err)
	assert.Len(t, list.PaymentMethods, 3)

	_, err = h.CreatePaymentMethod(ctx, &posv1.CreatePaymentMethodRequest{Name: "VOUCHER"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = h.DeletePaymentMethod(ctx, &posv1.DeletePaymentMethodRequest{Id: "cash"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = h.DeletePaymentMethod(ctx, &posv1.DeletePaymentMethodRequest{Id: created.PaymentMethod.Id})
	require.NoError(t, err)
}
