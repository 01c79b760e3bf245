package handler

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-register/internal/api/posv1"
	"github.com/fekuna/omnipos-register/internal/basket/usecase"
	"github.com/fekuna/omnipos-register/internal/pkg/logger"
	"github.com/fekuna/omnipos-register/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newTestHandler() *BasketHandler {
	log := logger.NewNop()
	st := store.New(store.WithDemoCatalog())
	return NewBasketHandler(usecase.NewBasketUseCase(st, log), log)
}

func TestBasketHandlerCheckout(t *testing.T) {
	h := newTestHandler()
	ctx := context.Background()

	resp, err := h.AddItem(ctx, &posv1.AddItemRequest{ProductId: "1"})
	require.NoError(t, err)
	assert.Equal(t, "10.00", resp.Basket.Total)

	resp, err = h.SetQuantity(ctx, &posv1.SetQuantityRequest{ProductId: "1", Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, "30.00", resp.Basket.Total)
	assert.Equal(t, "30.00", resp.Basket.Items[0].LineTotal)

	out, err := h.Checkout(ctx, &posv1.CheckoutRequest{PaymentMethod: "Cash", AmountPaid: "40"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.TransactionId)
	assert.Equal(t, out.TransactionId, out.Receipt.TransactionId)
	assert.Equal(t, "10.00", out.Receipt.Change)
	assert.Equal(t, "$", out.Receipt.Currency)

	resp, err = h.GetBasket(ctx, &posv1.GetBasketRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp.Basket.Items)
	assert.Equal(t, "0.00", resp.Basket.Total)
}

func TestBasketHandlerErrors(t *testing.T) {
	h := newTestHandler()
	ctx := context.Background()

	_, err := h.Checkout(ctx, &posv1.CheckoutRequest{PaymentMethod: "Cash"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = h.AddItem(ctx, &posv1.AddItemRequest{ProductId: "1"})
	require.NoError(t, err)

	_, err = h.SetQuantity(ctx, &posv1.SetQuantityRequest{ProductId: "1", Quantity: 1<<31 - 1})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = h.Checkout(ctx, &posv1.CheckoutRequest{PaymentMethod: "Cash", AmountPaid: "ten"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = h.Checkout(ctx, &posv1.CheckoutRequest{PaymentMethod: "Cash", AmountPaid: "2.50"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = h.Checkout(ctx, &posv1.CheckoutRequest{PaymentMethod: "Cash", AmountPaid: "10.005"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = h.RemoveItem(ctx, &posv1.RemoveItemRequest{ProductId: "2"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}
