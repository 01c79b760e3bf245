package rpc

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fekuna/omnipos-register/internal/model"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"nil", nil, codes.OK},
		{"not found", model.ErrSaleNotFound, codes.NotFound},
		{"wrapped not found", fmt.Errorf("refund: %w", model.ErrProductNotFound), codes.NotFound},
		{"invalid", model.Invalidf("price %q", "abc"), codes.InvalidArgument},
		{"conflict", model.ErrEmptyBasket, codes.FailedPrecondition},
		{"protected", model.ErrProtectedPaymentMethod, codes.FailedPrecondition},
		{"unknown", errors.New("boom"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Code(tt.err))
		})
	}
}

func TestStatusKeepsExistingStatus(t *testing.T) {
	orig := status.Error(codes.Unauthenticated, "no operator")
	assert.Equal(t, orig, Status(orig))
	assert.Nil(t, Status(nil))

	st, ok := status.FromError(Status(model.ErrAlreadyRefunded))
	assert.True(t, ok)
	assert.Equal(t, codes.FailedPrecondition, st.Code())
	assert.Contains(t, st.Message(), "already refunded")
}

func TestCodecRoundTrip(t *testing.T) {
	type msg struct {
		Name string `json:"name"`
	}
	c := Codec{}
	assert.Equal(t, "json", c.Name())

	data, err := c.Marshal(&msg{Name: "Cash"})
	assert.NoError(t, err)

	var out msg
	assert.NoError(t, c.Unmarshal(data, &out))
	assert.Equal(t, "Cash", out.Name)
	assert.NoError(t, c.Unmarshal(nil, &out))
}

func TestCodecProtoMessages(t *testing.T) {
	c := Codec{}
	ts := timestamppb.New(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))

	data, err := c.Marshal(ts)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "2024-01-02T03:04:05Z")

	var out timestamppb.Timestamp
	assert.NoError(t, c.Unmarshal(data, &out))
	assert.True(t, ts.AsTime().Equal(out.AsTime()))

	data, err = c.Marshal(&emptypb.Empty{})
	assert.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}
