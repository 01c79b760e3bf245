package posv1

import (
	"context"

	"github.com/fekuna/omnipos-register/internal/pkg/rpc"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

const PaymentMethodServiceName = "pos.v1.PaymentMethodService"

// PaymentMethodServiceServer manages accepted payment methods.
type PaymentMethodServiceServer interface {
	CreatePaymentMethod(context.Context, *CreatePaymentMethodRequest) (*PaymentMethodResponse, error)
	ListPaymentMethods(context.Context, *ListPaymentMethodsRequest) (*ListPaymentMethodsResponse, error)
	UpdatePaymentMethod(context.Context, *UpdatePaymentMethodRequest) (*PaymentMethodResponse, error)
	DeletePaymentMethod(context.Context, *DeletePaymentMethodRequest) (*emptypb.Empty, error)
}

var PaymentMethodServiceDesc = grpc.ServiceDesc{
	ServiceName: PaymentMethodServiceName,
	HandlerType: (*PaymentMethodServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.Unary(PaymentMethodServiceName, "CreatePaymentMethod", PaymentMethodServiceServer.CreatePaymentMethod),
		rpc.Unary(PaymentMethodServiceName, "ListPaymentMethods", PaymentMethodServiceServer.ListPaymentMethods),
		rpc.Unary(PaymentMethodServiceName, "UpdatePaymentMethod", PaymentMethodServiceServer.UpdatePaymentMethod),
		rpc.Unary(PaymentMethodServiceName, "DeletePaymentMethod", PaymentMethodServiceServer.DeletePaymentMethod),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pos/v1/payment_method.json",
}

func RegisterPaymentMethodServiceServer(s grpc.ServiceRegistrar, srv PaymentMethodServiceServer) {
	s.RegisterService(&PaymentMethodServiceDesc, srv)
}

type PaymentMethodClient struct {
	cc grpc.ClientConnInterface
}

func NewPaymentMethodClient(cc grpc.ClientConnInterface) *PaymentMethodClient {
	return &PaymentMethodClient{cc: cc}
}

func (c *PaymentMethodClient) CreatePaymentMethod(ctx context.Context, in *CreatePaymentMethodRequest, opts ...grpc.CallOption) (*PaymentMethodResponse, error) {
	return rpc.Invoke[PaymentMethodResponse](ctx, c.cc, PaymentMethodServiceName, "CreatePaymentMethod", in, opts...)
}

func (c *PaymentMethodClient) ListPaymentMethods(ctx context.Context, in *ListPaymentMethodsRequest, opts ...grpc.CallOption) (*ListPaymentMethodsResponse, error) {
	return rpc.Invoke[ListPaymentMethodsResponse](ctx, c.cc, PaymentMethodServiceName, "ListPaymentMethods", in, opts...)
}

func (c *PaymentMethodClient) UpdatePaymentMethod(ctx context.Context, in *UpdatePaymentMethodRequest, opts ...grpc.CallOption) (*PaymentMethodResponse, error) {
	return rpc.Invoke[PaymentMethodResponse](ctx, c.cc, PaymentMethodServiceName, "UpdatePaymentMethod", in, opts...)
}

func (c *PaymentMethodClient) DeletePaymentMethod(ctx context.Context, in *DeletePaymentMethodRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return rpc.Invoke[emptypb.Empty](ctx, c.cc, PaymentMethodServiceName, "DeletePaymentMethod", in, opts...)
}
