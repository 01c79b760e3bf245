package posv1

import (
	"context"

	"github.com/fekuna/omnipos-register/internal/pkg/rpc"
	"google.golang.org/grpc"
)

const BasketServiceName = "pos.v1.BasketService"

// BasketServiceServer runs the active basket and checkout.
type BasketServiceServer interface {
	GetBasket(context.Context, *GetBasketRequest) (*BasketResponse, error)
	AddItem(context.Context, *AddItemRequest) (*BasketResponse, error)
	RemoveItem(context.Context, *RemoveItemRequest) (*BasketResponse, error)
	SetQuantity(context.Context, *SetQuantityRequest) (*BasketResponse, error)
	ClearBasket(context.Context, *ClearBasketRequest) (*BasketResponse, error)
	Checkout(context.Context, *CheckoutRequest) (*CheckoutResponse, error)
}

var BasketServiceDesc = grpc.ServiceDesc{
	ServiceName: BasketServiceName,
	HandlerType: (*BasketServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.Unary(BasketServiceName, "GetBasket", BasketServiceServer.GetBasket),
		rpc.Unary(BasketServiceName, "AddItem", BasketServiceServer.AddItem),
		rpc.Unary(BasketServiceName, "RemoveItem", BasketServiceServer.RemoveItem),
		rpc.Unary(BasketServiceName, "SetQuantity", BasketServiceServer.SetQuantity),
		rpc.Unary(BasketServiceName, "ClearBasket", BasketServiceServer.ClearBasket),
		rpc.Unary(BasketServiceName, "Checkout", BasketServiceServer.Checkout),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pos/v1/basket.json",
}

func RegisterBasketServiceServer(s grpc.ServiceRegistrar, srv BasketServiceServer) {
	s.RegisterService(&BasketServiceDesc, srv)
}

type BasketClient struct {
	cc grpc.ClientConnInterface
}

func NewBasketClient(cc grpc.ClientConnInterface) *BasketClient {
	return &BasketClient{cc: cc}
}

func (c *BasketClient) GetBasket(ctx context.Context, in *GetBasketRequest, opts ...grpc.CallOption) (*BasketResponse, error) {
	return rpc.Invoke[BasketResponse](ctx, c.cc, BasketServiceName, "GetBasket", in, opts...)
}

func (c *BasketClient) AddItem(ctx context.Context, in *AddItemRequest, opts ...grpc.CallOption) (*BasketResponse, error) {
	return rpc.Invoke[BasketResponse](ctx, c.cc, BasketServiceName, "AddItem", in, opts...)
}

func (c *BasketClient) RemoveItem(ctx context.Context, in *RemoveItemRequest, opts ...grpc.CallOption) (*BasketResponse, error) {
	return rpc.Invoke[BasketResponse](ctx, c.cc, BasketServiceName, "RemoveItem", in, opts...)
}

func (c *BasketClient) SetQuantity(ctx context.Context, in *SetQuantityRequest, opts ...grpc.CallOption) (*BasketResponse, error) {
	return rpc.Invoke[BasketResponse](ctx, c.cc, BasketServiceName, "SetQuantity", in, opts...)
}

func (c *BasketClient) ClearBasket(ctx context.Context, in *ClearBasketRequest, opts ...grpc.CallOption) (*BasketResponse, error) {
	return rpc.Invoke[BasketResponse](ctx, c.cc, BasketServiceName, "ClearBasket", in, opts...)
}

func (c *BasketClient) Checkout(ctx context.Context, in *CheckoutRequest, opts ...grpc.CallOption) (*CheckoutResponse, error) {
	return rpc.Invoke[CheckoutResponse](ctx, c.cc, BasketServiceName, "Checkout", in, opts...)
}
