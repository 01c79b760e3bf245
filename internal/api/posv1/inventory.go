package posv1

import (
	"context"

	"github.com/fekuna/omnipos-register/internal/pkg/rpc"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

const InventoryServiceName = "pos.v1.InventoryService"

// InventoryServiceServer manages stock: variations and the stock mode of a product.
type InventoryServiceServer interface {
	AddVariation(context.Context, *AddVariationRequest) (*VariationResponse, error)
	UpdateVariation(context.Context, *UpdateVariationRequest) (*VariationResponse, error)
	RemoveVariation(context.Context, *RemoveVariationRequest) (*emptypb.Empty, error)
	ToggleVariations(context.Context, *ToggleVariationsRequest) (*ProductResponse, error)
	GetStock(context.Context, *GetStockRequest) (*GetStockResponse, error)
}

var InventoryServiceDesc = grpc.ServiceDesc{
	ServiceName: InventoryServiceName,
	HandlerType: (*InventoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.Unary(InventoryServiceName, "AddVariation", InventoryServiceServer.AddVariation),
		rpc.Unary(InventoryServiceName, "UpdateVariation", InventoryServiceServer.UpdateVariation),
		rpc.Unary(InventoryServiceName, "RemoveVariation", InventoryServiceServer.RemoveVariation),
		rpc.Unary(InventoryServiceName, "ToggleVariations", InventoryServiceServer.ToggleVariations),
		rpc.Unary(InventoryServiceName, "GetStock", InventoryServiceServer.GetStock),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pos/v1/inventory.json",
}

func RegisterInventoryServiceServer(s grpc.ServiceRegistrar, srv InventoryServiceServer) {
	s.RegisterService(&InventoryServiceDesc, srv)
}

type InventoryClient struct {
	cc grpc.ClientConnInterface
}

func NewInventoryClient(cc grpc.ClientConnInterface) *InventoryClient {
	return &InventoryClient{cc: cc}
}

func (c *InventoryClient) AddVariation(ctx context.Context, in *AddVariationRequest, opts ...grpc.CallOption) (*VariationResponse, error) {
	return rpc.Invoke[VariationResponse](ctx, c.cc, InventoryServiceName, "AddVariation", in, opts...)
}

func (c *InventoryClient) UpdateVariation(ctx context.Context, in *UpdateVariationRequest, opts ...grpc.CallOption) (*VariationResponse, error) {
	return rpc.Invoke[VariationResponse](ctx, c.cc, InventoryServiceName, "UpdateVariation", in, opts...)
}

func (c *InventoryClient) RemoveVariation(ctx context.Context, in *RemoveVariationRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return rpc.Invoke[emptypb.Empty](ctx, c.cc, InventoryServiceName, "RemoveVariation", in, opts...)
}

func (c *InventoryClient) ToggleVariations(ctx context.Context, in *ToggleVariationsRequest, opts ...grpc.CallOption) (*ProductResponse, error) {
	return rpc.Invoke[ProductResponse](ctx, c.cc, InventoryServiceName, "ToggleVariations", in, opts...)
}

func (c *InventoryClient) GetStock(ctx context.Context, in *GetStockRequest, opts ...grpc.CallOption) (*GetStockResponse, error) {
	return rpc.Invoke[GetStockResponse](ctx, c.cc, InventoryServiceName, "GetStock", in, opts...)
}
