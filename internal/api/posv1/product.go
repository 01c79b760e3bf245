package posv1

import (
	"context"

	"github.com/fekuna/omnipos-register/internal/pkg/rpc"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

const ProductServiceName = "pos.v1.ProductService"

// ProductServiceServer manages the product catalog.
type ProductServiceServer interface {
	CreateProduct(context.Context, *CreateProductRequest) (*ProductResponse, error)
	GetProduct(context.Context, *GetProductRequest) (*ProductResponse, error)
	ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error)
	UpdateProduct(context.Context, *UpdateProductRequest) (*ProductResponse, error)
	DeleteProduct(context.Context, *DeleteProductRequest) (*emptypb.Empty, error)
}

var ProductServiceDesc = grpc.ServiceDesc{
	ServiceName: ProductServiceName,
	HandlerType: (*ProductServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.Unary(ProductServiceName, "CreateProduct", ProductServiceServer.CreateProduct),
		rpc.Unary(ProductServiceName, "GetProduct", ProductServiceServer.GetProduct),
		rpc.Unary(ProductServiceName, "ListProducts", ProductServiceServer.ListProducts),
		rpc.Unary(ProductServiceName, "UpdateProduct", ProductServiceServer.UpdateProduct),
		rpc.Unary(ProductServiceName, "DeleteProduct", ProductServiceServer.DeleteProduct),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pos/v1/product.json",
}

func RegisterProductServiceServer(s grpc.ServiceRegistrar, srv ProductServiceServer) {
	s.RegisterService(&ProductServiceDesc, srv)
}

type ProductClient struct {
	cc grpc.ClientConnInterface
}

func NewProductClient(cc grpc.ClientConnInterface) *ProductClient {
	return &ProductClient{cc: cc}
}

func (c *ProductClient) CreateProduct(ctx context.Context, in *CreateProductRequest, opts ...grpc.CallOption) (*ProductResponse, error) {
	return rpc.Invoke[ProductResponse](ctx, c.cc, ProductServiceName, "CreateProduct", in, opts...)
}

func (c *ProductClient) GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*ProductResponse, error) {
	return rpc.Invoke[ProductResponse](ctx, c.cc, ProductServiceName, "GetProduct", in, opts...)
}

func (c *ProductClient) ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error) {
	return rpc.Invoke[ListProductsResponse](ctx, c.cc, ProductServiceName, "ListProducts", in, opts...)
}

func (c *ProductClient) UpdateProduct(ctx context.Context, in *UpdateProductRequest, opts ...grpc.CallOption) (*ProductResponse, error) {
	return rpc.Invoke[ProductResponse](ctx, c.cc, ProductServiceName, "UpdateProduct", in, opts...)
}

func (c *ProductClient) DeleteProduct(ctx context.Context, in *DeleteProductRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return rpc.Invoke[emptypb.Empty](ctx, c.cc, ProductServiceName, "DeleteProduct", in, opts...)
}
