package posv1

import (
	"context"

	"github.com/fekuna/omnipos-register/internal/pkg/rpc"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

const CategoryServiceName = "pos.v1.CategoryService"

// CategoryServiceServer manages product categories.
type CategoryServiceServer interface {
	CreateCategory(context.Context, *CreateCategoryRequest) (*CategoryResponse, error)
	GetCategory(context.Context, *GetCategoryRequest) (*CategoryResponse, error)
	ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesResponse, error)
	UpdateCategory(context.Context, *UpdateCategoryRequest) (*CategoryResponse, error)
	DeleteCategory(context.Context, *DeleteCategoryRequest) (*emptypb.Empty, error)
}

var CategoryServiceDesc = grpc.ServiceDesc{
	ServiceName: CategoryServiceName,
	HandlerType: (*CategoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.Unary(CategoryServiceName, "CreateCategory", CategoryServiceServer.CreateCategory),
		rpc.Unary(CategoryServiceName, "GetCategory", CategoryServiceServer.GetCategory),
		rpc.Unary(CategoryServiceName, "ListCategories", CategoryServiceServer.ListCategories),
		rpc.Unary(CategoryServiceName, "UpdateCategory", CategoryServiceServer.UpdateCategory),
		rpc.Unary(CategoryServiceName, "DeleteCategory", CategoryServiceServer.DeleteCategory),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pos/v1/category.json",
}

func RegisterCategoryServiceServer(s grpc.ServiceRegistrar, srv CategoryServiceServer) {
	s.RegisterService(&CategoryServiceDesc, srv)
}

type CategoryClient struct {
	cc grpc.ClientConnInterface
}

func NewCategoryClient(cc grpc.ClientConnInterface) *CategoryClient {
	return &CategoryClient{cc: cc}
}

func (c *CategoryClient) CreateCategory(ctx context.Context, in *CreateCategoryRequest, opts ...grpc.CallOption) (*CategoryResponse, error) {
	return rpc.Invoke[CategoryResponse](ctx, c.cc, CategoryServiceName, "CreateCategory", in, opts...)
}

func (c *CategoryClient) GetCategory(ctx context.Context, in *GetCategoryRequest, opts ...grpc.CallOption) (*CategoryResponse, error) {
	return rpc.Invoke[CategoryResponse](ctx, c.cc, CategoryServiceName, "GetCategory", in, opts...)
}

func (c *CategoryClient) ListCategories(ctx context.Context, in *ListCategoriesRequest, opts ...grpc.CallOption) (*ListCategoriesResponse, error) {
	return rpc.Invoke[ListCategoriesResponse](ctx, c.cc, CategoryServiceName, "ListCategories", in, opts...)
}

func (c *CategoryClient) UpdateCategory(ctx context.Context, in *UpdateCategoryRequest, opts ...grpc.CallOption) (*CategoryResponse, error) {
	return rpc.Invoke[CategoryResponse](ctx, c.cc, CategoryServiceName, "UpdateCategory", in, opts...)
}

func (c *CategoryClient) DeleteCategory(ctx context.Context, in *DeleteCategoryRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return rpc.Invoke[emptypb.Empty](ctx, c.cc, CategoryServiceName, "DeleteCategory", in, opts...)
}
