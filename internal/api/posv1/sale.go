package posv1

import (
	"context"

	"github.com/fekuna/omnipos-register/internal/pkg/rpc"
	"google.golang.org/grpc"
)

const SaleServiceName = "pos.v1.SaleService"

// SaleServiceServer exposes the sales ledger and refunds.
type SaleServiceServer interface {
	ListSales(context.Context, *ListSalesRequest) (*ListSalesResponse, error)
	GetSale(context.Context, *GetSaleRequest) (*SaleResponse, error)
	RefundSale(context.Context, *RefundSaleRequest) (*SaleResponse, error)
	GetSummary(context.Context, *GetSummaryRequest) (*SummaryResponse, error)
}

var SaleServiceDesc = grpc.ServiceDesc{
	ServiceName: SaleServiceName,
	HandlerType: (*SaleServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.Unary(SaleServiceName, "ListSales", SaleServiceServer.ListSales),
		rpc.Unary(SaleServiceName, "GetSale", SaleServiceServer.GetSale),
		rpc.Unary(SaleServiceName, "RefundSale", SaleServiceServer.RefundSale),
		rpc.Unary(SaleServiceName, "GetSummary", SaleServiceServer.GetSummary),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pos/v1/sale.json",
}

func RegisterSaleServiceServer(s grpc.ServiceRegistrar, srv SaleServiceServer) {
	s.RegisterService(&SaleServiceDesc, srv)
}

type SaleClient struct {
	cc grpc.ClientConnInterface
}

func NewSaleClient(cc grpc.ClientConnInterface) *SaleClient {
	return &SaleClient{cc: cc}
}

func (c *SaleClient) ListSales(ctx context.Context, in *ListSalesRequest, opts ...grpc.CallOption) (*ListSalesResponse, error) {
	return rpc.Invoke[ListSalesResponse](ctx, c.cc, SaleServiceName, "ListSales", in, opts...)
}

func (c *SaleClient) GetSale(ctx context.Context, in *GetSaleRequest, opts ...grpc.CallOption) (*SaleResponse, error) {
	return rpc.Invoke[SaleResponse](ctx, c.cc, SaleServiceName, "GetSale", in, opts...)
}

func (c *SaleClient) RefundSale(ctx context.Context, in *RefundSaleRequest, opts ...grpc.CallOption) (*SaleResponse, error) {
	return rpc.Invoke[SaleResponse](ctx, c.cc, SaleServiceName, "RefundSale", in, opts...)
}

func (c *SaleClient) GetSummary(ctx context.Context, in *GetSummaryRequest, opts ...grpc.CallOption) (*SummaryResponse, error) {
	return rpc.Invoke[SummaryResponse](ctx, c.cc, SaleServiceName, "GetSummary", in, opts...)
}
