package posv1

import (
	"context"

	"github.com/fekuna/omnipos-register/internal/pkg/rpc"
	"google.golang.org/grpc"
)

const SettingsServiceName = "pos.v1.SettingsService"

// SettingsServiceServer holds register display settings.
type SettingsServiceServer interface {
	GetSettings(context.Context, *GetSettingsRequest) (*SettingsResponse, error)
	UpdateSiteName(context.Context, *UpdateSiteNameRequest) (*SettingsResponse, error)
	UpdateCurrency(context.Context, *UpdateCurrencyRequest) (*SettingsResponse, error)
}

var SettingsServiceDesc = grpc.ServiceDesc{
	ServiceName: SettingsServiceName,
	HandlerType: (*SettingsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.Unary(SettingsServiceName, "GetSettings", SettingsServiceServer.GetSettings),
		rpc.Unary(SettingsServiceName, "UpdateSiteName", SettingsServiceServer.UpdateSiteName),
		rpc.Unary(SettingsServiceName, "UpdateCurrency", SettingsServiceServer.UpdateCurrency),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pos/v1/settings.json",
}

func RegisterSettingsServiceServer(s grpc.ServiceRegistrar, srv SettingsServiceServer) {
	s.RegisterService(&SettingsServiceDesc, srv)
}

type SettingsClient struct {
	cc grpc.ClientConnInterface
}

func NewSettingsClient(cc grpc.ClientConnInterface) *SettingsClient {
	return &SettingsClient{cc: cc}
}

func (c *SettingsClient) GetSettings(ctx context.Context, in *GetSettingsRequest, opts ...grpc.CallOption) (*SettingsResponse, error) {
	return rpc.Invoke[SettingsResponse](ctx, c.cc, SettingsServiceName, "GetSettings", in, opts...)
}

func (c *SettingsClient) UpdateSiteName(ctx context.Context, in *UpdateSiteNameRequest, opts ...grpc.CallOption) (*SettingsResponse, error) {
	return rpc.Invoke[SettingsResponse](ctx, c.cc, SettingsServiceName, "UpdateSiteName", in, opts...)
}

func (c *SettingsClient) UpdateCurrency(ctx context.Context, in *UpdateCurrencyRequest, opts ...grpc.CallOption) (*SettingsResponse, error) {
	return rpc.Invoke[SettingsResponse](ctx, c.cc, SettingsServiceName, "UpdateCurrency", in, opts...)
}
