// Package server assembles the register's gRPC server: interceptors, one
// handler per service, and reflection.
package server

import (
	"context"
	"errors"
	"net"

	"github.com/fekuna/omnipos-register/internal/api/posv1"
	"github.com/fekuna/omnipos-register/internal/pkg/logger"
	"github.com/fekuna/omnipos-register/internal/pkg/middleware"
	"github.com/fekuna/omnipos-register/internal/store"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	basketH "github.com/fekuna/omnipos-register/internal/basket/handler"
	basketUC "github.com/fekuna/omnipos-register/internal/basket/usecase"
	catH "github.com/fekuna/omnipos-register/internal/category/handler"
	catUC "github.com/fekuna/omnipos-register/internal/category/usecase"
	invH "github.com/fekuna/omnipos-register/internal/inventory/handler"
	invUC "github.com/fekuna/omnipos-register/internal/inventory/usecase"
	pmH "github.com/fekuna/omnipos-register/internal/paymentmethod/handler"
	pmUC "github.com/fekuna/omnipos-register/internal/paymentmethod/usecase"
	prodH "github.com/fekuna/omnipos-register/internal/product/handler"
	prodUC "github.com/fekuna/omnipos-register/internal/product/usecase"
	saleH "github.com/fekuna/omnipos-register/internal/sale/handler"
	saleUC "github.com/fekuna/omnipos-register/internal/sale/usecase"
	settingsH "github.com/fekuna/omnipos-register/internal/settings/handler"
	settingsUC "github.com/fekuna/omnipos-register/internal/settings/usecase"
)

// New builds a gRPC server exposing every register service backed by st.
func New(st *store.Store, log logger.ZapLogger) *grpc.Server {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			middleware.ContextInterceptor(),
			middleware.LoggingInterceptor(log),
		),
	)

	posv1.RegisterCategoryServiceServer(srv, catH.NewCategoryHandler(catUC.NewCategoryUseCase(st, log), log))
	posv1.RegisterProductServiceServer(srv, prodH.NewProductHandler(prodUC.NewProductUseCase(st, log), log))
	posv1.RegisterInventoryServiceServer(srv, invH.NewInventoryHandler(invUC.NewInventoryUseCase(st, log), log))
	posv1.RegisterBasketServiceServer(srv, basketH.NewBasketHandler(basketUC.NewBasketUseCase(st, log), log))
	posv1.RegisterSaleServiceServer(srv, saleH.NewSaleHandler(saleUC.NewSaleUseCase(st, log), log))
	posv1.RegisterPaymentMethodServiceServer(srv, pmH.NewPaymentMethodHandler(pmUC.NewPaymentMethodUseCase(st, log), log))
	posv1.RegisterSettingsServiceServer(srv, settingsH.NewSettingsHandler(settingsUC.NewSettingsUseCase(st, log), log))

	reflection.Register(srv)
	return srv
}

// Run serves on lis until ctx is cancelled, then stops gracefully.
func Run(ctx context.Context, srv *grpc.Server, lis net.Listener, log logger.ZapLogger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(lis)
	}()

	log.Info("Starting gRPC server", zap.String("addr", lis.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	srv.GracefulStop()
	log.Info("Server stopped")
	return nil
}
