package middleware

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-register/internal/auth"
	"github.com/fekuna/omnipos-register/internal/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ContextInterceptor lifts the operator id from incoming metadata into the
// request context.
func ContextInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if op := auth.GetOperatorID(ctx); op != "" {
			ctx = auth.WithOperatorID(ctx, op)
		}
		return handler(ctx, req)
	}
}

// LoggingInterceptor logs every call with its outcome and latency, and turns
// panics into Internal errors.
func LoggingInterceptor(log logger.ZapLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic in handler", zap.String("method", info.FullMethod), zap.Any("panic", r))
				err = status.Error(codes.Internal, "internal error")
			}

			fields := []zap.Field{
				zap.String("method", info.FullMethod),
				zap.String("code", status.Code(err).String()),
				zap.Duration("duration", time.Since(start)),
			}
			if op := auth.GetOperatorID(ctx); op != "" {
				fields = append(fields, zap.String("operator_id", op))
			}
			if err != nil && status.Code(err) == codes.Internal {
				log.Error("rpc failed", append(fields, zap.Error(err))...)
				return
			}
			log.Debug("rpc handled", fields...)
		}()
		return handler(ctx, req)
	}
}
