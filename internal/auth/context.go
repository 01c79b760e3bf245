package auth

import (
	"context"

	"google.golang.org/grpc/metadata"
)

// OperatorHeader is the metadata key the register UI sends with every call.
const OperatorHeader = "x-operator-id"

type operatorKey struct{}

// WithOperatorID stores the operator identity on the context.
func WithOperatorID(ctx context.Context, operatorID string) context.Context {
	return context.WithValue(ctx, operatorKey{}, operatorID)
}

// GetOperatorID returns who is working the register. It is informational
// only; access control lives in the UI gate.
func GetOperatorID(ctx context.Context) string {
	if val, ok := ctx.Value(operatorKey{}).(string); ok {
		return val
	}

	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		if val := md.Get(OperatorHeader); len(val) > 0 {
			return val[0]
		}
	}
	return ""
}
