package rpc

import (
	"errors"

	"github.com/fekuna/omnipos-register/internal/model"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Status translates a domain error into a gRPC status error.
func Status(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(Code(err), err.Error())
}

func Code(err error) codes.Code {
	switch {
	case err == nil:
		return codes.OK
	case errors.Is(err, model.ErrNotFound):
		return codes.NotFound
	case errors.Is(err, model.ErrInvalid):
		return codes.InvalidArgument
	case errors.Is(err, model.ErrConflict):
		return codes.FailedPrecondition
	default:
		return codes.Internal
	}
}
