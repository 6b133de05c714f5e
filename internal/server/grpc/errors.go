package grpc

import (
	"context"

	"github.com/dmitrijs2005/chapterhub/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// codeOf maps an error kind onto a gRPC status code.
func codeOf(err error) codes.Code {
	switch common.KindOf(err) {
	case common.ErrNotAuthenticated:
		return codes.Unauthenticated
	case common.ErrAccessDenied:
		return codes.PermissionDenied
	case common.ErrNotFound:
		return codes.NotFound
	case common.ErrUnsupportedInput, common.ErrValidation:
		return codes.InvalidArgument
	case common.ErrExternalService:
		return codes.Unavailable
	case common.ErrMalformedResponse:
		return codes.FailedPrecondition
	default:
		return codes.Internal
	}
}

// toStatus converts a service error into a status. Internal failures are
// logged and never leak their message.
func (s *GRPCServer) toStatus(ctx context.Context, method string, err error) error {
	code := codeOf(err)
	if code == codes.Internal {
		s.logger.Error(ctx, "request failed", "method", method, "error", err)
		return status.Error(codes.Internal, "internal error")
	}

	s.logger.Debug(ctx, "request rejected", "method", method, "code", code.String(), "error", err)
	return status.Error(code, err.Error())
}
