package grpc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/chapterhub/internal/common"
	"github.com/dmitrijs2005/chapterhub/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// tokenFromMetadata reads the access token from the access_token key, or
// from an "authorization: Bearer <token>" entry.
func tokenFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}

	if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 && values[0] != "" {
		return values[0]
	}

	for _, v := range md.Get(common.AuthorizationHeaderName) {
		if token, ok := strings.CutPrefix(v, "Bearer "); ok && token != "" {
			return token
		}
	}
	return ""
}

// accessTokenInterceptor verifies the caller's token and stores the
// identity in the context. Calls without a token go through unchanged and
// are rejected by the services that need an identity.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	token := tokenFromMetadata(ctx)
	if token == "" {
		return handler(ctx, req)
	}

	id, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		s.logger.Debug(ctx, "token rejected", "method", info.FullMethod, "error", err)
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, "token expired")
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	return handler(auth.WithIdentity(ctx, id), req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Debug(ctx, "handled", "method", info.FullMethod, "code", status.Code(err).String(), "duration", time.Since(start))
	return resp, err
}
