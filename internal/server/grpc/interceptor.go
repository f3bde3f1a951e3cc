package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/gopassport/internal/auth"
	"github.com/dmitrijs2005/gopassport/internal/common"
	pb "github.com/dmitrijs2005/gopassport/internal/proto"
)

type ctxKey string

const UserIDKey ctxKey = "userID"

// public methods skip authentication.
var public = map[string]bool{
	pb.PassportService_Ping_FullMethodName: true,
}

func userIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDKey).(string)
	return id, ok && id != ""
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if public[info.FullMethod] {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, "token expired")
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	return handler(context.WithValue(ctx, UserIDKey, userID), req)
}

// throttleInterceptor runs after authentication and counts requests per user.
func (s *GRPCServer) throttleInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	userID, ok := userIDFrom(ctx)
	if !ok || s.limiter == nil {
		return handler(ctx, req)
	}

	allowed, err := s.limiter.Allow(ctx, userID)
	if err != nil {
		s.logger.Warn(ctx, "throttle unavailable", "error", err)
	}
	if !allowed {
		return nil, status.Error(codes.ResourceExhausted, "too many requests")
	}
	return handler(ctx, req)
}
