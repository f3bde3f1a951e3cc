package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/gopassport/internal/common"
	"github.com/dmitrijs2005/gopassport/internal/passport"
	pb "github.com/dmitrijs2005/gopassport/internal/proto"
	"github.com/dmitrijs2005/gopassport/internal/rpc"
)

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) CheckIn(ctx context.Context, req *pb.CheckInRequest) (*pb.CheckInResponse, error) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}
	if err := rpc.Validate(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	verdict, err := s.checkins.CheckIn(ctx, rpc.Attempt(userID, req))
	if err != nil {
		var ce *passport.CheckinError
		if errors.As(err, &ce) {
			return rpc.Rejection(ce), nil
		}
		return nil, s.internal(ctx, err)
	}

	return rpc.CheckInResponse(verdict), nil
}

func (s *GRPCServer) GetProgress(ctx context.Context, req *pb.ProgressRequest) (*pb.ProgressResponse, error) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}
	if err := rpc.Validate(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	p, err := s.checkins.GetProgress(ctx, userID, req.RouteId)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.NotFound, "route not found")
		}
		return nil, s.internal(ctx, err)
	}
	return &pb.ProgressResponse{Progress: rpc.ProgressToProto(p)}, nil
}

func (s *GRPCServer) GetPassport(ctx context.Context, req *pb.PassportRequest) (*pb.PassportResponse, error) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	view, err := s.passports.View(ctx, userID)
	if err != nil {
		return nil, s.internal(ctx, err)
	}
	return rpc.ViewToProto(view), nil
}

func (s *GRPCServer) PresignPhotoUpload(ctx context.Context, req *pb.PhotoUploadRequest) (*pb.PhotoUploadResponse, error) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}
	if err := rpc.Validate(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	key, url, err := s.photos.PresignUpload(ctx, userID, req.ContentType)
	if err != nil {
		return nil, s.internal(ctx, err)
	}
	return &pb.PhotoUploadResponse{Key: key, Url: url}, nil
}

// internal hides storage errors from the caller. A cancelled or expired
// request keeps its context code so the device can retry.
func (s *GRPCServer) internal(ctx context.Context, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return status.FromContextError(err).Err()
	}
	s.logger.Error(ctx, "request failed", "error", err)
	return status.Error(codes.Internal, "internal error")
}
