package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/gopassport/internal/logging"
	"github.com/dmitrijs2005/gopassport/internal/passport"
	pb "github.com/dmitrijs2005/gopassport/internal/proto"
	"github.com/dmitrijs2005/gopassport/internal/server/throttle"
)

type CheckinService interface {
	CheckIn(ctx context.Context, a passport.Attempt) (*passport.Verdict, error)
	GetProgress(ctx context.Context, userID, routeID string) (*passport.Progress, error)
}

type PassportService interface {
	View(ctx context.Context, userID string) (*passport.View, error)
}

type PhotoService interface {
	PresignUpload(ctx context.Context, userID, contentType string) (string, string, error)
}

type GRPCServer struct {
	pb.UnimplementedPassportServiceServer
	address   string
	checkins  CheckinService
	passports PassportService
	photos    PhotoService
	limiter   throttle.Limiter
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, cs CheckinService, ps PassportService, ph PhotoService,
	limiter throttle.Limiter, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		checkins:  cs,
		passports: ps,
		photos:    ph,
		limiter:   limiter,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor, s.throttleInterceptor))
	pb.RegisterPassportServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
