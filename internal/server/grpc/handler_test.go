package grpc

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dmitrijs2005/gopassport/internal/auth"
	"github.com/dmitrijs2005/gopassport/internal/common"
	"github.com/dmitrijs2005/gopassport/internal/geo"
	"github.com/dmitrijs2005/gopassport/internal/logging"
	"github.com/dmitrijs2005/gopassport/internal/passport"
	pb "github.com/dmitrijs2005/gopassport/internal/proto"
	"github.com/dmitrijs2005/gopassport/internal/server/events"
	"github.com/dmitrijs2005/gopassport/internal/server/metrics"
	"github.com/dmitrijs2005/gopassport/internal/server/repositories/memory"
	"github.com/dmitrijs2005/gopassport/internal/server/services"
	"github.com/dmitrijs2005/gopassport/internal/server/throttle"
)

// ---- fakes ----

type fakeCheckins struct {
	verdict  *passport.Verdict
	err      error
	progress *passport.Progress
	got      passport.Attempt
}

func (f *fakeCheckins) CheckIn(ctx context.Context, a passport.Attempt) (*passport.Verdict, error) {
	f.got = a
	return f.verdict, f.err
}

func (f *fakeCheckins) GetProgress(ctx context.Context, userID, routeID string) (*passport.Progress, error) {
	return f.progress, f.err
}

type fakePassports struct {
	view *passport.View
	err  error
}

func (f *fakePassports) View(ctx context.Context, userID string) (*passport.View, error) {
	return f.view, f.err
}

type fakePhotos struct {
	key, url string
	err      error
}

func (f *fakePhotos) PresignUpload(ctx context.Context, userID, contentType string) (string, string, error) {
	return f.key, f.url, f.err
}

func authed(userID string) context.Context {
	return context.WithValue(context.Background(), UserIDKey, userID)
}

func TestCheckIn_MapsAttempt(t *testing.T) {
	s := newTestServer("secret")
	fc := &fakeCheckins{verdict: &passport.Verdict{
		Stamp:          &passport.Stamp{ID: "s1", CheckpointID: "cp"},
		Progress:       passport.Progress{RouteID: "r1", CompletionPercentage: 100},
		RouteCompleted: true,
		Rewards:        []passport.Reward{{ID: "rw"}},
	}}
	s.checkins = fc

	acc := 12.0
	captured := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	resp, err := s.CheckIn(authed("u1"), &pb.CheckInRequest{
		CheckpointId: "cp", Latitude: 1.5, Longitude: 2.5, AccuracyM: &acc,
		PartnerCode: "abc", PhotoRef: "checkins/u1/x", CapturedAt: timestamppb.New(captured),
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "s1", resp.Stamp.Id)
	assert.Equal(t, "r1", resp.RouteId)
	assert.Equal(t, int32(100), resp.CompletionPercentage)
	assert.True(t, resp.RouteCompleted)
	assert.Len(t, resp.Rewards, 1)

	assert.Equal(t, passport.Attempt{
		UserID:       "u1",
		CheckpointID: "cp",
		Position:     geo.Position{Point: geo.Point{Lat: 1.5, Lng: 2.5}, AccuracyM: &acc},
		PartnerCode:  "abc",
		PhotoRef:     "checkins/u1/x",
		CapturedAt:   captured,
	}, fc.got)
}

func TestCheckIn_Errors(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		req      *pb.CheckInRequest
		err      error
		wantCode codes.Code
		wantKind string
	}{
		{"no user", context.Background(), &pb.CheckInRequest{CheckpointId: "cp"}, nil, codes.Unauthenticated, ""},
		{"invalid request", authed("u1"), &pb.CheckInRequest{Latitude: 100}, nil, codes.InvalidArgument, ""},
		{"rejection travels in band", authed("u1"), &pb.CheckInRequest{CheckpointId: "cp"}, passport.Reject(passport.KindTooFast, "retry in 10s"), codes.OK, "TOO_FAST"},
		{"storage failure", authed("u1"), &pb.CheckInRequest{CheckpointId: "cp"}, errors.New("db down"), codes.Internal, ""},
		{"deadline", authed("u1"), &pb.CheckInRequest{CheckpointId: "cp"}, context.DeadlineExceeded, codes.DeadlineExceeded, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer("secret")
			s.checkins = &fakeCheckins{err: tt.err}

			resp, err := s.CheckIn(tt.ctx, tt.req)
			assert.Equal(t, tt.wantCode, status.Code(err))
			if tt.wantKind != "" {
				require.NotNil(t, resp)
				assert.False(t, resp.Success)
				assert.Equal(t, tt.wantKind, resp.ErrorCode)
				assert.Equal(t, "retry in 10s", resp.ErrorDetail)
			}
		})
	}
}

func TestGetProgress(t *testing.T) {
	s := newTestServer("secret")
	s.checkins = &fakeCheckins{progress: &passport.Progress{RouteID: "r1", CompletionPercentage: 67}}

	resp, err := s.GetProgress(authed("u1"), &pb.ProgressRequest{RouteId: "r1"})
	require.NoError(t, err)
	assert.Equal(t, int32(67), resp.Progress.CompletionPercentage)

	_, err = s.GetProgress(authed("u1"), &pb.ProgressRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	s.checkins = &fakeCheckins{err: common.ErrorNotFound}
	_, err = s.GetProgress(authed("u1"), &pb.ProgressRequest{RouteId: "nope"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestGetPassport(t *testing.T) {
	s := newTestServer("secret")
	s.passports = &fakePassports{view: &passport.View{
		Passport: passport.Passport{Number: "BP-0000-0001", TotalStamps: 2},
		Stamps:   []passport.Stamp{{ID: "a"}, {ID: "b"}},
	}}

	resp, err := s.GetPassport(authed("u1"), &pb.PassportRequest{})
	require.NoError(t, err)
	assert.Equal(t, "BP-0000-0001", resp.Passport.Number)
	assert.Len(t, resp.Stamps, 2)

	s.passports = &fakePassports{err: errors.New("boom")}
	_, err = s.GetPassport(authed("u1"), &pb.PassportRequest{})
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestPresignPhotoUpload(t *testing.T) {
	s := newTestServer("secret")
	s.photos = &fakePhotos{key: "checkins/u1/k", url: "http://s3/put"}

	resp, err := s.PresignPhotoUpload(authed("u1"), &pb.PhotoUploadRequest{ContentType: "image/png"})
	require.NoError(t, err)
	assert.Equal(t, "checkins/u1/k", resp.Key)
	assert.Equal(t, "http://s3/put", resp.Url)

	_, err = s.PresignPhotoUpload(authed("u1"), &pb.PhotoUploadRequest{ContentType: "text/html"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	s.photos = &fakePhotos{err: errors.New("minio down")}
	_, err = s.PresignPhotoUpload(authed("u1"), &pb.PhotoUploadRequest{})
	assert.Equal(t, codes.Internal, status.Code(err))
}

// ---- end to end over bufconn with the in-memory store ----

func TestEndToEnd_CheckInOverGRPC(t *testing.T) {
	const secret = "e2e-secret"
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := memory.NewManager()
	center := geo.Point{Lat: 41.3874, Lng: 2.1686}
	idx := 0
	require.NoError(t, services.NewCatalogService(store, store).Import(ctx, &services.Seed{
		Routes: []passport.Route{{
			ID: "r1", Name: "Gothic Quarter", Difficulty: passport.DifficultyHard, Active: true,
			Checkpoints: []passport.Checkpoint{
				{ID: "cp", Name: "Plaza", Center: &center, RadiusM: 25, Mode: passport.ModeGeofence, FragmentIndex: &idx},
			},
		}},
		Rewards: []passport.Reward{{ID: "rw", RouteID: "r1", Title: "Tile"}},
	}))

	ps := services.NewPassportService(nil, store, store)
	cs := services.NewCheckinService(nil, store, store, services.NewGuard(10, time.Hour, 30*time.Second),
		ps, events.NopPublisher{}, metrics.Nop(), logging.Nop(), 7*24*time.Hour)

	srv, err := NewGRPCServer("bufnet", logging.Nop(), cs, ps, &fakePhotos{}, throttle.Nop(), secret)
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	client := pb.NewPassportServiceClient(conn)

	ping, err := client.Ping(ctx, &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", ping.Status)

	_, err = client.CheckIn(ctx, &pb.CheckInRequest{CheckpointId: "cp", Latitude: center.Lat, Longitude: center.Lng})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	token, err := auth.GenerateToken("traveller", []byte(secret), time.Hour)
	require.NoError(t, err)
	callCtx := metadata.AppendToOutgoingContext(ctx, common.AccessTokenHeaderName, token)

	resp, err := client.CheckIn(callCtx, &pb.CheckInRequest{CheckpointId: "cp", Latitude: center.Lat, Longitude: center.Lng})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, int32(35), resp.Stamp.Points)
	assert.Equal(t, int32(100), resp.CompletionPercentage)
	assert.True(t, resp.RouteCompleted)
	require.Len(t, resp.Rewards, 1)
	assert.Equal(t, "rw", resp.Rewards[0].Id)

	dup, err := client.CheckIn(callCtx, &pb.CheckInRequest{CheckpointId: "cp", Latitude: center.Lat, Longitude: center.Lng})
	require.NoError(t, err)
	assert.False(t, dup.Success)
	assert.Contains(t, []string{string(passport.KindTooFast), string(passport.KindAlreadyCheckedIn)}, dup.ErrorCode)

	view, err := client.GetPassport(callCtx, &pb.PassportRequest{})
	require.NoError(t, err)
	assert.Equal(t, int32(1), view.Passport.TotalStamps)
	assert.Equal(t, int32(1), view.Passport.CompletedRoutes)
	assert.Equal(t, int32(35), view.Passport.TotalPoints)
	assert.Len(t, view.Grants, 1)

	progress, err := client.GetProgress(callCtx, &pb.ProgressRequest{RouteId: "r1"})
	require.NoError(t, err)
	assert.Equal(t, int32(100), progress.Progress.CompletionPercentage)
}
