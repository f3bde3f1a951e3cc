package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/dmitrijs2005/gopassport/internal/logging"
	pb "github.com/dmitrijs2005/gopassport/internal/proto"
	"github.com/dmitrijs2005/gopassport/internal/server/throttle"
)

func newAddrTestServer(t *testing.T, addr string) *GRPCServer {
	t.Helper()
	srv, err := NewGRPCServer(addr, logging.Nop(), &fakeCheckins{}, &fakePassports{}, &fakePhotos{}, throttle.Nop(), "secret")
	require.NoError(t, err)
	return srv
}

func TestServe_AnswersPingAndStopsOnCancel(t *testing.T) {
	t.Parallel()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- newAddrTestServer(t, "").Serve(ctx, lis) }()

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	pingCtx, pingCancel := context.WithTimeout(ctx, 2*time.Second)
	defer pingCancel()
	resp, err := pb.NewPassportServiceClient(conn).Ping(pingCtx, &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.Status)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop after context cancel")
	}
}

func TestRun_BadAddress(t *testing.T) {
	t.Parallel()

	err := newAddrTestServer(t, "127.0.0.1:99999").Run(context.Background())
	assert.Error(t, err)
}
