package server

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-tweet/internal/config"
	"github.com/MKhiriev/go-tweet/internal/handler"
	myGRPC "github.com/MKhiriev/go-tweet/internal/handler/grpc"
	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func TestNewServer_NoServers(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_GRPCListenError(t *testing.T) {
	handlers := &handler.Handlers{GRPC: myGRPC.NewHandler(nil, logger.Nop())}

	_, err := NewServer(handlers, config.Server{GRPCAddress: "256.0.0.1:-1"}, logger.Nop())

	require.Error(t, err)
}

func TestNewHTTPServer(t *testing.T) {
	s := newHTTPServer(nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	assert.Equal(t, ":8080", s.server.Addr)
	assert.Equal(t, readHeaderTimeout, s.server.ReadHeaderTimeout)
}

func TestRun_GRPCHealthFollowsLifecycle(t *testing.T) {
	grpcHandler := myGRPC.NewHandler(nil, logger.Nop())
	handlers := &handler.Handlers{GRPC: grpcHandler}

	srv, err := NewServer(handlers, config.Server{GRPCAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	require.Len(t, s.transports, 1)
	grpcSrv := s.transports[0].(*grpcServer)

	conn, err := grpc.NewClient(grpcSrv.listener.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()
	client := healthpb.NewHealthClient(conn)

	require.Eventually(t, func() bool {
		resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: myGRPC.ServiceName})
		return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
	}, 5*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

// ─── transport failures ───

type fakeTransport struct {
	serveErr  error
	block     chan struct{}
	shutdowns atomic.Int32
}

func (f *fakeTransport) name() string { return "fake" }

func (f *fakeTransport) serve() error {
	if f.block != nil {
		<-f.block
		return nil
	}
	return f.serveErr
}

func (f *fakeTransport) shutdown() {
	if f.shutdowns.Add(1) == 1 && f.block != nil {
		close(f.block)
	}
}

func TestRun_TransportFailureStopsEverything(t *testing.T) {
	bindErr := errors.New("address already in use")
	failing := &fakeTransport{serveErr: bindErr}
	healthy := &fakeTransport{block: make(chan struct{})}
	s := &server{transports: []transport{healthy, failing}, logger: logger.Nop()}

	err := s.run(context.Background())

	require.ErrorIs(t, err, bindErr)
	assert.Equal(t, int32(1), healthy.shutdowns.Load())
	assert.Equal(t, int32(1), failing.shutdowns.Load())
}

func TestRun_CleanExitIsReported(t *testing.T) {
	s := &server{transports: []transport{&fakeTransport{}}, logger: logger.Nop()}

	err := s.run(context.Background())

	require.ErrorIs(t, err, errTransportStopped)
}

func TestRun_NoTransports(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.run(context.Background()), errNoServersAreCreated)
}

func TestHTTPServer_ListenErrorIsReturned(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	s := newHTTPServer(nil, config.Server{HTTPAddress: busy.Addr().String()}, logger.Nop())

	assert.Error(t, s.serve())
}
