package grpc

import (
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	ggrpc "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	bookingsv1 "github.com/ethanriley28/ybl-app/internal/gen/proto/ybl/bookings/v1"
)

type ServerOptions struct {
	RequestTimeout time.Duration
}

// NewServer builds a gRPC server with BookingsService, the standard health service and
// server reflection registered. The returned health server starts SERVING for both the
// overall server and BookingsService; flip it to NOT_SERVING before shutdown.
func NewServer(svc bookingsService, log *slog.Logger, opts ServerOptions) (*ggrpc.Server, *health.Server) {
	if log == nil {
		log = slog.Default()
	}

	srv := ggrpc.NewServer(
		ggrpc.StatsHandler(otelgrpc.NewServerHandler()),
		ggrpc.ChainUnaryInterceptor(
			RecoveryInterceptor(log),
			RequestTimeoutInterceptor(opts.RequestTimeout),
			LoggingInterceptor(log),
		),
	)
	bookingsv1.RegisterBookingsServiceServer(srv, NewBookingsServer(svc, log))

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(bookingsv1.BookingsService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)
	reflection.Register(srv)
	return srv, hs
}
