package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/ethanriley28/ybl-app/internal/config"
	"github.com/ethanriley28/ybl-app/internal/domain"
	"github.com/ethanriley28/ybl-app/internal/events"
	bookingsv1 "github.com/ethanriley28/ybl-app/internal/gen/proto/ybl/bookings/v1"
	"github.com/ethanriley28/ybl-app/internal/metrics"
	"github.com/ethanriley28/ybl-app/internal/service/bookings"
	"github.com/ethanriley28/ybl-app/internal/store"
	"github.com/ethanriley28/ybl-app/internal/store/memory"
	"github.com/ethanriley28/ybl-app/internal/store/postgres"
	"github.com/ethanriley28/ybl-app/internal/telemetry"
	grpcTransport "github.com/ethanriley28/ybl-app/internal/transport/grpc"
	"github.com/ethanriley28/ybl-app/internal/transport/httpapi"
)

const serviceName = "ybl-server"

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})).With(
		slog.String("service", serviceName),
	)
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", slog.Any("err", err))
		os.Exit(1)
	}

	log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)})).With(
		slog.String("service", serviceName),
	)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting",
		slog.String("grpc_addr", cfg.GRPCAddr()),
		slog.String("http_addr", cfg.HTTPAddr),
		slog.String("storage_driver", cfg.StorageDriver),
		slog.String("log_level", cfg.LogLevel),
	)

	tpl, err := cfg.Template()
	if err != nil {
		return err
	}
	log.Info("coach schedule loaded", scheduleLogArgs(tpl)...)

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:      cfg.OTelEnabled,
		ServiceName:  serviceName,
		OTLPEndpoint: cfg.OTelEndpoint,
		SampleRatio:  cfg.OTelSampleRatio,
	})
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracer shutdown failed", slog.Any("err", err))
		}
	}()

	metrics.Register()

	st, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	publisher, err := openPublisher(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Warn("event publisher close failed", slog.Any("err", err))
		}
	}()

	svc := bookings.NewService(st, tpl,
		bookings.WithLogger(log),
		bookings.WithPublisher(publisher),
		bookings.WithPublishTimeout(cfg.EventPublishTimeout),
		bookings.WithOpenHours(cfg.EnforceOpenHours),
		bookings.WithLimits(cfg.BookingMaxDuration, cfg.BookingMaxRange),
		bookings.WithRetryPolicy(bookings.RetryPolicy{
			MaxAttempts:     cfg.RetryMaxAttempts,
			InitialInterval: cfg.RetryInitialInterval,
			MaxInterval:     cfg.RetryMaxInterval,
		}),
	)

	grpcServer, healthServer := grpcTransport.NewServer(svc, log, grpcTransport.ServerOptions{
		RequestTimeout: cfg.GRPCRequestTimeout,
	})
	lis, err := net.Listen("tcp", cfg.GRPCAddr())
	if err != nil {
		log.Error("grpc listen failed", slog.Any("err", err), slog.String("grpc_addr", cfg.GRPCAddr()))
		return err
	}

	limiter, closeLimiter, err := rateLimiter(cfg, log)
	if err != nil {
		return err
	}
	defer closeLimiter()

	gin.SetMode(gin.ReleaseMode)
	router := httpapi.NewRouter(httpapi.NewHandler(svc, log), httpapi.RouterOptions{
		CORSOrigins:    cfg.CORSOrigins,
		RequestTimeout: cfg.HTTPRequestTimeout,
		RateLimit:      limiter,
	})
	httpServer := httpapi.NewServer(cfg.HTTPAddr, router, log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("grpc server started", slog.String("grpc_addr", cfg.GRPCAddr()))
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		log.Info("http server started", slog.String("http_addr", cfg.HTTPAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received")
		shutdown(log, grpcServer, healthServer, httpServer, cfg.ShutdownTimeout)
		return nil
	})

	return g.Wait()
}

func openStore(ctx context.Context, cfg config.Config, log *slog.Logger) (store.BookingStore, func(), error) {
	if cfg.StorageDriver == config.StorageDriverMemory {
		log.Warn("using in-memory booking store; bookings are lost on restart")
		return memory.New(), func() {}, nil
	}

	log.Info("connecting to database", databaseLogArgs(cfg.DatabaseURL)...)
	db, err := postgres.Open(ctx, cfg.DatabaseURL, postgres.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		ConnMaxIdleTime: cfg.DBConnMaxIdleTime,
	}, postgres.ConnectConfig{
		Attempts:    cfg.DBConnectAttempts,
		MaxInterval: cfg.DBConnectMaxInterval,
		Logger:      log,
	})
	if err != nil {
		args := append([]any{slog.Any("err", err)}, databaseLogArgs(cfg.DatabaseURL)...)
		log.Error("database connection failed", args...)
		return nil, nil, err
	}
	closeFn := func() {
		if err := postgres.Close(db); err != nil {
			log.Warn("database close failed", slog.Any("err", err))
		}
	}
	return postgres.NewBookingRepo(db), closeFn, nil
}

func openPublisher(cfg config.Config, log *slog.Logger) (events.Publisher, error) {
	if len(cfg.KafkaBrokers) == 0 {
		log.Info("no kafka brokers configured; booking events are discarded")
		return events.Nop{}, nil
	}
	log.Info("publishing booking events", slog.Any("brokers", cfg.KafkaBrokers), slog.String("topic", cfg.KafkaTopic))
	return events.NewKafkaPublisher(events.KafkaConfig{
		Brokers:      cfg.KafkaBrokers,
		Topic:        cfg.KafkaTopic,
		WriteTimeout: cfg.KafkaWriteTimeout,
		BatchTimeout: cfg.KafkaBatchTimeout,
		MaxAttempts:  cfg.KafkaMaxAttempts,
	}, log)
}

// rateLimiter prefers a Redis fixed window, shared across instances, and falls back to
// per-process token buckets.
func rateLimiter(cfg config.Config, log *slog.Logger) (gin.HandlerFunc, func(), error) {
	if cfg.RedisURL == "" {
		return httpapi.NewIPRateLimiter(cfg.RateLimitPerMinute, cfg.RateLimitBurst).Middleware(log), func() {}, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	rdb := redis.NewClient(opts)
	closeFn := func() {
		if err := rdb.Close(); err != nil {
			log.Warn("redis close failed", slog.Any("err", err))
		}
	}
	rl := httpapi.NewRedisRateLimiter(rdb, cfg.RateLimitPerMinute, time.Minute, "ybl:rl")
	return rl.Middleware(log, true), closeFn, nil
}

func shutdown(log *slog.Logger, s *grpc.Server, hs *health.Server, h *http.Server, timeout time.Duration) {
	log.Info("shutting down servers", slog.Duration("timeout", timeout))
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(bookingsv1.BookingsService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := h.Shutdown(ctx); err != nil {
		log.Warn("http graceful shutdown failed", slog.Any("err", err))
	}

	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		log.Info("grpc server stopped")
	case <-ctx.Done():
		log.Warn("grpc graceful shutdown timed out; forcing stop")
		s.Stop()
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// scheduleLogArgs renders the weekly template as one attribute per open weekday.
func scheduleLogArgs(tpl domain.WeeklyTemplate) []any {
	args := []any{slog.String("timezone", tpl.Location().String())}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		ws := tpl.Windows(wd)
		if len(ws) == 0 {
			continue
		}
		parts := make([]string, 0, len(ws))
		for _, w := range ws {
			parts = append(parts, w.String())
		}
		args = append(args, slog.String(strings.ToLower(wd.String()[:3]), strings.Join(parts, ",")))
	}
	return args
}

func databaseLogArgs(databaseURL string) []any {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return []any{slog.String("db_url", "invalid")}
	}
	name := strings.TrimPrefix(u.Path, "/")
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "default"
	}
	if host == "" {
		host = "unknown"
	}
	if name == "" {
		name = "unknown"
	}
	return []any{
		slog.String("db_host", host),
		slog.String("db_port", port),
		slog.String("db_name", name),
	}
}
