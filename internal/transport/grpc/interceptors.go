package grpc

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	ggrpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RequestTimeoutInterceptor applies timeout to calls that arrive without a deadline.
func RequestTimeoutInterceptor(timeout time.Duration) ggrpc.UnaryServerInterceptor {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return func(ctx context.Context, req any, info *ggrpc.UnaryServerInfo, handler ggrpc.UnaryHandler) (any, error) {
		if _, ok := ctx.Deadline(); ok {
			return handler(ctx, req)
		}
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		return handler(ctx, req)
	}
}

func RecoveryInterceptor(log *slog.Logger) ggrpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *ggrpc.UnaryServerInfo, handler ggrpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("grpc handler panic",
					slog.String("method", info.FullMethod),
					slog.Any("panic", r),
					slog.String("stack", string(debug.Stack())),
				)
				err = status.Error(codes.Internal, "internal error")
			}
		}()
		return handler(ctx, req)
	}
}

func LoggingInterceptor(log *slog.Logger) ggrpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *ggrpc.UnaryServerInfo, handler ggrpc.UnaryHandler) (any, error) {
		started := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		attrs := []any{
			slog.String("method", info.FullMethod),
			slog.String("code", code.String()),
			slog.Duration("duration", time.Since(started)),
		}
		switch code {
		case codes.OK, codes.InvalidArgument, codes.FailedPrecondition, codes.NotFound:
			log.DebugContext(ctx, "grpc request", attrs...)
		default:
			log.WarnContext(ctx, "grpc request", attrs...)
		}
		return resp, err
	}
}
