package logger

import (
	"context"
	"path"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UnaryServerInterceptor logs every unary call with its status code and duration.
// Transient and caller errors are logged at warn, anything else at error.
func UnaryServerInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		fields := []zap.Field{
			zap.String("grpc.service", path.Dir(info.FullMethod)[1:]),
			zap.String("grpc.method", path.Base(info.FullMethod)),
			zap.String("grpc.code", code.String()),
			zap.Duration("grpc.duration", time.Since(start)),
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
		}

		switch code {
		case codes.OK:
			logger.Info("gRPC request completed", fields...)
		case codes.Canceled, codes.DeadlineExceeded, codes.ResourceExhausted,
			codes.Aborted, codes.Unavailable,
			codes.InvalidArgument, codes.NotFound, codes.AlreadyExists,
			codes.FailedPrecondition, codes.Unauthenticated:
			logger.Warn("gRPC request failed", fields...)
		default:
			logger.Error("gRPC request error", fields...)
		}

		return resp, err
	}
}
