// Package grpcmw drives the method-logging engine around gRPC unary
// handlers. Register a LogPack per method and the interceptor emits the
// same entry, exit and error records an in-process Invoke would.
package grpcmw

import (
	"context"
	"strings"

	"google.golang.org/grpc"

	"github.com/DonKeyHot1/eclair"
)

func actualOptions(opts ...Option) options {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// UnaryServerInterceptor logs handler entry, exit and failure through the
// engine. The service part of the full method name becomes the logger
// name, so effective levels follow the service hierarchy; the request
// message is the single logged argument. Methods without a pack pass
// through untouched.
func UnaryServerInterceptor(logger *eclair.CallLogger, opts ...Option) grpc.UnaryServerInterceptor {
	cfg := actualOptions(opts...)

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		pack := cfg.packFor(info.FullMethod)
		if logger == nil || pack == nil {
			return handler(ctx, req)
		}

		service, method := splitFullMethod(info.FullMethod)

		inv := eclair.Invocation{
			Target:    service,
			Method:    method,
			Args:      []any{req},
			HasResult: true,
		}

		return logger.Invoke(inv, pack, func() (any, error) {
			return handler(ctx, req)
		})
	}
}

// splitFullMethod splits "/package.Service/Method" into its service and
// method parts.
func splitFullMethod(fullMethod string) (service, method string) {
	name := strings.TrimPrefix(fullMethod, "/")

	service, method, found := strings.Cut(name, "/")
	if !found {
		return name, ""
	}

	return service, method
}
