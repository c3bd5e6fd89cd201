package codeserver

import (
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/seerbp/petcode/internal/codeserver/codev1"
	"github.com/seerbp/petcode/internal/petcode/codec"
)

// NewGRPCServer builds a gRPC server carrying PetCodeService and the standard
// health service, both reporting SERVING. Callers own Serve and shutdown; the
// returned health server should be shut down before GracefulStop so that
// probes see NOT_SERVING while connections drain.
//
// Precondition: c and logger must be non-nil.
func NewGRPCServer(c *codec.Codec, logger *zap.Logger, opts ...grpc.ServerOption) (*grpc.Server, *health.Server) {
	opts = append([]grpc.ServerOption{
		codev1.ServerOption(),
		grpc.ChainUnaryInterceptor(UnaryLoggingInterceptor(logger)),
	}, opts...)
	s := grpc.NewServer(opts...)

	codev1.RegisterPetCodeServiceServer(s, NewService(c, logger))

	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(codev1.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return s, hs
}
