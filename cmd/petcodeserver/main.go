// Package main provides the petcode server binary, which serves
// PetCodeService and the gRPC health service.
package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/seerbp/petcode/internal/codeserver"
	"github.com/seerbp/petcode/internal/config"
	"github.com/seerbp/petcode/internal/observability"
	"github.com/seerbp/petcode/internal/petcode/codec"
	"github.com/seerbp/petcode/internal/server"
)

func main() {
	start := time.Now()

	flags := pflag.NewFlagSet("petcodeserver", pflag.ExitOnError)
	configPath := flags.String("config", "", "path to configuration file (defaults and PETCODE_* environment when empty)")
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging, "petcodeserver")
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	c, err := codec.New(cfg.Codec.Options()...)
	if err != nil {
		logger.Fatal("creating codec", zap.Error(err))
	}

	grpcServer, healthServer := codeserver.NewGRPCServer(c, logger)

	lifecycle := server.NewLifecycle(logger)
	lifecycle.Add("grpc", &server.FuncService{
		StartFn: func() error {
			lis, err := net.Listen("tcp", cfg.GRPC.Addr())
			if err != nil {
				return fmt.Errorf("listening on %s: %w", cfg.GRPC.Addr(), err)
			}
			logger.Info("gRPC server listening", zap.String("addr", lis.Addr().String()))
			return grpcServer.Serve(lis)
		},
		StopFn: func() {
			healthServer.Shutdown()
			grpcServer.GracefulStop()
		},
	})

	logger.Info("petcode server initialized",
		zap.Duration("startup", time.Since(start)),
		zap.String("grpc_addr", cfg.GRPC.Addr()),
		zap.Int("compression_level", cfg.Codec.CompressionLevel),
		zap.Int("max_decoded_size", cfg.Codec.MaxDecodedSize),
	)

	if err := lifecycle.Run(context.Background()); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
