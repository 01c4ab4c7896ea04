package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/reflection"

	grpcAdapter "github.com/quentinrf/berlin-clock/internal/adapters/grpc"
	"github.com/quentinrf/berlin-clock/internal/adapters/mock"
	"github.com/quentinrf/berlin-clock/internal/adapters/system"
	"github.com/quentinrf/berlin-clock/internal/logging"
	"github.com/quentinrf/berlin-clock/internal/ports"
	"github.com/quentinrf/berlin-clock/pkg/tlsconfig"
)

func main() {
	// Read configuration from environment
	config := loadConfig()

	// Initialize logger
	logging.Setup(config.LogLevel, config.LogFormat != "json")

	log.Info().Msg("starting berlin clock service")

	// Initialize clock source
	var clock ports.ClockSource
	switch config.ClockSource {
	case "fixed":
		c, err := mock.NewFixedClockAt(config.FixedTime)
		if err != nil {
			log.Fatal().Err(err).Str("fixed_time", config.FixedTime).Msg("invalid FIXED_TIME")
		}
		clock = c
		log.Info().Str("fixed_time", config.FixedTime).Msg("initialized fixed clock")
	default:
		c, err := system.NewClock(config.Timezone)
		if err != nil {
			log.Fatal().Err(err).Str("timezone", config.Timezone).Msg("failed to load timezone")
		}
		clock = c
		log.Info().Str("timezone", c.Location().String()).Msg("initialized system clock")
	}
	defer clock.Close()

	// Initialize gRPC handler
	handler := grpcAdapter.NewBerlinClockHandler(ports.NewConverter(clock))

	// Configure TLS if certificates are provided
	var serverOpts []grpc.ServerOption
	if config.TLS.Enabled() {
		tlsCfg, err := tlsconfig.LoadServerTLS(config.TLS)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load TLS config")
		}
		serverOpts = append(serverOpts, grpc.Creds(credentials.NewTLS(tlsCfg)))
		log.Info().Msg("mTLS enabled")
	} else {
		log.Warn().Msg("TLS_CERT not set, starting without TLS (dev mode only)")
	}

	// Create gRPC server
	grpcServer := grpc.NewServer(serverOpts...)
	grpcAdapter.RegisterBerlinClockServer(grpcServer, handler)

	// Enable gRPC reflection; the adapter registers the service descriptor, so grpcurl can describe it
	reflection.Register(grpcServer)

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", config.Port))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to listen")
	}

	log.Info().Str("port", config.Port).Msg("gRPC server listening")

	go func() {
		if err := grpcServer.Serve(listener); err != nil {
			log.Fatal().Err(err).Msg("failed to serve")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")
	grpcServer.GracefulStop()
	log.Info().Msg("server stopped")
}
