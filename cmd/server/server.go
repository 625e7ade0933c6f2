package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	statgenv1alpha1 "github.com/KirkDiggler/rpg-statgen/api/statgen/v1alpha1"
	"github.com/KirkDiggler/rpg-statgen/internal/config"
	statgenengine "github.com/KirkDiggler/rpg-statgen/internal/engine/statgen"
	handlerv1alpha1 "github.com/KirkDiggler/rpg-statgen/internal/handlers/statgen/v1alpha1"
	"github.com/KirkDiggler/rpg-statgen/internal/orchestrators/statgen"
	"github.com/KirkDiggler/rpg-statgen/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-statgen/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-statgen/internal/redis"
	sessionrepo "github.com/KirkDiggler/rpg-statgen/internal/repositories/assignment_session"
	characterrepo "github.com/KirkDiggler/rpg-statgen/internal/repositories/character"
	"github.com/KirkDiggler/rpg-statgen/internal/telemetry"
)

const shutdownTimeout = 30 * time.Second

var (
	grpcPort int
	envFile  string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the StatGenService gRPC server. Configuration is read from STATGEN_*
environment variables and an optional .env file.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides STATGEN_PORT)")
	serverCmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file to load if present")
}

func runServer(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if grpcPort != 0 {
		cfg.Port = grpcPort
	}

	level, _ := config.ParseLogLevel(cfg.LogLevel)
	logger := telemetry.NewLogger(os.Stderr, level, cfg.LogFormat)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.SetupTracing(ctx, cfg.OTelEndpoint, cfg.ServiceName)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("failed to flush traces", "error", err)
		}
	}()

	redisClient, err := redis.NewClient(cfg.RedisURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() { _ = redisClient.Close() }()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to reach redis: %w", err)
	}

	service, err := newService(cfg, redisClient)
	if err != nil {
		return err
	}

	handler, err := handlerv1alpha1.NewHandler(&handlerv1alpha1.HandlerConfig{StatGenService: service})
	if err != nil {
		return fmt.Errorf("failed to create handler: %w", err)
	}

	lis, err := net.Listen("tcp", cfg.Address())
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := newGRPCServer(logger)
	statgenv1alpha1.RegisterStatGenServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(statgenv1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("gRPC server starting", "address", lis.Addr().String())
		if err := srv.Serve(lis); err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down gRPC server")
		healthServer.Shutdown()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-time.After(shutdownTimeout):
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("server stopped gracefully")
		}
		return nil
	})

	return g.Wait()
}

func newService(cfg *config.Config, redisClient redis.Client) (statgen.Service, error) {
	clk := clock.New()

	characterRepo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create character repository: %w", err)
	}

	sessionRepo, err := sessionrepo.NewRedisRepository(&sessionrepo.Config{
		Client: redisClient,
		Clock:  clk,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session repository: %w", err)
	}

	generator := statgenengine.NewGenerator(&statgenengine.GeneratorConfig{
		MaxHardcoreAttempts: cfg.HardcoreMaxAttempts,
	})

	bus := events.NewBus()
	subscribeEventLog(bus)

	service, err := statgen.NewOrchestrator(&statgen.Config{
		CharacterRepo: characterRepo,
		SessionRepo:   sessionRepo,
		Generator:     generator,
		IDGenerator:   idgen.NewUUID("char"),
		EventBus:      bus,
		Clock:         clk,
		SessionTTL:    cfg.SessionTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create orchestrator: %w", err)
	}
	return service, nil
}

func subscribeEventLog(bus events.EventBus) {
	for _, eventType := range []string{
		statgen.EventPoolRolled,
		statgen.EventValuePicked,
		statgen.EventAssignmentReset,
		statgen.EventScoresApplied,
	} {
		bus.SubscribeFunc(eventType, 0, func(ctx context.Context, e events.Event) error {
			slog.DebugContext(ctx, "statgen event", "type", eventType, "source", e.Source().GetID())
			return nil
		})
	}
}

func newGRPCServer(logger *slog.Logger) *grpc.Server {
	interceptorLogger := telemetry.InterceptorLogger(logger)
	loggingOpts := []grpc_logging.Option{
		grpc_logging.WithLogOnEvents(grpc_logging.FinishCall),
	}
	recoveryOpts := []grpc_recovery.Option{
		grpc_recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
			slog.ErrorContext(ctx, "recovered from panic", "panic", p)
			return status.Error(codes.Internal, "internal error")
		}),
	}

	return grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger, loggingOpts...),
			grpc_recovery.UnaryServerInterceptor(recoveryOpts...),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger, loggingOpts...),
			grpc_recovery.StreamServerInterceptor(recoveryOpts...),
		),
	)
}
