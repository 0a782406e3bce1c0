package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mama165/sdk-go/logs"
	pb "github.com/ponyo877/roomchat/grpc"
	"github.com/ponyo877/roomchat/server/adaptor"
	"github.com/ponyo877/roomchat/server/domain"
	"github.com/ponyo877/roomchat/server/repository"
	"github.com/ponyo877/roomchat/server/usecase"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the chat relay",
	Long: `Starts the chat relay: the HTTP server (WebSocket, health, stats and
static files) and, unless grpc-port is 0, the gRPC stream server.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Persistent so that a bare "roomchat --port 4000" starts the server too.
	flags := rootCmd.PersistentFlags()
	flags.Int("port", 3500, "HTTP port")
	flags.Int("grpc-port", 50051, "gRPC port (0 disables the gRPC server)")
	flags.String("static-dir", "./public", "Directory of static client files served at /")
	flags.String("env", "development", "Environment name; production restricts WebSocket origins")
	flags.StringSlice("allowed-origins", []string{"http://localhost:5500", "http://127.0.0.1:5500"}, "Extra origins allowed outside production")
	flags.Int("inbox-size", 256, "Relay inbox capacity")
	flags.Int("send-buffer", 32, "Per-connection outbound buffer")
	flags.Duration("shutdown-timeout", 5*time.Second, "Grace period for shutdown")

	viper.BindPFlag(portKey, flags.Lookup("port"))
	viper.BindPFlag(grpcPortKey, flags.Lookup("grpc-port"))
	viper.BindPFlag(staticDirKey, flags.Lookup("static-dir"))
	viper.BindPFlag(environmentKey, flags.Lookup("env"))
	viper.BindPFlag(allowedOriginsKey, flags.Lookup("allowed-origins"))
	viper.BindPFlag(inboxSizeKey, flags.Lookup("inbox-size"))
	viper.BindPFlag(sendBufferKey, flags.Lookup("send-buffer"))
	viper.BindPFlag(shutdownTimeoutKey, flags.Lookup("shutdown-timeout"))

	viper.BindEnv(portKey, "PORT")
	viper.BindEnv(grpcPortKey, "GRPC_PORT")
	viper.BindEnv(environmentKey, "APP_ENV")
	viper.SetDefault(portKey, 3500)
	viper.SetDefault(grpcPortKey, 50051)
	viper.SetDefault(staticDirKey, "./public")
	viper.SetDefault(environmentKey, "development")
	viper.SetDefault(allowedOriginsKey, []string{"http://localhost:5500", "http://127.0.0.1:5500"})
	viper.SetDefault(inboxSizeKey, 256)
	viper.SetDefault(sendBufferKey, 32)
	viper.SetDefault(shutdownTimeoutKey, 5*time.Second)
}

func serve(ctx context.Context, cfg Config) error {
	logger := logs.GetLoggerFromString(strings.ToUpper(cfg.LogLevel))

	var journal usecase.Journal
	if cfg.Journal != "" {
		j, db, err := openJournal(ctx, cfg.Journal)
		if err != nil {
			return err
		}
		defer closeDB(db)
		journal = j
		logger.Info("Recording presence journal", "path", cfg.Journal)
	}

	hub := adaptor.NewHub(logger)
	coordinator := usecase.NewSessionCoordinator(domain.NewPresenceStore())
	relay := usecase.NewRelay(logger, coordinator, hub, journal, cfg.InboxSize)

	// Listeners are bound before anything runs: a taken port aborts startup.
	httpAddress := fmt.Sprintf(":%d", cfg.Port)
	httpListener, err := net.Listen("tcp", httpAddress)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", httpAddress, err)
	}
	var grpcListener net.Listener
	if cfg.GRPCPort != 0 {
		grpcAddress := fmt.Sprintf(":%d", cfg.GRPCPort)
		grpcListener, err = net.Listen("tcp", grpcAddress)
		if err != nil {
			httpListener.Close()
			return fmt.Errorf("failed to listen on %s: %w", grpcAddress, err)
		}
	}

	relayCtx, stopRelay := context.WithCancel(context.Background())
	defer stopRelay()
	go relay.Run(relayCtx)

	policy := adaptor.OriginPolicy{Environment: cfg.Environment, AllowedOrigins: cfg.AllowedOrigins}
	ws := adaptor.NewWebSocketAdaptor(logger, relay, policy, cfg.SendBuffer)
	httpServer := &http.Server{
		Handler:           adaptor.NewRouter(logger, relay, ws, staticDir(logger, cfg.StaticDir)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 2)
	go func() {
		logger.Info("Starting HTTP server", "address", httpListener.Addr().String(), "environment", cfg.Environment)
		if err := httpServer.Serve(httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	var grpcServer *grpc.Server
	if grpcListener != nil {
		grpcServer = grpc.NewServer()
		pb.RegisterRelayServer(grpcServer, adaptor.NewGRPCAdaptor(logger, relay, cfg.SendBuffer))
		healthServer := health.NewServer()
		healthServer.SetServingStatus(pb.Relay_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
		healthpb.RegisterHealthServer(grpcServer, healthServer)
		reflection.Register(grpcServer)

		go func() {
			logger.Info("Starting gRPC server", "address", grpcListener.Addr().String())
			for serviceName := range grpcServer.GetServiceInfo() {
				logger.Debug("gRPC exposed service", "name", serviceName)
			}
			if err := grpcServer.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				errChan <- fmt.Errorf("gRPC server error: %w", err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case runErr = <-errChan:
		logger.Error("Server failed", "error", runErr)
	}

	logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	// Stopping the relay first closes every socket writer, which ends the
	// hijacked WebSocket connections that http.Server does not track.
	stopRelay()
	<-relay.Done()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP shutdown incomplete", "error", err)
	}
	if grpcServer != nil {
		stopGRPC(shutdownCtx, grpcServer)
	}
	logger.Info("Server stopped cleanly")
	return runErr
}

func openJournal(ctx context.Context, path string) (*repository.Journal, *sql.DB, error) {
	db, err := repository.Open(path)
	if err != nil {
		return nil, nil, err
	}
	journal := repository.NewJournal(db)
	if err := journal.Migrate(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}
	return journal, db, nil
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "Error closing journal:", err)
	}
}

func staticDir(logger *slog.Logger, dir string) string {
	if dir == "" {
		return ""
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		logger.Warn("Static directory not found, not serving files", "dir", dir)
		return ""
	}
	return dir
}

func stopGRPC(ctx context.Context, s *grpc.Server) {
	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		s.Stop()
	}
}
