package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"

	"github.com/rl1809/shelf-service/internal/adapter/handler"
	"github.com/rl1809/shelf-service/internal/adapter/storage"
	"github.com/rl1809/shelf-service/internal/config"
	"github.com/rl1809/shelf-service/internal/core/service"
	"github.com/rl1809/shelf-service/internal/logging"
	"github.com/rl1809/shelf-service/internal/port"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load config")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database
	dialect, err := storage.DialectFor(cfg.DBDriver)
	if err != nil {
		logging.Fatal().Err(err).Msg("unsupported database")
	}
	db, err := storage.OpenDB(ctx, storage.DBConfig{
		Driver:          cfg.DBDriver,
		User:            cfg.DBUser,
		Password:        cfg.DBPassword,
		Host:            cfg.DBHost,
		Port:            cfg.DBPort,
		Name:            cfg.DBName,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to connect database")
	}
	logging.Info().Str("driver", cfg.DBDriver).Str("host", cfg.DBHost).Msg("connected to database")

	// Initialize optional Redis cache
	var cache port.ProductCache
	var closeRedis func() error
	if cfg.CacheEnabled() {
		rdb, err := storage.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logging.Fatal().Err(err).Msg("failed to connect redis")
		}
		cache = storage.NewRedisAdapter(rdb, cfg.CacheTTL)
		closeRedis = rdb.Close
		logging.Info().Str("addr", cfg.RedisAddr).Dur("ttl", cfg.CacheTTL).Msg("connected to redis")
	}

	shelfService := service.NewShelfService(storage.NewSQLAdapter(db, dialect), cache, cfg.QueryMaxLimit)

	// Initialize gRPC server
	var grpcServer *grpc.Server
	if addr := cfg.GRPCAddr(); addr != "" {
		lis, err := net.Listen("tcp", addr)
		if err != nil {
			logging.Fatal().Err(err).Str("addr", addr).Msg("failed to listen")
		}
		grpcServer = handler.NewGRPCServer(handler.NewGRPCHandler(shelfService))

		go func() {
			logging.Info().Str("addr", addr).Msg("gRPC server listening")
			if err := grpcServer.Serve(lis); err != nil {
				logging.Error().Err(err).Msg("gRPC server error")
			}
		}()
	}

	// Initialize HTTP server
	gin.SetMode(gin.ReleaseMode)
	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: handler.NewRouter(handler.NewHTTPHandler(shelfService)),
	}

	go func() {
		logging.Info().Str("addr", cfg.HTTPAddr()).Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logging.Error().Err(err).Msg("HTTP server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Warn().Err(err).Msg("HTTP shutdown incomplete")
	}
	logging.Info().Msg("HTTP server stopped")

	if grpcServer != nil {
		grpcServer.GracefulStop()
		logging.Info().Msg("gRPC server stopped")
	}

	if closeRedis != nil {
		closeRedis()
	}
	db.Close()
	logging.Info().Msg("connections closed")
}
