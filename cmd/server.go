package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ledgerrpc/internal/config"
	"ledgerrpc/internal/core"
	"ledgerrpc/internal/db"
	"ledgerrpc/internal/http/handler"
	"ledgerrpc/internal/http/handler/middleware"
	"ledgerrpc/internal/http/payload"
	"ledgerrpc/internal/http/server"
	"ledgerrpc/pkg/log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "ledgerrpc"

func Start() error {
	logger := log.NewZapLogger(serviceName, zapcore.InfoLevel)

	appConfig, err := config.NewApp(".env")
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}
	logger = log.NewZapLogger(serviceName, appConfig.LogLevel)
	defer func() { _ = logger.Sync() }()

	pool := db.NewPool()
	defer func() {
		if err := pool.Close(); err != nil {
			logger.Errorw("failed to close database connections", "error", err)
		}
	}()

	stores, err := openHandles(pool, appConfig.TableURLs)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	logger.Infow("database handles ready", "connections", pool.Len())

	// registry
	registry := core.NewRegistry(logger, stores)

	// handler
	rpcHlr := handler.NewRPCHandler(
		logger,
		payload.Decoder{},
		registry,
		appConfig.APISecret,
		config.AllowedOrigin)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.RPCEndpoint, rpcHlr.HandleRPC)

	logger.Infow("serving methods", "methods", registry.Methods())

	srv := server.NewHTTP(logger, hdlr, appConfig.Port)
	return run(srv, logger)
}

// openHandles opens one storage handle per table. Tables configured with the
// same connection string share a connection.
func openHandles(pool *db.Pool, urls config.TableURLs) (core.Handles, error) {
	var stores core.Handles
	for _, h := range []struct {
		name string
		dsn  string
		dst  *core.Store
	}{
		{"transactionhistory", urls.TransactionHistory, &stores.TransactionHistory},
		{"transfers", urls.Transfers, &stores.Transfers},
		{"vault", urls.Vault, &stores.Vault},
		{"purchase", urls.Purchase, &stores.Purchase},
		{"swap", urls.Swap, &stores.Swap},
		{"redemptions", urls.Redemptions, &stores.Redemptions},
	} {
		conn, err := pool.Get(h.dsn)
		if err != nil {
			return core.Handles{}, fmt.Errorf("open %s handle: %w", h.name, err)
		}
		*h.dst = conn
	}
	return stores, nil
}

func run(server *server.HTTPServer, logger *zap.SugaredLogger) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case s := <-sig:
		logger.Infow("shutdown signal received", "signal", s.String())
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
