package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"eventSignup/internal/config"
	"eventSignup/internal/controller"
	"eventSignup/internal/gateway"
	"eventSignup/internal/http-server/handlers/session/getSession"
	"eventSignup/internal/http-server/handlers/session/listSessions"
	"eventSignup/internal/http-server/handlers/session/refreshSession"
	"eventSignup/internal/http-server/handlers/session/removeSignup"
	"eventSignup/internal/http-server/handlers/session/signup"
	"eventSignup/internal/http-server/handlers/session/validateForm"
	"eventSignup/internal/http-server/middleware/device"
	"eventSignup/internal/http-server/middleware/mwlogger"
	"eventSignup/internal/lib/logger/handlers/slogpretty"
	"eventSignup/internal/lib/logger/sl"
	"eventSignup/internal/ownership"
	"eventSignup/internal/registry"
	"eventSignup/internal/storage/memory"
	"eventSignup/internal/storage/postgres"
	"eventSignup/internal/storage/sqlite"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

type itemStorage interface {
	ownership.ItemStorage
	io.Closer
}

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting event signup", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sessions, err := registry.FromConfig(cfg.Sessions)
	if err != nil {
		log.Error("invalid session configuration", sl.Err(err))
		os.Exit(1)
	}

	storage, err := openStorage(ctx, &cfg.Storage)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err), slog.String("driver", cfg.Storage.Driver))
		os.Exit(1)
	}

	owners := ownership.New(log, storage)
	client := gateway.New(log, cfg.Gateway.URL, cfg.Gateway.Timeout)
	board := controller.NewBoard(log, sessions.All(), client, owners)

	if err = board.Initialize(ctx); err != nil {
		log.Warn("some sessions failed to load", sl.Err(err))
	}

	go board.Run(ctx, cfg.RefreshInterval)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(device.New())
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/sessions", listSessions.New(log, board))
	router.Get("/sessions/{key}", getSession.New(log, board))
	router.Post("/sessions/{key}/validate", validateForm.New(log, board))
	router.Post("/sessions/{key}/signups", signup.New(log, board))
	router.Post("/sessions/{key}/remove", removeSignup.New(log, board))
	router.Post("/sessions/{key}/refresh", refreshSession.New(log, board))
	router.Handle("/metrics", promhttp.Handler())

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.Gateway.Timeout + cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTPServer.Timeout)
	defer shutdownCancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

func openStorage(ctx context.Context, cfg *config.Storage) (itemStorage, error) {
	switch cfg.Driver {
	case "memory":
		return memory.New(), nil
	case "sqlite":
		s, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "postgres":
		s, err := postgres.InitDB(ctx, &cfg.Database)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
