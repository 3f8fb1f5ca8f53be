package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"merchfn/internal/app"
	"merchfn/internal/handlers"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// парсим конфиг
	c, err := app.NewConfig(app.ConfigPath())
	if err != nil {
		panic(err)
	}

	// init logger
	zapLogger, err := app.NewLogger(c.LogLevel)
	if err != nil {
		panic(err)
	}
	logger := zapLogger.Sugar()
	defer func() {
		err = zapLogger.Sync()
		if err != nil {
			logger.Warnf("error to sync logger: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := app.NewDeps(ctx, c, logger)
	if err != nil {
		logger.Fatalf("error to init dependencies: %v", err)
	}
	defer deps.Close()

	userHandler := &handlers.UserHandlers{
		Logger:   logger,
		UserRepo: deps.UserRepo,
	}

	srv := &http.Server{
		Addr:              c.ServerPort,
		Handler:           handlers.NewRouters(userHandler, deps.Verifier, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Infow("starting server",
			"type", "START",
			"addr", c.ServerPort,
			"backend", c.Backend,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Infow("stopping server", "type", "STOP")
		return srv.Shutdown(shutdownCtx)
	})

	if err = g.Wait(); err != nil {
		logger.Errorf("server stopped with error: %v", err)
	}
}
