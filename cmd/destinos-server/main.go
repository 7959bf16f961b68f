package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/jask/viagens/internal/config"
	"github.com/jask/viagens/internal/devserver"
	"github.com/jask/viagens/internal/logging"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(os.Stderr, "destinos", cfg.Log.Level)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}

	store, err := devserver.LoadStore(cfg.Server.DataFile)
	if err != nil {
		logger.Fatal("load data", "err", err, "file", cfg.Server.DataFile)
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           devserver.NewRouter(store, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}
