// Package main, friendgraph backend uygulamasının giriş noktasıdır.
//
// Dependency Injection "wire-up":
//  1. Config'i yükle
//  2. Logger'ı kur
//  3. Database'i başlat (embedded migration'lar)
//  4. Repository → Service → Handler katmanlarını oluştur
//  5. HTTP router'ı kur, route'ları bağla
//  6. Request logger + CORS
//  7. HTTP Server'ı başlat, graceful shutdown
//
// Global değişken YOK: her şey bu fonksiyonda oluşturulup birbirine bağlanıyor.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/akinalp/friendgraph/config"
	"github.com/akinalp/friendgraph/database"
	"github.com/akinalp/friendgraph/middleware"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "friendgraph: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// ─── 1. Config ───
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// ─── 2. Logger ───
	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("friendgraph server starting", zap.Int("port", cfg.Server.Port))

	// ─── 3. Database ───
	migrations, err := database.Migrations()
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	db, err := database.New(cfg.Database.Path, migrations, logger.Named("database"), database.Options{
		MaxOpenConns: cfg.Database.MaxOpenConns,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	// ─── 4. Katmanlar ───
	repos := initRepositories(db)
	svcs := initServices(repos, cfg)
	h := initHandlers(svcs)

	// ─── 5. HTTP Router ───
	mux := http.NewServeMux()
	initRoutes(mux, h, svcs.Auth)

	// ─── 6. Request logger + CORS ───
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
	})

	handler := middleware.RequestLogger(logger.Named("http"))(corsHandler.Handler(mux))

	// ─── 7. HTTP Server ───
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server listening", zap.String("addr", cfg.Server.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-done:
	}

	logger.Info("Shutting down")

	// Yeni request kabul etmeyi durdur, mevcut request'lerin bitmesini bekle (5sn).
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	logger.Info("Server stopped gracefully")
	return nil
}
