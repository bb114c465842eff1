// Package main, mqvi-directory servisinin giriş noktasıdır.
//
// Dependency Injection "wire-up":
//  1. Config'i yükle
//  2. Database'i başlat (embedded migration'lar)
//  3. Repository → Service → Handler
//  4. Router + middleware, CORS
//  5. HTTP Server + graceful shutdown
//
// Global değişken yok, her şey burada oluşturulup birbirine bağlanıyor.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/akinalp/mqvi-directory/config"
	"github.com/akinalp/mqvi-directory/database"
	"github.com/akinalp/mqvi-directory/middleware"
	"github.com/akinalp/mqvi-directory/pkg/ratelimit"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("[main] mqvi-directory starting...")

	// ─── 1. Config ───
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[main] failed to load config: %v", err)
	}
	log.Printf("[main] config loaded (port=%d)", cfg.Server.Port)

	// ─── 2. Database ───
	db, err := database.New(cfg.Database.Path, database.Migrations())
	if err != nil {
		log.Fatalf("[main] failed to initialize database: %v", err)
	}
	defer db.Close()

	// ─── 3. Rate limiter ───
	var limiter *ratelimit.IPRateLimiter
	if cfg.RateLimit.Requests > 0 {
		limiter = ratelimit.NewIPRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
		defer limiter.Close()
		log.Printf("[main] rate limit enabled (%d req / %s)", cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}

	// ─── 4. HTTP Server ───
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      buildHandler(db.Conn, cfg, limiter),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ─── 5. Graceful Shutdown ───
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[main] server listening on %s", cfg.Server.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[main] server error: %v", err)
		}
	}()

	<-done
	log.Println("[main] shutting down...")

	// Yeni request kabul etmeyi durdur, mevcutların bitmesini bekle (5sn).
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[main] forced shutdown: %v", err)
		return
	}

	log.Println("[main] server stopped gracefully")
}

// buildHandler, repository → service → handler zincirini kurar ve
// router'ı global middleware + CORS ile sarar.
func buildHandler(conn *sql.DB, cfg *config.Config, limiter *ratelimit.IPRateLimiter) http.Handler {
	repos := initRepositories(conn)
	svcs := initServices(conn, repos, cfg)
	h := initHandlers(svcs)

	mux := http.NewServeMux()
	initRoutes(mux, h, svcs.Auth, repos.User, limiter, cfg.RateLimit.TrustedProxies)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader, "Retry-After"},
		AllowCredentials: true,
	})

	return middleware.RequestID(middleware.RequestLogger(corsHandler.Handler(mux)))
}
