// Package main: HTTP route registration.
//
// Tüm browse endpoint'leri public'tir: token opsiyonel (AuthMiddleware.Optional),
// IP bazlı rate limit uygulanır. Health check her ikisinden de muaftır.
package main

import (
	"fmt"
	"net/http"

	"github.com/akinalp/mqvi-directory/middleware"
	"github.com/akinalp/mqvi-directory/pkg/ratelimit"
	"github.com/akinalp/mqvi-directory/repository"
	"github.com/akinalp/mqvi-directory/services"
)

// initRoutes, middleware chain'i kurar ve endpoint'leri mux'a bağlar.
// limiter nil ise rate limiting kapalıdır. trusted, client IP tespitinde
// forwarding header'larına güvenilen proxy'lerdir.
func initRoutes(
	mux *http.ServeMux,
	h *Handlers,
	authService services.AuthService,
	userRepo repository.UserRepository,
	limiter *ratelimit.IPRateLimiter,
	trusted ratelimit.TrustedProxies,
) {
	// ─── Middleware ───
	authMw := middleware.NewAuthMiddleware(authService, userRepo)
	rateMw := middleware.NewRateLimitMiddleware(limiter, trusted)

	// ─── Middleware Chain Helper ───
	browse := func(handler http.HandlerFunc) http.Handler {
		return rateMw.Limit(authMw.Optional(handler))
	}

	// Health check
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"ok","service":"mqvi-directory"}`)
	})

	// Servers
	mux.Handle("GET /api/servers", browse(h.Server.List))
	mux.Handle("GET /api/servers/{serverId}", browse(h.Server.Get))

	// Categories
	mux.Handle("GET /api/categories", browse(h.Category.List))
}
