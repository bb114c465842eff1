// Package middleware, HTTP request pipeline'ına eklenen ara katmanları barındırır.
//
// Go'da middleware: func(next http.Handler) http.Handler.
// Zincir: RequestID → RequestLogger → RateLimit → Auth → Handler
package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/akinalp/mqvi-directory/handlers"
	"github.com/akinalp/mqvi-directory/pkg"
	"github.com/akinalp/mqvi-directory/repository"
	"github.com/akinalp/mqvi-directory/services"
)

// AuthMiddleware, JWT token doğrulama middleware'ı.
type AuthMiddleware struct {
	authService services.AuthService
	userRepo    repository.UserRepository
}

// NewAuthMiddleware, constructor.
func NewAuthMiddleware(authService services.AuthService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		userRepo:    userRepo,
	}
}

// Optional, token'ı opsiyonel kılan middleware.
//
//   - Authorization header yok → anonim, next çağrılır (context'te user yok).
//   - Header var ve geçerli → kullanıcı DB'den getirilip context'e eklenir.
//   - Header var ama bozuk/geçersiz/süresi dolmuş veya kullanıcı silinmiş → 401.
//
// Geçersiz token sessizce anonime düşürülmez: client ?user=true ile
// "boş liste" alıp üyeliği olmadığını sanmasın.
func (m *AuthMiddleware) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "invalid authorization format, use: Bearer <token>")
			return
		}

		claims, err := m.authService.ValidateAccessToken(tokenString)
		if err != nil {
			pkg.Error(w, err)
			return
		}

		// Token geçerli ama kullanıcı silinmiş olabilir
		user, err := m.userRepo.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, pkg.ErrNotFound) {
				pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found")
				return
			}
			log.Printf("[auth] failed to load user %s: %v", claims.UserID, err)
			pkg.Error(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), handlers.UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
