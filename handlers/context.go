// Package handlers, HTTP request/response işlemlerini yönetir.
//
// Handler'lar "thin"dir: query/path parse et → service çağır → pkg.JSON / pkg.Error.
// İş mantığı service katmanında, SQL repository katmanında kalır.
package handlers

import (
	"context"

	"github.com/akinalp/mqvi-directory/models"
)

// contextKey, context.Value için özel key tipi, string key çakışmasını önler.
type contextKey string

// UserContextKey, AuthMiddleware'in doğrulanmış *models.User'ı koyduğu key.
const UserContextKey contextKey = "user"

// RequestIDContextKey, RequestID middleware'inin request ID'yi koyduğu key.
const RequestIDContextKey contextKey = "request_id"

// CallerFromContext, context'teki kullanıcıyı döner. Anonim istekte (nil, false).
func CallerFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserContextKey).(*models.User)
	return user, ok && user != nil
}

// callerID, anonim istekte boş string döner.
func callerID(ctx context.Context) string {
	if user, ok := CallerFromContext(ctx); ok {
		return user.ID
	}
	return ""
}
