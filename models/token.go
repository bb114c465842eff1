package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims, JWT access token'ın payload'ı.
//
// Token'lar auth servisi tarafından imzalanır, bu servis sadece doğrular.
// models paketinde durur çünkü hem services hem middleware kullanır
// (circular dependency'yi önler).
type TokenClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
